package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gospec/pkg/langdetect"
)

func TestIsBinary(t *testing.T) {
	t.Parallel()

	assert.False(t, langdetect.IsBinary([]byte("//~ hello\nfn main() {}\n")))
	assert.True(t, langdetect.IsBinary([]byte{0x7f, 'E', 'L', 'F', 0x00, 0x01, 0x00, 0x00}))
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected string
	}{
		{"proto/consensus.py", "python"},
		{"main.go", "go"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, langdetect.Language(tt.path, nil))
		})
	}
}
