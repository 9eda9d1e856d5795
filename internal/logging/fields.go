// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Build fields.
	FieldManifest = "manifest"
	FieldTemplate = "template"
	FieldSection  = "section"
	FieldSections = "sections"
	FieldFormat   = "format"
	FieldJobs     = "jobs"
	FieldWritten  = "written"
	FieldDuration = "duration"

	// Extraction fields.
	FieldLanguage = "language"
	FieldMarker   = "marker"

	// Watch fields.
	FieldEvent = "event"
	FieldOp    = "op"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
