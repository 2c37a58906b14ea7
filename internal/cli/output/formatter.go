package output

import "io"

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// Rower is implemented by values that render differently as a table than
// as JSON or YAML. Rows returns a slice of structs with `header` tags.
type Rower interface {
	Rows(wide bool) any
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format, wide bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{Wide: wide}
	}
}

// Valid reports whether format is one NewFormatter knows.
func Valid(format string) bool {
	switch Format(format) {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	}
	return false
}
