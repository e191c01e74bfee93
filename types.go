package md2cv

import (
	"fmt"
	"strings"
	"time"
)

// Output format constants.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatAll  = "all"
)

// DefaultTemplate is the template used when none is requested.
const DefaultTemplate = "ats_classic"

// Metadata is the parsed frontmatter mapping. Values are YAML scalars or
// sequences; no schema is enforced and unknown fields pass through to
// templates untouched.
type Metadata map[string]any

// Get returns the string form of a scalar metadata value, or "" if the key
// is absent or not a scalar.
func (m Metadata) Get(key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case int, int64, uint64, float64, bool:
		return fmt.Sprintf("%v", s)
	}
	return ""
}

// Document is the result of splitting raw input into frontmatter metadata
// and Markdown body. Immutable after creation; both output paths read it,
// neither mutates it.
type Document struct {
	Meta Metadata
	Body string
}

// Job describes one conversion request.
type Job struct {
	InputPath    string // Markdown file to convert (required)
	OutputDir    string // directory for generated files (created if missing)
	Template     string // template name (empty = DefaultTemplate)
	Format       string // "pdf", "docx", or "all" (empty = "all")
	TemplatesDir string // optional directory of user templates
}

// Validate checks that the job's format selector is one of the known values.
func (j Job) Validate() error {
	switch strings.ToLower(j.Format) {
	case "", FormatPDF, FormatDOCX, FormatAll:
		return nil
	}
	return fmt.Errorf("%w: %q (must be pdf, docx, or all)", ErrInvalidFormat, j.Format)
}

// wantsPDF reports whether the job requests PDF output.
func (j Job) wantsPDF() bool {
	f := strings.ToLower(j.Format)
	return f == "" || f == FormatPDF || f == FormatAll
}

// wantsDOCX reports whether the job requests DOCX output.
func (j Job) wantsDOCX() bool {
	f := strings.ToLower(j.Format)
	return f == "" || f == FormatDOCX || f == FormatAll
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2cv: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
