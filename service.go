package md2cv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cvkit/md2cv/internal/assets"
	"github.com/cvkit/md2cv/internal/fileutil"
)

// Service converts Markdown CVs to PDF and DOCX files.
// Safe to reuse across jobs; the browser connection is established lazily on
// the first PDF conversion and held until Close.
type Service struct {
	cfg  serviceConfig
	html htmlConverter
	pdf  pdfConverter
}

// New creates a Service with the given options.
//
//	svc := md2cv.New(md2cv.WithTimeout(60 * time.Second))
//	defer svc.Close()
func New(opts ...Option) *Service {
	s := &Service{
		cfg:  serviceConfig{timeout: defaultTimeout},
		html: newGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pdf == nil {
		s.pdf = newRodConverter(s.cfg.timeout)
	}
	return s
}

// Close releases the browser held by the PDF backend. Safe to call even if
// no PDF was ever generated.
func (s *Service) Close() error {
	return s.pdf.Close()
}

// Convert runs one conversion job and returns the paths of the files it
// created, in creation order (PDF before DOCX when both are requested).
// The two output paths are independent; a failure in either aborts the job.
func (s *Service) Convert(ctx context.Context, job Job) ([]string, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if !fileutil.FileExists(job.InputPath) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, job.InputPath)
	}

	raw, err := os.ReadFile(job.InputPath) // #nosec G304 -- caller controls the input path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", job.InputPath, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMarkdown, job.InputPath)
	}

	// Frontmatter is split exactly once; both output paths read the result.
	doc, err := SplitFrontmatter(string(raw))
	if err != nil {
		return nil, err
	}

	outputDir := job.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	stem := strings.TrimSuffix(filepath.Base(job.InputPath), filepath.Ext(job.InputPath))

	templateName := job.Template
	if templateName == "" {
		templateName = DefaultTemplate
	}

	var created []string

	if job.wantsPDF() {
		path := filepath.Join(outputDir, stem+".pdf")
		if err := s.convertPDF(ctx, doc, templateName, job.TemplatesDir, path); err != nil {
			return created, err
		}
		created = append(created, path)
	}

	if job.wantsDOCX() {
		path := filepath.Join(outputDir, stem+".docx")
		if err := convertDOCX(doc, templateName, path); err != nil {
			return created, err
		}
		created = append(created, path)
	}

	return created, nil
}

// convertPDF runs the visual path: Markdown -> HTML fragment -> template
// skeleton -> styled document -> headless Chrome print.
func (s *Service) convertPDF(ctx context.Context, doc Document, templateName, templatesDir, outPath string) error {
	bodyHTML, err := s.html.ToHTML(ctx, doc.Body)
	if err != nil {
		return err
	}

	renderer, err := newTemplateRenderer(templatesDir)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(templateName, doc.Meta, bodyHTML)
	if err != nil {
		return err
	}

	fullHTML := injectCSS(rendered.HTML, rendered.CSS)

	pdfBytes, err := s.pdf.ToPDF(ctx, fullHTML, &pdfOptions{BaseDir: rendered.BaseDir})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, pdfBytes, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// convertDOCX runs the structural path: contact header from metadata plus
// the line-classified body, no HTML involved.
func convertDOCX(doc Document, templateName, outPath string) error {
	docx := buildDocxDocument(doc.Meta, doc.Body, templateName)
	if err := docx.SaveFile(outPath); err != nil {
		return fmt.Errorf("%w: %v", ErrDocxWrite, err)
	}
	return nil
}

// TemplateInfo describes one available template.
type TemplateInfo = assets.Info

// ListTemplates enumerates the embedded templates plus any found in
// templatesDir (empty = embedded only). User templates shadow embedded ones
// with the same name.
func ListTemplates(templatesDir string) ([]TemplateInfo, error) {
	resolver, err := assets.NewResolver(templatesDir)
	if err != nil {
		return nil, err
	}
	return resolver.List()
}
