// Package md2cv converts Markdown CVs to ATS-compatible PDF and DOCX files.
//
// # Quick Start
//
// Create a service, convert a CV, and close when done:
//
//	svc := md2cv.New()
//	defer svc.Close()
//
//	created, err := svc.Convert(ctx, md2cv.Job{
//	    InputPath: "cv.md",
//	    OutputDir: "output",
//	    Template:  "ats_classic",
//	    Format:    md2cv.FormatAll,
//	})
//
// Convert returns the paths of the files it wrote, named after the input
// file's base name with .pdf and/or .docx extensions.
//
// # Conversion Pipeline
//
// A conversion reads the input once and splits it into YAML frontmatter
// metadata and a Markdown body. The body then flows down two independent
// paths:
//
//  1. PDF: Markdown to HTML via Goldmark (GFM, syntax highlighting), merged
//     with the named template's HTML skeleton, styled by the template's CSS,
//     and printed to PDF by headless Chrome (go-rod).
//  2. DOCX: the raw Markdown body is classified line by line into headings,
//     bullet lists, and paragraphs, prefixed with a contact header built
//     from the metadata, and written as a WordprocessingML document.
//
// The two paths share only the read-only (metadata, body) pair.
//
// # Templates
//
// A template is a directory holding a required template.html and an optional
// style.css. The ats_classic template is embedded in the binary; directories
// under a user-supplied templates path override embedded templates by name.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run. Use ROD_BROWSER_BIN to
// point at a pre-installed binary (containers, CI).
package md2cv
