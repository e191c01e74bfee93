package md2cv

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestInjectCSS - Stylesheet placement inside rendered HTML
// ---------------------------------------------------------------------------

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string // substring that must appear, in order
	}{
		{
			name: "before closing head",
			html: "<html><head><title>CV</title></head><body></body></html>",
			css:  "body { margin: 0; }",
			want: "<style>body { margin: 0; }</style></head>",
		},
		{
			name: "after body when no head",
			html: "<html><body class=\"cv\">content</body></html>",
			css:  "p {}",
			want: "<body class=\"cv\"><style>p {}</style>",
		},
		{
			name: "prepends when neither tag exists",
			html: "<div>fragment</div>",
			css:  "div {}",
			want: "<style>div {}</style><div>fragment</div>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injectCSS(tt.html, tt.css)
			if !strings.Contains(got, tt.want) {
				t.Errorf("injectCSS() = %q, want containing %q", got, tt.want)
			}
		})
	}

	t.Run("empty css returns input unchanged", func(t *testing.T) {
		t.Parallel()

		html := "<html><head></head></html>"
		if got := injectCSS(html, ""); got != html {
			t.Errorf("injectCSS() = %q, want unchanged input", got)
		}
	})

	t.Run("css cannot escape the style block", func(t *testing.T) {
		t.Parallel()

		got := injectCSS("<html><head></head></html>", "</style><script>alert(1)</script>")
		if strings.Contains(got, "</style><script>") {
			t.Error("closing sequences should be sanitized")
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildPDFOptions - Chrome print settings
// ---------------------------------------------------------------------------

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	opts := buildPDFOptions()

	if opts.PaperWidth == nil || *opts.PaperWidth != paperWidthInches {
		t.Errorf("PaperWidth = %v, want %v", opts.PaperWidth, paperWidthInches)
	}
	if opts.PaperHeight == nil || *opts.PaperHeight != paperHeightInches {
		t.Errorf("PaperHeight = %v, want %v", opts.PaperHeight, paperHeightInches)
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground should be enabled for styled templates")
	}
	if !opts.PreferCSSPageSize {
		t.Error("PreferCSSPageSize should be enabled so @page rules win")
	}
	for name, m := range map[string]*float64{
		"MarginTop":    opts.MarginTop,
		"MarginBottom": opts.MarginBottom,
		"MarginLeft":   opts.MarginLeft,
		"MarginRight":  opts.MarginRight,
	} {
		if m == nil || *m != marginInches {
			t.Errorf("%s = %v, want %v", name, m, marginInches)
		}
	}
}
