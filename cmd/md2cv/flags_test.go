package main

import (
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing and positional arguments
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		flags, inputs, err := parseFlags([]string{"md2cv", "cv.md"})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}

		if flags.format != "" {
			t.Errorf("format = %q, want empty (resolved later)", flags.format)
		}
		if flags.outputDir != "" {
			t.Errorf("outputDir = %q, want empty (resolved later)", flags.outputDir)
		}
		if flags.timeout != 0 {
			t.Errorf("timeout = %v, want 0", flags.timeout)
		}
		if len(inputs) != 1 || inputs[0] != "cv.md" {
			t.Errorf("inputs = %v, want [cv.md]", inputs)
		}
	})

	t.Run("shorthand flags", func(t *testing.T) {
		t.Parallel()

		flags, inputs, err := parseFlags([]string{
			"md2cv", "-f", "pdf", "-t", "ats_classic", "-o", "out", "-q", "cv.md",
		})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}

		if flags.format != "pdf" {
			t.Errorf("format = %q, want pdf", flags.format)
		}
		if flags.template != "ats_classic" {
			t.Errorf("template = %q, want ats_classic", flags.template)
		}
		if flags.outputDir != "out" {
			t.Errorf("outputDir = %q, want out", flags.outputDir)
		}
		if !flags.quiet {
			t.Error("quiet should be set")
		}
		if len(inputs) != 1 {
			t.Errorf("inputs = %v, want one positional", inputs)
		}
	})

	t.Run("long flags", func(t *testing.T) {
		t.Parallel()

		flags, _, err := parseFlags([]string{
			"md2cv", "--format=docx", "--templates-dir=/tmp/tpl",
			"--timeout=90s", "--list-templates",
		})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}

		if flags.format != "docx" {
			t.Errorf("format = %q, want docx", flags.format)
		}
		if flags.templatesDir != "/tmp/tpl" {
			t.Errorf("templatesDir = %q, want /tmp/tpl", flags.templatesDir)
		}
		if flags.timeout != 90*time.Second {
			t.Errorf("timeout = %v, want 90s", flags.timeout)
		}
		if !flags.listTemplates {
			t.Error("listTemplates should be set")
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseFlags([]string{"md2cv", "--nope"})
		if err == nil {
			t.Error("unknown flag should fail")
		}
	})

	t.Run("multiple inputs", func(t *testing.T) {
		t.Parallel()

		_, inputs, err := parseFlags([]string{"md2cv", "a.md", "b.md"})
		if err != nil {
			t.Fatalf("parseFlags() error: %v", err)
		}
		if len(inputs) != 2 {
			t.Errorf("inputs = %v, want two positionals", inputs)
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyDefaults - Fallback resolution
// ---------------------------------------------------------------------------

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		f := &cliFlags{}
		applyDefaults(f)

		if f.outputDir != defaultOutputDir {
			t.Errorf("outputDir = %q, want %q", f.outputDir, defaultOutputDir)
		}
		if f.format != defaultFormat {
			t.Errorf("format = %q, want %q", f.format, defaultFormat)
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		f := &cliFlags{outputDir: "custom", format: "pdf"}
		applyDefaults(f)

		if f.outputDir != "custom" || f.format != "pdf" {
			t.Errorf("explicit values overwritten: %+v", f)
		}
	})
}
