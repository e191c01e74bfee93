package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	flag "github.com/spf13/pflag"

	md2cv "github.com/cvkit/md2cv"
	"github.com/cvkit/md2cv/internal/assets"
	"github.com/cvkit/md2cv/internal/config"
)

// CLI-level sentinel errors.
var ErrNoInput = errors.New("no input file specified")

// converter is the slice of the md2cv API the CLI drives; narrowed so tests
// can substitute a fake.
type converter interface {
	Convert(ctx context.Context, job md2cv.Job) ([]string, error)
}

// dependencies holds the injectable collaborators of run.
type dependencies struct {
	converter converter
	stdout    io.Writer
	stderr    io.Writer
}

// run executes one CLI invocation. Arguments are os.Args-style (args[0] is
// the program name). Errors are returned, not printed; main maps them to
// exit codes.
func run(args []string, deps *dependencies) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Fprintf(deps.stdout, "md2cv %s\n", Version)
		return nil
	}

	if flags.listTemplates {
		return listTemplates(flags.templatesDir, deps.stdout)
	}

	if err := applyConfig(flags); err != nil {
		return err
	}
	applyDefaults(flags)

	if len(inputs) == 0 {
		return fmt.Errorf("%w (usage: md2cv [flags] <input.md>...)", ErrNoInput)
	}

	totalCreated := 0
	for _, input := range inputs {
		if flags.verbose {
			fmt.Fprintf(deps.stderr, "Converting %s...\n", input)
		}

		created, err := deps.converter.Convert(context.Background(), md2cv.Job{
			InputPath:    input,
			OutputDir:    flags.outputDir,
			Template:     flags.template,
			Format:       flags.format,
			TemplatesDir: flags.templatesDir,
		})
		if err != nil {
			return err
		}

		if !flags.quiet {
			for _, path := range created {
				switch filepath.Ext(path) {
				case ".pdf":
					fmt.Fprintf(deps.stdout, "PDF created: %s\n", path)
				case ".docx":
					fmt.Fprintf(deps.stdout, "DOCX created: %s\n", path)
				}
			}
		}
		totalCreated += len(created)
	}

	if !flags.quiet {
		fmt.Fprintf(deps.stdout, "Conversion complete! %d file(s) created.\n", totalCreated)
	}
	return nil
}

// applyConfig fills unset flags from the config file, if one was requested.
// Flags always win over config values.
func applyConfig(f *cliFlags) error {
	if f.config == "" {
		return nil
	}
	cfg, err := config.LoadConfig(f.config)
	if err != nil {
		return err
	}
	if f.outputDir == "" {
		f.outputDir = cfg.Output.DefaultDir
	}
	if f.template == "" {
		f.template = cfg.Template.Name
	}
	if f.format == "" {
		f.format = cfg.Format
	}
	if f.templatesDir == "" {
		f.templatesDir = cfg.Templates.BasePath
	}
	return nil
}

// applyDefaults resolves remaining empty flags to their fallbacks.
func applyDefaults(f *cliFlags) {
	if f.outputDir == "" {
		f.outputDir = defaultOutputDir
	}
	if f.format == "" {
		f.format = defaultFormat
	}
}

// listTemplates prints the discovered templates, marking unusable ones.
func listTemplates(templatesDir string, w io.Writer) error {
	infos, err := md2cv.ListTemplates(templatesDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available templates:")
	for _, info := range infos {
		mark, note := "✓", ""
		if !info.HasTemplate {
			mark, note = "✗", " - missing "+assets.TemplateFile
		}
		fmt.Fprintf(w, "  %s %s (%s)%s\n", mark, info.Name, info.Source, note)
	}
	return nil
}
