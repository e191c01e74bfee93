package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2cv command. Empty string values mean
// "not set", so a config file can fill them in before defaults apply.
type cliFlags struct {
	format        string
	template      string
	outputDir     string
	templatesDir  string
	config        string
	timeout       time.Duration
	listTemplates bool
	quiet         bool
	verbose       bool
	version       bool
}

// Fallbacks applied after flags and config are merged.
const (
	defaultOutputDir = "./output"
	defaultFormat    = "all"
)

// newFlagSet registers all flags on a fresh FlagSet.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2cv", flag.ContinueOnError)

	fs.StringVarP(&f.format, "format", "f", "", "output format: pdf, docx, all")
	fs.StringVarP(&f.template, "template", "t", "", "template name")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "directory for generated files")
	fs.StringVar(&f.templatesDir, "templates-dir", "", "directory of user templates")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.DurationVar(&f.timeout, "timeout", 0, "PDF rendering timeout (e.g. 60s)")
	fs.BoolVar(&f.listTemplates, "list-templates", false, "list available templates and exit")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	return fs
}

// parseFlags parses os.Args-style arguments. Returns the parsed flags and
// the positional arguments (input files).
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
