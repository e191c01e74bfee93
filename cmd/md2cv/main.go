package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	md2cv "github.com/cvkit/md2cv"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags first to pick up timeout and verbose before wiring the service.
	flags, _, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	// Configure GOMAXPROCS for containerized environments.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	var opts []md2cv.Option
	if flags.timeout > 0 {
		opts = append(opts, md2cv.WithTimeout(flags.timeout))
	}
	svc := md2cv.New(opts...)
	defer svc.Close()

	deps := &dependencies{
		converter: svc,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}

	if err := run(os.Args, deps); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}
