package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the marinedash command.
type cliFlags struct {
	config      string
	office      string
	out         string
	addr        string
	serve       bool
	placeholder bool
	verbose     bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("marinedash", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.office, "office", "o", "", "forecast office code (default from config)")
	fs.StringVar(&f.out, "out", "", "write the widget fragment to a file instead of stdout")
	fs.BoolVar(&f.serve, "serve", false, "run the widget HTTP server")
	fs.StringVar(&f.addr, "addr", "", "listen address for --serve (default from config)")
	fs.BoolVar(&f.placeholder, "placeholder", false, "skip the network and render the development placeholder")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed diagnostics")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
