// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/arcodes/internal/options"
)

// ParseFlags parses command line flags and returns program and report options
func ParseFlags() (options.Program, options.Report, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, options.Report{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Report{}, err
	}

	if err := validateOptionCombinations(opts); err != nil {
		return opts, options.Report{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Report{}, err
	}

	if opts.Batch == "" && len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, createReportOptions(opts), nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: arcodes [options] <code document to decode>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to decode, please pass the file to decode as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations checks for flags that can not be used together
func validateOptionCombinations(opts options.Program) error {
	if opts.Pseudocode && opts.Both {
		return errors.New("flags -c and -both can not be combined")
	}
	if opts.Batch != "" && opts.Output != "" {
		return errors.New("flag -o can not be used in batch mode, output files are named automatically")
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Format == "" {
		return nil
	}

	format, ok := options.FormatFromString(opts.Format)
	if !ok {
		return fmt.Errorf("unsupported report format: %s. Valid options: %s, %s",
			opts.Format, options.FormatText, options.FormatYAML)
	}
	opts.Format = string(format)
	return nil
}

// createReportOptions creates report options based on program options. The format
// is left empty to be detected later on.
func createReportOptions(opts options.Program) options.Report {
	reportOptions := options.NewReport("")
	reportOptions.Comments = opts.Comments

	switch {
	case opts.Both:
		reportOptions.Mode = options.ModeBoth
	case opts.Pseudocode:
		reportOptions.Mode = options.ModePseudocode
	}

	return reportOptions
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input code document")
	flags.StringVar(&opts.Output, "o", "", "name of the output report file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically name the report files, for example *.txt")
	flags.StringVar(&opts.Format, "f", "", "report format (text/yaml) - if not detected from the output file extension")
	flags.BoolVar(&opts.Pseudocode, "c", false, "render instructions as C like pseudocode instead of prose")
	flags.BoolVar(&opts.Both, "both", false, "render instructions as prose and pseudocode")
	flags.BoolVar(&opts.Comments, "comments", false, "append the decimal value to all rendered hex numbers")
	flags.BoolVar(&opts.Dump, "dump", false, "dump the decoded document structure for debugging")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
