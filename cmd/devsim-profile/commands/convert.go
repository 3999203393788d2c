package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Input  string
	Output string // Empty means stdout
	Format string // Target format; derived from the input when empty
}

// RunConvert converts a profile between JSON and YAML. The JSON side
// accepts comments and trailing commas; the output is always strict.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printConvertUsage(stderr)
		return exitCommandError
	}

	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	output, err := convert(raw, inputIsYAML(opts.Input), opts.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Output == "" || opts.Output == "-" {
		fmt.Fprint(stdout, string(output))
	} else if err := os.WriteFile(opts.Output, output, 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

func convert(raw []byte, fromYAML bool, format string) ([]byte, error) {
	var document any
	if fromYAML {
		if err := yaml.Unmarshal(raw, &document); err != nil {
			return nil, fmt.Errorf("parse YAML input: %w", err)
		}
	} else {
		if err := json.Unmarshal(jsonc.ToJSON(raw), &document); err != nil {
			return nil, fmt.Errorf("parse JSON input: %w", err)
		}
	}

	if format == "" {
		if fromYAML {
			format = "json"
		} else {
			format = "yaml"
		}
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml":
		return yaml.Marshal(document)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func inputIsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func parseConvertArgs(args []string) (ConvertOptions, error) {
	var opts ConvertOptions
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Output, "o", "", "output file (default stdout)")
	fs.StringVar(&opts.Format, "format", "", "target format: json, yaml (default: the other one)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		opts.Input = fs.Arg(0)
	}
	return opts, nil
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: devsim-profile convert [options] <file.{json,yaml}>

Options:
  -o       Output file (default stdout)
  -format  Target format: json, yaml (default: the opposite of the input)`)
}
