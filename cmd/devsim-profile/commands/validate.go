// Package commands implements the devsim-profile subcommands.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/devsim-project/devsim-go/pkg/devsim"
	"github.com/devsim-project/devsim-go/pkg/log"
	"github.com/devsim-project/devsim-go/pkg/profile"
	"github.com/devsim-project/devsim-go/pkg/registry"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitValidation   = 2
)

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	JSON  bool
	Files []string
}

// ValidateResult is the outcome for one file.
type ValidateResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Errors   int      `json:"errors"`
	Warnings int      `json:"warnings"`
	Messages []string `json:"messages,omitempty"`
}

// RunValidate runs the validate command. Each file is applied to a
// reference device; errors make the file invalid, warnings are
// reported but do not.
func RunValidate(args []string, stdout, stderr io.Writer) int {
	opts, err := parseValidateArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		printValidateUsage(stderr)
		return exitCommandError
	}

	var results []ValidateResult
	failed := false
	for _, file := range opts.Files {
		result := validateFile(file)
		if !result.Valid {
			failed = true
		}
		results = append(results, result)
	}

	if opts.JSON {
		data, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(stdout, string(data))
	} else {
		for _, r := range results {
			status := "OK"
			if !r.Valid {
				status = "FAILED"
			}
			fmt.Fprintf(stdout, "%s: %s (%d errors, %d warnings)\n", r.File, status, r.Errors, r.Warnings)
			for _, msg := range r.Messages {
				fmt.Fprintf(stdout, "  %s\n", msg)
			}
		}
	}

	if failed {
		return exitValidation
	}
	return exitSuccess
}

func validateFile(file string) ValidateResult {
	collect := log.NewCollectLogger()
	data := referenceDevice()

	err := profile.NewLoader(collect).LoadFile(file, data)

	result := ValidateResult{
		File:     file,
		Valid:    err == nil,
		Errors:   collect.CountCategory(log.CategoryError),
		Warnings: collect.CountCategory(log.CategoryWarning),
	}
	for _, event := range collect.Events() {
		if event.Category == log.CategoryDebug {
			continue
		}
		result.Messages = append(result.Messages, fmt.Sprintf("%s: %s", event.Category, event.Message))
	}
	return result
}

// referenceDevice returns a capability record to validate against,
// seeded from the built-in simulated driver.
func referenceDevice() *registry.DeviceData {
	driver := devsim.NewSimDriver(1)
	return &registry.DeviceData{
		PhysicalDevice: 1,
		Properties:     driver.GetPhysicalDeviceProperties(1),
		Features:       driver.GetPhysicalDeviceFeatures(1),
		Memory:         driver.GetPhysicalDeviceMemoryProperties(1),
		QueueFamilies:  driver.GetPhysicalDeviceQueueFamilyProperties(1),
	}
}

func parseValidateArgs(args []string) (ValidateOptions, error) {
	var opts ValidateOptions
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.JSON, "json", false, "output results as JSON")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.Files = fs.Args()
	return opts, nil
}

func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: devsim-profile validate [options] <file.json>...

Options:
  -json  Output results as JSON`)
}
