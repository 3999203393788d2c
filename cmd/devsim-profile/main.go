// devsim-profile is a CLI tool for validating, inspecting, and
// converting device capability profiles.
package main

import (
	"fmt"
	"os"

	"github.com/devsim-project/devsim-go/cmd/devsim-profile/commands"
	"github.com/devsim-project/devsim-go/cmd/devsim-profile/interactive"
	"github.com/devsim-project/devsim-go/pkg/devsim"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "show":
		exitCode = commands.RunShow(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "interactive":
		exitCode = interactive.Run(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Printf("devsim-profile version %d.%d.%d\n",
			devsim.VersionMajor, devsim.VersionMinor, devsim.VersionPatch)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`devsim-profile - device capability profile tool

Usage:
  devsim-profile <command> [options] [files...]

Commands:
  validate     Check profile files for errors and suspicious overrides
  show         Display the capabilities a profile produces
  convert      Convert profiles between JSON and YAML
  interactive  Explore profiles against simulated devices

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  devsim-profile validate low-end.json
  devsim-profile show --format yaml low-end.json
  devsim-profile convert low-end.json -o low-end.yaml
  devsim-profile interactive

For command-specific help, run:
  devsim-profile <command> --help`)
}
