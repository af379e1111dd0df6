// internal/platform/config/help.go
package config

import (
	"fmt"
	"os"
	"runtime"
)

const helpText = `
vaultdedup - Vault Export Deduplication

USAGE:
  vaultdedup -i <export.csv> [options]

CORE OPTIONS:
  -i, --input string           Input CSV export file (required)
  -o, --output string          Output file (default: <input>_deduplicated.<ext>)
  -f, --filter strings         Keywords that exclude matching entries
                               (repeatable or comma-separated)
  -d, --default-folder string  Folder assigned to entries without one (default: "Personal")
  -a, --analyze                Analyze duplicates in full detail without writing output

CONSOLE OPTIONS:
  -q, --quiet                  Suppress the interactive console output
      --verbose                Enable debug logging

CONFIG:
      --config string          YAML config file (keys: input, output, filter,
                               default_folder, analyze, quiet, verbose)

INFO:
  -v, --version                Print version information and exit
  -h, --help                   Show this help message

EXAMPLES:
  Basic deduplication:
    vaultdedup -i export.csv

  Drop entries mentioning old services:
    vaultdedup -i export.csv -f myspace -f "old bank"

  Inspect duplicates without writing anything:
    vaultdedup -i export.csv --analyze

  Scripted run:
    vaultdedup -i export.csv -o clean.csv -q

ENVIRONMENT VARIABLES:
  Every flag can be set via environment variables with the VAULTDEDUP_ prefix:

  VAULTDEDUP_INPUT              Input file
  VAULTDEDUP_OUTPUT             Output file
  VAULTDEDUP_FILTER=a,b         Filter keywords (comma-separated)
  VAULTDEDUP_DEFAULT_FOLDER     Default folder name
  VAULTDEDUP_ANALYZE=true       Analysis mode
  VAULTDEDUP_QUIET=true         Quiet mode
  VAULTDEDUP_VERBOSE=true       Debug logging
  VAULTDEDUP_CONFIG=/path       Config file
  VAULTDEDUP_LOG_LEVEL=debug    Log level (debug, info, warn, error)

  Note: CLI flags override environment variables, which override the
  config file.

OUTPUT:
  The output file keeps the input's column layout, so it can be imported
  back into the vault. Surviving credential entries come first, followed
  by every non-credential row untouched.
`

// PrintHelp prints the custom help message and exits.
func PrintHelp() {
	fmt.Fprint(os.Stdout, helpText)
	os.Exit(0)
}

// PrintVersion prints version information and exits.
func PrintVersion(version, commit, date string) {
	fmt.Printf("vaultdedup %s\n", version)
	fmt.Printf("  Commit:  %s\n", commit)
	fmt.Printf("  Built:   %s\n", date)
	fmt.Printf("  Go:      %s\n", getGoVersion())
	os.Exit(0)
}

func getGoVersion() string {
	return runtime.Version()
}
