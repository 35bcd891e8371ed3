// =============================================================================
// QSC Pricing Processor - Inspect Command
// =============================================================================
//
// This file defines the 'inspect' command, which loads a pricing file and
// shows how its columns resolve against the canonical alias tables, without
// producing any output file. Useful when a new vendor drop arrives with yet
// another set of column headings.
//
// COMMAND USAGE:
//   qsc-processor inspect <source-file>
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/converter"
	"github.com/ginjaninja78/qsc-pricing-processor/internal/resolver"
)

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect <source-file>",
	Short: "Show column resolution for a pricing file without writing output",
	Long: `The inspect command loads a QSC pricing file, resolves its columns against
the canonical alias tables, and prints the resulting mapping. No output file
is written and the source file is not modified.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

// init registers the inspect command with the root command.
func init() {
	rootCmd.AddCommand(inspectCmd)
}

// runInspect loads and resolves the file, then prints the mapping table.
func runInspect(sourcePath string) error {
	table, mapping, err := converter.Inspect(sourcePath)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Column Resolution ===")
	for _, field := range resolver.CanonicalFields() {
		if match, ok := mapping.Lookup(field); ok {
			fmt.Printf("  %-18s -> %q (column %d)\n", field, match.SourceColumn, match.Index+1)
		} else {
			fmt.Printf("  %-18s -> (unmapped)\n", field)
		}
	}

	if missing := mapping.Missing(); len(missing) > 0 {
		fmt.Printf("\nUnmapped canonical fields: %s\n", strings.Join(missing, ", "))
		fmt.Println("Processing would fill these with empty values.")
	}

	fmt.Printf("\n%d data row(s) would be processed from %s\n", table.RowCount, sourcePath)

	return nil
}
