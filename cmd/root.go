// =============================================================================
// QSC Pricing Processor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (qsc-processor)
//   ├── processCmd (qsc-processor process)
//   ├── inspectCmd (qsc-processor inspect)
//   └── versionCmd (qsc-processor version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/qsc-pricing-processor/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose output when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "qsc-processor",

	Short: "QSC Pricing Processor - Normalize QSC vendor pricing files to the template schema",

	Long: `QSC Pricing Processor converts vendor-supplied QSC pricing spreadsheets
into the fixed 19-column template schema required by the downstream import.

It resolves the vendor's inconsistent column names against known aliases,
injects the constant BRAND/TAXABLE/USETAXFLAG fields, cleans up currency
values, and writes a styled workbook with a frozen, formatted header row.

Example Usage:
  qsc-processor process pricing.xlsx              # Write output/QSC_Processed_pricing.xlsx
  qsc-processor process pricing.xlsx out.xlsx     # Write to an explicit path
  qsc-processor inspect pricing.xlsx              # Show how columns would resolve`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags shared by all subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
