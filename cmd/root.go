// Package cmd holds the command line interface.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cfgPath string

// rootCmd represents the base command; without a subcommand it runs the
// interactive interpreter.
var rootCmd = &cobra.Command{
	Use:   "minsh",
	Short: "A minimal interactive command interpreter",
	Long: `minsh reads one command per line and executes it.

The first word names a builtin (cd, chdir, exit, quit) or an external
program resolved through PATH. A trailing "#" token runs the command in
the background and prints its process ID instead of waiting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterpreter()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "minsh: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
