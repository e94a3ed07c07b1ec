package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lineedit",
	Short: "Interactive line-editing engine for terminal REPLs",
	Long: `Lineedit is a minimal readline/linenoise-style line editor: raw-mode
keyboard input, UTF-8 and wide-character aware cursor movement, bounded
history with duplicate suppression, and single-line rendering that scrolls
horizontally when the line outgrows the terminal.

Available commands:
  repl     - Run a demo read-print loop using the editor
  keycodes - Print raw key scan codes for debugging`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main() and only needs to happen
// once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(keycodesCmd)
}
