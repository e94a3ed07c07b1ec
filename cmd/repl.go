package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/termkit/lineedit/pkg/editor"
)

var (
	replPrompt      string
	replHistorySize int
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run a demo read-print loop using the editor",
	Long: `Reads lines interactively and echoes them back until end-of-input
(Ctrl-D on an empty line). Ctrl-C cancels the current line without
leaving the loop. Useful for exercising the editor by hand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ed := editor.New(editor.WithHistoryCapacity(replHistorySize))
		defer ed.Close()

		for {
			line, err := ed.ReadLine(replPrompt)
			if errors.Is(err, editor.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read line: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	},
}

func init() {
	replCmd.Flags().StringVarP(&replPrompt, "prompt", "p", ">>> ", "prompt to display")
	replCmd.Flags().IntVar(&replHistorySize, "history-size", 100, "maximum history entries kept")
}
