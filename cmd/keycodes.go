package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termkit/lineedit/pkg/terminal"
)

// keycodesCmd is a development aid: it puts the terminal in raw mode and
// prints the scan code of every key pressed, which is how new escape
// sequences get identified before being mapped in the decoder.
var keycodesCmd = &cobra.Command{
	Use:   "keycodes",
	Short: "Print raw key scan codes for debugging",
	RunE: func(cmd *cobra.Command, args []string) error {
		term := terminal.New(os.Stdin, os.Stderr)
		if err := term.EnableRaw(); err != nil {
			return fmt.Errorf("enter raw mode: %w", err)
		}
		defer term.DisableRaw()

		fmt.Println("Key codes debugging mode.")
		fmt.Println("Press keys to see scan codes. Type 'quit' at any time to exit.")

		// Rolling window over the last four bytes to spot "quit".
		quit := [4]byte{' ', ' ', ' ', ' '}
		buf := make([]byte, 1)

		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return nil
			}
			if n == 0 {
				continue
			}

			c := buf[0]
			copy(quit[:], quit[1:])
			quit[3] = c
			if string(quit[:]) == "quit" {
				return nil
			}

			display := rune('?')
			if c >= 0x20 && c < 0x7F {
				display = rune(c)
			}
			fmt.Printf("'%c' %02x (%d) (type quit to exit)\n", display, c, c)
		}
	},
}
