package main

import (
	"os"

	"github.com/termkit/lineedit/cmd"
	"github.com/termkit/lineedit/pkg/logging"
)

func main() {
	logger := logging.GetLogger()
	// Flush any buffered trace output before the process goes away.
	defer func() {
		if err := logger.Close(); err != nil {
			os.Stderr.WriteString("error closing logger: " + err.Error() + "\n")
		}
	}()

	if err := cmd.Execute(); err != nil {
		logger.Tracef("fatal: %v", err)
		logger.Close() // os.Exit skips the deferred close
		os.Exit(1)
	}
}
