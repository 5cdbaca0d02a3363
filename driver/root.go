package driver

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Exit codes assigned to `compile`: success, diagnostics reported, and
// usage error.
const (
	ExitOK          = 0
	ExitDiagnostics = 1
	ExitUsage       = 2
)

// errDiagnosticsReported is a sentinel a command's RunE returns when the
// pipeline completed but produced at least one error diagnostic, so
// Execute can distinguish that case from a usage error without string-
// matching on the error text.
var errDiagnosticsReported = errors.New("diagnostics reported")

var cmdRoot = &cobra.Command{
	Use:           "asterc",
	Short:         "Compiler frontend for the Aster CNL",
	Long:          `asterc canonicalizes, lexes, parses, lowers, and typechecks Aster source files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(log.Lshortfile | log.Ltime)
		id := uuid.New().String()
		log.SetPrefix("[" + id[:8] + "] ")
		return nil
	},
}

// Execute runs the asterc CLI and returns the process exit code it
// should terminate with, following the 0/1/2 convention above.
func Execute() int {
	cmdRoot.AddCommand(cmdCompile)
	cmdRoot.AddCommand(cmdEmitCore)
	cmdRoot.AddCommand(cmdTypecheck)

	err := cmdRoot.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errDiagnosticsReported):
		return ExitDiagnostics
	default:
		log.Printf("error: %v", err)
		return ExitUsage
	}
}
