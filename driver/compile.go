package driver

import (
	"fmt"

	"github.com/aster-lang/aster/config"
	"github.com/spf13/cobra"
)

var cmdCompile = &cobra.Command{
	Use:   "compile <file>",
	Short: "canonicalize, lex, parse, lower, and typecheck a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := config.LoadEnv()
		res, err := runPipeline(args[0], env)
		if err != nil {
			return err
		}
		for _, d := range res.diags {
			fmt.Println(d.String())
		}
		if hasErrors(res.diags) {
			return errDiagnosticsReported
		}
		return nil
	},
}
