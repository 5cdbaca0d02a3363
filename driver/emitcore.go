package driver

import (
	"fmt"

	"github.com/aster-lang/aster/config"
	"github.com/aster-lang/aster/ir"
	"github.com/spf13/cobra"
)

var cmdEmitCore = &cobra.Command{
	Use:   "emit-core <file>",
	Short: "print the file's lowered Core IR as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := config.LoadEnv()
		res, err := runPipeline(args[0], env)
		if err != nil {
			return err
		}
		data, err := ir.Marshal(res.module)
		if err != nil {
			return fmt.Errorf("driver: marshaling core ir: %w", err)
		}
		fmt.Println(string(data))
		if hasErrors(res.diags) {
			return errDiagnosticsReported
		}
		return nil
	},
}
