package driver

import (
	"fmt"
	"strings"

	"github.com/aster-lang/aster/config"
	"github.com/spf13/cobra"
)

var typecheckFilterCodes string

var cmdTypecheck = &cobra.Command{
	Use:   "typecheck <file>",
	Short: "typecheck a file and print {source, diagnostics, summary} as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := config.LoadEnv()
		res, err := runPipeline(args[0], env)
		if err != nil {
			return err
		}

		var codes []string
		if typecheckFilterCodes != "" {
			codes = strings.Split(typecheckFilterCodes, ",")
		}
		diags := filterByCode(res.diags, codes)

		report := typecheckReport{
			Source:      res.path,
			Diagnostics: toJSONDiagnostics(diags),
			Summary:     summarize(diags),
		}
		data, err := marshalIndent(report)
		if err != nil {
			return fmt.Errorf("driver: marshaling typecheck report: %w", err)
		}
		fmt.Println(string(data))

		if hasErrors(diags) {
			return errDiagnosticsReported
		}
		return nil
	},
}

func init() {
	cmdTypecheck.Flags().StringVar(&typecheckFilterCodes, "filter-codes", "", "comma-separated diagnostic codes to include")
}
