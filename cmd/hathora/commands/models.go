package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hathora/models-sdk/pkg/cli"
	"github.com/hathora/models-sdk/pkg/hathora"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Model discovery",
	Long: `List available models and inspect their parameters.

Examples:
  hathora models list
  hathora models params synthesis kokoro
  hathora models params chat qwen --json`,
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available models",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CAPABILITY\tMODEL\tPARAMETERS")

		for _, cap := range hathora.Capabilities() {
			for _, model := range hathora.Models(cap) {
				params, err := hathora.ModelParameters(cap, model)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", cap, model, len(params))
			}
		}

		w.Flush()
		return nil
	},
}

var modelsParamsCmd = &cobra.Command{
	Use:   "params <capability> <model>",
	Short: "Show the parameters a model accepts",
	Long: `Show the parameters a model accepts, with types and defaults.

With --json the contract is emitted as a JSON Schema, suitable for
editor completion or request validation.

Examples:
  hathora models params synthesis resemble
  hathora models params chat qwen --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cap, model := hathora.Capability(args[0]), args[1]

		if isJSONOutput() {
			schema, err := hathora.ModelJSONSchema(cap, model)
			if err != nil {
				return err
			}
			return outputResult(schema, getOutputFile(), true)
		}

		help, err := hathora.ModelHelp(cap, model)
		if err != nil {
			return err
		}

		styles := cli.NewStyles(cli.DefaultTheme)
		fmt.Println(styles.Label.Render(fmt.Sprintf("%s/%s", cap, model)))
		fmt.Print(help)
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsParamsCmd)
}
