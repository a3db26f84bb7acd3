package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

var (
	formatMode string
	formatAll  bool
)

var formatCmd = &cobra.Command{
	Use:   "format [rut...]",
	Short: "Print RUTs in a given layout",
	Long: `Prints each RUT in one of the layouts: clear (123456785),
readable (12.345.678-5), hyphened (12345678-5) or hidden (12.***.***-5).
Formatting does not validate the verifier.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVarP(&formatMode, "mode", "m", "readable", "layout: clear, readable, hyphened or hidden")
	formatCmd.Flags().BoolVar(&formatAll, "all", false, "print every layout")
	rootCmd.AddCommand(formatCmd)
}

var allModes = []rut.Mode{rut.Clear, rut.Readable, rut.Hyphened, rut.Hidden}

func runFormat(cmd *cobra.Command, args []string) error {
	mode, err := rut.ParseMode(formatMode)
	if err != nil {
		return err
	}

	for _, raw := range args {
		r, err := rut.Parse(raw)
		if err != nil {
			return err
		}
		if !formatAll {
			cmd.Println(r.Format(mode))
			continue
		}
		for _, m := range allModes {
			cmd.Printf("%-9s %s\n", m.String()+":", r.Format(m))
		}
	}
	return nil
}
