package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [rut]",
	Short: "Normalize a RUT and show its parts",
	Long: `Normalizes the input (dots, dashes and spaces are ignored, k is
uppercased) and prints the correlative, the verifier and whether the
verifier matches the modulus-11 checksum.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(parseCmd)
}

type parseOutput struct {
	RUT         rut.RUT `json:"rut"`
	Correlative int     `json:"correlative"`
	Verifier    string  `json:"verifier"`
	Expected    string  `json:"expected_verifier"`
	Valid       bool    `json:"valid"`
}

func runParse(cmd *cobra.Command, args []string) error {
	r, err := rut.Parse(args[0])
	if err != nil {
		return err
	}

	out := parseOutput{
		RUT:         r,
		Correlative: r.Correlative(),
		Verifier:    string(r.Verifier()),
		Expected:    string(rut.VerifierFor(r.Correlative())),
		Valid:       r.Valid(),
	}

	if parseJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("RUT:         %s\n", out.RUT)
	cmd.Printf("Correlative: %d\n", out.Correlative)
	cmd.Printf("Verifier:    %s\n", out.Verifier)
	if out.Valid {
		cmd.Println("Checksum:    ok")
	} else {
		cmd.Printf("Checksum:    mismatch (expected %s)\n", out.Expected)
	}
	return nil
}
