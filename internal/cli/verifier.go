package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

var verifierFull bool

var verifierCmd = &cobra.Command{
	Use:   "verifier [correlative]",
	Short: "Compute the verifier digit for a correlative",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerifier,
}

func init() {
	verifierCmd.Flags().BoolVar(&verifierFull, "full", false, "print the complete readable RUT")
	rootCmd.AddCommand(verifierCmd)
}

func runVerifier(cmd *cobra.Command, args []string) error {
	digits := strings.ReplaceAll(strings.TrimSpace(args[0]), ".", "")
	correlative, err := strconv.Atoi(digits)
	if err != nil {
		return fmt.Errorf("invalid correlative %q: %w", args[0], rut.ErrMalformedInput)
	}

	r, err := rut.FromCorrelative(correlative)
	if err != nil {
		return err
	}

	if verifierFull {
		cmd.Println(r.String())
		return nil
	}
	cmd.Println(string(r.Verifier()))
	return nil
}
