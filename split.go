package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	splitNumPublicInputs int64
	splitProofSection    string
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split --proof-file into the proof section and its public input words",
	Long: `Split a combined proof into the proof section and its public input words.

The number of public inputs comes from --num-public-inputs, or from
--circuit-file when the flag is omitted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("proof-file", proofFile); err != nil {
			return err
		}

		n, err := numPublicInputs()
		if err != nil {
			return err
		}
		proof, err := os.ReadFile(proofFile)
		if err != nil {
			return err
		}

		parsed, err := bridge.ParseProofWithPublicInputs(proof, n)
		if err != nil {
			return err
		}

		if splitProofSection != "" {
			if err = os.WriteFile(splitProofSection, parsed.Proof, 0o644); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "proof: %d bytes\n", len(parsed.Proof))
		for i, word := range parsed.PublicInputs {
			fmt.Fprintf(out, "public input %d: 0x%s\n", i, hex.EncodeToString(word))
		}
		return nil
	},
}

func numPublicInputs() (uint32, error) {
	if splitNumPublicInputs >= 0 {
		if splitNumPublicInputs > int64(^uint32(0)) {
			return 0, fmt.Errorf("--num-public-inputs %d out of range", splitNumPublicInputs)
		}
		return uint32(splitNumPublicInputs), nil
	}
	if err := requireFlag("circuit-file", circuitFile); err != nil {
		return 0, fmt.Errorf("%w, or pass --num-public-inputs", err)
	}
	return bridge.CountPublicInputs(circuitFile)
}

func init() {
	noirbridgeCmd.AddCommand(splitCmd)
	splitCmd.Flags().Int64Var(&splitNumPublicInputs, "num-public-inputs", -1, "Number of public inputs, read from --circuit-file when negative.")
	splitCmd.Flags().StringVar(&splitProofSection, "proof-section", "", "Also write the proof section to this file.")
}
