package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	combineProofSection string
	combinePublicInputs []string
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Append public input words to a proof section, writing --proof-file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("proof-section", combineProofSection); err != nil {
			return err
		}
		if err := requireFlag("proof-file", proofFile); err != nil {
			return err
		}

		section, err := os.ReadFile(combineProofSection)
		if err != nil {
			return err
		}
		words := make([][]byte, len(combinePublicInputs))
		for i, s := range combinePublicInputs {
			if words[i], err = hex.DecodeString(strings.TrimPrefix(s, "0x")); err != nil {
				return fmt.Errorf("public input %d: %w", i, err)
			}
		}

		combined, err := bridge.CombineProofAndPublicInputs(section, words)
		if err != nil {
			return err
		}
		if err = os.WriteFile(proofFile, combined, 0o644); err != nil {
			return err
		}

		logger.Info().Str("proof", proofFile).Int("public_inputs", len(words)).Msg("combined proof written")
		return nil
	},
}

func init() {
	noirbridgeCmd.AddCommand(combineCmd)
	combineCmd.Flags().StringVar(&combineProofSection, "proof-section", "", "File holding the proof section without public inputs.")
	combineCmd.Flags().StringSliceVar(&combinePublicInputs, "public-inputs", nil, "Public input words as hex, in order.")
}
