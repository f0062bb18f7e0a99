package main

import (
	"os"

	"github.com/spf13/cobra"
)

var proveInputs []string

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "Prove --circuit-file on --inputs and write the combined proof to --proof-file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("circuit-file", circuitFile); err != nil {
			return err
		}
		if err := requireFlag("proof-file", proofFile); err != nil {
			return err
		}

		var vk []byte
		if vkFile != "" {
			var err error
			if vk, err = os.ReadFile(vkFile); err != nil {
				return err
			}
		}

		proof, err := bridge.GenerateNoirProof(circuitFile, srsPath(), proveInputs, cfg.OnChain, vk, cfg.LowMemory)
		if err != nil {
			return err
		}
		if err = os.WriteFile(proofFile, proof, 0o644); err != nil {
			return err
		}

		logger.Info().Str("proof", proofFile).Int("bytes", len(proof)).Msg("proof written")
		return nil
	},
}

func init() {
	noirbridgeCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringSliceVar(&proveInputs, "inputs", nil, "Input values in ABI parameter order, decimal or 0x-hex.")
}
