package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify --proof-file against --circuit-file and --vk-file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for name, value := range map[string]string{
			"circuit-file": circuitFile,
			"proof-file":   proofFile,
			"vk-file":      vkFile,
		} {
			if err := requireFlag(name, value); err != nil {
				return err
			}
		}

		proof, err := os.ReadFile(proofFile)
		if err != nil {
			return err
		}
		vk, err := os.ReadFile(vkFile)
		if err != nil {
			return err
		}

		valid, err := bridge.VerifyNoirProof(circuitFile, proof, cfg.OnChain, vk, cfg.LowMemory)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), valid)
		if !valid {
			return fmt.Errorf("proof %s does not verify", proofFile)
		}
		return nil
	},
}

func init() {
	noirbridgeCmd.AddCommand(verifyCmd)
}
