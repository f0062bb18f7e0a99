package main

import (
	"os"

	"github.com/spf13/cobra"
)

var vkCmd = &cobra.Command{
	Use:   "vk",
	Short: "Derive the verification key of --circuit-file into --vk-file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("circuit-file", circuitFile); err != nil {
			return err
		}
		if err := requireFlag("vk-file", vkFile); err != nil {
			return err
		}

		vk, err := bridge.GetNoirVerificationKey(circuitFile, srsPath(), cfg.OnChain, cfg.LowMemory)
		if err != nil {
			return err
		}
		if err = os.WriteFile(vkFile, vk, 0o644); err != nil {
			return err
		}

		logger.Info().Str("vk", vkFile).Int("bytes", len(vk)).Bool("on_chain", cfg.OnChain).Msg("verification key written")
		return nil
	},
}

func init() {
	noirbridgeCmd.AddCommand(vkCmd)
}
