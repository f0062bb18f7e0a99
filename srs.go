package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

var srsCanonicalOnly bool

var srsCmd = &cobra.Command{
	Use:   "srs",
	Short: "Write the development SRS sized for --circuit-file into --srs-file",
	Long: `Write the deterministic development SRS sized for the circuit.

Its trapdoor is derived from a public label: anyone can forge proofs
against it. Use it for tests and local tooling only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("circuit-file", circuitFile); err != nil {
			return err
		}
		if err := requireFlag("srs-file", srsFile); err != nil {
			return err
		}

		m, err := manifest.Read(circuitFile)
		if err != nil {
			return err
		}
		canonical, lagrange, err := plonkBackend.DevSRS(m)
		if err != nil {
			return err
		}
		if srsCanonicalOnly {
			lagrange = nil
		}
		if err = backend.WriteSRS(srsFile, canonical, lagrange); err != nil {
			return err
		}

		logger.Warn().Str("srs", srsFile).Msg("development SRS written, do not use it in production")
		fmt.Fprintln(cmd.OutOrStdout(), srsFile)
		return nil
	},
}

func init() {
	noirbridgeCmd.AddCommand(srsCmd)
	srsCmd.Flags().BoolVar(&srsCanonicalOnly, "canonical-only", false, "Omit the Lagrange form, it is then derived at load time.")
}
