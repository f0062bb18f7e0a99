package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/circuit"
)

var circuitName string

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a reference circuit into a manifest at --circuit-file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("circuit-file", circuitFile); err != nil {
			return err
		}

		m, err := circuit.CompileByName(circuitName)
		if err != nil {
			return err
		}
		if err = m.Write(circuitFile); err != nil {
			return err
		}

		logger.Info().
			Str("circuit", circuitName).
			Strs("public", m.PublicParameters()).
			Strs("private", m.PrivateParameters()).
			Msg("circuit compiled")
		fmt.Fprintln(cmd.OutOrStdout(), circuitFile)
		return nil
	},
}

func init() {
	noirbridgeCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVar(&circuitName, "name", "multiplier2", fmt.Sprintf("The reference circuit, one of %v.", circuit.Names()))
}
