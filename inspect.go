package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/manifest"
)

var inspectStrict bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the number of public inputs declared by --circuit-file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlag("circuit-file", circuitFile); err != nil {
			return err
		}

		var n uint32
		if inspectStrict {
			var err error
			if n, err = bridge.CountPublicInputs(circuitFile); err != nil {
				return err
			}
		} else {
			n = bridge.GetNumPublicInputsFromCircuit(circuitFile)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "public inputs: %d\n", n)

		// the ABI is informational, a manifest without one still counts
		if m, err := manifest.Read(circuitFile); err == nil && m.ABI != nil {
			fmt.Fprintf(out, "public parameters: %v\n", m.PublicParameters())
			fmt.Fprintf(out, "private parameters: %v\n", m.PrivateParameters())
		}
		return nil
	},
}

func init() {
	noirbridgeCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false, "Fail instead of reporting 0 when the count cannot be determined.")
}
