package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	noirbridgeCmd.SetOut(&out)
	noirbridgeCmd.SetArgs(args)
	err := noirbridgeCmd.Execute()
	return out.String(), err
}

func TestCommandsRoundTrip(t *testing.T) {
	t.Setenv("NOIRBRIDGE_LOG_LEVEL", "error")
	dir := t.TempDir()
	circuitPath := filepath.Join(dir, "multiplier2.json")
	vkPath := filepath.Join(dir, "vk.bin")
	proofPath := filepath.Join(dir, "proof.bin")
	sectionPath := filepath.Join(dir, "section.bin")
	forgedPath := filepath.Join(dir, "forged.bin")

	_, err := run(t, "compile", "--name", "multiplier2", "--circuit-file", circuitPath)
	require.NoError(t, err)

	out, err := run(t, "inspect", "--circuit-file", circuitPath, "--strict")
	require.NoError(t, err)
	require.Contains(t, out, "public inputs: 1")
	require.Contains(t, out, "public parameters: [c]")

	_, err = run(t, "vk", "--circuit-file", circuitPath, "--vk-file", vkPath)
	require.NoError(t, err)

	_, err = run(t, "prove", "--circuit-file", circuitPath, "--vk-file", vkPath,
		"--proof-file", proofPath, "--inputs", "3,5,15")
	require.NoError(t, err)

	out, err = run(t, "verify", "--circuit-file", circuitPath, "--vk-file", vkPath, "--proof-file", proofPath)
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, err = run(t, "split", "--circuit-file", circuitPath, "--proof-file", proofPath, "--proof-section", sectionPath)
	require.NoError(t, err)
	require.Contains(t, out, fmt.Sprintf("public input 0: 0x%064x", 15))

	_, err = run(t, "combine", "--proof-section", sectionPath,
		"--public-inputs", fmt.Sprintf("0x%064x", 16), "--proof-file", forgedPath)
	require.NoError(t, err)

	out, err = run(t, "verify", "--circuit-file", circuitPath, "--vk-file", vkPath, "--proof-file", forgedPath)
	require.Error(t, err)
	require.Equal(t, "false\n", out)
}

func TestCommandsRequireFlags(t *testing.T) {
	t.Setenv("NOIRBRIDGE_LOG_LEVEL", "error")

	_, err := run(t, "combine", "--proof-file", filepath.Join(t.TempDir(), "p.bin"), "--proof-section", "")
	require.ErrorContains(t, err, "--proof-section is required")
}

func TestFieldMustMatchBackend(t *testing.T) {
	t.Setenv("NOIRBRIDGE_LOG_LEVEL", "error")
	t.Setenv("NOIRBRIDGE_FIELD", "m31")

	_, err := run(t, "inspect", "--circuit-file", filepath.Join(t.TempDir(), "c.json"))
	require.ErrorContains(t, err, "does not match")
}
