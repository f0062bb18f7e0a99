package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
)

func TestMultiplier2Satisfiability(t *testing.T) {
	err := test.IsSolved(&Multiplier2Circuit{}, &Multiplier2Circuit{A: 3, B: 5, C: 15}, ecc.BN254.ScalarField())
	require.NoError(t, err, "3 * 5 should be 15")

	err = test.IsSolved(&Multiplier2Circuit{}, &Multiplier2Circuit{A: 3, B: 5, C: 16}, ecc.BN254.ScalarField())
	require.Error(t, err, "3 * 5 is not 16")
}

func TestAffineSatisfiability(t *testing.T) {
	assignment := &AffineCircuit{A: 10, B: 5, X: 2, Expected: 20}
	require.NoError(t, test.IsSolved(&AffineCircuit{}, assignment, ecc.BN254.ScalarField()))

	assignment.Expected = 21
	require.Error(t, test.IsSolved(&AffineCircuit{}, assignment, ecc.BN254.ScalarField()))
}

func TestCompileReportsPublicInputs(t *testing.T) {
	expected := map[string]int{
		"multiplier2": 1,
		"affine":      3,
	}
	require.Equal(t, []string{"affine", "multiplier2"}, Names())

	b, err := backend.NewPlonkBackend()
	require.NoError(t, err)

	for name, nbPublic := range expected {
		m, err := CompileByName(name)
		require.NoError(t, err, name)
		require.NoError(t, m.Validate(), name)
		require.Len(t, m.PublicParameters(), nbPublic, name)

		n, err := b.NumPublicInputs(m.Bytecode)
		require.NoError(t, err, name)
		require.Equal(t, nbPublic, n, name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("sha256")
	require.Error(t, err)
	_, err = CompileByName("sha256")
	require.Error(t, err)
}
