package fields

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"
)

func TestFieldBytes(t *testing.T) {
	require.Equal(t, uint(32), ECCBN254.FieldBytes(), "bn254 word width")
	require.Equal(t, uint(4), ECCM31.FieldBytes(), "m31 word width")
	require.Equal(t, uint(1), ECCGF2.FieldBytes(), "gf2 word width")
}

func TestBN254ModulusMatchesGnarkCurve(t *testing.T) {
	require.True(t, ECCBN254.SameModulus(ecc.BN254.ScalarField()))
	require.False(t, ECCM31.SameModulus(ecc.BN254.ScalarField()))
	require.False(t, ECCBN254.SameModulus(nil))
}

func TestParseFieldEnum(t *testing.T) {
	cases := map[string]ECCFieldEnum{
		"":           ECCBN254,
		"bn254":      ECCBN254,
		"BN254":      ECCBN254,
		"m31":        ECCM31,
		"mersenne31": ECCM31,
		"gf2":        ECCGF2,
	}
	for name, expected := range cases {
		actual, err := ParseFieldEnum(name)
		require.NoError(t, err, name)
		require.Equal(t, expected, actual, name)
	}

	_, err := ParseFieldEnum("goldilocks")
	require.Error(t, err)
}

func TestFieldEnumString(t *testing.T) {
	for _, f := range []ECCFieldEnum{ECCBN254, ECCM31, ECCGF2} {
		parsed, err := ParseFieldEnum(f.String())
		require.NoError(t, err)
		require.Equal(t, f, parsed)
	}
	require.Equal(t, "field(9)", ECCFieldEnum(9).String())
}
