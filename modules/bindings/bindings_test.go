package bindings_test

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend/testutil"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/bindings"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/codec"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/fields"
)

const stubManifest = `{"bytecode": "stub-bytecode", "abi": {"parameters": [{"name": "c", "type": {"kind": "field"}, "visibility": "public"}]}}`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func setup(t *testing.T) (*bindings.Bridge, *testutil.MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	be := testutil.NewMockBackend(ctrl)
	return bindings.New(be), be
}

func words(n int) [][]byte {
	res := make([][]byte, n)
	for i := range res {
		w := make([]byte, codec.DefaultWordSize)
		w[codec.DefaultWordSize-1] = byte(i + 1)
		res[i] = w
	}
	return res
}

func TestGetNumPublicInputsFromCircuit(t *testing.T) {
	b, be := setup(t)
	path := writeManifest(t, stubManifest)

	be.EXPECT().NumPublicInputs("stub-bytecode").Return(3, nil)
	require.Equal(t, uint32(3), b.GetNumPublicInputsFromCircuit(path))

	be.EXPECT().NumPublicInputs("stub-bytecode").Return(0, errorsmod.Wrap(backend.ErrBackendFailure, "bad bytecode"))
	require.Zero(t, b.GetNumPublicInputsFromCircuit(path), "introspection failure folds into 0")

	require.Zero(t, b.GetNumPublicInputsFromCircuit(filepath.Join(t.TempDir(), "absent.json")))
	require.Zero(t, b.GetNumPublicInputsFromCircuit(writeManifest(t, `{"abi": {}}`)))
}

func TestCountPublicInputsStrict(t *testing.T) {
	b, be := setup(t)

	_, err := b.CountPublicInputs(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	be.EXPECT().NumPublicInputs(gomock.Any()).Return(2, nil)
	n, err := b.CountPublicInputs(writeManifest(t, stubManifest))
	require.NoError(t, err)
	require.Equal(t, uint32(2), n)
}

func TestParseAndCombine(t *testing.T) {
	b, _ := setup(t)

	proofSection := []byte("proof-section-bytes")
	combined, err := b.CombineProofAndPublicInputs(proofSection, words(2))
	require.NoError(t, err)
	require.Len(t, combined, len(proofSection)+2*codec.DefaultWordSize)

	parsed, err := b.ParseProofWithPublicInputs(combined, 2)
	require.NoError(t, err)
	require.Equal(t, proofSection, parsed.Proof)
	require.Equal(t, words(2), parsed.PublicInputs)
	require.Equal(t, uint32(2), parsed.NumPublicInputs)

	_, err = b.ParseProofWithPublicInputs(make([]byte, 10), 1)
	require.True(t, errors.Is(err, codec.ErrMalformedProof))

	_, err = b.CombineProofAndPublicInputs(proofSection, [][]byte{{1, 2}})
	require.True(t, errors.Is(err, codec.ErrMalformedPublicInput))
}

func TestLayoutOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	layout := codec.LayoutForField(fields.ECCM31)
	b := bindings.New(testutil.NewMockBackend(ctrl), bindings.WithLayout(layout))

	parsed, err := b.ParseProofWithPublicInputs([]byte{9, 1, 2, 3, 4, 5, 6, 7, 8}, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{9}, parsed.Proof)
	require.Equal(t, [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}, parsed.PublicInputs)
}

func TestGenerateNoirProofRouting(t *testing.T) {
	b, be := setup(t)
	path := writeManifest(t, stubManifest)
	srs := "/srs/bn254.srs"
	vk := []byte("vk")

	be.EXPECT().
		Prove(gomock.Any(), srs, []string{"15"}, vk, backend.Options{HashMode: backend.HashModeOnChain, LowMemory: true}).
		Return([]byte("combined"), nil)
	proof, err := b.GenerateNoirProof(path, &srs, []string{"15"}, true, vk, true)
	require.NoError(t, err)
	require.Equal(t, []byte("combined"), proof)

	be.EXPECT().
		Prove(gomock.Any(), "", []string{"15"}, vk, backend.Options{HashMode: backend.HashModeOffChain}).
		Return(nil, errorsmod.Wrap(backend.ErrBackendFailure, "unsatisfied"))
	_, err = b.GenerateNoirProof(path, nil, []string{"15"}, false, vk, false)
	require.True(t, errors.Is(err, backend.ErrBackendFailure))

	_, err = b.GenerateNoirProof(filepath.Join(t.TempDir(), "absent.json"), nil, nil, true, vk, false)
	require.Error(t, err)
}

func TestVerificationKeyAndVerify(t *testing.T) {
	b, be := setup(t)
	path := writeManifest(t, stubManifest)

	be.EXPECT().
		VerificationKey(gomock.Any(), "", backend.Options{HashMode: backend.HashModeOnChain}).
		Return([]byte("vk"), nil)
	vk, err := b.GetNoirVerificationKey(path, nil, true, false)
	require.NoError(t, err)
	require.Equal(t, []byte("vk"), vk)

	be.EXPECT().
		Verify(gomock.Any(), []byte("combined"), []byte("vk"), backend.Options{HashMode: backend.HashModeOffChain}).
		Return(false, nil)
	valid, err := b.VerifyNoirProof(path, []byte("combined"), false, []byte("vk"), false)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestCallDispatch(t *testing.T) {
	b, be := setup(t)
	path := writeManifest(t, stubManifest)
	vk := []byte("vk")

	be.EXPECT().NumPublicInputs("stub-bytecode").Return(1, nil)
	res, err := b.Call(bindings.MethodGetNumPublicInputsFromCircuit, map[string]any{"circuitPath": path})
	require.NoError(t, err)
	require.Equal(t, uint32(1), res)

	combined, err := b.CombineProofAndPublicInputs([]byte("p"), words(1))
	require.NoError(t, err)
	res, err = b.Call(bindings.MethodParseProofWithPublicInputs, map[string]any{
		"proof":           base64.StdEncoding.EncodeToString(combined),
		"numPublicInputs": float64(1),
	})
	require.NoError(t, err)
	require.Equal(t, []byte("p"), res.(*bindings.ProofWithPublicInputs).Proof)

	res, err = b.Call(bindings.MethodCombineProofAndPublicInputs, map[string]any{
		"proof":        []byte("p"),
		"publicInputs": []any{base64.StdEncoding.EncodeToString(words(1)[0])},
	})
	require.NoError(t, err)
	require.Equal(t, combined, res)

	be.EXPECT().
		Prove(gomock.Any(), "", []string{"3", "15"}, vk, backend.Options{HashMode: backend.HashModeOnChain}).
		Return([]byte("combined"), nil)
	res, err = b.Call(bindings.MethodGenerateNoirProof, map[string]any{
		"circuitPath": path,
		"inputs":      []any{"3", float64(15)},
		"vk":          vk,
	})
	require.NoError(t, err)
	require.Equal(t, []byte("combined"), res)

	be.EXPECT().
		Verify(gomock.Any(), []byte("combined"), vk, backend.Options{HashMode: backend.HashModeOffChain, LowMemory: true}).
		Return(true, nil)
	res, err = b.Call(bindings.MethodVerifyNoirProof, map[string]any{
		"circuitPath":   path,
		"proof":         []byte("combined"),
		"vk":            vk,
		"onChain":       "false",
		"lowMemoryMode": true,
	})
	require.NoError(t, err)
	require.Equal(t, true, res)
}

func TestCallKeccakAliasesForceOnChain(t *testing.T) {
	b, be := setup(t)
	path := writeManifest(t, stubManifest)
	vk := []byte("vk")
	onChain := backend.Options{HashMode: backend.HashModeOnChain}

	be.EXPECT().VerificationKey(gomock.Any(), "", onChain).Return(vk, nil)
	_, err := b.Call(bindings.MethodGetNoirVerificationKeccakKey, map[string]any{
		"circuitPath": path,
		"onChain":     false,
	})
	require.NoError(t, err)

	be.EXPECT().Prove(gomock.Any(), "", []string{"15"}, vk, onChain).Return([]byte("combined"), nil)
	_, err = b.Call(bindings.MethodGenerateNoirKeccakProofWithVk, map[string]any{
		"circuitPath": path,
		"inputs":      []string{"15"},
		"vk":          vk,
		"onChain":     false,
	})
	require.NoError(t, err)

	be.EXPECT().Verify(gomock.Any(), []byte("combined"), vk, onChain).Return(true, nil)
	_, err = b.Call(bindings.MethodVerifyNoirKeccakProofWithVk, map[string]any{
		"circuitPath": path,
		"proof":       []byte("combined"),
		"vk":          vk,
	})
	require.NoError(t, err)
}

func TestCallDefaultModes(t *testing.T) {
	ctrl := gomock.NewController(t)
	be := testutil.NewMockBackend(ctrl)
	b := bindings.New(be, bindings.WithDefaultModes(false, true))
	path := writeManifest(t, stubManifest)

	be.EXPECT().
		VerificationKey(gomock.Any(), "", backend.Options{HashMode: backend.HashModeOffChain, LowMemory: true}).
		Return([]byte("vk"), nil)
	_, err := b.Call(bindings.MethodGetNoirVerificationKey, map[string]any{"circuitPath": path})
	require.NoError(t, err)
}

func TestCallArgumentErrors(t *testing.T) {
	b, _ := setup(t)

	cases := map[string]struct {
		method string
		args   map[string]any
	}{
		"missing circuit path": {bindings.MethodGetNoirVerificationKey, map[string]any{}},
		"negative count":       {bindings.MethodParseProofWithPublicInputs, map[string]any{"proof": []byte{1}, "numPublicInputs": -1}},
		"count not a number":   {bindings.MethodParseProofWithPublicInputs, map[string]any{"proof": []byte{1}, "numPublicInputs": "many"}},
		"fractional count":     {bindings.MethodParseProofWithPublicInputs, map[string]any{"proof": []byte{1}, "numPublicInputs": 1.9}},
		"fractional string":    {bindings.MethodParseProofWithPublicInputs, map[string]any{"proof": []byte{1}, "numPublicInputs": "1.9"}},
		"count too large":      {bindings.MethodParseProofWithPublicInputs, map[string]any{"proof": []byte{1}, "numPublicInputs": float64(1 << 40)}},
		"proof not base64":     {bindings.MethodParseProofWithPublicInputs, map[string]any{"proof": "%%%", "numPublicInputs": 0}},
		"proof wrong type":     {bindings.MethodVerifyNoirProof, map[string]any{"circuitPath": "c.json", "proof": 12, "vk": []byte{1}}},
		"missing vk":           {bindings.MethodGenerateNoirProof, map[string]any{"circuitPath": "c.json", "inputs": []string{}}},
		"bad on chain flag":    {bindings.MethodGetNoirVerificationKey, map[string]any{"circuitPath": "c.json", "onChain": "sometimes"}},
		"words wrong type":     {bindings.MethodCombineProofAndPublicInputs, map[string]any{"proof": []byte{1}, "publicInputs": 7}},
	}

	for name, c := range cases {
		_, err := b.Call(c.method, c.args)
		require.True(t, errors.Is(err, bindings.ErrInvalidArgument), "%s: %v", name, err)
	}

	_, err := b.Call("proveEverything", nil)
	require.True(t, errors.Is(err, bindings.ErrUnknownMethod))
}

func TestToCallError(t *testing.T) {
	require.Nil(t, bindings.ToCallError(nil))

	callErr := bindings.ToCallError(errorsmod.Wrap(codec.ErrMalformedProof, "too short"))
	require.Equal(t, codec.Codespace, callErr.Codespace)
	require.Equal(t, uint32(3), callErr.Code)
	require.Contains(t, callErr.Message, "too short")

	callErr = bindings.ToCallError(errors.New("boom"))
	require.Equal(t, uint32(1), callErr.Code)
}
