package bindings

import (
	"encoding/base64"
	"math"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/cast"
)

// Method names of the named-argument channel mobile plugins call through.
const (
	MethodGetNumPublicInputsFromCircuit = "getNumPublicInputsFromCircuit"
	MethodParseProofWithPublicInputs    = "parseProofWithPublicInputs"
	MethodCombineProofAndPublicInputs   = "combineProofAndPublicInputs"
	MethodGenerateNoirProof             = "generateNoirProof"
	MethodGetNoirVerificationKey        = "getNoirVerificationKey"
	MethodVerifyNoirProof               = "verifyNoirProof"

	// Keccak variants always run in on-chain mode.
	MethodGenerateNoirKeccakProofWithVk = "generateNoirKeccakProofWithVk"
	MethodVerifyNoirKeccakProofWithVk   = "verifyNoirKeccakProofWithVk"
	MethodGetNoirVerificationKeccakKey  = "getNoirVerificationKeccakKey"
)

type args map[string]any

// Call runs method with named arguments. Byte arguments are accepted as
// []byte or as base64 strings; numbers and booleans may arrive as strings.
func (b *Bridge) Call(method string, arguments map[string]any) (any, error) {
	a := args(arguments)
	b.logger.Debug().Str("method", method).Msg("call")

	switch method {
	case MethodGetNumPublicInputsFromCircuit:
		circuitPath, err := a.requiredString("circuitPath")
		if err != nil {
			return nil, err
		}
		return b.GetNumPublicInputsFromCircuit(circuitPath), nil

	case MethodParseProofWithPublicInputs:
		proof, err := a.requiredBytes("proof")
		if err != nil {
			return nil, err
		}
		n, err := a.requiredUint32("numPublicInputs")
		if err != nil {
			return nil, err
		}
		return b.ParseProofWithPublicInputs(proof, n)

	case MethodCombineProofAndPublicInputs:
		proof, err := a.requiredBytes("proof")
		if err != nil {
			return nil, err
		}
		words, err := a.bytesList("publicInputs")
		if err != nil {
			return nil, err
		}
		return b.CombineProofAndPublicInputs(proof, words)

	case MethodGenerateNoirProof, MethodGenerateNoirKeccakProofWithVk:
		circuitPath, err := a.requiredString("circuitPath")
		if err != nil {
			return nil, err
		}
		srsPath, err := a.optionalString("srsPath")
		if err != nil {
			return nil, err
		}
		inputs, err := a.stringList("inputs")
		if err != nil {
			return nil, err
		}
		vk, err := a.requiredBytes("vk")
		if err != nil {
			return nil, err
		}
		onChain, lowMemory, err := b.modes(method, a)
		if err != nil {
			return nil, err
		}
		return b.GenerateNoirProof(circuitPath, srsPath, inputs, onChain, vk, lowMemory)

	case MethodGetNoirVerificationKey, MethodGetNoirVerificationKeccakKey:
		circuitPath, err := a.requiredString("circuitPath")
		if err != nil {
			return nil, err
		}
		srsPath, err := a.optionalString("srsPath")
		if err != nil {
			return nil, err
		}
		onChain, lowMemory, err := b.modes(method, a)
		if err != nil {
			return nil, err
		}
		return b.GetNoirVerificationKey(circuitPath, srsPath, onChain, lowMemory)

	case MethodVerifyNoirProof, MethodVerifyNoirKeccakProofWithVk:
		circuitPath, err := a.requiredString("circuitPath")
		if err != nil {
			return nil, err
		}
		proof, err := a.requiredBytes("proof")
		if err != nil {
			return nil, err
		}
		vk, err := a.requiredBytes("vk")
		if err != nil {
			return nil, err
		}
		onChain, lowMemory, err := b.modes(method, a)
		if err != nil {
			return nil, err
		}
		return b.VerifyNoirProof(circuitPath, proof, onChain, vk, lowMemory)
	}

	return nil, errorsmod.Wrap(ErrUnknownMethod, method)
}

func (b *Bridge) modes(method string, a args) (onChain, lowMemory bool, err error) {
	onChain, err = a.optionalBool("onChain", b.onChain)
	if err != nil {
		return false, false, err
	}
	switch method {
	case MethodGenerateNoirKeccakProofWithVk, MethodVerifyNoirKeccakProofWithVk, MethodGetNoirVerificationKeccakKey:
		onChain = true
	}
	lowMemory, err = a.optionalBool("lowMemoryMode", b.lowMemory)
	if err != nil {
		return false, false, err
	}
	return onChain, lowMemory, nil
}

func (a args) requiredString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", errorsmod.Wrapf(ErrInvalidArgument, "missing %s", key)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", errorsmod.Wrapf(ErrInvalidArgument, "%s: %v", key, err)
	}
	return s, nil
}

func (a args) optionalString(key string) (*string, error) {
	if v, ok := a[key]; !ok || v == nil {
		return nil, nil
	}
	s, err := a.requiredString(key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (a args) optionalBool(key string, fallback bool) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return fallback, nil
	}
	res, err := cast.ToBoolE(v)
	if err != nil {
		return false, errorsmod.Wrapf(ErrInvalidArgument, "%s: %v", key, err)
	}
	return res, nil
}

func (a args) requiredUint32(key string) (uint32, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, errorsmod.Wrapf(ErrInvalidArgument, "missing %s", key)
	}
	// JSON numbers arrive as float64 and must be integral
	switch v.(type) {
	case float32, float64:
		f := cast.ToFloat64(v)
		if f != math.Trunc(f) || f < 0 || f > math.MaxUint32 {
			return 0, errorsmod.Wrapf(ErrInvalidArgument, "%s is not a count: %v", key, v)
		}
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, errorsmod.Wrapf(ErrInvalidArgument, "%s: %v", key, err)
	}
	if n < 0 || n > math.MaxUint32 {
		return 0, errorsmod.Wrapf(ErrInvalidArgument, "%s out of range: %d", key, n)
	}
	return uint32(n), nil
}

func (a args) stringList(key string) ([]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, errorsmod.Wrapf(ErrInvalidArgument, "missing %s", key)
	}
	list, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidArgument, "%s: %v", key, err)
	}
	return list, nil
}

func (a args) requiredBytes(key string) ([]byte, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, errorsmod.Wrapf(ErrInvalidArgument, "missing %s", key)
	}
	return toBytes(key, v)
}

func (a args) bytesList(key string) ([][]byte, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, errorsmod.Wrapf(ErrInvalidArgument, "missing %s", key)
	}
	switch list := v.(type) {
	case [][]byte:
		return list, nil
	case []string:
		res := make([][]byte, len(list))
		for i, s := range list {
			bz, err := toBytes(key, s)
			if err != nil {
				return nil, err
			}
			res[i] = bz
		}
		return res, nil
	case []any:
		res := make([][]byte, len(list))
		for i, item := range list {
			bz, err := toBytes(key, item)
			if err != nil {
				return nil, err
			}
			res[i] = bz
		}
		return res, nil
	}
	return nil, errorsmod.Wrapf(ErrInvalidArgument, "%s: unsupported list type %T", key, v)
}

func toBytes(key string, v any) ([]byte, error) {
	switch bz := v.(type) {
	case []byte:
		return bz, nil
	case string:
		res, err := base64.StdEncoding.DecodeString(bz)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidArgument, "%s is not base64: %v", key, err)
		}
		return res, nil
	}
	return nil, errorsmod.Wrapf(ErrInvalidArgument, "%s: unsupported byte type %T", key, v)
}
