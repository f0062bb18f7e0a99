package codec

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is shared by every error the bridge surfaces to foreign callers.
const Codespace = "noirbridge"

var (
	ErrInvalidLayout        = errorsmod.Register(Codespace, 2, "invalid proof layout")
	ErrMalformedProof       = errorsmod.Register(Codespace, 3, "malformed proof")
	ErrMalformedPublicInput = errorsmod.Register(Codespace, 4, "malformed public input")
)
