package backend

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/codec"
)

// ErrBackendFailure wraps anything the prover or verifier refuses: bad
// bytecode, unsolvable witness, key mismatch, unreadable SRS.
var ErrBackendFailure = errorsmod.Register(codec.Codespace, 5, "proving backend failure")
