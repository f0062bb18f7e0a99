package manifest

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/codec"
)

// ErrManifest covers a circuit manifest that is missing, unreadable or
// lacks its bytecode.
var ErrManifest = errorsmod.Register(codec.Codespace, 6, "invalid circuit manifest")
