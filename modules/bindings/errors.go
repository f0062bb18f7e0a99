package bindings

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/codec"
)

var (
	ErrInvalidArgument = errorsmod.Register(codec.Codespace, 7, "invalid argument")
	ErrUnknownMethod   = errorsmod.Register(codec.Codespace, 8, "unknown method")
)

// CallError is how a failure crosses the foreign call boundary.
type CallError struct {
	Codespace string `json:"codespace"`
	Code      uint32 `json:"code"`
	Message   string `json:"message"`
}

// ToCallError flattens err into its registered codespace and code. Errors
// outside the taxonomy get the internal code 1.
func ToCallError(err error) *CallError {
	if err == nil {
		return nil
	}
	codespace, code, log := errorsmod.ABCIInfo(err, false)
	return &CallError{Codespace: codespace, Code: code, Message: log}
}
