// Command ffi builds the C archive mobile hosts link against:
//
//	go build -buildmode=c-archive -o libnoirbridge.a ./ffi
//
// Every operation goes through noirbridge_call with JSON encoded named
// arguments and returns a JSON reply the caller releases with
// noirbridge_free_string.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"encoding/json"
	"os"
	"sync"
	"unsafe"

	errorsmod "cosmossdk.io/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/bindings"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/config"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/logging"
)

type reply struct {
	Result any                 `json:"result"`
	Error  *bindings.CallError `json:"error,omitempty"`
}

var (
	initOnce sync.Once
	bridge   *bindings.Bridge
	initErr  error
)

func initBridge() {
	// a missing .env is fine, the environment alone can configure us
	_ = godotenv.Load()

	cfg, err := config.Load(viper.New(), os.Getenv("NOIRBRIDGE_CONFIG"))
	if err != nil {
		initErr = err
		return
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		initErr = err
		return
	}

	if bridge, _, err = bindings.NewFromConfig(cfg, logger); err != nil {
		initErr = err
		return
	}
	logger.Info().Str("field", cfg.Field).Bool("on_chain", cfg.OnChain).Msg("noirbridge ready")
}

func call(method string, argsJSON string) reply {
	initOnce.Do(initBridge)
	if initErr != nil {
		return reply{Error: bindings.ToCallError(initErr)}
	}

	var args map[string]any
	if argsJSON != "" {
		if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
			return reply{Error: bindings.ToCallError(errorsmod.Wrapf(bindings.ErrInvalidArgument, "arguments: %v", err))}
		}
	}

	res, err := bridge.Call(method, args)
	if err != nil {
		return reply{Error: bindings.ToCallError(err)}
	}
	return reply{Result: res}
}

//export noirbridge_call
func noirbridge_call(method *C.char, argsJSON *C.char) *C.char {
	out, err := json.Marshal(call(C.GoString(method), C.GoString(argsJSON)))
	if err != nil {
		out = []byte(`{"error":{"codespace":"noirbridge","code":1,"message":"cannot encode reply"}}`)
	}
	return C.CString(string(out))
}

//export noirbridge_free_string
func noirbridge_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}
