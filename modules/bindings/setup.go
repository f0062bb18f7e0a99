package bindings

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog"

	"github.com/moven0831/mopro-wallet-connect-noir/modules/backend"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/config"
	"github.com/moven0831/mopro-wallet-connect-noir/modules/fields"
)

// NewFromConfig builds the PLONK backend and a bridge over it. The
// configured field must be the backend's field, the bridge then splits and
// combines with the backend's own layout.
func NewFromConfig(cfg *config.Config, logger zerolog.Logger) (*Bridge, *backend.PlonkBackend, error) {
	field, err := fields.ParseFieldEnum(cfg.Field)
	if err != nil {
		return nil, nil, errorsmod.Wrap(ErrInvalidArgument, err.Error())
	}

	be, err := backend.NewPlonkBackend(
		backend.WithLogger(logger),
		backend.WithKeyCacheSize(cfg.KeyCacheSize),
	)
	if err != nil {
		return nil, nil, err
	}
	if field != be.Field() {
		return nil, nil, errorsmod.Wrapf(
			ErrInvalidArgument,
			"field %s does not match the %s proving backend", field, be.Field(),
		)
	}

	bridge := New(be,
		WithLogger(logger),
		WithLayout(be.Layout()),
		WithDefaultModes(cfg.OnChain, cfg.LowMemory),
	)
	return bridge, be, nil
}
