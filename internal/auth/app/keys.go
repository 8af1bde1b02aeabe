package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/longevlabs/longev-auth/pkg/idx"
	"github.com/longevlabs/longev-auth/pkg/jwtx"
)

// initAuthKeys prepares the Ed25519 signing material. When a key file is
// configured it is loaded from disk; otherwise a fresh key is generated for
// the lifetime of the process, which invalidates outstanding tokens on
// restart.
func initAuthKeys(cfg Config, logger *slog.Logger) (*jwtx.KeySet, jwtx.Signer, error) {
	var pemKey []byte

	if cfg.SigningKeyFile != "" {
		raw, err := os.ReadFile(cfg.SigningKeyFile)
		if err != nil {
			return nil, nil, fmt.Errorf("read signing key file: %w", err)
		}
		pemKey = raw
		logger.Info("loaded signing key", "file", cfg.SigningKeyFile)
	} else {
		raw, err := jwtx.GenerateEd25519PEM()
		if err != nil {
			return nil, nil, fmt.Errorf("generate signing key: %w", err)
		}
		pemKey = raw
		logger.Warn("no signing key configured, generated an ephemeral key; tokens will not survive a restart")
	}

	signer, err := jwtx.NewSignerEdDSA(idx.New().String(), pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("load signer: %w", err)
	}
	if err := signer.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, fmt.Errorf("register signer: %w", err)
	}

	return keys, signer, nil
}
