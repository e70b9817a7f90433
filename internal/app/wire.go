package app

import (
	"os"

	"go.uber.org/zap"

	"userstore/internal/codec"
	"userstore/internal/domain"
	"userstore/internal/store"
)

// Store is the record store the CLI works against.
type Store interface {
	domain.StorageManager[any]
	Usernames() []domain.Username
}

// Wire bundles the store and logger for the CLI.
type Wire struct {
	Store  Store
	Local  *store.LocalStore[any] // nil in ephemeral mode
	Logger *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *zap.Logger) (*Wire, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c, err := codec.ByName[any](cfg.Codec, cfg.Framed)
	if err != nil {
		return nil, err
	}

	if cfg.Ephemeral {
		return &Wire{Store: store.NewMemoryStore(c), Logger: logger}, nil
	}

	dir := cfg.DataDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	ls, err := store.NewLocalStore(c,
		store.WithDir(dir),
		store.WithHideFiles(cfg.HideFiles),
		store.WithLogger(logger.Named("store")),
	)
	if err != nil {
		return nil, err
	}
	return &Wire{Store: ls, Local: ls, Logger: logger}, nil
}
