package storage

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-escape/internal/config"
)

// Backend kinds accepted in the storage section of the config.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Backend bundles the gateway and history recorder of one storage kind.
type Backend struct {
	Scores  Gateway
	History HistoryRecorder
	Store   *Store // Non-nil for the sqlite backend only
}

// OpenBackend opens the configured storage. The file backend keeps its
// history in memory for the life of the process.
func OpenBackend(cfg config.StorageConfig, logger *log.Logger) (*Backend, error) {
	switch cfg.Backend {
	case "", BackendSQLite:
		store, err := Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		gw := NewSQLiteGateway(store, logger)
		return &Backend{Scores: gw, History: gw, Store: store}, nil
	case BackendFile:
		path := cfg.Path
		if filepath.Ext(path) == ".db" {
			path = path[:len(path)-len(".db")] + ".yaml"
		}
		return &Backend{Scores: NewFileGateway(path, logger), History: NewMemoryGateway(0)}, nil
	case BackendMemory:
		mem := NewMemoryGateway(0)
		return &Backend{Scores: mem, History: mem}, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q (sqlite, file, memory)", cfg.Backend)
	}
}

// Close releases the database, if any.
func (b *Backend) Close() error {
	if b.Store != nil {
		return b.Store.Close()
	}
	return nil
}
