package backend

import (
	"fmt"
	"log/slog"

	"vendas/internal/config"
	"vendas/internal/storage"
)

// Factory creates record stores based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore builds the record store named by the config.
func (f *Factory) CreateStore(cfg Config) (*Result, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite record store: %w", err)
		}
		f.logger.Info("Initialized SQLite record store", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory record store")
		return &Result{Store: storage.NewMemoryStore(), Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := Type(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         backendType,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}
