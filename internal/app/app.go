// Package app wires configuration, storage, clients, and services together.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/portview/portview/internal/clients/ninjas"
	"github.com/portview/portview/internal/clients/stocksvc"
	"github.com/portview/portview/internal/common"
	"github.com/portview/portview/internal/interfaces"
	"github.com/portview/portview/internal/services/holdings"
	"github.com/portview/portview/internal/services/valuation"
	"github.com/portview/portview/internal/storage/badger"
)

// App holds all initialized services and clients.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Store            interfaces.HoldingStore
	PriceClient      interfaces.PriceClient
	Sources          []interfaces.HoldingSource
	HoldingService   interfaces.HoldingService
	ValuationService interfaces.ValuationService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes storage, clients, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Load configuration - check provided path, PORTVIEW_CONFIG, then binary
	// dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("PORTVIEW_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "portview.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/portview.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	holdingStore := badger.NewHoldingStorage(store, logger)

	holdingService := holdings.NewService(holdingStore, logger)

	apiKey, err := config.ResolvePriceAPIKey()
	if err != nil {
		store.Close()
		return nil, err
	}

	priceClient := ninjas.NewClient(apiKey,
		ninjas.WithBaseURL(config.Clients.Price.BaseURL),
		ninjas.WithLogger(logger),
		ninjas.WithRateLimit(config.Clients.Price.RateLimit),
		ninjas.WithTimeout(config.Clients.Price.GetTimeout()),
	)

	sources := buildSources(config, holdingService, logger)
	valuationService := valuation.NewService(sources, priceClient, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		Store:            holdingStore,
		PriceClient:      priceClient,
		Sources:          sources,
		HoldingService:   holdingService,
		ValuationService: valuationService,
		StartupTime:      startupStart,
	}

	logger.Info().
		Int("sources", len(sources)).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// buildSources creates one HoldingSource per configured store, in config
// order. An empty URL maps to the in-process store.
func buildSources(config *common.Config, local interfaces.HoldingService, logger *common.Logger) []interfaces.HoldingSource {
	sources := make([]interfaces.HoldingSource, 0, len(config.Sources))
	for _, src := range config.Sources {
		if src.URL == "" {
			sources = append(sources, holdings.NewStoreSource(src.Name, local))
			continue
		}
		sources = append(sources, stocksvc.NewClient(src.Name, src.URL,
			stocksvc.WithLogger(logger),
		))
	}
	return sources
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Store != nil {
		a.Store.Close()
		a.Store = nil
	}
}
