// File path: cmd/neoview/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/neoenergia/neoview/internal/api"
	"github.com/neoenergia/neoview/internal/catalog"
	"github.com/neoenergia/neoview/internal/common"
	"github.com/neoenergia/neoview/internal/hierarchy"
	"github.com/neoenergia/neoview/internal/llm"
	"github.com/neoenergia/neoview/internal/sqlite"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("neoview: .env file not loaded", "error", err)
	} else {
		logger.Info("neoview: environment loaded from .env")
	}

	addr := flag.String("addr", ":8081", "listen address")
	catalogPath := flag.String("catalog", defaultCatalogPath(), "path to the SQLite report catalog (empty for in-memory)")
	flag.Parse()

	logger.Info("neoview: startup initiated", "addr", *addr, "catalog", *catalogPath)

	store, err := openCatalog(*catalogPath)
	if err != nil {
		logger.Error("neoview: catalog initialization failed", "error", err)
		fmt.Println("catalog error:", err)
		os.Exit(1)
	}
	defer store.Close()

	provider := llm.NewProvider()
	logger.Info("neoview: assistant provider selected", "provider", provider.Name())

	server := api.NewServer(hierarchy.NewSeededStore(), store, provider)

	logger.Info("neoview: listening", "addr", *addr)
	fmt.Println("neoview listening on", *addr)
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("neoview: server stopped", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}
}

// openCatalog picks SQLite when a path is given, otherwise a seeded in-memory
// store suitable for demos and local development.
func openCatalog(path string) (catalog.Store, error) {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		cfg, err := sqlite.LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg.Path = trimmed
		return sqlite.OpenWithConfig(cfg)
	}
	store := catalog.NewMemoryStore()
	if err := catalog.SeedDemo(context.Background(), store); err != nil {
		return nil, err
	}
	return store, nil
}

func defaultCatalogPath() string {
	if env := strings.TrimSpace(os.Getenv("NEOVIEW_CATALOG")); env != "" {
		return env
	}
	return filepath.Join("data", "neoview.db")
}
