// Package app wires configuration, logging, declaration loading and the
// analyzers into a runnable application.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/txtopo/internal/ctxlog"
	"github.com/vk/txtopo/internal/model"
)

// Loader abstracts the declaration source so tests can inject documents
// directly instead of going through the filesystem.
type Loader interface {
	Load(ctx context.Context, path string) (*model.Document, error)
}

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	doc    *model.Document
}

// NewApp constructs the application: it builds an isolated logger and loads
// all declarations up front. A failure to load declarations is a fatal
// startup error and panics; the entrypoint recovers it into a clean exit.
func NewApp(outW, logW io.Writer, cfg *Config, loader Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	doc := &model.Document{}
	if cfg.DeclPath != "" {
		loaded, err := loader.Load(ctx, cfg.DeclPath)
		if err != nil {
			panic(fmt.Errorf("failed to load declarations: %w", err))
		}
		doc = loaded
		logger.Debug("Declarations loaded.", "sagas", len(doc.Sagas), "tccs", len(doc.Tccs))
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		doc:    doc,
	}
}

// Document returns the loaded declarations. This is primarily for testing.
func (a *App) Document() *model.Document {
	return a.doc
}
