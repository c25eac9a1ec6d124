package main

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/cyb3rnet/xhtml/internal/blueprint"
	"github.com/cyb3rnet/xhtml/internal/config"
	"github.com/cyb3rnet/xhtml/pkg/document"
)

func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = config.LoadFile(flags.configPath)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// assemble loads the blueprint and builds it into a new document.
func assemble(ctx context.Context, cfg *config.Config, opts ...document.Option) (*document.Document, error) {
	bp, err := blueprint.Load(cfg.BlueprintPath())
	if err != nil {
		return nil, err
	}

	opts = append([]document.Option{document.WithLogger(slog.Default())}, opts...)
	d, err := document.New(bp.Params(cfg.Params()), opts...)
	if err != nil {
		return nil, err
	}
	if _, err := blueprint.Build(ctx, d, bp); err != nil {
		return nil, err
	}
	return d, nil
}

// encode generates d and returns it in the document's character encoding.
func encode(d *document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
