package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xvzls/BrainMade-org/config"
	"github.com/xvzls/BrainMade-org/fsutil"
	"github.com/xvzls/BrainMade-org/renderer"
)

// Service renders the site and writes it to the configured output directory.
type Service struct {
	cfg      *config.Config
	renderer *renderer.Renderer
	logger   *slog.Logger
}

// NewService constructs a Service instance. A nil logger discards output.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		cfg:      cfg,
		renderer: renderer.New(renderer.WithMinify(cfg.Minify)),
		logger:   logger,
	}
}

// OutputDir returns the directory pages are written to.
func (s *Service) OutputDir() string {
	return s.cfg.OutputDir
}

// BuildStatic renders every page and writes the results.
func (s *Service) BuildStatic(ctx context.Context) error {
	pages, err := s.Pages(ctx)
	if err != nil {
		return err
	}
	return s.Build(ctx, pages)
}

// Build creates the output directory and writes pages in order, overwriting
// existing files. The first failure stops the build; pages already written
// stay on disk.
func (s *Service) Build(ctx context.Context, pages []Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	outDir := s.cfg.OutputDir
	if err := fsutil.EnsureDir(outDir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, pg := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(outDir, filepath.FromSlash(pg.Path))
		if err := fsutil.WriteFile(target, pg.HTML); err != nil {
			return fmt.Errorf("write %s: %w", pg.Path, err)
		}
		s.logger.Debug("wrote page", "path", target, "bytes", len(pg.HTML))
	}
	return nil
}
