package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/launchpad/internal/engine/debug"
	"github.com/Faultbox/launchpad/internal/engine/raster"
	"github.com/Faultbox/launchpad/pkg/formats"
)

// Batch renders a snapshot of every mesh file in a directory.
type Batch struct {
	OutputDir string
	Format    string // webp or png
	View      raster.View
	Jobs      int
	Log       *zap.Logger
}

// meshFiles lists the loadable mesh files directly inside dir, sorted.
func meshFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := formats.Kind(e.Name()); err == nil {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run renders every mesh in dir and returns the written image paths in
// input order. The first failure cancels the remaining jobs.
func (b Batch) Run(ctx context.Context, dir string) ([]string, error) {
	files, err := meshFiles(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(b.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}

	out := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if b.Jobs > 0 {
		g.SetLimit(b.Jobs)
	}
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := formats.LoadMesh(path)
			if err != nil {
				return err
			}
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			dst := filepath.Join(b.OutputDir, base+"."+b.Format)
			if err := debug.WriteImage(dst, raster.Snapshot(d, b.View)); err != nil {
				return err
			}
			log.Debug("rendered", zap.String("mesh", path), zap.String("image", dst), zap.Int("vertices", d.Len()))
			out[i] = dst
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
