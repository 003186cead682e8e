package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sirkon/contract/errcode"
	"github.com/sirkon/contract/internal/catalogcheck"
)

func (a *app) runOffsets(w io.Writer, blobPath, out string) error {
	blob := errcode.Blob()
	if blobPath != "" {
		data, err := os.ReadFile(blobPath)
		if err != nil {
			return fmt.Errorf("read blob: %w", err)
		}
		blob = string(data)
	}

	segs := catalogcheck.Segments(blob)
	a.log.Debug("blob scanned", slog.Int("bytes", len(blob)), slog.Int("segments", len(segs)))

	renderCfg := catalogcheck.DefaultRenderConfig()
	renderCfg.Package = a.cfg.Catalog.Package
	renderCfg.Table = a.cfg.Catalog.Table
	renderCfg.Blob = a.cfg.Catalog.Blob

	src, err := catalogcheck.Render(errcode.Entries(), segs, renderCfg)
	if err != nil {
		return fmt.Errorf("render offset table: %w", err)
	}

	if out == "" {
		out = a.cfg.Catalog.Out
	}
	return a.writeOutput(w, out, src)
}
