package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sirkon/contract/internal/checkgen"
	"github.com/sirkon/contract/internal/checkspec"
)

func (a *app) runChecks(w io.Writer, out string) error {
	checks, err := checkspec.Load()
	if err != nil {
		return fmt.Errorf("load check table: %w", err)
	}
	a.log.Debug("check table loaded", slog.Int("checks", len(checks)))

	src, err := checkgen.Render(checks)
	if err != nil {
		return err
	}

	return a.writeOutput(w, out, src)
}
