package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sirkon/contract/errcode"
	"github.com/sirkon/contract/internal/catalogcheck"
)

func (a *app) runVerify(w io.Writer) error {
	entries := errcode.Entries()
	findings := catalogcheck.Inspect(errcode.Blob(), errcode.Offsets(), entries)

	items := findings.Items()
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	if len(items) > 0 {
		return fmt.Errorf("offset table is inconsistent: %d findings", len(items))
	}

	aliased := catalogcheck.IndexEntries(entries).Aliased()
	for _, e := range aliased {
		a.log.Debug("aliased value", slog.Int("code", int(e.Code)), slog.String("name", e.Name), slog.Any("aliases", e.Aliases))
	}
	_, err := fmt.Fprintf(w, "ok: %d entries, %d aliased values\n", len(entries), len(aliased))
	return err
}
