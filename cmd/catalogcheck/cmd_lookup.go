package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirkon/contract/errcode"
	"github.com/sirkon/contract/internal/catalogcheck"
)

func (a *app) runLookup(w io.Writer, args []string) error {
	idx := catalogcheck.IndexEntries(errcode.Entries())

	for _, arg := range args {
		var (
			e  errcode.Entry
			ok bool
		)
		if v, err := strconv.Atoi(arg); err == nil {
			e, ok = idx.Lookup(errcode.Code(v))
			if !ok {
				e = errcode.Entry{Code: errcode.Code(v), Name: errcode.Code(v).String(), Description: errcode.Lookup(errcode.Code(v))}
			}
		} else {
			code, found := errcode.ByName(strings.ToUpper(arg))
			if !found {
				return fmt.Errorf("unknown code name %q", arg)
			}
			e, ok = idx.Lookup(code)
		}

		if _, err := fmt.Fprintln(w, formatEntry(e, ok)); err != nil {
			return err
		}
	}

	return nil
}

func formatEntry(e errcode.Entry, registered bool) string {
	if !registered {
		return fmt.Sprintf("%d\t%s\t%s", int(e.Code), e.Name, e.Description)
	}

	names := e.Name
	if len(e.Aliases) > 0 {
		names += "|" + strings.Join(e.Aliases, "|")
	}
	return fmt.Sprintf("%d\t%s\t%s\t%s", int(e.Code), names, e.Era, e.Description)
}
