package config

import (
	"encoding"
	"errors"
	"fmt"
	"go/token"
	"strconv"
	"strings"

	"golang.org/x/mod/module"
)

// Reference names a check function outside of the contract package, either package
// level or a method:
//
//	"example.com/lib/check".Must
//	"example.com/lib/check".Checker.Require
type Reference struct {
	Package string
	Type    string
	Name    string
}

var (
	_ encoding.TextUnmarshaler = (*Reference)(nil)
	_ encoding.TextMarshaler   = Reference{}
)

func (r *Reference) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return errors.New("empty reference")
	}

	quoted, err := strconv.QuotedPrefix(s)
	if err != nil || quoted[0] != '"' {
		return fmt.Errorf("reference %q must start with a double quoted import path", s)
	}
	pkg, err := strconv.Unquote(quoted)
	if err != nil {
		return fmt.Errorf("reference %q: %w", s, err)
	}
	if err := module.CheckImportPath(pkg); err != nil {
		return fmt.Errorf("reference %q: %w", s, err)
	}

	selector, ok := strings.CutPrefix(s[len(quoted):], ".")
	if !ok {
		return fmt.Errorf("reference %q must select a name from the package", s)
	}

	res := Reference{Package: pkg}
	typ, name, isMethod := strings.Cut(selector, ".")
	if isMethod {
		res.Type = typ
	} else {
		name = typ
	}
	for _, ident := range []string{res.Type, name} {
		if ident != "" && !token.IsIdentifier(ident) {
			return fmt.Errorf("reference %q: invalid identifier %q", s, ident)
		}
	}
	if name == "" || (isMethod && res.Type == "") {
		return fmt.Errorf("reference %q has an empty selector", s)
	}
	res.Name = name

	*r = res
	return nil
}

func (r Reference) MarshalText() ([]byte, error) {
	if err := module.CheckImportPath(r.Package); err != nil {
		return nil, fmt.Errorf("cannot marshal reference: %w", err)
	}
	if !token.IsIdentifier(r.Name) {
		return nil, fmt.Errorf("cannot marshal reference: invalid name %q", r.Name)
	}

	return []byte(r.String()), nil
}

func (r Reference) String() string {
	res := strconv.Quote(r.Package) + "."
	if r.Type != "" {
		res += r.Type + "."
	}
	return res + r.Name
}
