// Package checkgen renders the specialized check family from the check table.
package checkgen

import (
	"bytes"
	"fmt"

	"golang.org/x/tools/imports"

	"github.com/sirkon/contract/errcode"
	"github.com/sirkon/contract/internal/checkspec"
)

const (
	// ModulePath is the import path of the generated package's module.
	ModulePath = "github.com/sirkon/contract"

	// FileName is the conventional output file of Render.
	FileName = "checks_gen.go"
)

// Render produces the Go source of the check family.
func Render(checks []checkspec.Check) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by catalogcheck checks; DO NOT EDIT.\n\n")
	buf.WriteString("package contract\n\n")
	buf.WriteString("import (\n")
	buf.WriteString("\t\"golang.org/x/exp/constraints\"\n\n")
	buf.WriteString("\t\"" + ModulePath + "/errcode\"\n")
	buf.WriteString(")\n")

	for i := range checks {
		c := &checks[i]
		code, err := c.Bound()
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", c.Name, err)
		}

		fmt.Fprintf(&buf, "\n// %s %s.\n", c.Name, c.Doc)
		fmt.Fprintf(&buf, "// A violation reports %s (%s).\n", c.Code, errcode.Lookup(code))

		switch c.Form {
		case checkspec.FormBool:
			fmt.Fprintf(&buf, "func %s(ok bool, cond, msg string) {\n", c.Name)
			buf.WriteString("\tif Enabled && !ok {\n")
		case checkspec.FormRange:
			fmt.Fprintf(&buf, "func %s[T constraints.Ordered](v, lo, hi T, cond, msg string) {\n", c.Name)
			buf.WriteString("\tif Enabled && !(lo <= v && v <= hi) {\n")
		default:
			return nil, fmt.Errorf("render %s: unsupported form %s", c.Name, c.Form)
		}
		fmt.Fprintf(&buf, "\t\tfail(errcode.%s, cond, msg)\n", c.Code)
		buf.WriteString("\t}\n}\n")
	}

	res, err := imports.Process(FileName, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return res, nil
}
