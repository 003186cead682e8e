package catalogcheck

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/tools/imports"

	"github.com/sirkon/contract/errcode"
)

// RenderConfig names what Render generates.
type RenderConfig struct {
	Package   string // package clause of the output
	Table     string // name of the offset table variable
	Blob      string // name of the blob constant, used in the doc comment
	Generator string // command named in the generated header
}

// DefaultRenderConfig matches errcode/offsets_gen.go.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Package:   "errcode",
		Table:     "messageOffsets",
		Blob:      "messageBlob",
		Generator: "catalogcheck offsets",
	}
}

// Render emits the Go source of an offset table. Every slot is annotated with the code
// value of its entry and the text of its segment.
func Render(entries []errcode.Entry, segments []Segment, cfg RenderConfig) ([]byte, error) {
	if len(entries) != len(segments) {
		return nil, fmt.Errorf("%d segments for %d catalog entries", len(segments), len(entries))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s; DO NOT EDIT.\n\n", cfg.Generator)
	fmt.Fprintf(&buf, "package %s\n\n", cfg.Package)
	fmt.Fprintf(&buf, "// %s maps every entry, in declaration order, to the first byte of its\n", cfg.Table)
	fmt.Fprintf(&buf, "// description segment within %s.\n", cfg.Blob)
	fmt.Fprintf(&buf, "var %s = [...]uint16{\n", cfg.Table)
	for i, s := range segments {
		if s.Offset > 0xffff {
			return nil, fmt.Errorf("segment %d offset %d does not fit uint16", i, s.Offset)
		}
		fmt.Fprintf(&buf, "\t%d, // [%3d] %s\n", s.Offset, int(entries[i].Code), strconv.Quote(s.Text))
	}
	buf.WriteString("}\n")

	res, err := imports.Process(cfg.Package+"/offsets_gen.go", buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return res, nil
}
