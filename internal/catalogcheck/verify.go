package catalogcheck

import (
	"github.com/sirkon/contract/errcode"
)

// Verify checks an offset table against the blob and the catalog entries it belongs to.
// All inconsistencies are joined into the returned error.
func Verify(blob string, offsets []uint16, entries []errcode.Entry) error {
	return Inspect(blob, offsets, entries).Err()
}

// Inspect is Verify returning the collected findings themselves.
func Inspect(blob string, offsets []uint16, entries []errcode.Entry) *Findings {
	var f Findings
	segs := Segments(blob)

	scan := f.Phase(PhaseScan)
	if len(blob) > 0 && blob[len(blob)-1] != 0 {
		scan.Report(-1, "blob does not end with a NUL terminator")
	}
	for _, s := range segs {
		if s.Text == "" {
			scan.Report(-1, "segment %d at offset %d is empty", s.Index, s.Offset)
		}
	}
	if len(segs) != len(entries) {
		scan.Report(-1, "blob has %d segments for %d catalog entries", len(segs), len(entries))
	}

	starts := make(map[int]int, len(segs))
	for _, s := range segs {
		starts[s.Offset] = s.Index
	}

	check := f.Phase(PhaseOffsets)
	if len(offsets) != len(entries) {
		check.Report(-1, "offset table has %d slots for %d catalog entries", len(offsets), len(entries))
	}
	for i, off := range offsets {
		o := int(off)
		switch idx, ok := starts[o]; {
		case o >= len(blob):
			check.Report(i, "offset %d is out of the blob bounds [0, %d)", o, len(blob))
		case !ok:
			check.Report(i, "offset %d points inside a segment", o)
		case idx != i:
			check.Report(i, "offset %d addresses segment %d (%q) instead of segment %d", o, idx, segs[idx].Text, i)
		}
	}

	aliases := f.Phase(PhaseAliases)
	idx := NewAliasIndex()
	for i, e := range entries {
		if prev, ok := idx.Insert(e); !ok {
			aliases.Report(i, "value %d of %s is already declared by %s, declare it as an alias", int(e.Code), e.Name, prev.Name)
		}
	}

	return &f
}
