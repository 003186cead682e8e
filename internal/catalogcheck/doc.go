// Package catalogcheck keeps the errcode offset table consistent with the packed
// description blob.
//
// The blob is a sequence of NUL-terminated segments in catalog declaration order. One
// linear pass over it yields the offset of every segment's first byte, which is all the
// offset table holds. The package can:
//
//   - compute the table (Segments, Offsets);
//   - verify an existing table against the blob (Verify), collecting every
//     inconsistency as a Finding instead of stopping at the first one;
//   - render the table as Go source ready to replace errcode/offsets_gen.go (Render);
//   - index catalog entries by value and detect aliased values (AliasIndex).
//
// Segment order is assumed to match the declaration order of the catalog. Positional
// data alone cannot prove it: with a reordered blob the rendered table is consistent
// with the blob, yet descriptions land on the wrong codes.
package catalogcheck
