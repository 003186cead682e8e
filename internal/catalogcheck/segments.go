package catalogcheck

import (
	"fmt"
	"math"
	"strings"
)

// Segment is one NUL-terminated description within a blob.
type Segment struct {
	Index  int
	Offset int
	Text   string
}

// Segments splits the blob in one pass. A trailing run of bytes without a terminator
// is returned as a segment too, Verify reports it.
func Segments(blob string) []Segment {
	var res []Segment
	for start := 0; start < len(blob); {
		end := strings.IndexByte(blob[start:], 0)
		if end < 0 {
			res = append(res, Segment{Index: len(res), Offset: start, Text: blob[start:]})
			break
		}

		res = append(res, Segment{Index: len(res), Offset: start, Text: blob[start : start+end]})
		start += end + 1
	}

	return res
}

// Offsets computes the offset table of the blob.
func Offsets(blob string) ([]uint16, error) {
	if len(blob) > math.MaxUint16+1 {
		return nil, fmt.Errorf("blob of %d bytes does not fit 16 bit offsets", len(blob))
	}

	segs := Segments(blob)
	res := make([]uint16, len(segs))
	for i, s := range segs {
		res[i] = uint16(s.Offset)
	}

	return res, nil
}
