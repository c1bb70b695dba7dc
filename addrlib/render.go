package addrlib

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Render sorts mappings ascending by id, in place, and returns one text
// line per mapping: the id right-aligned to the width of the largest id, a
// tab, then the offset as uppercase hex zero-padded to at least 7 digits.
func Render(mappings []Mapping) []string {
	sortByID(mappings)
	width := idWidth(mappings)
	lines := make([]string, len(mappings))
	for i, m := range mappings {
		lines[i] = fmt.Sprintf("%*d\t%07X", width, m.ID, m.Offset)
	}
	return lines
}

// WriteMappings renders mappings (sorting them in place) and writes one
// line per mapping to w.
func WriteMappings(w io.Writer, mappings []Mapping) error {
	sortByID(mappings)
	width := idWidth(mappings)
	bw := bufio.NewWriter(w)
	for _, m := range mappings {
		if _, err := fmt.Fprintf(bw, "%*d\t%07X\n", width, m.ID, m.Offset); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Ids need not be unique; equal ids may land in either order.
func sortByID(mappings []Mapping) {
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].ID < mappings[j].ID })
}

// idWidth is the decimal digit count of the largest id, 0 when there are
// no mappings. Callers sort first, so the largest id is the last one.
func idWidth(sorted []Mapping) int {
	if len(sorted) == 0 {
		return 0
	}
	return len(strconv.FormatUint(sorted[len(sorted)-1].ID, 10))
}
