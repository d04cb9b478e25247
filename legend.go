package sector

import "fmt"

// LegendEntry describes one legend row: the record index, its title, and
// the slice's resolved fill color. Zero-width slices get entries too, so a
// legend always lists every record.
type LegendEntry struct {
	Index int
	Title string
	Fill  Color
}

// LegendEntries returns one entry per record in index order. Titles come
// from the data source's LegendTitler capability when it returns a
// non-empty string, and fall back to "Slice N". The returned slice is
// freshly allocated and owned by the caller.
func (c *Chart) LegendEntries() []LegendEntry {
	c.ensureLayout()
	if len(c.slices) == 0 {
		return nil
	}

	entries := make([]LegendEntry, 0, len(c.slices))
	for i := range c.slices {
		title := ""
		if c.titler != nil {
			title = c.titler.LegendTitle(i)
		}
		if title == "" {
			title = fmt.Sprintf("Slice %d", i)
		}
		entries = append(entries, LegendEntry{
			Index: i,
			Title: title,
			Fill:  c.fills[i],
		})
	}
	return entries
}
