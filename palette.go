package sector

// defaultPalette is the built-in fill sequence for charts whose data source
// does not override per-slice fills.
var defaultPalette = [...]Color{
	{R: 0.90, G: 0.29, B: 0.24, A: 1}, // red
	{R: 0.20, G: 0.60, B: 0.86, A: 1}, // blue
	{R: 0.18, G: 0.80, B: 0.44, A: 1}, // green
	{R: 0.95, G: 0.61, B: 0.07, A: 1}, // orange
	{R: 0.61, G: 0.35, B: 0.71, A: 1}, // purple
	{R: 0.10, G: 0.74, B: 0.61, A: 1}, // teal
	{R: 0.95, G: 0.77, B: 0.06, A: 1}, // yellow
	{R: 0.91, G: 0.49, B: 0.74, A: 1}, // pink
	{R: 0.58, G: 0.65, B: 0.65, A: 1}, // gray
	{R: 0.36, G: 0.25, B: 0.22, A: 1}, // brown
}

// DefaultSliceColor returns the default fill for the slice at the given
// record index. It is a pure function of the index: the palette cycles
// every len(palette) slices, with each full cycle dimmed so adjacent
// revolutions remain distinguishable.
func DefaultSliceColor(index int) Color {
	if index < 0 {
		index = 0
	}
	c := defaultPalette[index%len(defaultPalette)]
	// Dim by 25% per completed cycle, floored so colors never go black.
	for cycle := index / len(defaultPalette); cycle > 0; cycle-- {
		c.R *= 0.75
		c.G *= 0.75
		c.B *= 0.75
	}
	return c
}
