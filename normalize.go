package sector

// Normalize converts raw slice magnitudes into fractional widths summing to 1.
//
// Negative values contribute no width: a negative magnitude has no defined
// angular direction, so it is treated the same as zero. Zero and negative
// entries keep their position in the output as zero-width slices, preserving
// record indexing. When the total of positive values is zero (all entries
// non-positive, or an empty input), every output entry is zero — the
// empty-pie condition, which is not an error.
//
// The result is appended to dst (which may be nil) and returned, following
// the append-to-buffer convention used throughout the package.
func Normalize(values []float64, dst []float64) []float64 {
	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}

	for _, v := range values {
		if v > 0 && total > 0 {
			dst = append(dst, v/total)
		} else {
			dst = append(dst, 0)
		}
	}
	return dst
}

// CumulativeSums returns the running totals of the given normalized widths:
// out[i] = widths[0] + ... + widths[i]. For fully normalized input the final
// entry is 1 (within floating tolerance). The result is appended to dst.
func CumulativeSums(widths []float64, dst []float64) []float64 {
	var sum float64
	for _, w := range widths {
		sum += w
		dst = append(dst, sum)
	}
	return dst
}
