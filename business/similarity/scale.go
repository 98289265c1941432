package similarity

// MinMaxScale rescales each column of m to [0,1] against that column's own
// minimum and maximum. A constant column becomes all zeros. m is not modified.
func MinMaxScale(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	if len(m) == 0 {
		return out
	}

	cols := len(m[0])
	lo := make([]float64, cols)
	hi := make([]float64, cols)
	copy(lo, m[0])
	copy(hi, m[0])
	for _, row := range m[1:] {
		for j := 0; j < cols; j++ {
			if row[j] < lo[j] {
				lo[j] = row[j]
			}
			if row[j] > hi[j] {
				hi[j] = row[j]
			}
		}
	}

	for i, row := range m {
		scaled := make([]float64, cols)
		for j := 0; j < cols; j++ {
			if span := hi[j] - lo[j]; span > 0 {
				scaled[j] = (row[j] - lo[j]) / span
			}
		}
		out[i] = scaled
	}

	return out
}

// HStack concatenates a and b row by row. Both must have the same number of
// rows; a nil side contributes no columns.
func HStack(a, b [][]float64) [][]float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		var left, right []float64
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}
		row := make([]float64, 0, len(left)+len(right))
		row = append(row, left...)
		row = append(row, right...)
		out[i] = row
	}

	return out
}
