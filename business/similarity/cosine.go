package similarity

import "math"

// Norm is the Euclidean length of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine of the angle between a and b clamped to [0,1].
// Vectors of different length or zero length compare as 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return clamp01(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// CosineMatrix computes every pairwise cosine of rows. The result is symmetric
// with a diagonal of 1, including rows that are all zero. Cost is O(n²·d).
func CosineMatrix(rows [][]float64) [][]float64 {
	n := len(rows)
	norms := make([]float64, n)
	for i, r := range rows {
		norms[i] = Norm(r)
	}

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var s float64
			if norms[i] != 0 && norms[j] != 0 && len(rows[i]) == len(rows[j]) {
				var dot float64
				for k := range rows[i] {
					dot += rows[i][k] * rows[j][k]
				}
				s = clamp01(dot / (norms[i] * norms[j]))
			}
			sim[i][j] = s
			sim[j][i] = s
		}
	}

	return sim
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
