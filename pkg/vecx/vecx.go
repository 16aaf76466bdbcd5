package vecx

import "math"

// epsilon guards against division by zero for zero-norm vectors
const epsilon = 1e-9

// Cosine returns the cosine similarity of two vectors. Length mismatch or a
// zero-norm side yields 0 rather than an error so degraded embeddings score
// as "no similarity".
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + epsilon)
}
