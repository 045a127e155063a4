package digest

import "math"

// RecencyWeights returns the decay multiplier per day index. The newest
// day gets weight 1.0 and each halfLife days of age halves the weight:
//
//	weight[i] = 0.5^((n-1-i)/halfLife)
//
// The vector is a multiplier, not a distribution; it does not sum to 1.
// n <= 0 returns an empty vector.
func RecencyWeights(n int, halfLife float64) []float64 {
	if n <= 0 {
		return nil
	}
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		age := float64(n - 1 - i)
		w[i] = math.Pow(0.5, age/halfLife)
	}
	return w
}
