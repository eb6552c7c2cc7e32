package simulation

import "math"

// Default per-year volatilities, expressed as the standard deviation of
// the log growth factor.
const (
	DefaultReturnVolatility    = 0.30
	DefaultInflationVolatility = 0.015
)

// uniformFloor keeps a uniform draw of exactly 0 out of the logarithm in
// the normal transform. Never surfaced; the guard is the whole handling.
const uniformFloor = 1e-12

// normal converts two uniform draws into one standard-normal variate via
// the Box-Muller transform.
func normal(src *Source) float64 {
	u1 := src.Float64()
	if u1 < uniformFloor {
		u1 = uniformFloor
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// sampleConstrained draws n per-year rates whose compounded product equals
// (1+target)^n exactly in log space. Each raw log-rate is
// ln(1+target) + sigma*z; a uniform adjustment then forces the log-rates
// to sum to n*ln(1+target), which pins the geometric mean to target while
// leaving realistic year-to-year dispersion. Index 0 is year 1; the order
// is significant and must not be rearranged.
func sampleConstrained(src *Source, target float64, n int, sigma float64) []float64 {
	targetLog := math.Log1p(target)

	logs := make([]float64, n)
	var sum float64
	for i := range logs {
		logs[i] = targetLog + sigma*normal(src)
		sum += logs[i]
	}

	adjustment := (float64(n)*targetLog - sum) / float64(n)

	rates := make([]float64, n)
	for i, l := range logs {
		rates[i] = math.Exp(l+adjustment) - 1
	}
	return rates
}

// SampleReturns draws n yearly return rates with geometric mean exactly
// target. Negative returns are valid and expected; returns are never
// floored.
func SampleReturns(src *Source, target float64, n int, sigma float64) []float64 {
	return sampleConstrained(src, target, n, sigma)
}

// SampleInflation draws n yearly inflation rates with geometric mean
// target, then floors each rate at 0.
//
// The floor is a deliberate, known source of bias: when raw draws come out
// negative, flooring raises them and the realized compounded inflation can
// exceed the target. The exact-product guarantee holds only before
// flooring. Downstream diagnostics assume this exact deviation, so the
// floor is applied after the adjustment and the sequence is not
// re-normalized.
//
// A target of exactly 0 skips sampling entirely and returns n zeros.
func SampleInflation(src *Source, target float64, n int, sigma float64) []float64 {
	if target == 0 {
		return make([]float64, n)
	}
	rates := sampleConstrained(src, target, n, sigma)
	for i, r := range rates {
		if r < 0 {
			rates[i] = 0
		}
	}
	return rates
}
