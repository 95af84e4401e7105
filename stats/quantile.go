package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmpty is returned when a quantile is requested over no values.
	ErrEmpty = errors.New("quantile of empty sample")
	// ErrBadProbability is returned for probabilities outside [0, 1] or an
	// inverted band.
	ErrBadProbability = errors.New("probability out of range")
)

// Method selects how a quantile is estimated between sample points.
type Method int

const (
	// Linear interpolates between the closest ranks at h = (n-1)p
	// (Hyndman-Fan type 7, the numpy and pandas default).
	Linear Method = iota
	// Empirical returns the smallest sample whose empirical CDF reaches p.
	Empirical
	// LinInterp interpolates the empirical CDF with p_k = k/n.
	LinInterp
	// NearestRank returns the sample at ordinal rank ceil(p*n).
	NearestRank
)

func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Empirical:
		return "empirical"
	case LinInterp:
		return "lininterp"
	case NearestRank:
		return "nearest-rank"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Quantile returns the p-quantile of values. NaN values are ignored; a
// sample holding only NaN is empty. values is not modified.
func Quantile(values []float64, p float64, method Method) (float64, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN(), fmt.Errorf("%w: %v", ErrBadProbability, p)
	}

	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN(), ErrEmpty
	}
	sort.Float64s(sorted)

	switch method {
	case Linear:
		return linear(sorted, p), nil
	case Empirical:
		return stat.Quantile(p, stat.Empirical, sorted, nil), nil
	case LinInterp:
		return stat.Quantile(p, stat.LinInterp, sorted, nil), nil
	case NearestRank:
		if p == 0 {
			return sorted[0], nil
		}
		return mstats.PercentileNearestRank(sorted, p*100)
	default:
		return math.NaN(), fmt.Errorf("unknown quantile method %v", method)
	}
}

func linear(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	if lo == hi {
		return sorted[int(lo)]
	}
	a, b := sorted[int(lo)], sorted[int(hi)]
	return a + (h-lo)*(b-a)
}
