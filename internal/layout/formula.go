package layout

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/gradecalc/internal/domain"
)

// AverageFormula averages every cell in rng.
func AverageFormula(rng string) string {
	return "AVERAGE(" + rng + ")"
}

// BestOfFormula averages the k largest values in rng using an array
// constant of ranks: AVERAGE(LARGE(B4:B8,{1,2,3})).
func BestOfFormula(rng string, k int) string {
	ranks := make([]string, k)
	for i := range ranks {
		ranks[i] = strconv.Itoa(i + 1)
	}
	return "AVERAGE(LARGE(" + rng + ",{" + strings.Join(ranks, ",") + "}))"
}

// ContributionFormula scales an aggregate cell by the category weight
// fraction: B12*0.39.
func ContributionFormula(cell string, weight float64) string {
	return cell + "*" + domain.FormatNumber(WeightFraction(weight))
}

// WeightFraction converts a percentage weight to a multiplier, rounded so
// that 33.3 renders as 0.333 rather than 0.33299999999999996.
func WeightFraction(weight float64) float64 {
	return math.Round(weight/100*1e10) / 1e10
}

// SumFormula adds the listed cells: SUM(D3,D5,D31).
func SumFormula(cells []string) string {
	return "SUM(" + strings.Join(cells, ",") + ")"
}
