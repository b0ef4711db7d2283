package grading

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
)

// formulaFunctions are the spreadsheet functions a contribution or final
// grade formula may call.
var formulaFunctions = map[string]govaluate.ExpressionFunction{
	"SUM": func(args ...interface{}) (interface{}, error) {
		var total float64
		for i, a := range args {
			v, ok := a.(float64)
			if !ok {
				return nil, fmt.Errorf("SUM argument %d is not a number", i+1)
			}
			total += v
		}
		return total, nil
	},
}

// EvalFormula evaluates an arithmetic spreadsheet formula such as
// "B12*0.39" or "SUM(D3,D5)" against the given cell values. Absolute
// references ($B$12) are accepted. Range and array syntax is not.
func EvalFormula(formula string, cells map[string]float64) (float64, error) {
	src := strings.TrimPrefix(strings.TrimSpace(formula), "=")
	src = strings.ReplaceAll(src, "$", "")
	if src == "" {
		return 0, fmt.Errorf("empty formula")
	}

	expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, formulaFunctions)
	if err != nil {
		return 0, fmt.Errorf("parsing formula %q: %w", formula, err)
	}

	params := make(map[string]interface{}, len(expr.Vars()))
	for _, name := range expr.Vars() {
		v, ok := cells[name]
		if !ok {
			return 0, fmt.Errorf("formula %q references %s, which has no value", formula, name)
		}
		params[name] = v
	}

	out, err := expr.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("evaluating formula %q: %w", formula, err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("formula %q did not produce a number", formula)
	}
	return v, nil
}
