// Package eventfilter evaluates CEL expressions against telemetry events so
// the client can narrow a stream before printing it.
//
// Expressions see the variables location, meas_type, value (double) and
// date_time, for example:
//
//	meas_type == "Temp" && value > 25.0
//	location.startsWith("Garden")
package eventfilter

import (
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	dswsv1 "github.com/rzbill/dsws/api/dsws/v1"
)

// Filter wraps a compiled CEL program. The zero value matches everything.
type Filter struct {
	prog    cel.Program
	enabled bool
}

// Compile parses and type-checks expr. A blank expression yields a filter
// that matches every event.
func Compile(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Filter{}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("location", cel.StringType),
		cel.Variable("meas_type", cel.StringType),
		cel.Variable("value", cel.DoubleType),
		cel.Variable("date_time", cel.StringType),
	)
	if err != nil {
		return Filter{}, err
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return Filter{}, iss.Err()
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return Filter{}, fmt.Errorf("filter must evaluate to bool, got %s", ast.OutputType())
	}
	prog, err := env.Program(ast)
	if err != nil {
		return Filter{}, err
	}
	return Filter{prog: prog, enabled: true}, nil
}

// Enabled reports whether the filter was compiled from a non-blank expression.
func (f Filter) Enabled() bool { return f.enabled }

// Match evaluates the expression against e. An evaluation failure is
// returned rather than treated as a non-match.
func (f Filter) Match(e *dswsv1.Event) (bool, error) {
	if !f.enabled {
		return true, nil
	}
	out, _, err := f.prog.Eval(map[string]any{
		"location":  e.GetLocation(),
		"meas_type": e.GetMeasType(),
		"value":     e.GetMeasValue(),
		"date_time": e.GetDateTime(),
	})
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("filter produced %T, want bool", out.Value())
	}
	return b, nil
}
