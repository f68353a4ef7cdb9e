package facts

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"github.com/goliatone/go-contractgen/pkg/model"
)

// exprCostLimit bounds a single candidate evaluation.
const exprCostLimit = 100_000

// Variables available to candidate expressions.
var exprVariables = []string{"request", "quotation", "contract", "company", "provider", "additional"}

var (
	exprEnvOnce sync.Once
	exprEnv     *cel.Env
	exprEnvErr  error
)

func environment() (*cel.Env, error) {
	exprEnvOnce.Do(func() {
		opts := make([]cel.EnvOption, 0, len(exprVariables))
		for _, name := range exprVariables {
			opts = append(opts, cel.Variable(name, cel.DynType))
		}
		exprEnv, exprEnvErr = cel.NewEnv(opts...)
	})
	return exprEnv, exprEnvErr
}

// Expr is a candidate written as a CEL expression over the context records,
// e.g. `request.company.name` or `additional.companyData.name`.
type Expr struct {
	source  string
	program cel.Program
}

// CompileExpr compiles source into a candidate.
func CompileExpr(source string) (*Expr, error) {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, fmt.Errorf("facts: empty expression")
	}
	env, err := environment()
	if err != nil {
		return nil, fmt.Errorf("facts: expression environment: %w", err)
	}
	ast, issues := env.Compile(trimmed)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("facts: compile %q: %w", trimmed, issues.Err())
	}
	program, err := env.Program(ast, cel.CostLimit(exprCostLimit))
	if err != nil {
		return nil, fmt.Errorf("facts: program %q: %w", trimmed, err)
	}
	return &Expr{source: trimmed, program: program}, nil
}

// MustCompileExpr panics when source does not compile.
func MustCompileExpr(source string) *Expr {
	e, err := CompileExpr(source)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the expression source.
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	return e.source
}

// Value implements Candidate. Evaluation errors, such as a missing key,
// count as no value.
func (e *Expr) Value(scope *Scope) string {
	if e == nil || e.program == nil || scope == nil {
		return ""
	}
	out, _, err := e.program.Eval(scope.Vars())
	if err != nil || out == nil {
		return ""
	}
	if types.IsError(out) || types.IsUnknown(out) {
		return ""
	}
	if _, isNull := out.(types.Null); isNull {
		return ""
	}
	return model.Stringify(out.Value())
}
