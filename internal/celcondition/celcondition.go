package celcondition

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celtypes "github.com/google/cel-go/common/types"
)

// PrepareCondition compiles an intent condition. The only variable in scope is
// confidence, the score the platform attached to the first detected entity.
func PrepareCondition(celCondition string) (cel.Program, error) {
	opts := []cel.EnvOption{
		cel.Variable("confidence", cel.DoubleType),
		cel.CrossTypeNumericComparisons(true),
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile CEL expression: %w", err)
	}
	ast, issues := env.Compile(celCondition)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to program CEL expression: %w", err)
	}
	vars := map[string]any{
		"confidence": 0.0,
	}

	out, _, err := prg.Eval(vars)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	if out.Type() != celtypes.BoolType {
		return nil, fmt.Errorf("output type is not bool: %s", out.Type())
	}
	return prg, nil
}

// ThresholdCondition returns the condition that holds when confidence is strictly above threshold.
func ThresholdCondition(threshold float64) string {
	return fmt.Sprintf("confidence > %v", threshold)
}

func EvaluateCondition(prg cel.Program, confidence float64) (bool, error) {
	vars := map[string]any{
		"confidence": confidence,
	}

	out, _, err := prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	return out.Type() == celtypes.BoolType && out.Value() == true, nil
}
