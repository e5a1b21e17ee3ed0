package replies

import (
	"fmt"

	"github.com/DIMO-Network/ecobot/internal/celcondition"
	"github.com/DIMO-Network/ecobot/internal/messenger"
	"github.com/google/cel-go/cel"
)

const (
	// IntentGreeting is the NLP entity name for greetings.
	IntentGreeting = "greetings"
	// IntentGoodbye is the NLP entity name for farewells.
	IntentGoodbye = "bye"

	DefaultConfidenceThreshold = 0.8
)

// intentRule pairs an NLP entity name with the condition its first entity must satisfy.
type intentRule struct {
	name    string
	program cel.Program
}

// IntentMatcher decides which of the known intents a text message carries.
// Rules are checked in order, so earlier intents win.
type IntentMatcher struct {
	rules []intentRule
}

// NewIntentMatcher compiles the greeting and goodbye rules against the given
// confidence threshold. A non-positive threshold falls back to the default.
func NewIntentMatcher(threshold float64) (*IntentMatcher, error) {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	condition := celcondition.ThresholdCondition(threshold)

	m := &IntentMatcher{}
	for _, name := range []string{IntentGreeting, IntentGoodbye} {
		prg, err := celcondition.PrepareCondition(condition)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare condition for intent %q: %w", name, err)
		}
		m.rules = append(m.rules, intentRule{name: name, program: prg})
	}
	return m, nil
}

// Match returns the first intent whose entity clears its condition, or "" when none does.
func (m *IntentMatcher) Match(nlp *messenger.NLP) (string, error) {
	for _, rule := range m.rules {
		entity, ok := nlp.FirstEntity(rule.name)
		if !ok {
			continue
		}
		matched, err := celcondition.EvaluateCondition(rule.program, entity.Confidence)
		if err != nil {
			return "", fmt.Errorf("failed to evaluate intent %q: %w", rule.name, err)
		}
		if matched {
			return rule.name, nil
		}
	}
	return "", nil
}
