// Package criteria defines the fixed weighted rubric used for skill quality
// evaluation. The table is defined once at process start and never mutated.
package criteria

import "fmt"

// Criterion is one scored dimension of the rubric.
type Criterion struct {
	Name        string
	Key         string
	Weight      int // percent, all weights sum to 100
	Description string
	Questions   []string
}

// Dimension keys, in table order.
const (
	KeyTriggerClarity       = "trigger_clarity"
	KeyStructure            = "structure_completeness"
	KeyStepExecutability    = "step_executability"
	KeyExampleQuality       = "example_quality"
	KeyScopeAppropriateness = "scope_appropriateness"
)

var table = []Criterion{
	{
		Name:        "Trigger Clarity",
		Key:         KeyTriggerClarity,
		Weight:      20,
		Description: "Are the conditions for invoking this skill clear and specific?",
		Questions: []string{
			"Does it explicitly state when the skill should be used?",
			"Are the trigger conditions concrete (not vague phrasing like \"when you need to...\")?",
			"Does it list situations where the skill should NOT be used (negative examples)?",
		},
	},
	{
		Name:        "Structure Completeness",
		Key:         KeyStructure,
		Weight:      25,
		Description: "Does the skill file contain all the structural elements it needs?",
		Questions: []string{
			"Is there a clear statement of purpose?",
			"Are there clearly laid out steps or a workflow?",
			"Are there usage examples?",
			"Does it describe the expected output?",
		},
	},
	{
		Name:        "Step Executability",
		Key:         KeyStepExecutability,
		Weight:      25,
		Description: "Are the steps concrete and actionable rather than vague guidance?",
		Questions: []string{
			"Does each step name a specific action?",
			"Are the steps in a logical order?",
			"Does it avoid hedging words like \"try to\" or \"consider\"?",
		},
	},
	{
		Name:        "Example Quality",
		Key:         KeyExampleQuality,
		Weight:      20,
		Description: "Are the examples sufficient, concrete, and representative?",
		Questions: []string{
			"Is there at least one concrete usage example?",
			"Do the examples show input and expected output?",
			"Do the examples cover the main usage scenarios?",
		},
	},
	{
		Name:        "Scope Appropriateness",
		Key:         KeyScopeAppropriateness,
		Weight:      10,
		Description: "Is the skill's scope well chosen — neither too broad nor too narrow?",
		Questions: []string{
			"Does the skill focus on one well-defined task type?",
			"Does it avoid being overly broad (e.g. \"help me write code\")?",
			"Does it avoid being overly narrow (useful in only one hyper-specific case)?",
		},
	},
}

// TotalWeight is what the rubric weights must sum to.
const TotalWeight = 100

func init() {
	sum := 0
	for _, c := range table {
		sum += c.Weight
	}
	if sum != TotalWeight {
		panic(fmt.Sprintf("criteria weights sum to %d, want %d", sum, TotalWeight))
	}
}

// All returns the rubric in table order. Callers must not mutate the result.
func All() []Criterion {
	return table
}

// Keys returns the dimension keys in table order.
func Keys() []string {
	keys := make([]string, len(table))
	for i, c := range table {
		keys[i] = c.Key
	}
	return keys
}
