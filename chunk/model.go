package chunk

import (
	"github.com/promptkit/promptkit/model"
)

// DefaultInputPercent is the share of a model's context window available
// to prompt text. The remainder is held back for the model's reply and
// request framing overhead.
const DefaultInputPercent = 75

// Budget is a model's context window divided between prompt input and
// reserved output.
type Budget struct {
	// ContextWindow is the model's full token capacity.
	ContextWindow int

	// Input is the token budget available to prompt text.
	Input int

	// Reserved is the capacity held back for the response.
	Reserved int
}

// FitsInput returns true if the token count fits within the input budget.
func (b Budget) FitsInput(tokenCount int) bool {
	return tokenCount <= b.Input
}

// NewBudget splits a context window between prompt input and reserved
// output using the default input share.
func NewBudget(contextWindow int) Budget {
	input := contextWindow * DefaultInputPercent / 100
	return Budget{
		ContextWindow: contextWindow,
		Input:         input,
		Reserved:      contextWindow - input,
	}
}

// BudgetFor derives the chunking budget for a model. Unknown models get
// the catalog's conservative default window.
func BudgetFor(modelName string) Budget {
	return NewBudget(model.ContextWindowFor(modelName))
}

// SplitForModel chunks text to fit a model's context window. The token
// budget per chunk is the model's input budget (see BudgetFor), and
// overlapPercent (clamped to 0-100) converts to an absolute overlap count
// relative to that budget. Increasing the overlap percentage never
// decreases the number of chunks.
func (c *Chunker) SplitForModel(text, modelName string, overlapPercent float64) ([]string, error) {
	if overlapPercent < 0 {
		overlapPercent = 0
	}
	if overlapPercent > 100 {
		overlapPercent = 100
	}

	budget := BudgetFor(modelName)
	overlap := int(float64(budget.Input) * overlapPercent / 100)

	return c.Split(text, Options{
		MaxTokens: budget.Input,
		Overlap:   overlap,
	})
}

// SplitForModel chunks text for a model using the default estimator.
func SplitForModel(text, modelName string, overlapPercent float64) ([]string, error) {
	return New().SplitForModel(text, modelName, overlapPercent)
}
