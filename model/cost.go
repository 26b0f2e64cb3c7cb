package model

import "github.com/promptkit/promptkit/tokens"

// Estimate pairs a token count with its estimated input cost in USD.
type Estimate struct {
	Tokens int
	Cost   float64
}

// CostForTokens returns the estimated input cost in USD for sending the
// given token count to the model. Unknown models cost 0.
func (c *Catalog) CostForTokens(tokenCount int, model string) float64 {
	if tokenCount <= 0 {
		return 0
	}
	info, ok := c.Lookup(model)
	if !ok {
		return 0
	}
	return float64(tokenCount) / 1_000_000 * info.Pricing.InputPerMillion
}

// CostForTokens prices a token count against the built-in catalog.
func CostForTokens(tokenCount int, model string) float64 {
	return builtin.CostForTokens(tokenCount, model)
}

// EstimateCost returns the estimated input cost in USD for sending the
// text to the model. Unknown models cost 0.
func EstimateCost(text, model string) float64 {
	return CostForTokens(tokens.Estimate(text), model)
}

// EstimateForModel returns the estimated token count and input cost for
// sending the text to the model.
func EstimateForModel(text, model string) Estimate {
	count := tokens.Estimate(text)
	return Estimate{
		Tokens: count,
		Cost:   CostForTokens(count, model),
	}
}
