package model

import (
	"fmt"
	"math"
	"sort"

	"github.com/promptkit/promptkit/tokens"
)

// DefaultMargin is the safety margin applied to estimated token counts
// when recommending a model. Estimates undershoot real tokenizers often
// enough that recommending an exact fit risks overflow.
const DefaultMargin = 0.1

// Recommendation names the model chosen for an estimated prompt size.
type Recommendation struct {
	// Model is the recommended model identifier.
	Model string

	// Tokens is the required capacity: the estimate plus the safety margin.
	Tokens int

	// Reason explains the choice in human-readable form.
	Reason string
}

// Recommender picks models for estimated prompt sizes against a catalog.
type Recommender struct {
	catalog *Catalog
	margin  float64
	counter tokens.Counter
}

// RecommenderOption configures a Recommender.
type RecommenderOption func(*Recommender)

// WithCatalog sets the catalog to recommend from. A nil catalog keeps the
// builtin one.
func WithCatalog(catalog *Catalog) RecommenderOption {
	return func(r *Recommender) {
		if catalog != nil {
			r.catalog = catalog
		}
	}
}

// WithMargin sets the safety margin. A negative margin is treated as 0.
func WithMargin(margin float64) RecommenderOption {
	return func(r *Recommender) {
		if margin < 0 {
			margin = 0
		}
		r.margin = margin
	}
}

// WithCounter sets the token counter used by RecommendText.
func WithCounter(counter tokens.Counter) RecommenderOption {
	return func(r *Recommender) {
		if counter != nil {
			r.counter = counter
		}
	}
}

// NewRecommender creates a recommender with the given options. Defaults:
// builtin catalog, DefaultMargin, and the standard token estimator.
func NewRecommender(opts ...RecommenderOption) *Recommender {
	r := &Recommender{
		catalog: builtin,
		margin:  DefaultMargin,
		counter: tokens.NewEstimator(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend picks the model with the smallest context window that still
// holds the token count plus the safety margin. If no model is large
// enough, it returns the model with the largest context window and a
// reason noting the text may not fit. Ties on window size prefer the
// cheaper input price, then the lexically smaller name.
func (r *Recommender) Recommend(tokenCount int) Recommendation {
	if tokenCount < 0 {
		tokenCount = 0
	}
	required := int(math.Ceil(float64(tokenCount) * (1 + r.margin)))

	candidates := r.catalog.ladder()
	if len(candidates) == 0 {
		return Recommendation{Tokens: required, Reason: "no models in catalog"}
	}

	for _, c := range candidates {
		if c.info.ContextWindow >= required {
			return Recommendation{
				Model:  c.name,
				Tokens: required,
				Reason: fmt.Sprintf("smallest context window (%d tokens) that holds %d tokens including the safety margin",
					c.info.ContextWindow, required),
			}
		}
	}

	// No model is large enough: fall back to the largest window, keeping
	// the ladder's cheapest-first preference among ties.
	maxWindow := candidates[len(candidates)-1].info.ContextWindow
	largest := candidates[len(candidates)-1]
	for _, c := range candidates {
		if c.info.ContextWindow == maxWindow {
			largest = c
			break
		}
	}
	return Recommendation{
		Model:  largest.name,
		Tokens: required,
		Reason: fmt.Sprintf("largest available context window (%d tokens); %d tokens may not fully fit",
			largest.info.ContextWindow, required),
	}
}

// RecommendText estimates the text's token count, then recommends.
func (r *Recommender) RecommendText(text string) Recommendation {
	return r.Recommend(r.counter.Count(text))
}

// Recommend picks a model from the builtin catalog for a token count.
func Recommend(tokenCount int, margin float64) Recommendation {
	return NewRecommender(WithMargin(margin)).Recommend(tokenCount)
}

// RecommendText picks a model from the builtin catalog for a text.
func RecommendText(text string, margin float64) Recommendation {
	return NewRecommender(WithMargin(margin)).RecommendText(text)
}

// candidate is a catalog entry flattened for sorting.
type candidate struct {
	name string
	info Info
}

// ladder returns the catalog's models sorted by ascending context window,
// then ascending input price, then name. The default fallback entry is
// excluded.
func (c *Catalog) ladder() []candidate {
	out := make([]candidate, 0, len(c.entries))
	for name, info := range c.entries {
		if name == defaultKey {
			continue
		}
		out = append(out, candidate{name: name, info: info})
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := out[i].info.ContextWindow, out[j].info.ContextWindow
		if wi != wj {
			return wi < wj
		}
		pi, pj := out[i].info.Pricing.InputPerMillion, out[j].info.Pricing.InputPerMillion
		if pi != pj {
			return pi < pj
		}
		return out[i].name < out[j].name
	})
	return out
}
