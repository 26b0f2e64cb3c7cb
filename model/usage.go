package model

import "sync"

// Usage tracks token usage for a model.
type Usage struct {
	InputTokens  int
	OutputTokens int
	Requests     int
}

// Add adds the given usage to this usage.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Requests += other.Requests
}

// TotalTokens returns the total tokens used.
func (u *Usage) TotalTokens() int {
	return u.InputTokens + u.OutputTokens
}

// UsageTracker accumulates token usage and estimated costs across models.
// Safe for concurrent use.
type UsageTracker struct {
	mu      sync.RWMutex
	catalog *Catalog
	totals  map[string]Usage
}

// NewUsageTracker creates a usage tracker priced from the builtin catalog.
func NewUsageTracker() *UsageTracker {
	return NewUsageTrackerWithCatalog(nil)
}

// NewUsageTrackerWithCatalog creates a usage tracker priced from the given
// catalog. A nil catalog uses the builtin one.
func NewUsageTrackerWithCatalog(catalog *Catalog) *UsageTracker {
	if catalog == nil {
		catalog = builtin
	}
	return &UsageTracker{
		catalog: catalog,
		totals:  make(map[string]Usage),
	}
}

// Record adds a usage record for the given model. The model identifier is
// resolved to its catalog key so dated variants aggregate together.
func (t *UsageTracker) Record(model string, input, output int) {
	key, _, ok := t.catalog.resolve(model)
	if !ok {
		key = model
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	u := t.totals[key]
	u.InputTokens += input
	u.OutputTokens += output
	u.Requests++
	t.totals[key] = u
}

// Usage returns the usage recorded for a specific model.
func (t *UsageTracker) Usage(model string) Usage {
	key, _, ok := t.catalog.resolve(model)
	if !ok {
		key = model
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals[key]
}

// Summary returns a copy of all usage totals, keyed by catalog key.
func (t *UsageTracker) Summary() map[string]Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]Usage, len(t.totals))
	for k, v := range t.totals {
		result[k] = v
	}
	return result
}

// TotalUsage returns aggregated usage across all models.
func (t *UsageTracker) TotalUsage() Usage {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total Usage
	for _, u := range t.totals {
		total.Add(u)
	}
	return total
}

// EstimatedCost returns the estimated total cost in USD based on catalog
// pricing. Models without a catalog entry contribute nothing.
func (t *UsageTracker) EstimatedCost() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var total float64
	for model, usage := range t.totals {
		total += t.costOf(model, usage)
	}
	return total
}

// EstimatedCostByModel returns the estimated cost in USD for each model.
func (t *UsageTracker) EstimatedCostByModel() map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string]float64, len(t.totals))
	for model, usage := range t.totals {
		result[model] = t.costOf(model, usage)
	}
	return result
}

func (t *UsageTracker) costOf(model string, usage Usage) float64 {
	info, ok := t.catalog.Lookup(model)
	if !ok {
		return 0
	}
	inputCost := float64(usage.InputTokens) / 1_000_000 * info.Pricing.InputPerMillion
	outputCost := float64(usage.OutputTokens) / 1_000_000 * info.Pricing.OutputPerMillion
	return inputCost + outputCost
}

// Reset clears all tracked usage.
func (t *UsageTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals = make(map[string]Usage)
}
