package chunk

import "math"

// ChunkStats summarizes an already-produced chunk sequence.
//
// For an empty sequence the reduction identities are preserved verbatim:
// MinTokens is +Inf, MaxTokens is -Inf and AverageTokens is NaN. Callers
// must branch on TotalChunks before using them as numbers.
type ChunkStats struct {
	TotalChunks   int
	TotalTokens   int
	MinTokens     float64
	MaxTokens     float64
	AverageTokens float64
}

// Stats computes summary statistics over chunks with the chunker's
// counter.
func (c *Chunker) Stats(chunks []string) ChunkStats {
	stats := ChunkStats{
		MinTokens:     math.Inf(1),
		MaxTokens:     math.Inf(-1),
		AverageTokens: math.NaN(),
	}
	if len(chunks) == 0 {
		return stats
	}

	total := 0
	for _, chunk := range chunks {
		n := c.counter.Count(chunk)
		total += n
		if f := float64(n); f < stats.MinTokens {
			stats.MinTokens = f
		}
		if f := float64(n); f > stats.MaxTokens {
			stats.MaxTokens = f
		}
	}

	stats.TotalChunks = len(chunks)
	stats.TotalTokens = total
	stats.AverageTokens = float64(total) / float64(len(chunks))
	return stats
}

// Stats computes summary statistics using the default estimator.
func Stats(chunks []string) ChunkStats {
	return New().Stats(chunks)
}
