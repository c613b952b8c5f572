package llm

// tokenPrice is USD per one million tokens, from the public provider
// price lists. Last checked 2026-08.
type tokenPrice struct {
	in  float64
	out float64
}

var tokenPrices = map[string]tokenPrice{
	// Anthropic
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-3-5-haiku-20241022": {0.8, 4},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},

	// Gemini
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.0-pro":        {1.25, 5},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-pro":        {1.25, 10},
}

// costUSD estimates the dollar cost of one call. Unknown models report
// zero.
func costUSD(model string, u Usage) float64 {
	p, ok := tokenPrices[model]
	if !ok {
		return 0
	}
	return float64(u.InputTokens)*p.in/1e6 + float64(u.OutputTokens)*p.out/1e6
}
