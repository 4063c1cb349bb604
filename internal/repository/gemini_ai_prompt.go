package repository

import (
	"fmt"
	"strings"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/utils"
)

const (
	trendStrongUp   = "strong upward trend"
	trendModerateUp = "moderate upward trend"
	trendSideways   = "sideways/consolidating"
	trendModerateDn = "moderate downward trend"
	trendStrongDn   = "strong downward trend"
)

// computeTrend returns the 30-day start/end prices and the percent
// change between them. An empty series falls back to the current quote
// price on both ends, which yields a flat trend.
func computeTrend(quote *dto.Quote, history *dto.History) (start, end, changePct float64) {
	start = quote.Price
	end = quote.Price
	if len(history.Prices) > 0 {
		start = history.Prices[0]
		end = history.Prices[len(history.Prices)-1]
	}
	if start != 0 {
		changePct = (end - start) / start * 100
	}
	return start, end, changePct
}

func classifyTrend(changePct float64) string {
	switch {
	case changePct > 5:
		return trendStrongUp
	case changePct > 2:
		return trendModerateUp
	case changePct > -2:
		return trendSideways
	case changePct > -5:
		return trendModerateDn
	default:
		return trendStrongDn
	}
}

func buildAnalysisPrompt(quote *dto.Quote, history *dto.History) string {
	trendStart, trendEnd, trendChangePct := computeTrend(quote, history)
	trendDesc := classifyTrend(trendChangePct)

	var sb strings.Builder

	sb.WriteString("You are a professional stock market analyst providing portfolio allocation advice.\n\n")
	sb.WriteString(fmt.Sprintf("Stock: %s\n\n", quote.Symbol))

	sb.WriteString("TODAY'S DATA:\n")
	sb.WriteString(fmt.Sprintf("- Current Price: $%v\n", quote.Price))
	sb.WriteString(fmt.Sprintf("- Daily Change: %v (%v%%)\n", quote.Change, quote.PercentChange))
	sb.WriteString(fmt.Sprintf("- High: $%v | Low: $%v\n", quote.High, quote.Low))
	sb.WriteString(fmt.Sprintf("- Volume: %s\n\n", utils.FormatVolume(quote.Volume)))

	sb.WriteString("30-DAY TREND ANALYSIS:\n")
	sb.WriteString(fmt.Sprintf("- Starting Price (30 days ago): $%.2f\n", trendStart))
	sb.WriteString(fmt.Sprintf("- Current Price: $%.2f\n", trendEnd))
	sb.WriteString(fmt.Sprintf("- 30-Day Change: %.2f%%\n", trendChangePct))
	sb.WriteString(fmt.Sprintf("- Trend: %s\n\n", trendDesc))

	sb.WriteString(`IMPORTANT: Your recommendation must consider BOTH:
1. Today's price action (short-term sentiment)
2. The 30-day trend (medium-term direction)

RECOMMENDATION RULES:
- STRONG BUY: Strong 30-day uptrend (>5%) + positive/neutral daily -> 18-25% allocation
- BUY: Moderate uptrend OR recovery setup -> 10-17% allocation
- HOLD: Sideways trend, mixed signals -> 5-12% allocation (maintain positions)
- SELL: Downtrend confirmed by both timeframes -> 0-5% allocation (reduce exposure)
- STRONG SELL: Strong downtrend (<-5%) with negative daily -> 0% allocation (exit)

CONSISTENCY RULES (CRITICAL):
- If you say SELL or STRONG SELL -> allocation MUST be 0-5%
- If you say BUY or STRONG BUY -> allocation MUST be 10-25%
- If you say HOLD -> allocation MUST be 5-12%
- Never recommend BUY with 0% or SELL with 20% - this is contradictory!

Your analysis should:
1. Acknowledge today's movement BUT prioritize the 30-day trend
2. Explain if short-term and medium-term signals conflict
3. Be consistent: don't say SELL but allocate 15%

Format your response EXACTLY as:
ANALYSIS: [2-3 sentences: discuss both daily action and 30-day trend, explain which matters more]
RECOMMENDATION: [STRONG BUY/BUY/HOLD/SELL/STRONG SELL]
ALLOCATION: [number matching the recommendation: 0-5 for SELL, 5-12 for HOLD, 10-25 for BUY]%
REASONING: [3-4 bullet points: trend analysis, volume interpretation, risk factors, action plan]
`)

	return sb.String()
}
