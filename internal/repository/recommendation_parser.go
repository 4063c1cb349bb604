package repository

import (
	"strconv"
	"strings"

	"stock-advisor/internal/dto"
)

// taggedField distinguishes "present and parsed" from "missing or
// malformed" so defaults are only applied where the model left a gap.
type taggedField struct {
	value   string
	present bool
}

type taggedReply struct {
	analysis       taggedField
	recommendation taggedField
	allocation     taggedField
	reasoning      taggedField
}

// parseTaggedReply extracts the four labeled fields from a model reply
// line by line. Later occurrences of a tag overwrite earlier ones.
func parseTaggedReply(text string) taggedReply {
	var reply taggedReply

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "ANALYSIS:"):
			reply.analysis = taggedField{
				value:   strings.TrimSpace(strings.TrimPrefix(line, "ANALYSIS:")),
				present: true,
			}
		case strings.HasPrefix(line, "RECOMMENDATION:"):
			reply.recommendation = taggedField{
				value:   strings.TrimSpace(strings.TrimPrefix(line, "RECOMMENDATION:")),
				present: true,
			}
		case strings.HasPrefix(line, "ALLOCATION:"):
			reply.allocation = taggedField{
				value:   strings.TrimSpace(strings.ReplaceAll(strings.TrimPrefix(line, "ALLOCATION:"), "%", "")),
				present: true,
			}
		case strings.HasPrefix(line, "REASONING:"):
			reply.reasoning = taggedField{
				value:   strings.TrimSpace(strings.TrimPrefix(line, "REASONING:")),
				present: true,
			}
		}
	}

	return reply
}

// parseRecommendation turns a raw model reply into a recommendation,
// filling defaults: empty strings for missing text fields, HOLD for a
// missing label, 0 for a missing or malformed allocation.
func parseRecommendation(text string) dto.Recommendation {
	reply := parseTaggedReply(text)

	rec := dto.Recommendation{
		Recommendation: dto.RecommendationHold,
	}

	if reply.analysis.present {
		rec.Analysis = reply.analysis.value
	}
	if reply.recommendation.present {
		rec.Recommendation = reply.recommendation.value
	}
	if reply.allocation.present {
		if alloc, err := strconv.Atoi(reply.allocation.value); err == nil {
			rec.PortfolioPercent = alloc
		}
	}
	if reply.reasoning.present {
		rec.Reasoning = reply.reasoning.value
	}

	return rec
}

// enforceAllocationBands forces the allocation into the band dictated
// by the label, whatever the model actually said: SELL/STRONG SELL get
// 0-5, HOLD gets 5-12, BUY/STRONG BUY get 10-25. Out-of-band values are
// replaced with a fixed mid-band value per label.
func enforceAllocationBands(rec *dto.Recommendation) {
	label := strings.ToUpper(rec.Recommendation)
	alloc := rec.PortfolioPercent

	switch {
	case strings.Contains(label, "STRONG BUY") && (alloc < 10 || alloc > 25):
		rec.PortfolioPercent = 20
	case strings.Contains(label, "BUY") && !strings.Contains(label, "STRONG") && (alloc < 10 || alloc > 25):
		rec.PortfolioPercent = 12
	case strings.Contains(label, "SELL") && (alloc < 0 || alloc > 5):
		rec.PortfolioPercent = 0
	case strings.Contains(label, "HOLD") && (alloc < 5 || alloc > 12):
		rec.PortfolioPercent = 8
	}
}
