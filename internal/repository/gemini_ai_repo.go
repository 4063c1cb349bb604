package repository

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"stock-advisor/config"
	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"
)

type AIRepository interface {
	AnalyzeStock(ctx context.Context, quote *dto.Quote, history *dto.History) (*dto.Recommendation, error)
}

// geminiAIRepository derives buy/sell recommendations from the Google
// Gemini API. Without an API key it serves a fixed mock recommendation,
// the deterministic test/demo path.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) (AIRepository, error) {
	secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	var genAiClient *genai.Client
	if cfg.Gemini.APIKey != "" {
		var err error
		genAiClient, err = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
	} else {
		log.Warn("No Gemini API key configured, serving mock recommendations")
	}

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		genAiClient:    genAiClient,
	}, nil
}

func (r *geminiAIRepository) AnalyzeStock(ctx context.Context, quote *dto.Quote, history *dto.History) (*dto.Recommendation, error) {
	if r.genAiClient == nil {
		return mockRecommendation(quote), nil
	}

	prompt := buildAnalysisPrompt(quote, history)

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for gemini request limit: %w", err)
	}

	result, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.BaseModel, genai.Text(prompt), nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to generate recommendation",
			logger.StringField("symbol", quote.Symbol),
			logger.ErrorField(err))
		return nil, fmt.Errorf("AI analysis failed: %w", err)
	}

	text, err := extractText(result)
	if err != nil {
		return nil, fmt.Errorf("AI analysis failed: %w", err)
	}

	rec := parseRecommendation(text)
	enforceAllocationBands(&rec)

	r.logger.DebugContext(ctx, "Parsed recommendation",
		logger.StringField("symbol", quote.Symbol),
		logger.StringField("recommendation", rec.Recommendation),
		logger.IntField("portfolio_percent", rec.PortfolioPercent))

	return &rec, nil
}

func extractText(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}

func mockRecommendation(quote *dto.Quote) *dto.Recommendation {
	return &dto.Recommendation{
		Analysis: fmt.Sprintf(
			"Technical analysis of %s: The stock is showing positive momentum with a %v%% change.",
			quote.Symbol, quote.PercentChange),
		Recommendation:   dto.RecommendationBuy,
		PortfolioPercent: 15,
		Reasoning:        "Strong upward trend with good volume support.",
	}
}
