package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Recommender produces the free-text advice attached to campaign and
// vendor insights.
type Recommender interface {
	Campaign(ctx context.Context, campaign CampaignRow, utilization, score float64) []string
	Vendor(ctx context.Context, vendor VendorRow, reliability, costEfficiency float64) []string
}

// ====================================================================
// Rule-based recommender
// ====================================================================

// RuleRecommender derives recommendations from fixed bands. It is the
// default and the fallback when the LLM path fails.
type RuleRecommender struct{}

var _ Recommender = (*RuleRecommender)(nil)

func NewRuleRecommender() *RuleRecommender {
	return &RuleRecommender{}
}

func (r *RuleRecommender) Campaign(_ context.Context, campaign CampaignRow, utilization, score float64) []string {
	recommendations := []string{}

	switch {
	case utilization > 100:
		recommendations = append(recommendations, "Warning: budget exceeded, review and reallocate funds immediately")
	case utilization > 90:
		recommendations = append(recommendations, "Warning: budget nearly exhausted, monitor remaining spend closely")
	case utilization < 30 && campaign.Budget > 0:
		recommendations = append(recommendations, "Budget underutilized, consider scaling activities or reallocating")
	}

	if score < 60 {
		recommendations = append(recommendations, "Performance below target, review campaign execution plan")
	} else if score >= 85 {
		recommendations = append(recommendations, "Strong performance, consider replicating this playbook")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Campaign tracking within expected parameters")
	}
	return recommendations
}

func (r *RuleRecommender) Vendor(_ context.Context, vendor VendorRow, reliability, costEfficiency float64) []string {
	recommendations := []string{}

	switch {
	case vendor.TotalBookings == 0:
		recommendations = append(recommendations, "No booking history yet, evaluate with a trial assignment")
	case reliability < 50:
		recommendations = append(recommendations, "Low completion rate, review vendor engagement before new bookings")
	case reliability >= 90:
		recommendations = append(recommendations, "Highly reliable vendor, prioritize for critical campaigns")
	}

	if costEfficiency < 60 {
		recommendations = append(recommendations, "Poor payment conversion, audit outstanding invoices")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Vendor performing within expected parameters")
	}
	return recommendations
}

// ====================================================================
// OpenAI-backed recommender
// ====================================================================

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// OpenAIRecommender asks a chat model for recommendations and falls
// back to the rule recommender on any error. Responses must be a JSON
// array of strings; anything else triggers the fallback.
type OpenAIRecommender struct {
	apiKey   string
	model    string
	client   *http.Client
	fallback *RuleRecommender
	logger   *zap.Logger
}

var _ Recommender = (*OpenAIRecommender)(nil)

func NewOpenAIRecommender(apiKey, model string, timeout time.Duration, logger *zap.Logger) *OpenAIRecommender {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIRecommender{
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: timeout},
		fallback: NewRuleRecommender(),
		logger:   logger,
	}
}

func (r *OpenAIRecommender) Campaign(ctx context.Context, campaign CampaignRow, utilization, score float64) []string {
	prompt := fmt.Sprintf(
		"Campaign %q has status %s, budget %.2f, spend %.2f (%.1f%% utilization) and a performance score of %.1f/100. "+
			"Give up to 3 short, actionable recommendations for the operations team.",
		campaign.Name, campaign.Status, campaign.Budget, campaign.TotalExpenses, utilization, score,
	)
	recommendations, err := r.complete(ctx, prompt)
	if err != nil {
		r.logger.Warn("llm recommendation failed, using rules",
			zap.String("campaign_id", campaign.ID.String()),
			zap.Error(err))
		return r.fallback.Campaign(ctx, campaign, utilization, score)
	}
	return recommendations
}

func (r *OpenAIRecommender) Vendor(ctx context.Context, vendor VendorRow, reliability, costEfficiency float64) []string {
	prompt := fmt.Sprintf(
		"Vendor %q has %d bookings of which %d completed (%.1f%% reliability) and a cost efficiency of %.1f%%. "+
			"Give up to 3 short, actionable recommendations for the procurement team.",
		vendor.Name, vendor.TotalBookings, vendor.CompletedBookings, reliability, costEfficiency,
	)
	recommendations, err := r.complete(ctx, prompt)
	if err != nil {
		r.logger.Warn("llm recommendation failed, using rules",
			zap.String("vendor_id", vendor.ID.String()),
			zap.Error(err))
		return r.fallback.Vendor(ctx, vendor, reliability, costEfficiency)
	}
	return recommendations
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (r *OpenAIRecommender) complete(ctx context.Context, prompt string) ([]string, error) {
	body, err := json.Marshal(chatRequest{
		Model: r.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a campaign operations analyst. Reply with a JSON array of recommendation strings and nothing else."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	var recommendations []string
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &recommendations); err != nil {
		return nil, fmt.Errorf("unexpected completion format: %w", err)
	}
	if len(recommendations) == 0 {
		return nil, fmt.Errorf("empty recommendation list")
	}
	return recommendations, nil
}
