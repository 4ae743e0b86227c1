package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// WellnessService fetches tips and diet plans from the external
// HealthGennie content API. One timeout-bounded attempt per request;
// failures surface as ErrUpstream and are never retried here.
type WellnessService struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewWellnessService(baseURL string, log *zap.Logger) *WellnessService {
	return &WellnessService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// GetTips fetches wellness advice for a topic.
func (s *WellnessService) GetTips(ctx context.Context, topic string) (string, error) {
	if topic == "" {
		return "", fmt.Errorf("%w: topic required", ErrValidation)
	}
	return s.fetch(ctx, fmt.Sprintf("%s/tips?topic=%s", s.baseURL, url.QueryEscape(topic)))
}

// GetDietPlan fetches a diet plan for a health goal.
func (s *WellnessService) GetDietPlan(ctx context.Context, goal string) (string, error) {
	if goal == "" {
		return "", fmt.Errorf("%w: goal required", ErrValidation)
	}
	return s.fetch(ctx, fmt.Sprintf("%s/diet?goal=%s", s.baseURL, url.QueryEscape(goal)))
}

func (s *WellnessService) fetch(ctx context.Context, u string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build wellness request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		wellnessFetchErrors.Inc()
		s.log.Warn("wellness API call failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		wellnessFetchErrors.Inc()
		return "", fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		wellnessFetchErrors.Inc()
		s.log.Warn("wellness API error", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return string(body), nil
}
