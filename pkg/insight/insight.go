// Package insight produces the free-text annotation attached to search
// results, backed by a local Ollama instance with a static fallback.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pricewise/pkg/logger"
)

// Provider generates annotation text for a query. Implementations may
// fail; Service absorbs those failures.
type Provider interface {
	Insight(ctx context.Context, query string) (string, error)
}

type OllamaProvider struct {
	client *http.Client
	url    string
	model  string
}

// NewOllama talks to an Ollama generate endpoint. The call is bounded by
// the client timeout; a single attempt per request, no retries.
func NewOllama(url, model string) *OllamaProvider {
	return &OllamaProvider{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
		model:  model,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (p *OllamaProvider) Insight(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf(
		"Analyze this product search: %q\n\nProvide brief insights about:\n"+
			"1. Current market pricing\n2. Best value recommendation\n3. Shopping tips\n\n"+
			"Keep response under 100 words.", query)

	body, err := json.Marshal(generateRequest{Model: p.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("insight service returned %s", res.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.Response) == "" {
		return "", errors.New("insight service returned empty response")
	}
	return out.Response, nil
}

// fallbacks are checked in order against the lowered query.
var fallbacks = []struct {
	keyword string
	text    string
}{
	{"headphones", "Noise-cancelling headphones are trending down in price. Compare refurbished options for extra savings."},
	{"laptop", "Laptop prices typically drop around back-to-school season. Mid-range models offer the best value."},
	{"phone", "Phone prices fall fastest right after a new generation launches. Last year's flagship is the value pick."},
	{"watch", "Smartwatch pricing is stable. Look for bundle deals with bands or chargers."},
	{"shoes", "Shoe prices vary widely between retailers. Check sizing before choosing the cheapest listing."},
	{"tv", "TV deals cluster around major sales events. Mid-size OLED panels are at historic lows."},
}

const genericFallback = "Great product with competitive pricing across stores."

// Fallback returns the canned line for the first keyword contained in the
// query, or a generic line.
func Fallback(query string) string {
	q := strings.ToLower(query)
	for _, f := range fallbacks {
		if strings.Contains(q, f.keyword) {
			return f.text
		}
	}
	return genericFallback
}

// Service wraps a Provider and converts every failure into fallback text,
// so callers never see an error from the insight path.
type Service struct {
	provider Provider
}

func NewService(p Provider) *Service {
	return &Service{provider: p}
}

func (s *Service) Insight(ctx context.Context, query string) string {
	text, err := s.provider.Insight(ctx, query)
	if err != nil {
		logger.Dedup("insight provider unavailable, using fallback: %v", err)
		return Fallback(query)
	}
	return text
}
