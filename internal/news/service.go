// Package news wraps the external news search and summarization APIs.
//
// Both are opaque collaborators: requests are fired once per call with no
// retry. Callers substitute the static sample articles when a fetch fails.
package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultNewsBaseURL   = "https://newsapi.org"
	defaultOpenAIBaseURL = "https://api.openai.com"

	// How many articles a summary batch enriches
	summaryBatchSize = 5
)

// Impact is the market impact assessment of a summary.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// Article is a financial news article with its sector tag and, once
// generated, its summary.
type Article struct {
	ID          string    `json:"id" example:"article-0"`
	Title       string    `json:"title" example:"Gold Prices Hit 3-Month High Amid Economic Uncertainty"`
	Description string    `json:"description" example:"Gold prices reached their highest level in three months."`
	URL         string    `json:"url" example:"https://example.com/gold-prices"`
	PublishedAt time.Time `json:"publishedAt" example:"2024-01-15T09:30:00Z"`
	Source      string    `json:"source" example:"MarketWatch"`
	Sector      Sector    `json:"category" example:"commodities"`
	Summary     string    `json:"aiSummary,omitempty"`
	Impact      Impact    `json:"marketImpact,omitempty"`
	Confidence  int       `json:"confidence,omitempty" example:"81"`
}

// Summary is the analyst assessment generated for one article.
type Summary struct {
	Summary    string `json:"summary"`
	Impact     Impact `json:"marketImpact"`
	Confidence int    `json:"confidence"`
}

// Service calls the news search and chat completion APIs.
type Service struct {
	client *http.Client

	newsAPIKey   string
	openAIAPIKey string

	newsBaseURL   string
	openAIBaseURL string
}

// Option configures a Service.
type Option func(*Service)

// WithBaseURLs overrides the upstream endpoints, used in tests.
func WithBaseURLs(newsBaseURL, openAIBaseURL string) Option {
	return func(s *Service) {
		s.newsBaseURL = newsBaseURL
		s.openAIBaseURL = openAIBaseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// NewService returns a Service authenticating with the passed keys.
func NewService(newsAPIKey, openAIAPIKey string, options ...Option) *Service {
	s := &Service{
		client:        http.DefaultClient,
		newsAPIKey:    newsAPIKey,
		openAIAPIKey:  openAIAPIKey,
		newsBaseURL:   defaultNewsBaseURL,
		openAIBaseURL: defaultOpenAIBaseURL,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		ID   *string `json:"id"`
		Name string  `json:"name"`
	} `json:"source"`
	Author      *string   `json:"author"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

// FetchFinancialNews queries the news search API for recent financial news,
// optionally narrowed to a sector, and tags every article with its sector.
func (s *Service) FetchFinancialNews(ctx context.Context, sector string) ([]Article, error) {
	query := "finance OR stocks OR markets OR economy OR investing"
	if sector != "" {
		query = "finance " + sector
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("language", "en")
	values.Set("sortBy", "publishedAt")
	values.Set("pageSize", "20")
	values.Set("apiKey", s.newsAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.newsBaseURL+"/v2/everything?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news API responded with status %d", resp.StatusCode)
	}

	var data newsAPIResponse
	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(data.Articles))
	for i, raw := range data.Articles {
		description := "No description available"
		if raw.Description != nil && *raw.Description != "" {
			description = *raw.Description
		}

		articles = append(articles, Article{
			ID:          "article-" + strconv.Itoa(i),
			Title:       raw.Title,
			Description: description,
			URL:         raw.URL,
			PublishedAt: raw.PublishedAt,
			Source:      raw.Source.Name,
			Sector:      CategorizeArticle(raw.Title, description),
		})
	}

	return articles, nil
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Temperature float64                 `json:"temperature"`
	MaxTokens   int                     `json:"max_tokens"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

const summarySystemPrompt = "You are a financial analyst. Provide concise, accurate analysis of financial news."

const summaryPromptFormat = `Analyze this financial news article and provide:
1. A concise summary (2-3 sentences)
2. Market impact assessment (positive/negative/neutral)
3. Confidence level (0-100)

Article: %s
Description: %s

Respond in JSON format:
{
  "summary": "your summary here",
  "marketImpact": "positive|negative|neutral",
  "confidence": 85
}`

// Summarize asks the chat completion API for an analyst summary of one
// article.
//
// A reply that is not parseable as JSON is not an error: the raw content is
// returned as the summary with neutral impact and a stock confidence.
func (s *Service) Summarize(ctx context.Context, article Article) (Summary, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: "gpt-3.5-turbo",
		Messages: []chatCompletionMessage{
			{Role: "system", Content: summarySystemPrompt},
			{Role: "user", Content: fmt.Sprintf(summaryPromptFormat, article.Title, article.Description)},
		},
		Temperature: 0.3,
		MaxTokens:   300,
	})
	if err != nil {
		return Summary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.openAIBaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Summary{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.openAIAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return Summary{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Summary{}, fmt.Errorf("summarization API responded with status %d", resp.StatusCode)
	}

	var data chatCompletionResponse
	err = json.NewDecoder(resp.Body).Decode(&data)
	if err != nil {
		return Summary{}, err
	}

	if len(data.Choices) == 0 {
		return Summary{}, fmt.Errorf("summarization API returned no choices")
	}

	content := data.Choices[0].Message.Content

	var summary Summary
	err = json.Unmarshal([]byte(content), &summary)
	if err != nil {
		// Use the unstructured reply as-is
		return Summary{
			Summary:    content,
			Impact:     ImpactNeutral,
			Confidence: 70,
		}, nil
	}

	return summary, nil
}

// WithSummaries enriches the first articles of the list with summaries.
// Articles whose summarization fails are passed through untouched, the batch
// never fails as a whole.
func (s *Service) WithSummaries(ctx context.Context, articles []Article) []Article {
	for i := range articles {
		if i >= summaryBatchSize {
			break
		}

		summary, err := s.Summarize(ctx, articles[i])
		if err != nil {
			log.Error().Err(err).Str("article", articles[i].ID).Msg("news summary failed")
			continue
		}

		articles[i].Summary = summary.Summary
		articles[i].Impact = summary.Impact
		articles[i].Confidence = summary.Confidence
	}

	return articles
}
