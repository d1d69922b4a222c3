// Package ml wraps the hosted inference endpoints: ovarian-cyst risk
// prediction and the free-text medical chatbot.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ovacare/config"
)

var (
	ErrNotConfigured = errors.New("inference endpoint not configured")
	ErrEmptyResponse = errors.New("inference endpoint returned no result")
)

// PredictionInput carries the model features. Symptoms are joined into one
// comma-separated string on the wire.
type PredictionInput struct {
	Age               float64
	MenopauseStatus   string
	CystSize          float64
	CystGrowthRate    float64
	CA125             float64
	UltrasoundFeature string
	Symptoms          []string
}

// Validate enforces the clinical input ranges the model was trained on.
func (in PredictionInput) Validate() error {
	if in.Age < 18 || in.Age > 90 {
		return errors.New("age must be between 18 and 90")
	}
	if in.CystSize < 0.1 || in.CystSize > 20 {
		return errors.New("cyst size must be between 0.1 and 20 cm")
	}
	if in.CystGrowthRate < -5 || in.CystGrowthRate > 10 {
		return errors.New("cyst growth rate must be between -5 and 10 cm/month")
	}
	if in.CA125 < 0 || in.CA125 > 2000 {
		return errors.New("CA-125 level must be between 0 and 2000")
	}
	return nil
}

// PredictionResult is the model's answer for one patient.
type PredictionResult struct {
	PredictedClass    string             `json:"predicted_class"`
	ConfidencePercent float64            `json:"confidence_percent"`
	Interpretation    string             `json:"interpretation"`
	Probabilities     map[string]float64 `json:"probabilities"`
	LLMReport         string             `json:"llm_report"`
}

// Client calls the hosted inference endpoints.
type Client struct {
	predictURL string
	chatURL    string
	http       *http.Client
}

func NewClient(cfg config.MLConfig) *Client {
	return &Client{
		predictURL: cfg.PredictURL,
		chatURL:    cfg.ChatURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Predict posts the feature vector in the endpoint's positional format:
// { "data": [age, menopauseStatus, size, growthRate, ca125,
// ultrasoundFeature, symptomsCSV] }.
func (c *Client) Predict(ctx context.Context, in PredictionInput) (*PredictionResult, error) {
	if c.predictURL == "" {
		return nil, ErrNotConfigured
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"data": []any{
			in.Age,
			in.MenopauseStatus,
			in.CystSize,
			in.CystGrowthRate,
			in.CA125,
			in.UltrasoundFeature,
			strings.Join(in.Symptoms, ", "),
		},
	}

	var body struct {
		Data *PredictionResult `json:"data"`
	}
	if err := c.postJSON(ctx, c.predictURL, payload, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, ErrEmptyResponse
	}

	return body.Data, nil
}

// Chat sends a free-text query and returns the natural-language answer.
func (c *Client) Chat(ctx context.Context, query string) (string, error) {
	if c.chatURL == "" {
		return "", ErrNotConfigured
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := c.postJSON(ctx, c.chatURL, map[string]string{"query": query}, &body); err != nil {
		return "", err
	}
	if body.Answer == "" {
		return "", ErrEmptyResponse
	}

	return body.Answer, nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("inference response: %w", err)
	}
	return nil
}
