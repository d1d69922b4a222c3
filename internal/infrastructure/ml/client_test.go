package ml

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ovacare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Predict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Data []any `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Data, 7)
		assert.Equal(t, float64(45), payload.Data[0])
		assert.Equal(t, "Post-menopausal", payload.Data[1])
		assert.Equal(t, 6.2, payload.Data[2])
		assert.Equal(t, "Complex", payload.Data[5])
		assert.Equal(t, "Bloating, Pelvic pain", payload.Data[6])

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"predicted_class":    "Surgery",
				"confidence_percent": 87.5,
				"interpretation":     "High risk features present",
				"probabilities":      map[string]float64{"Surgery": 0.875, "Observation": 0.125},
				"llm_report":         "Recommend surgical referral.",
			},
		})
	}))
	defer server.Close()

	client := NewClient(config.MLConfig{PredictURL: server.URL})

	result, err := client.Predict(context.Background(), PredictionInput{
		Age:               45,
		MenopauseStatus:   "Post-menopausal",
		CystSize:          6.2,
		CystGrowthRate:    0.8,
		CA125:             120,
		UltrasoundFeature: "Complex",
		Symptoms:          []string{"Bloating", "Pelvic pain"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Surgery", result.PredictedClass)
	assert.Equal(t, 87.5, result.ConfidencePercent)
	assert.Equal(t, 0.875, result.Probabilities["Surgery"])
	assert.Equal(t, "Recommend surgical referral.", result.LLMReport)
}

func TestClient_PredictValidation(t *testing.T) {
	valid := PredictionInput{
		Age:            45,
		CystSize:       4,
		CystGrowthRate: 0.5,
		CA125:          35,
	}

	tests := []struct {
		name    string
		mutate  func(*PredictionInput)
		wantErr string
	}{
		{"age too low", func(in *PredictionInput) { in.Age = 17 }, "age"},
		{"age too high", func(in *PredictionInput) { in.Age = 91 }, "age"},
		{"size too small", func(in *PredictionInput) { in.CystSize = 0 }, "cyst size"},
		{"size too large", func(in *PredictionInput) { in.CystSize = 20.5 }, "cyst size"},
		{"growth too low", func(in *PredictionInput) { in.CystGrowthRate = -6 }, "growth rate"},
		{"growth too high", func(in *PredictionInput) { in.CystGrowthRate = 11 }, "growth rate"},
		{"ca125 negative", func(in *PredictionInput) { in.CA125 = -1 }, "CA-125"},
		{"ca125 too high", func(in *PredictionInput) { in.CA125 = 2001 }, "CA-125"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			assert.ErrorContains(t, in.Validate(), tc.wantErr)
		})
	}

	assert.NoError(t, valid.Validate())
}

func TestClient_PredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(config.MLConfig{PredictURL: server.URL})

	_, err := client.Predict(context.Background(), PredictionInput{
		Age:      45,
		CystSize: 4,
		CA125:    35,
	})

	assert.ErrorContains(t, err, "status 500")
}

func TestClient_PredictNotConfigured(t *testing.T) {
	client := NewClient(config.MLConfig{})

	_, err := client.Predict(context.Background(), PredictionInput{Age: 45, CystSize: 4})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_Chat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "What does a CA-125 of 120 mean?", payload["query"])

		json.NewEncoder(w).Encode(map[string]string{"answer": "A CA-125 above 35 U/mL is elevated."})
	}))
	defer server.Close()

	client := NewClient(config.MLConfig{ChatURL: server.URL})

	answer, err := client.Chat(context.Background(), "What does a CA-125 of 120 mean?")

	require.NoError(t, err)
	assert.Equal(t, "A CA-125 above 35 U/mL is elevated.", answer)
}

func TestClient_ChatEmptyAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewClient(config.MLConfig{ChatURL: server.URL})

	_, err := client.Chat(context.Background(), "hello")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}
