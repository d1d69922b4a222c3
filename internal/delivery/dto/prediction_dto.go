package dto

// Request DTOs

type PredictionRequest struct {
	Age               float64  `json:"age" validate:"required,gte=18,lte=90"`
	MenopauseStatus   string   `json:"menopause_status" validate:"required"`
	CystSize          float64  `json:"cyst_size" validate:"required,gte=0.1,lte=20"`
	CystGrowthRate    float64  `json:"cyst_growth_rate" validate:"gte=-5,lte=10"`
	CA125             float64  `json:"ca125" validate:"gte=0,lte=2000"`
	UltrasoundFeature string   `json:"ultrasound_feature" validate:"required"`
	Symptoms          []string `json:"symptoms" validate:"omitempty"`
}

type ChatRequest struct {
	Query string `json:"query" validate:"required,min=1"`
}

// Response DTOs

type PredictionResponse struct {
	PredictedClass    string             `json:"predicted_class"`
	ConfidencePercent float64            `json:"confidence_percent"`
	Interpretation    string             `json:"interpretation"`
	Probabilities     map[string]float64 `json:"probabilities"`
	LLMReport         string             `json:"llm_report,omitempty"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
