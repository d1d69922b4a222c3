package usecase

import (
	"context"

	"ovacare/internal/delivery/dto"
	"ovacare/internal/infrastructure/ml"

	"github.com/sirupsen/logrus"
)

type PredictionUsecase interface {
	Predict(ctx context.Context, req *dto.PredictionRequest) (*dto.PredictionResponse, error)
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type predictionUsecase struct {
	log    *logrus.Logger
	client *ml.Client
}

func NewPredictionUsecase(log *logrus.Logger, client *ml.Client) PredictionUsecase {
	return &predictionUsecase{
		log:    log,
		client: client,
	}
}

func (u *predictionUsecase) Predict(ctx context.Context, req *dto.PredictionRequest) (*dto.PredictionResponse, error) {
	result, err := u.client.Predict(ctx, ml.PredictionInput{
		Age:               req.Age,
		MenopauseStatus:   req.MenopauseStatus,
		CystSize:          req.CystSize,
		CystGrowthRate:    req.CystGrowthRate,
		CA125:             req.CA125,
		UltrasoundFeature: req.UltrasoundFeature,
		Symptoms:          req.Symptoms,
	})
	if err != nil {
		u.log.Warnf("Prediction request failed: %+v", err)
		return nil, err
	}

	return &dto.PredictionResponse{
		PredictedClass:    result.PredictedClass,
		ConfidencePercent: result.ConfidencePercent,
		Interpretation:    result.Interpretation,
		Probabilities:     result.Probabilities,
		LLMReport:         result.LLMReport,
	}, nil
}

func (u *predictionUsecase) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	answer, err := u.client.Chat(ctx, req.Query)
	if err != nil {
		u.log.Warnf("Chat request failed: %+v", err)
		return nil, err
	}

	return &dto.ChatResponse{Answer: answer}, nil
}
