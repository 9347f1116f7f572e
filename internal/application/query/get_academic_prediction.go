package query

import (
	"context"
	"time"

	"github.com/edumaster/analytics-engine/internal/domain/advice"
	"github.com/edumaster/analytics-engine/internal/domain/insight"
	"github.com/edumaster/analytics-engine/internal/domain/prediction"
	"github.com/edumaster/analytics-engine/internal/domain/record"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
)

// AcademicPredictionQuery asks for the user's predicted academic outcome.
// The prediction always uses the default 30-day window.
type AcademicPredictionQuery struct {
	UserID string
}

// Validate checks the query.
func (q AcademicPredictionQuery) Validate() error {
	if !record.UserID(q.UserID).IsValid() {
		return shared.ErrInvalidUserID
	}
	return nil
}

// AcademicPredictionResult is the scored prediction with its advice.
type AcademicPredictionResult struct {
	UserID          string
	GeneratedAt     time.Time
	Prediction      prediction.Result
	Recommendations []advice.Recommendation
	Risks           []advice.RiskFactor
	Insights        insight.BehavioralInsights
}

// GetAcademicPredictionHandler scores the user from the fused behavioral
// insights and attaches recommendations and risk flags.
type GetAcademicPredictionHandler struct {
	pipeline *Pipeline
	now      func() time.Time
}

// NewGetAcademicPredictionHandler creates the handler.
func NewGetAcademicPredictionHandler(pipeline *Pipeline, now func() time.Time) *GetAcademicPredictionHandler {
	return &GetAcademicPredictionHandler{pipeline: pipeline, now: now}
}

// Handle executes the query.
func (h *GetAcademicPredictionHandler) Handle(ctx context.Context, q AcademicPredictionQuery) (*AcademicPredictionResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	id := record.UserID(q.UserID)
	if err := h.pipeline.ResolveUser(ctx, id); err != nil {
		return nil, err
	}

	now := h.now()
	window := record.NewDateRange(now, record.DefaultWindowDays)

	snaps := h.pipeline.Extract(ctx, id, window)
	insights := insight.Fuse(snaps.Activity, snaps.Quiz, snaps.Schedule)

	return &AcademicPredictionResult{
		UserID:          q.UserID,
		GeneratedAt:     now,
		Prediction:      prediction.Predict(insights, snaps.Quiz, snaps.Activity, snaps.Schedule),
		Recommendations: advice.Recommendations(insights, snaps.Quiz),
		Risks:           advice.Risks(insights, snaps.Quiz),
		Insights:        insights,
	}, nil
}
