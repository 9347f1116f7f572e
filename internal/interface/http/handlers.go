package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edumaster/analytics-engine/internal/application/query"
	"github.com/edumaster/analytics-engine/internal/domain/shared"
	"github.com/edumaster/analytics-engine/pkg/logger"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Handlers wires the analytics queries to gin routes.
type Handlers struct {
	behavioral *query.GetBehavioralAnalyticsHandler
	prediction *query.GetAcademicPredictionHandler
	dashboard  *query.GetDashboardHandler
	reading    *query.GetReadingAnalyticsHandler
	quizStats  *query.GetQuizStatsHandler
	db         Pinger
	cache      Pinger
	version    string
	log        *logger.Logger
}

// NewHandlers creates the handler set. cache may be nil when Redis is
// disabled.
func NewHandlers(
	behavioral *query.GetBehavioralAnalyticsHandler,
	prediction *query.GetAcademicPredictionHandler,
	dash *query.GetDashboardHandler,
	reading *query.GetReadingAnalyticsHandler,
	quizStats *query.GetQuizStatsHandler,
	db Pinger,
	cache Pinger,
	version string,
	log *logger.Logger,
) *Handlers {
	return &Handlers{
		behavioral: behavioral,
		prediction: prediction,
		dashboard:  dash,
		reading:    reading,
		quizStats:  quizStats,
		db:         db,
		cache:      cache,
		version:    version,
		log:        log,
	}
}

// GetBehavioralAnalytics handles GET /api/v1/users/:userID/behavioral-analytics.
func (h *Handlers) GetBehavioralAnalytics(c *gin.Context) {
	days, ok := h.daysParam(c)
	if !ok {
		return
	}

	result, err := h.behavioral.Handle(c.Request.Context(), query.BehavioralAnalyticsQuery{
		UserID: c.Param("userID"),
		Days:   days,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBehavioralAnalyticsResponse(result))
}

// GetAcademicPrediction handles GET /api/v1/users/:userID/prediction.
func (h *Handlers) GetAcademicPrediction(c *gin.Context) {
	result, err := h.prediction.Handle(c.Request.Context(), query.AcademicPredictionQuery{
		UserID: c.Param("userID"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPredictionResponse(result))
}

// GetDashboard handles GET /api/v1/users/:userID/dashboard.
func (h *Handlers) GetDashboard(c *gin.Context) {
	days, ok := h.daysParam(c)
	if !ok {
		return
	}

	result, err := h.dashboard.Handle(c.Request.Context(), query.DashboardQuery{
		UserID: c.Param("userID"),
		Days:   days,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(result))
}

// GetReadingAnalytics handles GET /api/v1/users/:userID/reading-analytics.
// Optional course_id and filename query params narrow the sessions counted.
func (h *Handlers) GetReadingAnalytics(c *gin.Context) {
	days, ok := h.daysParam(c)
	if !ok {
		return
	}

	result, err := h.reading.Handle(c.Request.Context(), query.ReadingAnalyticsQuery{
		UserID:   c.Param("userID"),
		CourseID: c.Query("course_id"),
		Filename: c.Query("filename"),
		Days:     days,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReadingAnalyticsResponse(result))
}

// GetQuizStats handles GET /api/v1/users/:userID/quiz-stats.
func (h *Handlers) GetQuizStats(c *gin.Context) {
	days, ok := h.daysParam(c)
	if !ok {
		return
	}

	result, err := h.quizStats.Handle(c.Request.Context(), query.QuizStatsQuery{
		UserID: c.Param("userID"),
		Days:   days,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuizStatsResponse(result))
}

// Health handles GET /healthz. Degraded dependencies report as 503 with
// per-component detail.
func (h *Handlers) Health(c *gin.Context) {
	ctx := c.Request.Context()

	components := gin.H{}
	healthy := true

	if err := h.db.HealthCheck(ctx); err != nil {
		components["database"] = "down"
		healthy = false
	} else {
		components["database"] = "up"
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(ctx); err != nil {
			components["cache"] = "down"
			healthy = false
		} else {
			components["cache"] = "up"
		}
	}

	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status":     state,
		"version":    h.version,
		"components": components,
	})
}

// daysParam parses the optional ?days query param. Zero means "use the
// handler's default". A malformed value is a client error.
func (h *Handlers) daysParam(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "days must be an integer",
		})
		return 0, false
	}
	return days, true
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case shared.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": err.Error()})
	case shared.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
	default:
		h.log.Error("query failed",
			"error", err,
			"path", c.Request.URL.Path,
			requestIDKey, c.GetString(requestIDKey),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "internal server error"})
	}
}
