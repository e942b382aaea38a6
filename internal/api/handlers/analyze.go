package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Conceptual-Machines/harmonia-api/internal/logger"
	"github.com/Conceptual-Machines/harmonia-api/internal/metrics"
	"github.com/Conceptual-Machines/harmonia-api/internal/models"
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
	"github.com/gin-gonic/gin"
)

type AnalyzeHandler struct {
	analyzer *theory.Analyzer
	metrics  *metrics.SentryMetrics
}

func NewAnalyzeHandler(analyzer *theory.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		metrics:  metrics.NewSentryMetrics(),
	}
}

// Analyze handles chord/melody analysis requests
// POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     err.Error(),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	start := time.Now()
	result, err := h.analyzer.Analyze(req.Chord, req.Notes, req.Key)
	if err != nil {
		status := http.StatusInternalServerError
		if isDomainError(err) {
			status = http.StatusBadRequest
		}
		logger.Warn("Analysis rejected", logger.Fields{
			"request_id": c.GetString("request_id"),
			"chord":      req.Chord,
			"error":      err.Error(),
		})
		c.JSON(status, models.ErrorResponse{
			Error:     err.Error(),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	h.metrics.RecordAnalysis(
		c.Request.Context(),
		string(result.Chord.Quality),
		result.Best.Mode.Name,
		result.Best.Score,
		len(result.MelodyNotes),
		time.Since(start),
	)

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		RequestID: c.GetString("request_id"),
		Result:    result,
	})
}

// isDomainError reports whether the error is a caller mistake rather
// than a server fault.
func isDomainError(err error) bool {
	var unknownNote *theory.UnknownNoteError
	var invalidQuality *theory.InvalidQualityError
	return errors.Is(err, theory.ErrEmptyChord) ||
		errors.As(err, &unknownNote) ||
		errors.As(err, &invalidQuality)
}
