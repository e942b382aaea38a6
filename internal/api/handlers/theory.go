package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/harmonia-api/internal/models"
	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
	"github.com/gin-gonic/gin"
)

type TheoryHandler struct{}

func NewTheoryHandler() *TheoryHandler {
	return &TheoryHandler{}
}

// ParseChord parses a chord symbol without running the full analysis
// POST /api/v1/chords/parse
func (h *TheoryHandler) ParseChord(c *gin.Context) {
	var req models.ParseChordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     err.Error(),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	chord, err := theory.ParseChordSymbol(req.Chord)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     err.Error(),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	c.JSON(http.StatusOK, models.ParseChordResponse{
		Chord:         chord,
		RequiredTones: theory.DeriveRequiredTones(chord),
	})
}

// ListModes returns the full 21-mode catalog
// GET /api/v1/modes
func (h *TheoryHandler) ListModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"count": len(theory.ModeCatalog()),
		"modes": theory.ModeCatalog(),
	})
}

// GetScales returns the standard scales on a tonic
// GET /api/v1/scales/:tonic
func (h *TheoryHandler) GetScales(c *gin.Context) {
	tonic := c.Param("tonic")
	pc, err := theory.NoteToPitchClass(tonic)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     err.Error(),
			RequestID: c.GetString("request_id"),
		})
		return
	}

	c.JSON(http.StatusOK, models.ScaleResponse{
		Tonic:         theory.NormalizeNote(tonic),
		Major:         theory.ScaleNames(theory.MajorScale(pc)),
		NaturalMinor:  theory.ScaleNames(theory.NaturalMinorScale(pc)),
		HarmonicMinor: theory.ScaleNames(theory.HarmonicMinorScale(pc)),
		MelodicMinor:  theory.ScaleNames(theory.MelodicMinorScale(pc)),
	})
}
