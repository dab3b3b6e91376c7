package devserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers serves the four upstream endpoints from canned fixtures.
type Handlers struct {
	store *Store
}

func NewHandlers(store *Store) *Handlers {
	return &Handlers{store: store}
}

// GetRecommendations returns the ranked listings for a state.
func (h *Handlers) GetRecommendations(c *gin.Context) {
	state := c.Param("state")
	listings, ok := h.store.Recommendations(state)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No data available for state %s", state)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": listings})
}

// GetAnalysis returns the analysis for a ZIP code, or a 404 carrying the
// numerically closest known ZIP codes as suggestions.
func (h *Handlers) GetAnalysis(c *gin.Context) {
	zip := c.Param("zip")
	analysis, ok := h.store.Analysis(zip)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":       fmt.Sprintf("No data available for ZIP code %s", zip),
			"nearby_zips": h.store.NearbyZips(zip),
		})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// GetMsiAnalysis returns the per-MSA chart points for a state.
func (h *Handlers) GetMsiAnalysis(c *gin.Context) {
	state := c.Param("state")
	points, ok := h.store.Msi(state)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No data found for state %s", state)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msi_data": points})
}

// GetModelEvaluation returns the evaluation charts in display order.
func (h *Handlers) GetModelEvaluation(c *gin.Context) {
	charts := h.store.Evaluation()
	if len(charts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No evaluation results found"})
		return
	}
	c.JSON(http.StatusOK, charts)
}
