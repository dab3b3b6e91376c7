package devserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeinsight-analyzer/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func serve(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newTestRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewStore(testFixtures()), limiter)
}

func TestGetRecommendations(t *testing.T) {
	router := newTestRouter(nil)

	w := serve(t, router, "/api/recommendations/MA")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Recommendations []models.RankedListing `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 2)
	assert.Equal(t, "02108", body.Recommendations[0].ZipCode)
}

func TestGetRecommendationsNotFound(t *testing.T) {
	router := newTestRouter(nil)

	w := serve(t, router, "/api/recommendations/ZZ")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No data available for state ZZ", body["error"])
}

func TestGetAnalysis(t *testing.T) {
	router := newTestRouter(nil)

	w := serve(t, router, "/api/analysis/02108")
	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.ZipAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.Equal(t, "Boston", analysis.City)
}

func TestGetAnalysisNotFoundCarriesNearbyZips(t *testing.T) {
	router := newTestRouter(nil)

	w := serve(t, router, "/api/analysis/02110")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Error      string                   `json:"error"`
		NearbyZips []models.NearbyCandidate `json:"nearby_zips"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "No data available for ZIP code 02110", body.Error)
	require.Len(t, body.NearbyZips, 3)
	assert.Equal(t, "02109", body.NearbyZips[0].ZipCode)
}

func TestGetMsiAnalysis(t *testing.T) {
	router := newTestRouter(nil)

	w := serve(t, router, "/api/msi-analysis/MA")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		MsiData []models.MsiPoint `json:"msi_data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.MsiData, 2)

	w = serve(t, router, "/api/msi-analysis/ZZ")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetModelEvaluationOrdered(t *testing.T) {
	router := newTestRouter(nil)

	w := serve(t, router, "/api/model-evaluation")
	require.Equal(t, http.StatusOK, w.Code)

	var charts []models.EvaluationChart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &charts))
	require.Len(t, charts, 3)
	assert.Equal(t, "Confusion Matrix", charts[0].Title)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(nil)
	w := serve(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	limiter := NewRateLimiter(rate.Limit(0.001), 2)
	router := newTestRouter(limiter)

	assert.Equal(t, http.StatusOK, serve(t, router, "/health").Code)
	assert.Equal(t, http.StatusOK, serve(t, router, "/health").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, router, "/health").Code)
}
