package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "homeinsight-analyzer/internal/errors"
	"homeinsight-analyzer/internal/models"
	"homeinsight-analyzer/pkg/logger"
	"homeinsight-analyzer/pkg/metrics"

	"github.com/google/uuid"
)

// Client calls the scoring backend's REST endpoints. The base URL is
// injected so tests can point it at a local stub.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: 3,
	}
}

// DocsURL is the upstream API documentation page, opened in an external
// browsing context by the caller.
func (c *Client) DocsURL() string {
	return c.baseURL + "/swagger/"
}

type recommendationsResponse struct {
	Recommendations []models.RankedListing `json:"recommendations"`
}

type msiResponse struct {
	MsiData []models.MsiPoint `json:"msi_data"`
}

type errorResponse struct {
	Error      string                   `json:"error"`
	NearbyZips []models.NearbyCandidate `json:"nearby_zips"`
}

// StateRecommendations fetches the ranked listings for a two-letter state code.
func (c *Client) StateRecommendations(ctx context.Context, state string) ([]models.RankedListing, error) {
	var resp recommendationsResponse
	if err := c.get(ctx, "recommendations", "/api/recommendations/"+state, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}

// ZipAnalysis fetches the single-record analysis for a five-digit ZIP code.
func (c *Client) ZipAnalysis(ctx context.Context, zip string) (*models.ZipAnalysis, error) {
	var resp models.ZipAnalysis
	if err := c.get(ctx, "analysis", "/api/analysis/"+zip, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MsiAnalysis fetches the per-MSA chart points for a state.
func (c *Client) MsiAnalysis(ctx context.Context, state string) ([]models.MsiPoint, error) {
	var resp msiResponse
	if err := c.get(ctx, "msi-analysis", "/api/msi-analysis/"+state, &resp); err != nil {
		return nil, err
	}
	return resp.MsiData, nil
}

// ModelEvaluation fetches the precomputed evaluation charts.
func (c *Client) ModelEvaluation(ctx context.Context) ([]models.EvaluationChart, error) {
	var charts []models.EvaluationChart
	if err := c.get(ctx, "model-evaluation", "/api/model-evaluation", &charts); err != nil {
		return nil, err
	}
	return charts, nil
}

// get performs one logical GET. Pure transport failures are retried with
// a linear backoff; any response the server actually produced, including
// a structured error body, is terminal for the request.
func (c *Client) get(ctx context.Context, endpoint, path string, out interface{}) error {
	url := c.baseURL + path
	requestID := uuid.NewString()
	start := time.Now()

	var resp *http.Response
	for attempt := 1; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return apperrors.NewRequestError("failed to create request", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)

		resp, err = c.httpClient.Do(req)
		if err == nil {
			break
		}

		logger.GlobalLogger.Errorf("request failed (attempt %d/%d): url=%s, request_id=%s, error=%v", attempt, c.maxRetries, url, requestID, err)
		if attempt == c.maxRetries || ctx.Err() != nil {
			metrics.APIRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
			return apperrors.NewRequestError(apperrors.FallbackMessage, err)
		}
		select {
		case <-time.After(time.Duration(attempt) * time.Second):
		case <-ctx.Done():
			metrics.APIRequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
			return apperrors.NewRequestError(apperrors.FallbackMessage, ctx.Err())
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return apperrors.NewRequestError("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return c.decodeError(url, requestID, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		logger.GlobalLogger.Errorf("failed to decode response: url=%s, request_id=%s, error=%v", url, requestID, err)
		return apperrors.NewRequestError("failed to decode response", err)
	}
	return nil
}

// decodeError maps a non-2xx response into an AppError, carrying nearby
// ZIP suggestions through when the backend provides them.
func (c *Client) decodeError(url, requestID string, status int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		logger.GlobalLogger.Errorf("request failed without structured body: url=%s, request_id=%s, status=%d", url, requestID, status)
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = fmt.Sprintf("%d %s", status, http.StatusText(status))
		}
		return apperrors.NewServerError(message, apperrors.ErrCodeServiceUnavailable, status)
	}

	logger.GlobalLogger.Debugf("request rejected: url=%s, request_id=%s, status=%d, error=%s", url, requestID, status, errResp.Error)

	switch status {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(errResp.Error, status, errResp.NearbyZips)
	case http.StatusTooManyRequests:
		return apperrors.NewServerError(errResp.Error, apperrors.ErrCodeRateLimited, status)
	default:
		return apperrors.NewServerError(errResp.Error, apperrors.ErrCodeServiceUnavailable, status)
	}
}
