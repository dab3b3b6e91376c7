package search

import (
	"context"
	"strings"
	"sync"

	apperrors "homeinsight-analyzer/internal/errors"
	"homeinsight-analyzer/internal/models"
	"homeinsight-analyzer/pkg/logger"
)

// Mode selects which search path a submit takes.
type Mode string

const (
	StateMode Mode = "state"
	ZipMode   Mode = "zip"
)

// Phase is the request lifecycle axis, orthogonal to the mode.
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Error
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

const (
	stateQueryLen = 2
	zipQueryLen   = 5
)

// Client is the slice of the backend the controller needs.
type Client interface {
	StateRecommendations(ctx context.Context, state string) ([]models.RankedListing, error)
	ZipAnalysis(ctx context.Context, zip string) (*models.ZipAnalysis, error)
}

// State is an immutable snapshot of the controller for rendering.
type State struct {
	Mode    Mode
	Phase   Phase
	Query   string
	Page    int
	Error   string
	Results models.Results
}

// Controller owns the search view state. It is the only writer: every
// mutation goes through its named operations, and fetch completions are
// applied under the same lock. Each submit is tagged with a generation;
// a completion whose generation is stale is discarded, so rapid
// resubmission can never let an older response overwrite a newer one.
type Controller struct {
	client Client

	mu         sync.Mutex
	mode       Mode
	phase      Phase
	query      string
	page       int
	errMsg     string
	results    models.Results
	generation uint64

	updates chan struct{}
}

func NewController(client Client) *Controller {
	return &Controller{
		client:  client,
		mode:    StateMode,
		phase:   Idle,
		page:    1,
		updates: make(chan struct{}, 1),
	}
}

// Updates signals whenever a fetch completion changed the state.
func (c *Controller) Updates() <-chan struct{} {
	return c.updates
}

// State returns a copy of the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Mode:    c.mode,
		Phase:   c.phase,
		Query:   c.query,
		Page:    c.page,
		Error:   c.errMsg,
		Results: c.results,
	}
}

// SetMode switches the search mode. Switching to the current mode or an
// unknown one is a no-op; otherwise the controller fully resets so no
// stale results or errors leak across modes.
func (c *Controller) SetMode(mode Mode) {
	if mode != StateMode && mode != ZipMode {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if mode == c.mode {
		return
	}

	c.mode = mode
	c.phase = Idle
	c.query = ""
	c.page = 1
	c.errMsg = ""
	c.results = nil
}

// SetQuery normalizes and stores the input text: state codes are
// uppercased and capped at two characters, ZIP codes capped at five.
// Content validation is deferred to Submit.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.mode {
	case StateMode:
		text = strings.ToUpper(text)
		if len(text) > stateQueryLen {
			text = text[:stateQueryLen]
		}
	case ZipMode:
		if len(text) > zipQueryLen {
			text = text[:zipQueryLen]
		}
	}
	c.query = text
}

// CanSubmit reports whether the current query is complete for the mode.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submittable()
}

func (c *Controller) submittable() bool {
	switch c.mode {
	case StateMode:
		return len(c.query) == stateQueryLen
	case ZipMode:
		return len(c.query) == zipQueryLen
	}
	return false
}

// Submit validates the query and, if complete, issues exactly one fetch
// for the current mode. An incomplete query is rejected with no side
// effects and no network call. The fetch runs asynchronously; its result
// is applied through complete and announced on Updates.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if !c.submittable() {
		c.mu.Unlock()
		return false
	}

	c.phase = Loading
	c.errMsg = ""
	c.results = nil
	c.page = 1
	c.generation++
	gen := c.generation
	mode := c.mode
	query := c.query
	c.mu.Unlock()

	go c.fetch(ctx, gen, mode, query)
	return true
}

func (c *Controller) fetch(ctx context.Context, gen uint64, mode Mode, query string) {
	var results models.Results
	var err error

	switch mode {
	case StateMode:
		var listings []models.RankedListing
		listings, err = c.client.StateRecommendations(ctx, query)
		if err == nil {
			results = models.StateResults{Listings: listings}
		}
	case ZipMode:
		var analysis *models.ZipAnalysis
		analysis, err = c.client.ZipAnalysis(ctx, query)
		if err == nil {
			results = models.ZipResult{Analysis: analysis}
		}
	}

	c.complete(gen, results, err)
}

func (c *Controller) complete(gen uint64, results models.Results, err error) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		logger.GlobalLogger.Debugf("discarding stale search response: generation=%d, current=%d", gen, c.generation)
		return
	}

	if err != nil {
		c.phase = Error
		c.errMsg = apperrors.Resolve(err)
		c.results = nil
	} else {
		c.phase = Success
		c.errMsg = ""
		c.results = results
	}
	c.mu.Unlock()

	select {
	case c.updates <- struct{}{}:
	default:
	}
}

// SetPage moves to page n. It is legal only after a successful
// state-mode search; the caller is responsible for bounding n to the
// valid page range.
func (c *Controller) SetPage(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != Success || c.mode != StateMode {
		return false
	}
	c.page = n
	return true
}
