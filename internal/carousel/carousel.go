package carousel

import "homeinsight-analyzer/internal/models"

// Carousel provides cyclic navigation over a fixed list of evaluation
// charts fetched once. Navigation on an empty list is a no-op; callers
// render a placeholder instead.
type Carousel struct {
	charts []models.EvaluationChart
	index  int
}

func New(charts []models.EvaluationChart) *Carousel {
	return &Carousel{charts: charts}
}

// Next advances to the following chart, wrapping to the first.
func (c *Carousel) Next() {
	if len(c.charts) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.charts)
}

// Previous steps back to the preceding chart, wrapping to the last.
func (c *Carousel) Previous() {
	if len(c.charts) == 0 {
		return
	}
	c.index = (c.index - 1 + len(c.charts)) % len(c.charts)
}

// Current returns the chart at the cursor, or false when the list is empty.
func (c *Carousel) Current() (models.EvaluationChart, bool) {
	if len(c.charts) == 0 {
		return models.EvaluationChart{}, false
	}
	return c.charts[c.index], true
}

// Position reports the 1-based cursor and total count for display.
func (c *Carousel) Position() (int, int) {
	if len(c.charts) == 0 {
		return 0, 0
	}
	return c.index + 1, len(c.charts)
}

func (c *Carousel) Len() int {
	return len(c.charts)
}
