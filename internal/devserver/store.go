package devserver

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"homeinsight-analyzer/internal/models"

	"gopkg.in/yaml.v3"
)

// numNearby is how many neighbor suggestions a failed ZIP lookup carries.
const numNearby = 3

// canonical display order for evaluation charts, keyed by normalized title.
var chartOrder = []string{
	"confusion_matrix",
	"classification_report",
	"roc_curve",
	"feature_importance",
	"prediction_distribution",
	"score_distribution",
}

// Fixtures is the canned dataset served by the stub. It mirrors the
// upstream wire shapes directly so no scoring happens here.
type Fixtures struct {
	Recommendations map[string][]models.RankedListing `yaml:"recommendations"`
	Analyses        map[string]models.ZipAnalysis     `yaml:"analyses"`
	Msi             map[string][]models.MsiPoint      `yaml:"msi"`
	Evaluation      []models.EvaluationChart          `yaml:"evaluation"`
}

// Store answers endpoint queries from loaded fixtures. Read-only after
// construction, safe for concurrent handlers.
type Store struct {
	fixtures Fixtures
}

func NewStore(fixtures Fixtures) *Store {
	return &Store{fixtures: fixtures}
}

// LoadStore reads a fixture file from disk.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %v", err)
	}
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixtures: %v", err)
	}
	return NewStore(fixtures), nil
}

func (s *Store) Recommendations(state string) ([]models.RankedListing, bool) {
	listings, ok := s.fixtures.Recommendations[strings.ToUpper(state)]
	return listings, ok && len(listings) > 0
}

func (s *Store) Analysis(zip string) (*models.ZipAnalysis, bool) {
	analysis, ok := s.fixtures.Analyses[zip]
	if !ok {
		return nil, false
	}
	return &analysis, true
}

func (s *Store) Msi(state string) ([]models.MsiPoint, bool) {
	points, ok := s.fixtures.Msi[strings.ToUpper(state)]
	return points, ok && len(points) > 0
}

// NearbyZips returns the known ZIP codes numerically closest to the
// target, for suggestion messages after a failed lookup.
func (s *Store) NearbyZips(zip string) []models.NearbyCandidate {
	target, err := strconv.Atoi(zip)
	if err != nil {
		return nil
	}

	type distance struct {
		zip  string
		dist int
	}
	distances := make([]distance, 0, len(s.fixtures.Analyses))
	for known := range s.fixtures.Analyses {
		if known == zip {
			continue
		}
		value, err := strconv.Atoi(known)
		if err != nil {
			continue
		}
		d := value - target
		if d < 0 {
			d = -d
		}
		distances = append(distances, distance{zip: known, dist: d})
	}

	sort.Slice(distances, func(i, j int) bool {
		if distances[i].dist != distances[j].dist {
			return distances[i].dist < distances[j].dist
		}
		return distances[i].zip < distances[j].zip
	})

	if len(distances) > numNearby {
		distances = distances[:numNearby]
	}

	nearby := make([]models.NearbyCandidate, 0, len(distances))
	for _, d := range distances {
		analysis := s.fixtures.Analyses[d.zip]
		nearby = append(nearby, models.NearbyCandidate{
			ZipCode: d.zip,
			City:    analysis.City,
			State:   analysis.State,
		})
	}
	return nearby
}

// Evaluation returns the charts in canonical display order.
func (s *Store) Evaluation() []models.EvaluationChart {
	charts := make([]models.EvaluationChart, len(s.fixtures.Evaluation))
	copy(charts, s.fixtures.Evaluation)

	rank := func(c models.EvaluationChart) int {
		key := strings.ReplaceAll(strings.ToLower(c.Title), " ", "_")
		for i, name := range chartOrder {
			if name == key {
				return i
			}
		}
		return len(chartOrder)
	}
	sort.SliceStable(charts, func(i, j int) bool {
		return rank(charts[i]) < rank(charts[j])
	})
	return charts
}
