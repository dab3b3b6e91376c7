package cache

import "fmt"

// cache key for a state's ranked recommendations.
func RecommendationsKey(state string) string {
	return fmt.Sprintf("recommendations:state:%s", state)
}

// cache key for a single ZIP analysis.
func AnalysisKey(zip string) string {
	return fmt.Sprintf("analysis:zip:%s", zip)
}

// cache key for a state's MSA chart points.
func MsiKey(state string) string {
	return fmt.Sprintf("msi:state:%s", state)
}

// cache key for the model evaluation chart list.
func EvaluationKey() string {
	return "evaluation:charts"
}
