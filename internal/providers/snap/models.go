package snap

import "strings"

// PointAPIResponse maps projection era keys (e.g. "2040_2070") to nested
// blocks of models, scenarios, and climate variables. The nesting depth
// varies across SNAP datasets, so the blocks stay untyped and are walked
// recursively.
type PointAPIResponse map[string]interface{}

// collectTemperatureFields walks a projection block and gathers every
// numeric value whose key contains "tas" (temperature at surface, °C).
func collectTemperatureFields(node interface{}, key string) []float64 {
	var values []float64
	switch v := node.(type) {
	case map[string]interface{}:
		for childKey, child := range v {
			values = append(values, collectTemperatureFields(child, childKey)...)
		}
	case []interface{}:
		for _, child := range v {
			values = append(values, collectTemperatureFields(child, key)...)
		}
	case float64:
		if strings.Contains(key, "tas") {
			values = append(values, v)
		}
	}
	return values
}
