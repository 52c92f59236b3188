package display

import "github.com/finsight-cli/finsight/internal/model"

// InsightIcon returns the glyph for an AI insight type.
func InsightIcon(t model.InsightType) string {
	switch t {
	case model.InsightAnomaly:
		return "⚠️"
	case model.InsightForecast:
		return "📈"
	case model.InsightBudget:
		return "✂️"
	default:
		return "ℹ️"
	}
}

// InsightColor returns the card color for an insight: warnings render
// red, everything else blue.
func InsightColor(i model.Insight) Color {
	if i.Warning() {
		return Red
	}
	return Blue
}
