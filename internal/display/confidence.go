package display

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Tier buckets a confidence score for presentation
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// ConfidenceTier maps c to high (>= 0.8), medium (>= 0.6) or low
func ConfidenceTier(c float64) Tier {
	switch {
	case c >= 0.8:
		return TierHigh
	case c >= 0.6:
		return TierMedium
	default:
		return TierLow
	}
}

// ConfidencePercentText renders c as a whole percentage, e.g. "85%"
func ConfidencePercentText(c float64) string {
	if math.IsNaN(c) || c < 0 {
		c = 0
	}
	return fmt.Sprintf("%d%%", int(math.Round(c*100)))
}

// Color returns the terminal colour for the tier
func (t Tier) Color() lipgloss.Color {
	switch t {
	case TierHigh:
		return lipgloss.Color("40")
	case TierMedium:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("196")
	}
}

// Style returns a lipgloss style for the tier
func (t Tier) Style() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Color())
}

// RenderConfidence renders the percentage in its tier colour
func RenderConfidence(c float64) string {
	return ConfidenceTier(c).Style().Render(ConfidencePercentText(c))
}
