// Package suggest builds ranked date completions for partially typed text.
//
// Suggestions are produced in three stages. Candidates expands templates from
// the input text (no parsing happens there), Generator.Validate re-parses every
// candidate with the same parser used for the input and drops the ones that do
// not resolve, and Rank removes duplicates, orders by confidence and narrows
// the list according to the confidence of the best entry.
package suggest

import (
	"fmt"
	"time"
)

// Category is the kind of completion a suggestion offers
type Category int

const (
	CategoryRelative Category = iota
	CategoryTime
	CategoryDate
	CategoryNatural
)

var categoryNames = [...]string{
	CategoryRelative: "relative",
	CategoryTime:     "time",
	CategoryDate:     "date",
	CategoryNatural:  "natural",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name
func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("invalid category %q", string(text))
}

// Suggestion is one validated completion
type Suggestion struct {
	Label      string     `json:"label"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
	Preview    string     `json:"preview"`
	ParsedDate *time.Time `json:"parsed_date,omitempty"`
	Category   Category   `json:"category"`
}
