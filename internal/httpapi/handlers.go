package httpapi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeBiancalana/quickdate/internal/clock"
	"github.com/MikeBiancalana/quickdate/internal/dateparse"
	"github.com/MikeBiancalana/quickdate/internal/display"
	"github.com/MikeBiancalana/quickdate/internal/suggest"
)

// ParseResponse is the payload of GET /api/v1/parse
type ParseResponse struct {
	Input          string            `json:"input"`
	Found          bool              `json:"found"`
	Result         *dateparse.Result `json:"result,omitempty"`
	Editable       string            `json:"editable,omitempty"`
	Display        string            `json:"display,omitempty"`
	Relative       string            `json:"relative,omitempty"`
	ConfidenceText string            `json:"confidence_text,omitempty"`
	Tier           display.Tier      `json:"tier,omitempty"`
}

// SuggestionsResponse is the payload of GET /api/v1/suggestions
type SuggestionsResponse struct {
	Input       string               `json:"input"`
	TimeEnabled bool                 `json:"time_enabled"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

// DueResponse is the payload of GET /api/v1/due
type DueResponse struct {
	Input string          `json:"input"`
	Due   display.DueInfo `json:"due"`
	Date  *time.Time      `json:"date,omitempty"`
}

func (srv *Server) healthCheck(c *gin.Context) {
	OK(c, gin.H{
		"status":  "healthy",
		"service": "quickdate",
	})
}

// now reads the optional "now" query parameter, falling back to the clock
func (srv *Server) now(c *gin.Context) (time.Time, error) {
	current := srv.engine.Now()
	value := c.Query("now")
	if value == "" {
		return current, nil
	}
	return clock.Parse(value, current.Location())
}

func (srv *Server) handleParse(c *gin.Context) {
	now, err := srv.now(c)
	if err != nil {
		BadRequest(c, err)
		return
	}

	input := c.Query("q")
	resp := ParseResponse{Input: input}
	if result, ok := srv.engine.Parse(input, now); ok {
		resp.Found = true
		resp.Result = &result
		resp.Editable = display.FormatForEditing(result.Date, result.Components.Time != "")
		resp.Display = display.FormatForDisplay(result.Date, srv.displayLayout)
		resp.Relative = display.RelativeTimeText(result.Date, now)
		resp.ConfidenceText = display.ConfidencePercentText(result.Confidence)
		resp.Tier = display.ConfidenceTier(result.Confidence)
	}
	OK(c, resp)
}

func (srv *Server) handleSuggestions(c *gin.Context) {
	now, err := srv.now(c)
	if err != nil {
		BadRequest(c, err)
		return
	}

	timeEnabled := srv.timeEnabled
	if raw := c.Query("time"); raw != "" {
		timeEnabled, err = strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, fmt.Errorf("invalid time flag %q", raw))
			return
		}
	}

	input := c.Query("q")
	suggestions := srv.engine.Suggest(input, timeEnabled, now)
	if suggestions == nil {
		suggestions = []suggest.Suggestion{}
	}
	OK(c, SuggestionsResponse{
		Input:       input,
		TimeEnabled: timeEnabled,
		Suggestions: suggestions,
	})
}

func (srv *Server) handleDue(c *gin.Context) {
	now, err := srv.now(c)
	if err != nil {
		BadRequest(c, err)
		return
	}

	input := c.Query("q")
	info, result := srv.engine.Due(input, now)
	resp := DueResponse{Input: input, Due: info}
	if result != nil {
		resp.Date = &result.Date
	}
	OK(c, resp)
}
