// Package intent extracts structured analysis requests from free-form chat
// messages. Parsing is best-effort and total: malformed fragments are skipped
// and every absent signal maps to a default, so Parse never fails.
package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

var (
	// Decimal latitude/longitude pairs like "31.5204,74.3587".
	coordPattern = regexp.MustCompile(`(\d+\.\d+)\s*,\s*(\d+\.\d+)`)

	// "from <date> to <date>" or "between <date> and <date>", where a date is
	// either YYYY-MM-DD or "<day> <month-name>".
	datePattern = regexp.MustCompile(`(?i)(?:from|between)\s*(\d{4}-\d{2}-\d{2}|\d{1,2}\s+\w+)\s*(?:to|and)\s*(\d{4}-\d{2}-\d{2}|\d{1,2}\s+\w+)`)
)

// analysisKeywords is checked in declared order; the first matching keyword
// wins, so "ndvi aur soil" resolves to ndvi_only. The order is part of the
// parser's contract.
var analysisKeywords = []struct {
	term string
	code models.AnalysisType
}{
	{"ndvi", models.AnalysisNDVIOnly},
	{"soil", models.AnalysisSoilMoisture},
	{"temperature", models.AnalysisTempOnly},
	{"health", models.AnalysisCropHealth},
	{"pest", models.AnalysisPestRisk},
}

// Parse extracts coordinates, a date range, the analysis type and the
// preferred language from a user message. It always returns a fresh,
// fully-defaulted intent.
func Parse(text string) *models.ParsedIntent {
	result := &models.ParsedIntent{
		AnalysisType:      models.AnalysisFull,
		Language:          models.LanguageEnglish,
		OtherInstructions: []string{},
		SpecialRequests:   []string{},
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return result
	}
	lower := strings.ToLower(text)

	if strings.Contains(lower, "urdu") || strings.Contains(text, "اردو") {
		result.Language = models.LanguageUrdu
	}

	for _, match := range coordPattern.FindAllStringSubmatch(text, -1) {
		lat, latErr := strconv.ParseFloat(match[1], 64)
		lon, lonErr := strconv.ParseFloat(match[2], 64)
		if latErr != nil || lonErr != nil {
			// A single malformed pair must not abort the remaining matches.
			continue
		}
		result.Coordinates = append(result.Coordinates, models.Coordinates{Lat: lat, Lon: lon})
	}

	if match := datePattern.FindStringSubmatch(text); match != nil {
		start, startOK := parseDate(match[1])
		end, endOK := parseDate(match[2])
		// Either bound failing discards the whole range, never half of it.
		if startOK && endOK {
			result.DateRange = &models.DateRange{Start: start, End: end}
		}
	}

	for _, kw := range analysisKeywords {
		if strings.Contains(lower, kw.term) {
			result.AnalysisType = kw.code
			break
		}
	}

	return result
}

// parseDate normalizes a single date token to YYYY-MM-DD. Day-month forms
// like "15 June" resolve against the current year.
func parseDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), true
	}

	if t, err := time.Parse("2 January", s); err == nil {
		resolved := time.Date(time.Now().Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return resolved.Format("2006-01-02"), true
	}

	return "", false
}
