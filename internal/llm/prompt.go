package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sahilvr03/GIS-AGENT/internal/advisory"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// buildAdvisoryPrompt embeds the batch results as JSON so the model reasons
// over exact numbers instead of a lossy summary. Recent agromet bulletins, when
// available, give the model regional context beyond the point measurements.
func buildAdvisoryPrompt(batch *models.AnalysisBatch, lang models.Language, bulletins []advisory.Advisory) string {
	var b strings.Builder

	b.WriteString("Write a concise farm advisory in markdown for the satellite analysis results below.\n")
	b.WriteString("Cover crop health, irrigation and weather-related risks per analysis point.\n")
	b.WriteString("Keep it under 300 words and use short headed sections.\n")
	if lang == models.LanguageUrdu {
		b.WriteString("Respond in Urdu with English technical terms in parentheses.\n")
	} else {
		b.WriteString("Respond in English.\n")
	}

	b.WriteString("\n## ANALYSIS RESULTS\n")
	for _, key := range batch.Keys {
		p := batch.Points[key]
		if p == nil {
			continue
		}
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n```json\n%s\n```\n", key, data)
	}

	if len(bulletins) > 0 {
		b.WriteString("\n## RECENT AGROMET BULLETINS\n")
		for _, item := range bulletins {
			fmt.Fprintf(&b, "- %s: %s\n", item.Title, item.Summary)
		}
		b.WriteString("Fold bulletin guidance into the advisory where it applies to the points above.\n")
	}

	return b.String()
}
