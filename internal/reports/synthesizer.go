// Package reports turns analysis batches into farmer-facing documents: the
// downloadable PDF report, an HTML rendition for web clients, and the chat
// summary sent back in the conversation.
package reports

import (
	"errors"

	"github.com/sahilvr03/GIS-AGENT/internal/charts"
	"github.com/sahilvr03/GIS-AGENT/internal/llm"
	"github.com/sahilvr03/GIS-AGENT/internal/logger"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// ErrEmptyBatch is the structural failure for a report request without any
// analysis points. Batches whose points all failed still produce a document.
var ErrEmptyBatch = errors.New("no analysis points to report")

// Synthesizer builds report documents from analysis batches.
type Synthesizer struct {
	charts *charts.Generator
	llm    *llm.Client
	log    *logger.Logger
}

// NewSynthesizer creates a report synthesizer. Chart images are written into
// chartsDir. llmClient may be disabled; the advisory section is skipped then.
func NewSynthesizer(chartsDir string, llmClient *llm.Client) *Synthesizer {
	return &Synthesizer{
		charts: charts.NewGenerator(chartsDir),
		llm:    llmClient,
		log:    logger.GetGlobalLogger().WithComponent("reports"),
	}
}

// failedKeys returns the keys of failed points in input order.
func failedKeys(batch *models.AnalysisBatch) []string {
	var keys []string
	for _, key := range batch.Keys {
		if batch.Points[key].Failed() {
			keys = append(keys, key)
		}
	}
	return keys
}

// completionStatus is printed in the document footer. A document counts as
// Complete as soon as any point succeeded; Partial means nothing usable came
// back.
func completionStatus(batch *models.AnalysisBatch) string {
	if !batch.HasValidPoint() {
		return "Partial"
	}
	return "Complete"
}
