// Command preview generates a sample farm report from deterministic mock data
// without external credentials, for inspecting report output locally.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sahilvr03/GIS-AGENT/internal/analysis"
	"github.com/sahilvr03/GIS-AGENT/internal/intent"
	"github.com/sahilvr03/GIS-AGENT/internal/llm"
	"github.com/sahilvr03/GIS-AGENT/internal/mocks"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
	"github.com/sahilvr03/GIS-AGENT/internal/reports"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("preview failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	start := time.Now()

	log.Println("Generating preview report from mock data...")

	message := "31.5204, 74.3587 aur 33.6844, 73.0479 par fasal ka tajzia karein"
	parsed := intent.Parse(message)
	log.Printf("Parsed %d coordinate pairs, analysis type %s", len(parsed.Coordinates), parsed.AnalysisType)

	analyzer := analysis.New(mocks.NewSatelliteClient(), mocks.NewWeatherProvider())
	batch, err := analyzer.Analyze(ctx, parsed.Coordinates, parsed.DateRange, parsed.AnalysisType, parsed.OtherInstructions)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	outDir := filepath.Join("reports", "preview-"+time.Now().Format("2006-01-02_15-04-05"))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	batchJSON, _ := json.MarshalIndent(batch, "", "  ")
	if err := os.WriteFile(filepath.Join(outDir, "analysis.json"), batchJSON, 0644); err != nil {
		return fmt.Errorf("failed to save analysis data: %w", err)
	}

	synth := reports.NewSynthesizer(filepath.Join(outDir, "charts"), llm.NewClient("", "", ""))

	pdfData, err := synth.GeneratePDF(batch, parsed)
	if err != nil {
		return fmt.Errorf("PDF generation failed: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "farm_report.pdf"), pdfData, 0644); err != nil {
		return fmt.Errorf("failed to save PDF: %w", err)
	}

	htmlDoc, err := synth.GenerateHTML(ctx, batch, parsed, nil)
	if err != nil {
		return fmt.Errorf("HTML generation failed: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "farm_report.html"), []byte(htmlDoc), 0644); err != nil {
		return fmt.Errorf("failed to save HTML: %w", err)
	}

	summary := reports.ChatSummary(batch, models.LanguageEnglish, "farm_report.pdf")
	if err := os.WriteFile(filepath.Join(outDir, "summary.md"), []byte(summary), 0644); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}

	log.Printf("Preview report written to %s in %s", outDir, time.Since(start).Round(time.Millisecond))
	return nil
}
