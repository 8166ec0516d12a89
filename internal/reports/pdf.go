package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/sahilvr03/GIS-AGENT/internal/analysis"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
	"github.com/sahilvr03/GIS-AGENT/internal/reference"
)

const pageWidth = 180.0 // usable width in mm on A4 with default margins

// GeneratePDF renders the farm analysis report as a PDF document. The report
// body is English; chat summaries carry the bilingual rendition. A batch with
// no points at all is a structural error, a batch whose points all failed
// still yields a document flagged Partial.
func (s *Synthesizer) GeneratePDF(batch *models.AnalysisBatch, intent *models.ParsedIntent) ([]byte, error) {
	if batch == nil || len(batch.Keys) == 0 {
		return nil, ErrEmptyBatch
	}

	status := completionStatus(batch)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Farm Analysis Report", false)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}  |  Analysis: %s", pdf.PageNo(), status),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	s.writeCover(pdf, batch)

	if !batch.HasValidPoint() {
		s.writeWarningBanner(pdf)
	}
	s.writeIssueSummary(pdf, batch)

	valid := 0
	for _, key := range batch.Keys {
		if !batch.Points[key].Failed() {
			valid++
		}
	}

	rendered := 0
	for i, key := range batch.Keys {
		p := batch.Points[key]
		if p.Failed() {
			continue
		}
		if err := s.writePointSection(pdf, key, i, p); err != nil {
			return nil, err
		}
		rendered++
		if rendered < valid {
			pdf.AddPage()
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	s.log.Infof("generated %s report, %d bytes", status, buf.Len())
	return buf.Bytes(), nil
}

func (s *Synthesizer) writeCover(pdf *gofpdf.Fpdf, batch *models.AnalysisBatch) {
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(pageWidth, 14, "Farm Analysis Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(pageWidth, 8,
		fmt.Sprintf("Generated: %s", batch.GeneratedAt.Format("2 January 2006 15:04")),
		"", 1, "C", false, 0, "")
	pdf.CellFormat(pageWidth, 8,
		fmt.Sprintf("Analysis points: %d", len(batch.Keys)),
		"", 1, "C", false, 0, "")
	pdf.Ln(6)
}

func (s *Synthesizer) writeWarningBanner(pdf *gofpdf.Fpdf) {
	pdf.SetFillColor(247, 216, 110)
	pdf.SetFont("Arial", "B", 12)
	pdf.MultiCell(pageWidth, 9,
		"Warning: no valid analysis results are available for this request. "+
			"See the issues below and retry with coordinates inside Pakistan.",
		"1", "L", true)
	pdf.Ln(4)
}

func (s *Synthesizer) writeIssueSummary(pdf *gofpdf.Fpdf, batch *models.AnalysisBatch) {
	failed := failedKeys(batch)
	if len(failed) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(pageWidth, 9, "Issues", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, key := range failed {
		p := batch.Points[key]
		pdf.MultiCell(pageWidth, 6,
			fmt.Sprintf("- %s (%s): %s", key, p.Coordinates, p.Err),
			"", "L", false)
	}
	pdf.Ln(4)
}

func (s *Synthesizer) writePointSection(pdf *gofpdf.Fpdf, key string, index int, p *models.PointResult) error {
	images, err := s.charts.GeneratePointCharts(key, p)
	if err != nil {
		return fmt.Errorf("failed to generate charts for %s: %w", key, err)
	}

	pdf.SetFont("Arial", "B", 15)
	pdf.CellFormat(pageWidth, 10,
		fmt.Sprintf("Analysis Point %d: %s", index+1, p.Coordinates),
		"", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth, 6,
		fmt.Sprintf("Analysis period: %s", p.AnalysisPeriod),
		"", 1, "L", false, 0, "")
	pdf.Ln(2)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}

	if p.NDVI != nil {
		pdf.ImageOptions(images.NDVIScale, 15, 0, pageWidth, 0, true, imgOpts, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(pageWidth, 6,
			fmt.Sprintf("Crop health: %s. %s", p.CropHealth, analysis.HealthInterpretation(p.CropHealth)),
			"", "L", false)
		pdf.Ln(2)
	}

	if p.SoilMoisture != nil {
		percent := analysis.MoisturePercent(*p.SoilMoisture)
		pdf.ImageOptions(images.MoistureMeter, 15, 0, pageWidth, 0, true, imgOpts, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(pageWidth, 6,
			fmt.Sprintf("Soil moisture: %.0f%%. %s", percent, analysis.MoistureRecommendation(percent)),
			"", "L", false)
		pdf.Ln(2)
	}

	if p.Weather != nil {
		s.writeWeatherTable(pdf, p.Weather)
		if images.WeatherBars != "" {
			pdf.ImageOptions(images.WeatherBars, 15, 0, pageWidth, 0, true, imgOpts, 0, "")
		}
		if p.Weather.TemperatureC != nil {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(pageWidth, 6, analysis.TemperatureImpact(*p.Weather.TemperatureC), "", "L", false)
		}
		pdf.Ln(2)
	}

	recs := analysis.Recommendations(p)
	if len(recs) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(pageWidth, 8, "Recommendations", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, rec := range recs {
			pdf.MultiCell(pageWidth, 6, "- "+rec, "", "L", false)
		}
		pdf.Ln(2)
	}

	// Each successful point carries its own scheme excerpt so a single
	// point's page is self-contained when printed or shared.
	s.writeSchemes(pdf)

	return nil
}

func (s *Synthesizer) writeWeatherTable(pdf *gofpdf.Fpdf, w *models.WeatherReport) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pageWidth, 8, "Current Weather", "", 1, "L", false, 0, "")

	rows := [][2]string{
		{"Temperature (C)", w.Temperature},
		{"Humidity (%)", w.Humidity},
		{"Wind (km/h)", w.WindSpeed},
		{"Conditions", w.Conditions},
		{"Rain (mm)", w.Rain},
	}

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(60, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(pageWidth-60, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

func (s *Synthesizer) writeSchemes(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(pageWidth, 9, "Government Support Schemes", "", 1, "L", false, 0, "")

	for i, scheme := range reference.Schemes() {
		if i >= 3 {
			break
		}
		view := scheme.Localized(models.LanguageEnglish)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(pageWidth, 7, view.Name, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(pageWidth, 6, view.Description, "", "L", false)
		pdf.MultiCell(pageWidth, 6, "Eligibility: "+view.Eligibility, "", "L", false)
		pdf.MultiCell(pageWidth, 6, "Benefits: "+view.Benefits, "", "L", false)
		pdf.Ln(2)
	}
}
