package reports

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/sahilvr03/GIS-AGENT/internal/advisory"
	"github.com/sahilvr03/GIS-AGENT/internal/analysis"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Farm Analysis Report</title>
<style>
body { font-family: Arial, sans-serif; max-width: 960px; margin: 0 auto; padding: 20px; color: #222; }
h1 { color: #2e7d32; }
h2 { border-bottom: 2px solid #a5d6a7; padding-bottom: 4px; }
.warning { background: #fff3cd; border: 1px solid #ffc107; padding: 12px; border-radius: 6px; }
.issue { color: #b71c1c; }
table { border-collapse: collapse; margin: 10px 0; }
td, th { border: 1px solid #bbb; padding: 6px 12px; }
.advisory-item { margin-bottom: 10px; }
.footer { margin-top: 30px; font-size: 0.85em; color: #777; text-align: center; }
</style>
</head>
<body>
<h1>Farm Analysis Report</h1>
<p>Generated: {{.GeneratedAt}} | Analysis points: {{.PointCount}}</p>
{{if .Warning}}<div class="warning">{{.Warning}}</div>{{end}}
{{if .Issues}}
<h2>Issues</h2>
<ul>{{range .Issues}}<li class="issue">{{.}}</li>{{end}}</ul>
{{end}}
{{range .Points}}
<h2>{{.Heading}}</h2>
<p>Analysis period: {{.Period}}</p>
{{.GaugeHTML}}
{{if .Weather}}
<h3>Current Weather</h3>
<table>
<tr><td>Temperature (C)</td><td>{{.Weather.Temperature}}</td></tr>
<tr><td>Humidity (%)</td><td>{{.Weather.Humidity}}</td></tr>
<tr><td>Wind (km/h)</td><td>{{.Weather.WindSpeed}}</td></tr>
<tr><td>Conditions</td><td>{{.Weather.Conditions}}</td></tr>
<tr><td>Rain (mm)</td><td>{{.Weather.Rain}}</td></tr>
</table>
{{end}}
{{if .Recommendations}}
<h3>Recommendations</h3>
<ul>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{end}}
{{if .AdvisoryHTML}}
<h2>Advisory</h2>
{{.AdvisoryHTML}}
{{end}}
{{if .Bulletins}}
<h2>Agromet Bulletins</h2>
{{range .Bulletins}}<div class="advisory-item"><a href="{{.Link}}">{{.Title}}</a><br>{{.Summary}}</div>{{end}}
{{end}}
<div class="footer">Analysis: {{.Status}}</div>
</body>
</html>`))

type pointView struct {
	Heading         string
	Period          string
	GaugeHTML       template.HTML
	Weather         *models.WeatherReport
	Recommendations []string
}

type pageData struct {
	GeneratedAt  string
	PointCount   int
	Warning      string
	Issues       []string
	Points       []pointView
	AdvisoryHTML template.HTML
	Bulletins    []advisory.Advisory
	Status       string
}

// GenerateHTML renders the analysis batch as a standalone HTML page with
// interactive gauges, an optional model-written advisory section, and recent
// agromet bulletins.
func (s *Synthesizer) GenerateHTML(ctx context.Context, batch *models.AnalysisBatch, intent *models.ParsedIntent, bulletins []advisory.Advisory) (string, error) {
	if batch == nil || len(batch.Keys) == 0 {
		return "", ErrEmptyBatch
	}

	data := pageData{
		GeneratedAt: batch.GeneratedAt.Format("2 January 2006 15:04"),
		PointCount:  len(batch.Keys),
		Status:      completionStatus(batch),
		Bulletins:   bulletins,
	}

	if !batch.HasValidPoint() {
		data.Warning = "Warning: no valid analysis results are available for this request."
	}
	for _, key := range failedKeys(batch) {
		p := batch.Points[key]
		data.Issues = append(data.Issues, fmt.Sprintf("%s (%s): %s", key, p.Coordinates, p.Err))
	}

	for i, key := range batch.Keys {
		p := batch.Points[key]
		if p.Failed() {
			continue
		}
		gauges, err := s.renderGauges(key, p)
		if err != nil {
			return "", err
		}
		data.Points = append(data.Points, pointView{
			Heading:         fmt.Sprintf("Analysis Point %d: %s", i+1, p.Coordinates),
			Period:          p.AnalysisPeriod.String(),
			GaugeHTML:       template.HTML(gauges),
			Weather:         p.Weather,
			Recommendations: analysis.Recommendations(p),
		})
	}

	lang := models.LanguageEnglish
	if intent != nil {
		lang = intent.Language
	}
	if s.llm != nil && s.llm.Enabled() {
		narrative, err := s.llm.GenerateAdvisory(ctx, batch, lang, bulletins)
		if err != nil {
			s.log.Warnf("advisory generation failed: %v", err)
		} else if narrative != "" {
			html, err := renderMarkdown(narrative)
			if err != nil {
				s.log.Warnf("advisory markdown conversion failed: %v", err)
			} else {
				data.AdvisoryHTML = template.HTML(html)
			}
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.String(), nil
}

// renderGauges builds the NDVI and soil moisture gauge snippets for a point.
func (s *Synthesizer) renderGauges(key string, p *models.PointResult) (string, error) {
	var parts []string

	if p.NDVI != nil {
		snippet, err := renderGauge(
			fmt.Sprintf("NDVI (%s)", p.CropHealth),
			float32(*p.NDVI*100),
		)
		if err != nil {
			return "", fmt.Errorf("failed to render NDVI gauge for %s: %w", key, err)
		}
		parts = append(parts, snippet)
	}

	if p.SoilMoisture != nil {
		percent := analysis.MoisturePercent(*p.SoilMoisture)
		snippet, err := renderGauge("Soil Moisture %", float32(percent))
		if err != nil {
			return "", fmt.Errorf("failed to render moisture gauge for %s: %w", key, err)
		}
		parts = append(parts, snippet)
	}

	return strings.Join(parts, "\n"), nil
}

func renderGauge(name string, value float32) (string, error) {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "420px",
			Height: "320px",
		}),
		charts.WithTitleOpts(opts.Title{Title: name}),
	)
	gauge.AddSeries(name, []opts.GaugeData{{Name: name, Value: value}})

	var buf bytes.Buffer
	if err := gauge.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		ghtml.WithHardWraps(),
	),
)

// renderMarkdown converts markdown to HTML using goldmark.
func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}
