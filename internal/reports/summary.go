package reports

import (
	"fmt"
	"strings"

	"github.com/sahilvr03/GIS-AGENT/internal/analysis"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
	"github.com/sahilvr03/GIS-AGENT/internal/reference"
)

// ChatSummary builds the bilingual conversation reply sent after an analysis
// run, with one line per point and the report download path. The markdown
// output feeds MarkdownToHTML for web clients.
func ChatSummary(batch *models.AnalysisBatch, lang models.Language, reportPath string) string {
	if batch == nil || len(batch.Keys) == 0 {
		return ""
	}

	var b strings.Builder

	if lang == models.LanguageUrdu {
		b.WriteString("**تجزیہ مکمل ہو گیا، جناب!**\n\n")
	} else {
		b.WriteString("**Analysis complete, Janab!**\n\n")
	}

	for i, key := range batch.Keys {
		p := batch.Points[key]
		if p.Failed() {
			if lang == models.LanguageUrdu {
				fmt.Fprintf(&b, "- مقام %d (%s): ناکام - %s\n", i+1, p.Coordinates, p.Err)
			} else {
				fmt.Fprintf(&b, "- Point %d (%s): failed - %s\n", i+1, p.Coordinates, p.Err)
			}
			continue
		}

		var parts []string
		if p.NDVI != nil {
			if lang == models.LanguageUrdu {
				parts = append(parts, fmt.Sprintf("فصل کی صحت: %s (NDVI %.2f)", p.CropHealth, *p.NDVI))
			} else {
				parts = append(parts, fmt.Sprintf("crop health %s (NDVI %.2f)", p.CropHealth, *p.NDVI))
			}
		}
		if p.SoilMoisture != nil {
			percent := analysis.MoisturePercent(*p.SoilMoisture)
			if lang == models.LanguageUrdu {
				parts = append(parts, fmt.Sprintf("مٹی کی نمی %.0f%%", percent))
			} else {
				parts = append(parts, fmt.Sprintf("soil moisture %.0f%%", percent))
			}
		}
		if p.Weather != nil && p.Weather.Temperature != "N/A" {
			if lang == models.LanguageUrdu {
				parts = append(parts, fmt.Sprintf("درجہ حرارت %s°C", p.Weather.Temperature))
			} else {
				parts = append(parts, fmt.Sprintf("temperature %sC", p.Weather.Temperature))
			}
		}
		if len(parts) == 0 {
			if lang == models.LanguageUrdu {
				parts = append(parts, "نتائج دستیاب نہیں")
			} else {
				parts = append(parts, "no index data available")
			}
		}

		if lang == models.LanguageUrdu {
			fmt.Fprintf(&b, "- مقام %d (%s): %s\n", i+1, p.Coordinates, strings.Join(parts, "، "))
		} else {
			fmt.Fprintf(&b, "- Point %d (%s): %s\n", i+1, p.Coordinates, strings.Join(parts, ", "))
		}
	}

	if reportPath != "" {
		if lang == models.LanguageUrdu {
			fmt.Fprintf(&b, "\n📄 مکمل رپورٹ ڈاؤن لوڈ کریں: %s\n", reportPath)
		} else {
			fmt.Fprintf(&b, "\n📄 Download the full report: %s\n", reportPath)
		}
	}

	if batch.HasValidPoint() {
		fmt.Fprintf(&b, "\n%s\n", reference.RandomFarmingPhrase())
	}

	return b.String()
}
