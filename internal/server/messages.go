package server

import (
	"fmt"
	"strings"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
	"github.com/sahilvr03/GIS-AGENT/internal/reference"
)

// welcomeMessage greets a new chat session.
const welcomeMessage = `Assalamu Alaikum! Mein FarmBot hoon, aap ka smart kheti sahayak. 💚

Aap mujh se pooch sakte hain:
- Fasal ka tajzia (coordinates de kar, maslan: 31.5204,74.3587)
- Mausam ka hal (current weather conditions)
- Sarkari schemeon ki maloomat (Kissan Package, etc.)
- Fasal ke liye mashwara (crop recommendations)
- Islamic tareeqon se kheti baari (Islamic farming methods)

Aaiye, bataiye aapki kya madad karun?`

func outOfRegionMessage(lang models.Language) string {
	if lang == models.LanguageUrdu {
		return "معذرت، یہ کوآرڈینیٹس پاکستان کے اندر نہیں ہیں۔ درست کوآرڈینیٹس دیں۔"
	}
	return "Maaf karein, ye coordinates Pakistan ke andar nahi hain. Sahi coordinates dijiye."
}

func analysisFailedMessage(lang models.Language) string {
	if lang == models.LanguageUrdu {
		return "معذرت، تجزیہ کرتے وقت خرابی ہوئی۔ دوبارہ کوشش کریں۔"
	}
	return "Maaf karein, tajzia karne mein ghalti hui. Dobara koshish karein."
}

func weatherLocationPrompt(lang models.Language) string {
	if lang == models.LanguageUrdu {
		return "Mausam ka hal janane ke liye, kisi specific jagah ke coordinates dijiye (masalan: 31.5204,74.3587)."
	}
	return "To check weather, please provide coordinates (e.g., 31.5204,74.3587)."
}

func weatherFailedMessage(lang models.Language) string {
	if lang == models.LanguageUrdu {
		return "Mausam ka data hasil karne mein ghalti hui. Baad mein koshish karein."
	}
	return "Error getting weather data. Please try again later."
}

// weatherReply formats a current-conditions answer.
func weatherReply(report *models.WeatherReport, lang models.Language) string {
	if lang == models.LanguageUrdu {
		return fmt.Sprintf(`📍 Mausam ka hal (%s)

Darja hararat: %s°C
Namī: %s%%
Hawa ki raftar: %s km/h
Halat: %s
Bārish (pichle 1 ghante mein): %smm

Allah aap ki fasal ko har bura asar se bachaye 🤲`,
			report.Timestamp, report.Temperature, report.Humidity,
			report.WindSpeed, report.Conditions, report.Rain)
	}
	return fmt.Sprintf(`📍 Weather Conditions (%s)

Temperature: %s°C
Humidity: %s%%
Wind Speed: %s km/h
Conditions: %s
Rain (last 1 hour): %smm

May Allah protect your crops from any harm 🤲`,
		report.Timestamp, report.Temperature, report.Humidity,
		report.WindSpeed, report.Conditions, report.Rain)
}

// schemeReply answers a government scheme query: a single scheme when the
// message names one, otherwise the full catalogue.
func schemeReply(userInput string, lang models.Language) string {
	if scheme, ok := reference.MatchSchemeName(userInput); ok {
		view := scheme.Localized(lang)
		if lang == models.LanguageUrdu {
			return fmt.Sprintf(`**%s**

Tafseel: %s
Eligibility: %s
Faide: %s

Ziyada maloomat ke liye apne local agriculture office se raabta karein.`,
				view.Name, view.Description, view.Eligibility, view.Benefits)
		}
		return fmt.Sprintf(`**%s**

Description: %s
Eligibility: %s
Benefits: %s

Contact your local agriculture office for more details.`,
			view.Name, view.Description, view.Eligibility, view.Benefits)
	}

	var b strings.Builder
	if lang == models.LanguageUrdu {
		b.WriteString("**Pakistani Sarkari Kheti Schemes**\n\n")
	} else {
		b.WriteString("**Pakistani Government Farming Schemes**\n\n")
	}
	for _, scheme := range reference.Schemes() {
		view := scheme.Localized(lang)
		fmt.Fprintf(&b, "**%s**\n%s\n\n", view.Name, view.Description)
	}
	if lang == models.LanguageUrdu {
		b.WriteString("Kisi khas scheme ke bare mein maloomat ke liye scheme ka naam likhein.")
	} else {
		b.WriteString("Ask about any specific scheme for more details.")
	}
	return b.String()
}

// islamicReply lists Islamic farming practices.
func islamicReply(lang models.Language) string {
	var b strings.Builder
	if lang == models.LanguageUrdu {
		b.WriteString("**Islami Kheti Baari ke Tareeqe**\n\n")
	} else {
		b.WriteString("**Islamic Farming Methods**\n\n")
	}
	b.WriteString(strings.Join(reference.IslamicFarmingTips(), "\n"))
	if lang == models.LanguageUrdu {
		b.WriteString("\n\nZiyada maloomat ke liye apne local imam ya agriculture expert se raabta karein.")
	} else {
		b.WriteString("\n\nConsult your local imam or agriculture expert for more information.")
	}
	return b.String()
}
