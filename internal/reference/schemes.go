// Package reference holds static lookup content: Pakistani government
// agricultural schemes, farming phrases, and Islamic farming tips, each with
// English and Urdu variants where available.
package reference

import (
	"strings"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// Scheme describes one government agricultural support scheme.
type Scheme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Benefits    string `json:"benefits"`

	// Urdu variants. Empty fields fall back to the English text.
	DescriptionUrdu string `json:"description_urdu,omitempty"`
	EligibilityUrdu string `json:"eligibility_urdu,omitempty"`
	BenefitsUrdu    string `json:"benefits_urdu,omitempty"`
}

// SchemeText is a scheme rendered in a single language.
type SchemeText struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Benefits    string `json:"benefits"`
}

// Localized renders the scheme in the requested language, falling back to
// English for fields without an Urdu variant.
func (s Scheme) Localized(lang models.Language) SchemeText {
	text := SchemeText{
		Name:        s.Name,
		Description: s.Description,
		Eligibility: s.Eligibility,
		Benefits:    s.Benefits,
	}
	if lang == models.LanguageUrdu {
		if s.DescriptionUrdu != "" {
			text.Description = s.DescriptionUrdu
		}
		if s.EligibilityUrdu != "" {
			text.Eligibility = s.EligibilityUrdu
		}
		if s.BenefitsUrdu != "" {
			text.Benefits = s.BenefitsUrdu
		}
	}
	return text
}

var schemes = []Scheme{
	{
		Name:            "Kissan Package",
		Description:     "Subsidies on fertilizers, seeds, and agricultural machinery",
		Eligibility:     "All registered farmers",
		Benefits:        "Up to 50% subsidy on inputs",
		DescriptionUrdu: "کسان پیکیج: کھاد، بیج اور زرعی مشینری پر سبسڈی",
	},
	{
		Name:            "Tubewell Subsidy",
		Description:     "Financial assistance for installing tubewells",
		Eligibility:     "Farmers with at least 5 acres of land",
		Benefits:        "50% subsidy up to Rs. 100,000",
		DescriptionUrdu: "ٹیوب ویل سبسڈی: نئے ٹیوب ویل لگانے کے لیے مالی معاونت",
	},
	{
		Name:            "Solar Pump Scheme",
		Description:     "Subsidy for solar-powered water pumps",
		Eligibility:     "Farmers in water-scarce areas",
		Benefits:        "60% subsidy on solar pumps",
		DescriptionUrdu: "سولر پمپ اسکیم: شمسی توانائی سے چلنے والے پمپوں پر سبسڈی",
	},
}

// Schemes returns all schemes in their declared order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// LookupScheme finds a scheme by name, case-insensitively.
func LookupScheme(name string) (Scheme, bool) {
	for _, s := range schemes {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scheme{}, false
}

// MatchSchemeName returns the first scheme whose name appears as a substring
// of the given text, case-insensitively. Used to detect which scheme a chat
// message is asking about.
func MatchSchemeName(text string) (Scheme, bool) {
	lower := strings.ToLower(text)
	for _, s := range schemes {
		if strings.Contains(lower, strings.ToLower(s.Name)) {
			return s, true
		}
	}
	return Scheme{}, false
}
