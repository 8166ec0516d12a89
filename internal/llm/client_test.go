package llm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sahilvr03/GIS-AGENT/internal/advisory"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

func TestDisabledClient(t *testing.T) {
	c := NewClient("", "", "gemini-1.5-flash")

	if c.Enabled() {
		t.Error("client without API key should be disabled")
	}
	if _, err := c.Chat(context.Background(), nil, "hello"); err == nil {
		t.Error("Chat on disabled client should fail")
	}

	// Advisory degrades silently so offline report generation still works.
	batch := &models.AnalysisBatch{
		Keys:        []string{"point_0"},
		Points:      map[string]*models.PointResult{"point_0": {}},
		GeneratedAt: time.Now(),
	}
	text, err := c.GenerateAdvisory(context.Background(), batch, models.LanguageEnglish, nil)
	if err != nil {
		t.Fatalf("GenerateAdvisory on disabled client: %v", err)
	}
	if text != "" {
		t.Errorf("disabled advisory = %q, want empty", text)
	}
}

func TestBuildMessages(t *testing.T) {
	c := NewClient("key", "", "gemini-1.5-flash")

	history := []Message{
		{Role: "user", Content: "salam"},
		{Role: "assistant", Content: "Walaikum assalam, Janab!"},
	}
	messages := c.buildMessages(history, "what is ndvi?")

	if len(messages) != 4 {
		t.Fatalf("got %d messages, want 4", len(messages))
	}
	if messages[0].Role != "system" || !strings.Contains(messages[0].Content, "FarmBot") {
		t.Errorf("first message should carry the system prompt, got role %q", messages[0].Role)
	}
	if messages[3].Role != "user" || messages[3].Content != "what is ndvi?" {
		t.Errorf("last message = %+v, want new user turn", messages[3])
	}
}

func TestBuildAdvisoryPrompt(t *testing.T) {
	ndvi := 0.62
	batch := &models.AnalysisBatch{
		Keys: []string{"point_0", "point_1"},
		Points: map[string]*models.PointResult{
			"point_0": {
				Coordinates: models.Coordinates{Lat: 31.52, Lon: 74.35},
				NDVI:        &ndvi,
				CropHealth:  models.HealthGood,
			},
			"point_1": {
				Coordinates: models.Coordinates{Lat: 48.85, Lon: 2.35},
				Err:         "Coordinates outside Pakistan",
			},
		},
		GeneratedAt: time.Now(),
	}

	prompt := buildAdvisoryPrompt(batch, models.LanguageUrdu, nil)
	if !strings.Contains(prompt, "### point_0") || !strings.Contains(prompt, "### point_1") {
		t.Error("prompt should carry one section per point")
	}
	if !strings.Contains(prompt, "0.62") {
		t.Error("prompt should embed exact index values")
	}
	if !strings.Contains(prompt, "Respond in Urdu") {
		t.Error("prompt should carry the language instruction")
	}
	if strings.Contains(prompt, "AGROMET BULLETINS") {
		t.Error("prompt without bulletins should omit the bulletin section")
	}

	bulletins := []advisory.Advisory{
		{Title: "Heat wave alert for Punjab", Summary: "Irrigate wheat before noon."},
	}
	prompt = buildAdvisoryPrompt(batch, models.LanguageUrdu, bulletins)
	if !strings.Contains(prompt, "RECENT AGROMET BULLETINS") {
		t.Error("prompt with bulletins should carry the bulletin section")
	}
	if !strings.Contains(prompt, "Heat wave alert for Punjab") ||
		!strings.Contains(prompt, "Irrigate wheat before noon.") {
		t.Error("prompt should embed bulletin titles and summaries")
	}
}
