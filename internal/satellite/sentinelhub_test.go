package satellite

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestQueryMissingCredentials(t *testing.T) {
	client := NewSentinelHubClient("", "")

	_, err := client.Query(context.Background(), Query{
		Lat: 31.5, Lon: 74.3, RadiusM: 1000,
		Start: "2024-01-01", End: "2024-03-01", MaxCloudPct: 20,
	})
	if err == nil {
		t.Fatal("expected an error for missing credentials")
	}
	if !strings.Contains(err.Error(), "not configured") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestQueryInvalidRadius(t *testing.T) {
	client := NewSentinelHubClient("id", "secret")

	if _, err := client.Query(context.Background(), Query{Lat: 31.5, Lon: 74.3}); err == nil {
		t.Fatal("expected an error for zero radius")
	}
}

func TestMeanOverParsesStatistics(t *testing.T) {
	var statsRequest map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token": "test-token", "expires_in": 3600}`))
		case "/api/v1/statistics":
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("authorization header = %q", got)
			}
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &statsRequest)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"data": [{
					"interval": {"from": "2024-01-01T00:00:00Z", "to": "2024-03-01T23:59:59Z"},
					"outputs": {
						"index": {
							"bands": {
								"B0": {"stats": {"min": 0.1, "max": 0.9, "mean": 0.65, "sampleCount": 31415, "noDataCount": 12}}
							}
						}
					}
				}]
			}`))
		default:
			t.Errorf("unexpected request path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewSentinelHubClient("id", "secret")
	client.SetBaseURL(server.URL)

	composite, err := client.Query(context.Background(), Query{
		Lat: 31.5204, Lon: 74.3587, RadiusM: 1000,
		Start: "2024-01-01", End: "2024-03-01", MaxCloudPct: 20,
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	mean, err := composite.NormalizedDifference(BandNIR, BandRed).MeanOver(context.Background(), 10)
	if err != nil {
		t.Fatalf("MeanOver failed: %v", err)
	}
	if mean == nil || *mean != 0.65 {
		t.Fatalf("mean = %v, want 0.65", mean)
	}

	// The request must carry the cloud filter and an NDVI evalscript.
	input := statsRequest["input"].(map[string]interface{})
	data := input["data"].([]interface{})[0].(map[string]interface{})
	filter := data["dataFilter"].(map[string]interface{})
	if filter["maxCloudCoverage"].(float64) != 20 {
		t.Errorf("maxCloudCoverage = %v, want 20", filter["maxCloudCoverage"])
	}
	aggregation := statsRequest["aggregation"].(map[string]interface{})
	evalscript := aggregation["evalscript"].(string)
	if !strings.Contains(evalscript, "B08") || !strings.Contains(evalscript, "B04") {
		t.Errorf("evalscript missing NDVI bands:\n%s", evalscript)
	}
}

func TestMeanOverNoUsablePixels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			w.Write([]byte(`{"access_token": "t", "expires_in": 3600}`))
			return
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewSentinelHubClient("id", "secret")
	client.SetBaseURL(server.URL)

	composite, err := client.Query(context.Background(), Query{
		Lat: 30.0, Lon: 70.0, RadiusM: 1000,
		Start: "2024-01-01", End: "2024-01-02", MaxCloudPct: 20,
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	mean, err := composite.NormalizedDifference(BandNIR, BandSWIR).MeanOver(context.Background(), 20)
	if err != nil {
		t.Fatalf("MeanOver failed: %v", err)
	}
	if mean != nil {
		t.Errorf("mean = %v, want nil for empty window", *mean)
	}
}

func TestBufferBounds(t *testing.T) {
	minLon, minLat, maxLon, maxLat := bufferBounds(31.5, 74.3, 1000)

	if !(minLat < 31.5 && 31.5 < maxLat) {
		t.Errorf("latitude bounds [%v, %v] do not enclose the point", minLat, maxLat)
	}
	if !(minLon < 74.3 && 74.3 < maxLon) {
		t.Errorf("longitude bounds [%v, %v] do not enclose the point", minLon, maxLon)
	}
	// 1 km is roughly 0.009 degrees of latitude.
	if span := maxLat - minLat; span < 0.017 || span > 0.019 {
		t.Errorf("latitude span = %v, want about 0.018", span)
	}
}
