package satellite

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sahilvr03/GIS-AGENT/internal/logger"
)

const (
	defaultBaseURL = "https://services.sentinel-hub.com"
	s2Collection   = "sentinel-2-l2a"
)

// SentinelHubClient queries the Sentinel Hub Statistical API. Index means are
// computed server-side over the requested footprint and time window, which
// stands in for a local median composite.
type SentinelHubClient struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	baseURL      string
	log          *logger.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewSentinelHubClient creates a Sentinel Hub client. Missing credentials are
// tolerated at construction; Query then fails with a structured error.
func NewSentinelHubClient(clientID, clientSecret string) *SentinelHubClient {
	client := resty.New()
	client.SetTimeout(60 * time.Second)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(2 * time.Second)

	return &SentinelHubClient{
		http:         client,
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      defaultBaseURL,
		log:          logger.GetGlobalLogger().WithComponent("sentinelhub"),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *SentinelHubClient) SetBaseURL(url string) {
	c.baseURL = url
}

// Query validates credentials and returns a lazy composite handle; no network
// call happens until an index mean is requested.
func (c *SentinelHubClient) Query(ctx context.Context, q Query) (Composite, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, fmt.Errorf("satellite credentials not configured")
	}
	if q.RadiusM <= 0 {
		return nil, fmt.Errorf("invalid buffer radius %d", q.RadiusM)
	}
	return &shComposite{client: c, query: q}, nil
}

type shComposite struct {
	client *SentinelHubClient
	query  Query
}

func (s *shComposite) NormalizedDifference(bandA, bandB string) RasterIndex {
	return &shIndex{client: s.client, query: s.query, bandA: bandA, bandB: bandB}
}

type shIndex struct {
	client       *SentinelHubClient
	query        Query
	bandA, bandB string
}

// MeanOver runs one Statistical API request covering the whole date window as
// a single aggregation bucket.
func (i *shIndex) MeanOver(ctx context.Context, scaleM int) (*float64, error) {
	token, err := i.client.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	body := i.buildStatisticsRequest(scaleM)

	resp, err := i.client.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(i.client.baseURL + "/api/v1/statistics")
	if err != nil {
		return nil, fmt.Errorf("satellite statistics request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("satellite statistics API returned status %d", resp.StatusCode())
	}

	var stats statisticsResponse
	if err := json.Unmarshal(resp.Body(), &stats); err != nil {
		return nil, fmt.Errorf("failed to parse statistics response: %w", err)
	}

	for _, interval := range stats.Data {
		band, ok := interval.Outputs["index"].Bands["B0"]
		if !ok {
			continue
		}
		if band.Stats.SampleCount == 0 || band.Stats.SampleCount == band.Stats.NoDataCount {
			continue
		}
		mean := band.Stats.Mean
		return &mean, nil
	}

	// No usable scenes in the window: unavailable, not an error.
	i.client.log.Debugf("no usable pixels for %s/%s over %s..%s", i.bandA, i.bandB, i.query.Start, i.query.End)
	return nil, nil
}

// buildStatisticsRequest assembles the Statistical API payload: a bounding
// box approximating the circular buffer, a cloud-cover data filter, and an
// evalscript computing the normalized difference of the two bands.
func (i *shIndex) buildStatisticsRequest(scaleM int) map[string]interface{} {
	minLon, minLat, maxLon, maxLat := bufferBounds(i.query.Lat, i.query.Lon, i.query.RadiusM)

	evalscript := fmt.Sprintf(`//VERSION=3
function setup() {
  return {
    input: [{bands: ["%s", "%s", "dataMask"]}],
    output: [
      {id: "index", bands: 1, sampleType: "FLOAT32"},
      {id: "dataMask", bands: 1}
    ]
  };
}
function evaluatePixel(sample) {
  let nd = (sample.%s - sample.%s) / (sample.%s + sample.%s);
  return {index: [nd], dataMask: [sample.dataMask]};
}`, i.bandA, i.bandB, i.bandA, i.bandB, i.bandA, i.bandB)

	return map[string]interface{}{
		"input": map[string]interface{}{
			"bounds": map[string]interface{}{
				"bbox": []float64{minLon, minLat, maxLon, maxLat},
				"properties": map[string]interface{}{
					"crs": "http://www.opengis.net/def/crs/EPSG/0/4326",
				},
			},
			"data": []interface{}{
				map[string]interface{}{
					"type": s2Collection,
					"dataFilter": map[string]interface{}{
						"maxCloudCoverage": i.query.MaxCloudPct,
					},
				},
			},
		},
		"aggregation": map[string]interface{}{
			"timeRange": map[string]string{
				"from": i.query.Start + "T00:00:00Z",
				"to":   i.query.End + "T23:59:59Z",
			},
			// One bucket spanning the whole window yields a single composite
			// statistic per index.
			"aggregationInterval": map[string]string{"of": "P365D"},
			"resx":                fmt.Sprintf("%d", scaleM),
			"resy":                fmt.Sprintf("%d", scaleM),
			"evalscript":          evalscript,
		},
	}
}

// statisticsResponse mirrors the parts of the Statistical API response the
// client reads.
type statisticsResponse struct {
	Data []struct {
		Interval struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"interval"`
		Outputs map[string]struct {
			Bands map[string]struct {
				Stats struct {
					Min         float64 `json:"min"`
					Max         float64 `json:"max"`
					Mean        float64 `json:"mean"`
					SampleCount int64   `json:"sampleCount"`
					NoDataCount int64   `json:"noDataCount"`
				} `json:"stats"`
			} `json:"bands"`
		} `json:"outputs"`
	} `json:"data"`
}

// accessToken returns a cached OAuth2 client-credentials token, refreshing it
// shortly before expiry.
func (c *SentinelHubClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "client_credentials",
			"client_id":     c.clientID,
			"client_secret": c.clientSecret,
		}).
		Post(c.baseURL + "/oauth/token")
	if err != nil {
		return "", fmt.Errorf("satellite auth request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("satellite auth returned status %d", resp.StatusCode())
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(resp.Body(), &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse auth response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("satellite auth returned empty token")
	}

	c.token = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - 30*time.Second)
	return c.token, nil
}

// bufferBounds converts a point plus radius in metres into a WGS84 bounding
// box enclosing the circular buffer.
func bufferBounds(lat, lon float64, radiusM int) (minLon, minLat, maxLon, maxLat float64) {
	r := float64(radiusM)
	dLat := r / 111320.0
	dLon := r / (111320.0 * math.Cos(lat*math.Pi/180.0))
	return lon - dLon, lat - dLat, lon + dLon, lat + dLat
}
