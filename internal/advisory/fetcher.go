// Package advisory fetches public agromet bulletins for Pakistan from an RSS
// feed. Advisories enrich HTML reports; feed failures degrade to an empty
// list at the call site.
package advisory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/sahilvr03/GIS-AGENT/internal/logger"
)

// Advisory is one bulletin item.
type Advisory struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
}

// Fetcher pulls and parses the advisory feed.
type Fetcher struct {
	client  *resty.Client
	parser  *gofeed.Parser
	feedURL string
	log     *logger.Logger
}

// NewFetcher creates an advisory fetcher for the given feed URL.
func NewFetcher(feedURL string) *Fetcher {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)

	return &Fetcher{
		client:  client,
		parser:  gofeed.NewParser(),
		feedURL: feedURL,
		log:     logger.GetGlobalLogger().WithComponent("advisory"),
	}
}

// SetBaseURL overrides the feed URL, used by tests.
func (f *Fetcher) SetBaseURL(url string) {
	f.feedURL = url
}

// Latest returns up to limit advisories, newest first in feed order.
func (f *Fetcher) Latest(ctx context.Context, limit int) ([]Advisory, error) {
	if f.feedURL == "" {
		return nil, fmt.Errorf("advisory feed URL not configured")
	}

	resp, err := f.client.R().SetContext(ctx).Get(f.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisory feed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("advisory feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse advisory feed: %w", err)
	}

	advisories := make([]Advisory, 0, limit)
	for _, item := range feed.Items {
		if len(advisories) >= limit {
			break
		}
		a := Advisory{
			Title:   item.Title,
			Summary: item.Description,
			Link:    item.Link,
		}
		if item.PublishedParsed != nil {
			a.Published = *item.PublishedParsed
		}
		advisories = append(advisories, a)
	}

	f.log.Debugf("fetched %d advisories from feed", len(advisories))
	return advisories, nil
}
