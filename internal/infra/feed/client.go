// Package feed fetches hurricane advisories from the National Hurricane
// Center's public RSS/Atom feed.
package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/glass-strategies/stormcommand/internal/entity"
)

type Client struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewClient(feedURL string) *Client {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: 10 * time.Second}

	return &Client{
		feedURL: feedURL,
		parser:  parser,
	}
}

// Fetch returns up to limit items, newest as the feed orders them.
func (c *Client) Fetch(ctx context.Context, limit int) ([]entity.NewsItem, error) {
	parsed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching advisory feed: %w", err)
	}

	items := make([]entity.NewsItem, 0, limit)
	for _, item := range parsed.Items {
		if len(items) == limit {
			break
		}
		items = append(items, entity.NewsItem{
			Title:     item.Title,
			Link:      item.Link,
			Published: item.Published,
			Summary:   item.Description,
		})
	}

	return items, nil
}
