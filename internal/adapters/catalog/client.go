// Package catalog fetches channel and video metadata from the external
// video catalog. Acquisition is paginated and partial-failure tolerant: a
// failed page truncates the sequence to whatever was already collected,
// it never aborts the request.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/courseloom/insight/internal/domain/metric"
	"github.com/courseloom/insight/internal/domain/model"
	"github.com/courseloom/insight/pkg/logger"
	"github.com/courseloom/insight/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL  = "https://www.googleapis.com/youtube/v3"
	defaultPageSize = 50
	defaultMaxItems = 200
	defaultTimeout  = 20 * time.Second
	maxErrorBody    = 1024
	channelIDLength = 24
)

// Client talks to the catalog REST API.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	pageSize int
	maxItems int
	log      logger.Logger
}

// NewClient builds a catalog client for the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:  defaultBaseURL,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: defaultTimeout},
		pageSize: defaultPageSize,
		maxItems: defaultMaxItems,
		log:      logger.Get().Named("catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveChannel turns a user-supplied reference (channel URL, @handle,
// bare ID, or free-text name) into channel metadata.
func (c *Client) ResolveChannel(ctx context.Context, ref string) (model.Channel, error) {
	id, handle, query := splitChannelRef(ref)

	params := url.Values{"part": {"snippet,statistics"}}
	switch {
	case id != "":
		params.Set("id", id)
	case handle != "":
		params.Set("forHandle", handle)
	default:
		found, err := c.searchChannelID(ctx, query)
		if err != nil {
			return model.Channel{}, err
		}
		params.Set("id", found)
	}

	var resp channelsResponse
	if err := c.getJSON(ctx, "/channels", params, &resp); err != nil {
		return model.Channel{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(resp.Items) == 0 {
		return model.Channel{}, ErrChannelNotFound
	}
	item := resp.Items[0]
	return model.Channel{
		ID:          item.ID,
		Title:       item.Snippet.Title,
		Subscribers: parseCount(item.Statistics.SubscriberCount),
		VideoCount:  parseCount(item.Statistics.VideoCount),
	}, nil
}

// Videos collects up to the configured item cap for a channel, newest
// first, in pages. Each page costs two calls: a search page for IDs and
// snippets, then a batched detail fetch for durations and counts. Any
// failure truncates; callers treat a short or empty slice as valid input.
func (c *Client) Videos(ctx context.Context, channelID string) []model.ContentItem {
	items := make([]model.ContentItem, 0, c.maxItems)
	token := ""
	for {
		page, next, err := c.searchPage(ctx, channelID, token)
		if err != nil {
			c.log.Warn(ctx, "catalog page fetch failed; truncating",
				logger.String("channel_id", channelID),
				logger.Int("collected", len(items)),
				logger.Error(err))
			metrics.RecordCatalogTruncation()
			return items
		}
		details, err := c.videoDetails(ctx, pageIDs(page))
		if err != nil {
			c.log.Warn(ctx, "catalog detail fetch failed; truncating",
				logger.String("channel_id", channelID),
				logger.Int("collected", len(items)),
				logger.Error(err))
			metrics.RecordCatalogTruncation()
			return items
		}

		for _, entry := range page {
			item := model.ContentItem{
				ID:          entry.ID.VideoID,
				Title:       entry.Snippet.Title,
				Description: entry.Snippet.Description,
				PublishedAt: entry.Snippet.PublishedAt,
			}
			if d, ok := details[entry.ID.VideoID]; ok {
				item.DurationMinutes = metric.DurationMinutes(d.ContentDetails.Duration)
				item.ViewCount = parseCount(d.Statistics.ViewCount)
				item.CommentCount = parseCount(d.Statistics.CommentCount)
			}
			items = append(items, item)
			if len(items) == c.maxItems {
				metrics.RecordCatalogPage(len(page))
				return items
			}
		}
		metrics.RecordCatalogPage(len(page))

		if next == "" {
			return items
		}
		token = next
	}
}

func (c *Client) searchChannelID(ctx context.Context, query string) (string, error) {
	params := url.Values{
		"part":       {"snippet"},
		"type":       {"channel"},
		"q":          {query},
		"maxResults": {"1"},
	}
	var resp searchResponse
	if err := c.getJSON(ctx, "/search", params, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if len(resp.Items) == 0 || resp.Items[0].ID.ChannelID == "" {
		return "", ErrChannelNotFound
	}
	return resp.Items[0].ID.ChannelID, nil
}

func (c *Client) searchPage(ctx context.Context, channelID, token string) ([]searchItem, string, error) {
	params := url.Values{
		"part":       {"snippet"},
		"type":       {"video"},
		"order":      {"date"},
		"channelId":  {channelID},
		"maxResults": {strconv.Itoa(c.pageSize)},
	}
	if token != "" {
		params.Set("pageToken", token)
	}
	var resp searchResponse
	if err := c.getJSON(ctx, "/search", params, &resp); err != nil {
		return nil, "", err
	}
	return resp.Items, resp.NextPageToken, nil
}

func (c *Client) videoDetails(ctx context.Context, ids []string) (map[string]videoItem, error) {
	if len(ids) == 0 {
		return map[string]videoItem{}, nil
	}
	params := url.Values{
		"part": {"contentDetails,statistics"},
		"id":   {strings.Join(ids, ",")},
	}
	var resp videosResponse
	if err := c.getJSON(ctx, "/videos", params, &resp); err != nil {
		return nil, err
	}
	out := make(map[string]videoItem, len(resp.Items))
	for _, it := range resp.Items {
		out[it.ID] = it
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("catalog error %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}

func pageIDs(page []searchItem) []string {
	ids := make([]string, 0, len(page))
	for _, entry := range page {
		if entry.ID.VideoID != "" {
			ids = append(ids, entry.ID.VideoID)
		}
	}
	return ids
}

// splitChannelRef classifies a channel reference into exactly one of an
// ID, a handle, or a search query.
func splitChannelRef(ref string) (id, handle, query string) {
	ref = strings.TrimSpace(ref)
	if u, err := url.Parse(ref); err == nil && u.Host != "" {
		ref = strings.Trim(u.Path, "/")
		switch {
		case strings.HasPrefix(ref, "channel/"):
			ref = strings.TrimPrefix(ref, "channel/")
		case strings.HasPrefix(ref, "c/"):
			ref = strings.TrimPrefix(ref, "c/")
		case strings.HasPrefix(ref, "user/"):
			ref = strings.TrimPrefix(ref, "user/")
		}
		if i := strings.IndexByte(ref, '/'); i >= 0 {
			ref = ref[:i]
		}
	}
	switch {
	case strings.HasPrefix(ref, "@"):
		return "", ref, ""
	case strings.HasPrefix(ref, "UC") && len(ref) == channelIDLength:
		return ref, "", ""
	default:
		return "", "", ref
	}
}

// parseCount reads the catalog's string-encoded integers; absent or
// malformed counts read as zero.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Wire shapes for the catalog's JSON responses. Statistics arrive as
// strings on this API.
type searchItem struct {
	ID struct {
		VideoID   string `json:"videoId"`
		ChannelID string `json:"channelId"`
	} `json:"id"`
	Snippet struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"snippet"`
}

type searchResponse struct {
	NextPageToken string       `json:"nextPageToken"`
	Items         []searchItem `json:"items"`
}

type channelItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title string `json:"title"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
		VideoCount      string `json:"videoCount"`
	} `json:"statistics"`
}

type channelsResponse struct {
	Items []channelItem `json:"items"`
}

type videoItem struct {
	ID             string `json:"id"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

type videosResponse struct {
	Items []videoItem `json:"items"`
}
