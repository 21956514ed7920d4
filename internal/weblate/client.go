package weblate

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/logger"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/stats"
)

// DefaultURL is the Weblate instance used when no URL is configured
const DefaultURL = "https://openstack.weblate.cloud"

// Client は Weblate REST API の読み取り専用クライアント
type Client struct {
	baseURL string
	fetcher Fetcher
	log     logger.Logger
}

// NewClient creates a Client for baseURL. A trailing "/api/" is accepted
// and stripped so that both the site URL and the API root work.
func NewClient(baseURL string, fetcher Fetcher, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	base := strings.TrimRight(baseURL, "/")
	base = strings.TrimSuffix(base, "/api")

	return &Client{
		baseURL: base,
		fetcher: fetcher,
		log:     log,
	}
}

// BaseURL returns the normalised site URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) uri(segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return c.baseURL + "/api/" + strings.Join(escaped, "/") + "/"
}

// readJSON fetches uri and decodes the body into v
func (c *Client) readJSON(ctx context.Context, uri string, v interface{}) error {
	data, err := c.fetcher.Fetch(ctx, uri)
	if err != nil {
		c.log.Error("Error while reading uri",
			logger.F("uri", uri),
			logger.F("error", err.Error()),
		)
		return errors.RequestFailed(uri, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return c.parseFailed(uri, err)
	}
	return nil
}

func (c *Client) parseFailed(uri string, err error) error {
	c.log.Error("Error parsing json from uri",
		logger.F("uri", uri),
		logger.F("error", err.Error()),
	)
	return errors.ResponseParseFailed(uri, err)
}

// GetProjects returns the projects listed on the first page of api/projects/.
// Later pages are not followed.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	uri := c.uri("projects")
	c.log.Debug("Reading projects", logger.F("uri", uri))

	var page ProjectsPage
	if err := c.readJSON(ctx, uri, &page); err != nil {
		return nil, err
	}
	if page.Next != "" {
		c.log.Warn("Only the first page of projects is used",
			logger.F("uri", uri),
			logger.F("count", page.Count),
			logger.F("read", len(page.Results)),
		)
	}
	return page.Results, nil
}

// GetProjectStatistics returns the aggregate statistics of one project
func (c *Client) GetProjectStatistics(ctx context.Context, slug string) (*ProjectStats, error) {
	uri := c.uri("projects", slug, "statistics")
	c.log.Debug("Reading project statistics", logger.F("uri", uri))

	var ps ProjectStats
	if err := c.readJSON(ctx, uri, &ps); err != nil {
		return nil, err
	}
	return &ps, nil
}

// GetUserStatistics returns the raw contribution records of one user.
// Both a bare array and a {"results": [...]} envelope are accepted.
func (c *Client) GetUserStatistics(ctx context.Context, userID string) ([]stats.Record, error) {
	uri := c.uri("users", userID, "statistics")
	c.log.Debug("Reading user statistics", logger.F("uri", uri))

	var raw json.RawMessage
	if err := c.readJSON(ctx, uri, &raw); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Results *[]stats.Record `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, c.parseFailed(uri, err)
		}
		if envelope.Results == nil {
			return nil, c.parseFailed(uri, fmt.Errorf("missing results key"))
		}
		return *envelope.Results, nil
	}

	var records []stats.Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, c.parseFailed(uri, err)
	}
	return records, nil
}
