package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds the row store connection settings.
type Config struct {
	// BaseURL of the hosted row store API.
	BaseURL string `env:"CONTENT_BASE_URL" envDefault:"https://api.airtable.com"`
	// Token is the bearer token with read access to the base.
	Token string `env:"CONTENT_TOKEN,required,notEmpty"`
	// BaseID identifies the content base.
	BaseID string `env:"CONTENT_BASE_ID,required,notEmpty"`
	// BulkTable and BulkView name the table and view used for startup
	// seeding and the blog listing.
	BulkTable string `env:"CONTENT_BULK_TABLE" envDefault:"GDC_Table"`
	BulkView  string `env:"CONTENT_BULK_VIEW" envDefault:"Home"`
	// Timeout bounds every remote call.
	Timeout time.Duration `env:"CONTENT_TIMEOUT" envDefault:"15s"`
}

// Client is a thin HTTP client for the row store's REST API.
type Client struct {
	cfg  Config
	http *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient builds a row store client with the configured request timeout.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rawRecord struct {
	ID          string         `json:"id"`
	CreatedTime time.Time      `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

type listResponse struct {
	Records []rawRecord `json:"records"`
	Offset  string      `json:"offset"`
}

// FetchRecord looks up exactly one record in table whose id field equals
// recordKey. Returns ErrNotFound when the store holds no such record and
// ErrFetch for transport or protocol failures.
func (c *Client) FetchRecord(ctx context.Context, table, recordKey string) (map[string]any, error) {
	q := url.Values{}
	q.Set("filterByFormula", fmt.Sprintf("{id} = '%s'", escapeFormulaValue(recordKey)))
	q.Set("maxRecords", "1")

	resp, err := c.get(ctx, table, q)
	if err != nil {
		return nil, err
	}
	if len(resp.Records) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, recordKey, table)
	}
	return resp.Records[0].Fields, nil
}

// ListRecords walks every page of the named view, following the offset
// cursor until the store stops returning one.
func (c *Client) ListRecords(ctx context.Context, table, view string) ([]rawRecord, error) {
	var all []rawRecord
	offset := ""
	for {
		q := url.Values{}
		if view != "" {
			q.Set("view", view)
		}
		if offset != "" {
			q.Set("offset", offset)
		}

		resp, err := c.get(ctx, table, q)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Records...)
		if resp.Offset == "" {
			return all, nil
		}
		offset = resp.Offset
	}
}

func (c *Client) get(ctx context.Context, table string, query url.Values) (*listResponse, error) {
	endpoint := fmt.Sprintf("%s/v0/%s/%s?%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"),
		url.PathEscape(c.cfg.BaseID),
		url.PathEscape(table),
		query.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: authentication failed, check the token", ErrFetch)
	case http.StatusForbidden:
		return nil, fmt.Errorf("%w: access denied, check token permissions", ErrFetch)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: table or base not found", ErrFetch)
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var out listResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrFetch, err)
	}
	return &out, nil
}

// escapeFormulaValue keeps record keys from breaking out of the quoted
// filter expression.
func escapeFormulaValue(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
