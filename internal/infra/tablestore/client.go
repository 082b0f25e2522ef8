// Package tablestore implements the domain repositories on top of the
// hosted table-store's REST surface. Every row collection is reached over
// HTTPS with the project API key; there is no local database.
package tablestore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/config"

	"github.com/pkg/errors"
)

const restPrefix = "/rest/v1/"

// ErrBadStatus is returned when the backend answers outside the 2xx range.
var ErrBadStatus = errors.New("backend returned non-success status")

// Client is a thin query client for the backend's row collections. It is
// safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a table-store client from the backend configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		apiKey:  cfg.Backend.APIKey,
		http:    &http.Client{Timeout: cfg.Backend.RequestTimeout},
	}
}

// From starts a query against one collection.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, params: url.Values{}}
}

// Query accumulates filters for a single request. Filters use the
// backend's column=op.value query encoding.
type Query struct {
	client *Client
	table  string
	params url.Values
}

// Select restricts the returned columns. Defaults to all columns.
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)

	return q
}

// Eq filters rows where column equals value.
func (q *Query) Eq(column, value string) *Query {
	q.params.Add(column, "eq."+value)

	return q
}

// In filters rows where column is one of the given values.
func (q *Query) In(column string, values []string) *Query {
	q.params.Add(column, "in.("+strings.Join(values, ",")+")")

	return q
}

// OrderBy sorts the result on one column.
func (q *Query) OrderBy(column string, descending bool) *Query {
	direction := ".asc"
	if descending {
		direction = ".desc"
	}
	q.params.Set("order", column+direction)

	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))

	return q
}

// Get executes the query and decodes the row array into dest.
func (q *Query) Get(ctx context.Context, dest any) error {
	return q.client.do(ctx, http.MethodGet, q.url(), nil, dest, nil)
}

// Insert posts one row (or an array of rows). When dest is non-nil the
// inserted representation is requested back and decoded into it.
func (q *Query) Insert(ctx context.Context, payload, dest any) error {
	headers := map[string]string{}
	if dest != nil {
		headers["Prefer"] = "return=representation"
	}

	return q.client.do(ctx, http.MethodPost, q.url(), payload, dest, headers)
}

// Delete removes every row matching the accumulated filters.
func (q *Query) Delete(ctx context.Context) error {
	return q.client.do(ctx, http.MethodDelete, q.url(), nil, nil, nil)
}

func (q *Query) url() string {
	u := q.client.baseURL + restPrefix + q.table
	if encoded := q.params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	return u
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload, dest any, headers map[string]string) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Wrapf(ErrBadStatus, "%s %s: status %d: %s", method, rawURL, resp.StatusCode, string(snippet))
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}
