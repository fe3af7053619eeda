package portal

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/portal-tools/internal/config"
)

// Client issues authenticated requests against one portal host. It is safe
// for sequential use only; the tools here never fan requests out.
type Client struct {
	server string
	auth   string
	http   *http.Client
	log    zerolog.Logger
}

// New builds a client from keyfile credentials. A zero timeout means none:
// a hung request blocks until the process is killed, matching how the portal
// tools have always behaved.
func New(creds config.Credentials, timeout time.Duration, logg *zerolog.Logger) *Client {
	c := &Client{
		server: strings.TrimRight(creds.Server, "/"),
		http:   &http.Client{Timeout: timeout},
		log:    *logg,
	}
	if creds.Authenticated() {
		c.auth = "Basic " + base64.StdEncoding.EncodeToString([]byte(creds.Key+":"+creds.Secret))
	}
	return c
}

// FetchReportPage requests one page of the report. A non-success status wraps
// ErrStatus; the caller decides whether that aborts the run.
func (c *Client) FetchReportPage(ctx context.Context, q ReportQuery) (*Page, error) {
	reqURL := c.reportURL(q)
	c.log.Debug().Str("url", reqURL).Msg("fetching report page")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("portal: failed to create report request: %w", err)
	}
	c.decorate(req)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portal: report request failed: %w", err)
	}
	defer res.Body.Close()

	c.log.Debug().
		Int("status", res.StatusCode).
		Int64("content_length", res.ContentLength).
		Str("content_type", res.Header.Get("Content-Type")).
		Msg("report response")

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal: %w: %s", ErrStatus, res.Status)
	}

	var page Page
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("portal: failed to decode report page: %w", err)
	}
	return &page, nil
}

// PutCart creates one cart record via PUT. Any 2xx status counts as created.
func (c *Client) PutCart(ctx context.Context, cart Cart) error {
	body, err := json.Marshal(map[string]string{
		"name":   cart.Name,
		"status": cart.Status,
	})
	if err != nil {
		return fmt.Errorf("portal: failed to marshal cart: %w", err)
	}

	reqURL := fmt.Sprintf("%s/carts/%s/", c.server, cart.Identifier)
	c.log.Debug().Str("url", reqURL).Str("name", cart.Name).Msg("creating cart")

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("portal: failed to create cart request: %w", err)
	}
	c.decorate(req)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("portal: cart request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("portal: %w: %s", ErrStatus, res.Status)
	}
	return nil
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.auth != "" {
		req.Header.Set("Authorization", c.auth)
	}
}

// reportURL builds the report query by hand to keep the portal's historical
// parameter order: type, extra filter, limit, from, field.
func (c *Client) reportURL(q ReportQuery) string {
	var b strings.Builder
	b.WriteString(c.server)
	b.WriteString("/report/?type=")
	b.WriteString(encodeQueryValue(q.Type))
	if q.Filter != "" {
		b.WriteString("&")
		b.WriteString(q.Filter)
	}
	fmt.Fprintf(&b, "&limit=%d&from=%d&field=%s", q.Limit, q.From, encodeQueryValue(q.Field))
	return b.String()
}

// encodeQueryValue escapes a query value the way the portal expects: spaces
// as "+", parens percent-escaped, but colons left literal.
func encodeQueryValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%3A", ":")
}
