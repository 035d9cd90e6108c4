package country

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ferdiebergado/inflowkit/internal/config"
)

// ErrNotFound covers every upstream miss: unknown names, non-200 replies and
// malformed payloads all collapse to a not-found result.
var ErrNotFound = errors.New("country client: country not found")

// Lookup resolves a country name to its metadata.
type Lookup interface {
	FindByName(ctx context.Context, name string) (*Info, error)
}

// restCountry mirrors the fields consumed from the REST Countries v3.1 payload.
type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Region     string   `json:"region"`
	Population int64    `json:"population"`
	Capital    []string `json:"capital"`
	Currencies map[string]struct {
		Name string `json:"name"`
	} `json:"currencies"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
	CCA2 string `json:"cca2"`
}

type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

var _ Lookup = (*Client)(nil)

func NewClient(cfg *config.Country, client *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  client,
		timeout: cfg.Timeout.Duration,
	}
}

// FindByName queries the upstream API with a full-text name match.
func (c *Client) FindByName(ctx context.Context, name string) (*Info, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/name/%s?fullText=true", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("new request for %s: %w", endpoint, err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", ErrNotFound, res.StatusCode)
	}

	var payload []restCountry
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %v", ErrNotFound, err)
	}

	if len(payload) == 0 {
		return nil, ErrNotFound
	}

	return transformCountry(payload[0]), nil
}

func transformCountry(c restCountry) *Info {
	info := &Info{
		Name:       c.Name.Common,
		Region:     c.Region,
		Population: c.Population,
		FlagPNG:    c.Flags.PNG,
		CCA2:       c.CCA2,
	}

	if len(c.Capital) > 0 {
		info.Capital = c.Capital[0]
	}

	codes := make([]string, 0, len(c.Currencies))
	for code := range c.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	currencies := make([]string, 0, len(codes))
	for _, code := range codes {
		currencies = append(currencies, fmt.Sprintf("%s (%s)", code, c.Currencies[code].Name))
	}
	info.Currencies = strings.Join(currencies, ", ")

	return info
}
