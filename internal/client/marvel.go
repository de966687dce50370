package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"marvel/catalog/internal/config"
	"marvel/catalog/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

type CatalogClient interface {
	Fetch(ctx context.Context, path domain.ResourcePath, opts Options) (json.RawMessage, error)
	FetchComicsPage(ctx context.Context, page int) (*domain.Comics, error)
	SearchCharacters(ctx context.Context, namePrefix string, page int) (*domain.Characters, error)
}

// Options narrows a catalog request. A nil Page leaves the offset to the server.
type Options struct {
	Query url.Values
	Page  *int
}

// Page returns a pointer suitable for Options.Page
func Page(n int) *int {
	return &n
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type catalogClient struct {
	baseURL    string
	apiKey     string
	httpClient *resty.Client
}

func NewCatalogClient(cfg config.MarvelConfig) CatalogClient {
	return NewCatalogClientWithResty(cfg, NewRestyClient(cfg))
}

// NewCatalogClientWithResty lets the caller own the resty client lifecycle
func NewCatalogClientWithResty(cfg config.MarvelConfig, httpClient *resty.Client) CatalogClient {
	return &catalogClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}
}

// NewRestyClient builds the HTTP client used for catalog requests. Retries stay disabled.
func NewRestyClient(cfg config.MarvelConfig) *resty.Client {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
		log.Infof("🔗 Using proxy: %s", cfg.Proxy)
	}

	return client
}

func (c *catalogClient) Fetch(ctx context.Context, path domain.ResourcePath, opts Options) (json.RawMessage, error) {
	if !path.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if opts.Page != nil && *opts.Page < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPage, *opts.Page)
	}

	requestURI := c.requestURI(path, opts)
	log.Debugf("GET %s/%s query=%q", c.baseURL, path, opts.Query.Encode())

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(requestURI)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &TransportError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	var env envelope
	if err := json.Unmarshal([]byte(resp.String()), &env); err != nil {
		return nil, &FormatError{Err: err}
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, &FormatError{}
	}

	return env.Data, nil
}

func (c *catalogClient) FetchComicsPage(ctx context.Context, page int) (*domain.Comics, error) {
	comics, err := fetchCollection[domain.Comics](ctx, c, domain.ResourceComics, Options{Page: Page(page)})
	if err != nil {
		log.Errorf("Failed to fetch comics: %v", err)
		return nil, ErrComicsRetrieval
	}

	return comics, nil
}

func (c *catalogClient) SearchCharacters(ctx context.Context, namePrefix string, page int) (*domain.Characters, error) {
	opts := Options{
		Query: url.Values{"nameStartsWith": []string{namePrefix}},
		Page:  Page(page),
	}

	characters, err := fetchCollection[domain.Characters](ctx, c, domain.ResourceCharacters, opts)
	if err != nil {
		log.Errorf("Failed to search characters: %v", err)
		return nil, ErrCharacterSearch
	}

	return characters, nil
}

// requestURI composes <base>/<path>?apikey=<key>[&<query>][&offset=<n>]
func (c *catalogClient) requestURI(path domain.ResourcePath, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s/%s?apikey=%s", c.baseURL, path, url.QueryEscape(c.apiKey))

	if len(opts.Query) > 0 {
		b.WriteString("&")
		b.WriteString(opts.Query.Encode())
	}

	if opts.Page != nil {
		fmt.Fprintf(&b, "&offset=%d", domain.Offset(*opts.Page))
	}

	return b.String()
}

func fetchCollection[T any](ctx context.Context, c *catalogClient, path domain.ResourcePath, opts Options) (*T, error) {
	data, err := c.Fetch(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	var collection T
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, &FormatError{Err: fmt.Errorf("failed to decode %s payload: %w", path, err)}
	}

	return &collection, nil
}
