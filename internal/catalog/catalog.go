package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

var (
	ErrUpstream = errors.New("upstream request failed")
)

const maxSearchResults = 20

// SearchResult is the reshaped card-sized record returned to the frontend.
// Year holds either the first publish year or the literal "N/A".
type SearchResult struct {
	Title    string  `json:"title"`
	Author   string  `json:"author"`
	CoverUrl *string `json:"coverUrl"`
	Year     any     `json:"year"`
	Olid     string  `json:"olid"`
}

type Client interface {
	GetWork(ctx context.Context, id string) (map[string]any, error)
	GetEditions(ctx context.Context, id string) (json.RawMessage, error)
	Search(ctx context.Context, search string, title string, author string) ([]SearchResult, error)
}

// OpenLibraryClient proxies the Open Library catalog API.
type OpenLibraryClient struct {
	baseURL   string
	coversURL string
	client    *http.Client
}

func NewOpenLibraryClient(baseURL string, coversURL string) *OpenLibraryClient {
	return &OpenLibraryClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		coversURL: strings.TrimSuffix(coversURL, "/"),
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetWork fetches work metadata and inlines the full record of every listed
// author as fullAuthors, preserving the order of the author references.
func (c *OpenLibraryClient) GetWork(ctx context.Context, id string) (map[string]any, error) {
	body, err := c.getJSON(ctx, fmt.Sprintf("%s/works/%s.json", c.baseURL, url.PathEscape(id)))

	if err != nil {
		return nil, err
	}

	var detail map[string]any

	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("%w: error decoding work detail: %v", ErrUpstream, err)
	}

	authorKeys := authorKeys(detail)
	fullAuthors := make([]any, len(authorKeys))

	var wg sync.WaitGroup
	errs := make([]error, len(authorKeys))

	for i, key := range authorKeys {
		wg.Add(1)

		go func(i int, key string) {
			defer wg.Done()

			body, err := c.getJSON(ctx, fmt.Sprintf("%s%s.json", c.baseURL, key))

			if err != nil {
				errs[i] = err
				return
			}

			var author map[string]any

			if err := json.Unmarshal(body, &author); err != nil {
				errs[i] = fmt.Errorf("%w: error decoding author detail: %v", ErrUpstream, err)
				return
			}

			fullAuthors[i] = author
		}(i, key)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	detail["fullAuthors"] = fullAuthors

	return detail, nil
}

func (c *OpenLibraryClient) GetEditions(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, fmt.Sprintf("%s/works/%s/editions.json", c.baseURL, url.PathEscape(id)))
}

// Search runs a generic full-text query when only search is given, otherwise
// an AND-style title/author query, and reshapes the first 20 docs.
func (c *OpenLibraryClient) Search(ctx context.Context, search string, title string, author string) ([]SearchResult, error) {
	var queryString string

	if search != "" && title == "" && author == "" {
		queryString = fmt.Sprintf("q=%s", url.QueryEscape(search))
	} else {
		params := []string{}

		if title != "" {
			params = append(params, fmt.Sprintf("title=%s", url.QueryEscape(title)))
		}

		if author != "" {
			params = append(params, fmt.Sprintf("author=%s", url.QueryEscape(author)))
		}

		queryString = strings.Join(params, "&")
	}

	body, err := c.getJSON(ctx, fmt.Sprintf("%s/search.json?%s", c.baseURL, queryString))

	if err != nil {
		return nil, err
	}

	var payload struct {
		Docs []struct {
			Title            string   `json:"title"`
			AuthorName       []string `json:"author_name"`
			CoverI           *int64   `json:"cover_i"`
			FirstPublishYear *int     `json:"first_publish_year"`
			Key              string   `json:"key"`
		} `json:"docs"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: error decoding search results: %v", ErrUpstream, err)
	}

	docs := payload.Docs

	if len(docs) > maxSearchResults {
		docs = docs[:maxSearchResults]
	}

	results := make([]SearchResult, 0, len(docs))

	for _, doc := range docs {
		result := SearchResult{
			Title: doc.Title,
			Olid:  doc.Key,
		}

		// Open Library carries a lot of junk data; fall back to a
		// placeholder rather than an empty author.
		if len(doc.AuthorName) > 0 {
			result.Author = strings.Join(doc.AuthorName, ", ")
		} else {
			result.Author = "Unknown Author"
		}

		if doc.CoverI != nil {
			coverUrl := fmt.Sprintf("%s/b/id/%d-M.jpg", c.coversURL, *doc.CoverI)
			result.CoverUrl = &coverUrl
		}

		if doc.FirstPublishYear != nil {
			result.Year = *doc.FirstPublishYear
		} else {
			result.Year = "N/A"
		}

		results = append(results, result)
	}

	return results, nil
}

// getJSON performs a GET with one retry on transport failure. Requests are
// bounded by the client timeout and the caller's context.
func (c *OpenLibraryClient) getJSON(ctx context.Context, rawURL string) (json.RawMessage, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(300 * time.Millisecond):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrUpstream, ctx.Err())
			}
		}

		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)

		if err != nil {
			return nil, fmt.Errorf("%w: error building request: %v", ErrUpstream, err)
		}

		resp, err = c.client.Do(req)

		if err == nil {
			break
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, fmt.Errorf("%w: error reading response: %v", ErrUpstream, err)
	}

	return body, nil
}

func authorKeys(detail map[string]any) []string {
	authors, ok := detail["authors"].([]any)

	if !ok {
		return nil
	}

	keys := []string{}

	for _, entry := range authors {
		ref, ok := entry.(map[string]any)

		if !ok {
			continue
		}

		author, ok := ref["author"].(map[string]any)

		if !ok {
			continue
		}

		if key, ok := author["key"].(string); ok {
			keys = append(keys, key)
		}
	}

	return keys
}
