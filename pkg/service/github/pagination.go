package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// PageIterator lazily fetches pages from a paginated GitHub endpoint.
// Next returns nil, nil once all pages have been consumed.
//
// The iterator is not safe for concurrent use.
type PageIterator[T any] struct {
	client  *Client
	nextURL string
}

func list[T any](client *Client, path string) *PageIterator[T] {
	return &PageIterator[T]{
		client:  client,
		nextURL: client.baseURL + path,
	}
}

// Next fetches the next page of results
func (it *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if it.nextURL == "" {
		return nil, nil
	}

	resp, err := it.client.doRaw(ctx, http.MethodGet, it.nextURL, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GitHub response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	items := []T{}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, goerr.Wrap(err, "failed to decode GitHub page", goerr.V("url", it.nextURL))
	}

	next := parseLinkNext(resp.Header.Get("Link"))
	if next != "" && !it.client.ownsURL(next) {
		// Credentials are only ever sent to the configured API host
		it.nextURL = ""
		return items, goerr.New("pagination link points outside the GitHub API base URL",
			goerr.V("baseURL", it.client.baseURL),
			goerr.V("next", next))
	}
	it.nextURL = next
	return items, nil
}

// ownsURL reports whether rawURL is under the client's base URL
func (c *Client) ownsURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, c.baseURL+"/") || strings.HasPrefix(rawURL, c.baseURL+"?")
}

// Collect fetches all remaining pages and concatenates their items
func (it *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	all := []T{}
	for it.nextURL != "" {
		items, err := it.Next(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, items...)
	}
	return all, nil
}

// parseLinkNext extracts the rel="next" URL from an RFC 5988 Link header
//
//	<https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
func parseLinkNext(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		segments := strings.SplitN(strings.TrimSpace(part), ";", 2)
		if len(segments) != 2 {
			continue
		}

		urlPart := strings.TrimSpace(segments[0])
		if !strings.Contains(segments[1], `rel="next"`) {
			continue
		}
		if strings.HasPrefix(urlPart, "<") && strings.HasSuffix(urlPart, ">") {
			return urlPart[1 : len(urlPart)-1]
		}
	}

	return ""
}
