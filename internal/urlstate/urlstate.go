// internal/urlstate/urlstate.go
// Package urlstate reads and rewrites the query-like portion of a URL
// fragment ("page.html#/table?filter=...&sort=...") as a flat key=value
// set. The report page uses the same convention to persist filter and sort
// state across reloads and shared links.
package urlstate

import (
	"net/url"
	"strings"
)

// Params extracts the key=value pairs encoded after the '?' inside the
// URL's fragment. A URL without a fragment, or a fragment without a '?',
// yields an empty map.
func Params(rawURL string) map[string]string {
	_, query := splitFragment(rawURL)
	out := make(map[string]string)
	if query == "" {
		return out
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return out
	}
	for key := range values {
		out[key] = values.Get(key)
	}
	return out
}

// WithParams computes a new URL string with the fragment parameters
// updated. An update with an empty value deletes the key. Keys are encoded
// in sorted order so the result is deterministic.
func WithParams(rawURL string, updates map[string]string) string {
	base, query := splitFragment(rawURL)

	values, err := url.ParseQuery(query)
	if err != nil {
		values = url.Values{}
	}
	for key, value := range updates {
		if value == "" {
			values.Del(key)
			continue
		}
		values.Set(key, value)
	}

	encoded := values.Encode()
	if encoded == "" {
		return base
	}
	return base + "?" + encoded
}

// Navigate computes the updated URL and hands it to the supplied apply
// callback, the stand-in for a browser location change.
func Navigate(rawURL string, updates map[string]string, apply func(string)) {
	if apply == nil {
		return
	}
	apply(WithParams(rawURL, updates))
}

// splitFragment separates a URL into everything up to and including the
// fragment path, and the query portion after the fragment's '?'.
func splitFragment(rawURL string) (base, query string) {
	hash := strings.Index(rawURL, "#")
	if hash < 0 {
		return rawURL, ""
	}
	fragment := rawURL[hash+1:]
	q := strings.Index(fragment, "?")
	if q < 0 {
		return rawURL, ""
	}
	return rawURL[:hash+1+q], fragment[q+1:]
}
