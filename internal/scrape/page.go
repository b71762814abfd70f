// Package scrape reduces a hackathon web page to text an LLM can read.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxTextLen   = 8000
	maxBodyBytes = 2 << 20
)

// PageReader fetches hackathon pages for URL queries.
type PageReader struct {
	client     *http.Client
	publicOnly bool
}

// NewPageReader reads pages with client as given. Use it for trusted
// targets only.
func NewPageReader(client *http.Client) *PageReader {
	if client == nil {
		client = http.DefaultClient
	}
	return &PageReader{client: client}
}

// NewPublicPageReader reads user-supplied URLs and refuses any that resolve
// to a non-public address.
func NewPublicPageReader() *PageReader {
	return &PageReader{client: NewPublicClient(), publicOnly: true}
}

// IsURL reports whether query is an absolute http(s) URL.
func IsURL(query string) bool {
	u, err := url.Parse(strings.TrimSpace(query))
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Gather returns a text digest of the page at query, or "" when query is
// not a URL.
func (r *PageReader) Gather(ctx context.Context, query string) (string, error) {
	if !IsURL(query) {
		return "", nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSpace(query), nil)
	if err != nil {
		return "", err
	}
	if r.publicOnly {
		if err := checkHost(req.URL.Hostname()); err != nil {
			return "", err
		}
	}
	req.Header.Set("User-Agent", "WhatToHack/1.0")

	res, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	digest := Digest(doc)
	slog.Debug("Scraped hackathon page", "url", query, "length", len(digest))
	return digest, nil
}

// Digest extracts the title, meta description, sponsor logo names and the
// visible body text of doc.
func Digest(doc *goquery.Document) string {
	var b strings.Builder

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		fmt.Fprintf(&b, "Title: %s\n", title)
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && strings.TrimSpace(desc) != "" {
		fmt.Fprintf(&b, "Description: %s\n", strings.TrimSpace(desc))
	}

	var logos []string
	doc.Find(`[class*="sponsor"] img[alt], [id*="sponsor"] img[alt], [class*="partner"] img[alt]`).Each(func(_ int, s *goquery.Selection) {
		alt := strings.TrimSpace(s.AttrOr("alt", ""))
		if alt != "" && !contains(logos, alt) {
			logos = append(logos, alt)
		}
	})
	if len(logos) > 0 {
		fmt.Fprintf(&b, "Sponsor logos: %s\n", strings.Join(logos, ", "))
	}

	body := doc.Find("body").Clone()
	body.Find("script, style, noscript, svg").Remove()
	if text := strings.Join(strings.Fields(body.Text()), " "); text != "" {
		fmt.Fprintf(&b, "Text: %s", text)
	}

	return strings.TrimSpace(truncate(b.String(), maxTextLen))
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
