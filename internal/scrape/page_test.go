package scrape

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head>
<title>Launch Week Hackathon</title>
<meta name="description" content="Build with Supabase">
<script>var x = 1;</script>
</head><body>
<h1>Launch   Week</h1>
<div class="sponsors-grid"><img alt="Algolia" src="a.png"><img alt="Figma" src="f.png"><img alt="Figma" src="f2.png"></div>
<style>.a{}</style>
</body></html>`

// region IsURL tests

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://supabase.com/launch-week"))
	assert.True(t, IsURL(" http://example.com "))
	assert.False(t, IsURL("Supabase Launch Week"))
	assert.False(t, IsURL("ftp://example.com"))
	assert.False(t, IsURL("https://"))
}

// endregion

// region Digest tests

func TestDigest_CollectsTitleDescriptionLogosAndText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(samplePage))
	require.NoError(t, err)

	out := Digest(doc)

	assert.Contains(t, out, "Title: Launch Week Hackathon")
	assert.Contains(t, out, "Description: Build with Supabase")
	assert.Contains(t, out, "Sponsor logos: Algolia, Figma\n")
	assert.Contains(t, out, "Text: Launch Week")
	assert.NotContains(t, out, "var x")
}

func TestDigest_TruncatesOnRuneBoundary(t *testing.T) {
	page := "<html><body>x" + strings.Repeat("é", maxTextLen) + "</body></html>"
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	out := Digest(doc)

	assert.True(t, utf8.ValidString(out))
	assert.LessOrEqual(t, len(out), maxTextLen)
	assert.Greater(t, len(out), maxTextLen-utf8.UTFMax)
}

// endregion

// region Gather tests

func TestGather_SkipsNonURL(t *testing.T) {
	out, err := NewPageReader(nil).Gather(context.Background(), "HackMIT 2025")

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGather_FetchesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "WhatToHack/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(samplePage))
	}))
	defer server.Close()

	out, err := NewPageReader(server.Client()).Gather(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "Launch Week Hackathon")
}

func TestGather_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewPageReader(server.Client()).Gather(context.Background(), server.URL)

	assert.Error(t, err)
}

func TestGather_BodyIsCapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><head><title>Big</title></head><body>"))
		chunk := []byte(strings.Repeat("a", 1<<20))
		for i := 0; i < 8; i++ {
			w.Write(chunk)
		}
		w.Write([]byte(`<meta name="description" content="tail-marker"></body></html>`))
	}))
	defer server.Close()

	out, err := NewPageReader(server.Client()).Gather(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, out, "Title: Big")
	assert.NotContains(t, out, "tail-marker")
}

// endregion

// region Public address guard tests

func TestPublicPageReader_RejectsLocalTargets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("local server must not be reached")
	}))
	defer server.Close()

	for _, target := range []string{
		server.URL,
		"http://localhost:5432/",
		"http://169.254.169.254/latest/meta-data/",
		"http://10.0.0.8/admin",
		"http://[::1]:8080/",
		"http://metadata.google.internal/",
	} {
		_, err := NewPublicPageReader().Gather(context.Background(), target)
		assert.ErrorIs(t, err, ErrBlockedAddress, target)
	}
}

func TestPublicClient_RejectsRedirectInward(t *testing.T) {
	client := NewPublicClient()

	for _, target := range []string{"http://127.0.0.1/", "http://192.168.1.1/", "file:///etc/passwd"} {
		req, err := http.NewRequest(http.MethodGet, target, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, client.CheckRedirect(req, nil), ErrBlockedAddress, target)
	}

	req, err := http.NewRequest(http.MethodGet, "https://hackmit.org/", nil)
	require.NoError(t, err)
	assert.NoError(t, client.CheckRedirect(req, nil))
}

func TestIsPublic(t *testing.T) {
	cases := map[string]bool{
		"8.8.8.8":         true,
		"2606:4700::1111": true,
		"127.0.0.1":       false,
		"10.1.2.3":        false,
		"172.16.0.1":      false,
		"192.168.0.10":    false,
		"169.254.169.254": false,
		"100.64.0.1":      false,
		"0.0.0.0":         false,
		"::1":             false,
		"fe80::1":         false,
		"fd00::1":         false,
	}
	for addr, want := range cases {
		assert.Equal(t, want, isPublic(net.ParseIP(addr)), addr)
	}
}

// endregion
