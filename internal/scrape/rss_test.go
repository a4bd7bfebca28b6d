package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"newsagent/models"
)

const feedFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Łowcy Gier</title>
    <link>https://example.com</link>
    <item>
      <title>Darmowy weekend z grą</title>
      <link>https://example.com/darmowy-weekend/</link>
      <description>&lt;p&gt;Graj za darmo przez &lt;b&gt;72 godziny&lt;/b&gt;.&lt;/p&gt;</description>
      <pubDate>Wed, 01 May 2024 10:15:30 +0000</pubDate>
    </item>
    <item>
      <title>Bundle bez daty</title>
      <link>https://example.com/bundle/</link>
      <description>Paczka gier w dobrej cenie.</description>
    </item>
  </channel>
</rss>`

func TestRSSStrategy_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feed/", r.URL.Path)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feedFixture))
	}))
	defer server.Close()

	s := &rssStrategy{client: NewClient(zap.NewNop())}
	src := models.Source{Name: "test", BaseURL: server.URL, FeedPath: "/feed/"}

	items, err := s.Fetch(context.Background(), src)

	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, models.NewsItem{
		Title:   "Darmowy weekend z grą",
		URL:     "https://example.com/darmowy-weekend/",
		Excerpt: "Graj za darmo przez 72 godziny.",
		Date:    "2024-05-01T10:15:30",
	}, items[0])

	// Missing pubDate leaves the date empty.
	assert.Equal(t, "Bundle bez daty", items[1].Title)
	assert.Empty(t, items[1].Date)
}

func TestRSSStrategy_Fetch_SkipsIncomplete(t *testing.T) {
	feed := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>t</title>
<item><title>Wpis bez linku</title></item>
<item><title>Kompletny wpis</title><link>https://example.com/ok/</link></item>
</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer server.Close()

	s := &rssStrategy{client: NewClient(zap.NewNop())}
	src := models.Source{Name: "test", BaseURL: server.URL, FeedPath: "/feed/"}

	items, err := s.Fetch(context.Background(), src)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kompletny wpis", items[0].Title)
}

func TestRSSStrategy_Fetch_OffsetTimezone(t *testing.T) {
	feed := `<?xml version="1.0"?>
<rss version="2.0"><channel><title>t</title>
<item>
  <title>Promka</title>
  <link>https://example.com/promka/</link>
  <pubDate>Wed, 01 May 2024 12:00:00 +0200</pubDate>
</item>
</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feed))
	}))
	defer server.Close()

	s := &rssStrategy{client: NewClient(zap.NewNop())}
	src := models.Source{Name: "test", BaseURL: server.URL, FeedPath: "/feed/"}

	items, err := s.Fetch(context.Background(), src)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2024-05-01T10:00:00", items[0].Date)
}

func TestRSSStrategy_Fetch_NotAFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><body>front page</body></html>`))
	}))
	defer server.Close()

	s := &rssStrategy{client: NewClient(zap.NewNop())}
	src := models.Source{Name: "test", BaseURL: server.URL, FeedPath: "/feed/"}

	_, err := s.Fetch(context.Background(), src)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing feed")
}
