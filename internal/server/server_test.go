package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	storeMocks "newsagent/internal/store/mocks"
	"newsagent/models"
)

func newTestServer(t *testing.T) (*httptest.Server, *storeMocks.MockStore) {
	t.Helper()

	st := storeMocks.NewMockStore(t)
	s := New(":0", st, zap.NewNop())
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return ts, st
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func TestServer_Healthz(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": "ok"}`, string(body))
}

func TestServer_News_DefaultLimit(t *testing.T) {
	ts, st := newTestServer(t)

	items := []models.NewsItem{
		{Title: "Wiedźmin 4 zapowiedziany", URL: "https://lowcygier.pl/wiedzmin-4/"},
		{Title: "Promocje weekendowe", URL: "https://lowcygier.pl/promocje/"},
	}
	st.EXPECT().Recent(mock.Anything, 20).Return(items, nil).Once()

	resp, body := get(t, ts.URL+"/api/news")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got []models.NewsItem
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, items, got)
}

func TestServer_News_CustomLimit(t *testing.T) {
	ts, st := newTestServer(t)

	st.EXPECT().Recent(mock.Anything, 5).Return([]models.NewsItem{}, nil).Once()

	resp, _ := get(t, ts.URL+"/api/news?limit=5")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_News_LimitCapped(t *testing.T) {
	ts, st := newTestServer(t)

	st.EXPECT().Recent(mock.Anything, maxLimit).Return([]models.NewsItem{}, nil).Once()

	resp, _ := get(t, ts.URL+"/api/news?limit=5000")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_News_BadLimit(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, raw := range []string{"abc", "0", "-3"} {
		resp, body := get(t, ts.URL+"/api/news?limit="+raw)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "limit=%s", raw)
		assert.Contains(t, string(body), "positive integer")
	}
}

func TestServer_News_EmptyIsJSONArray(t *testing.T) {
	ts, st := newTestServer(t)

	st.EXPECT().Recent(mock.Anything, 20).Return(nil, nil).Once()

	resp, body := get(t, ts.URL+"/api/news")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestServer_News_StoreError(t *testing.T) {
	ts, st := newTestServer(t)

	st.EXPECT().Recent(mock.Anything, 20).
		Return(nil, errors.New("server selection timeout")).Once()

	resp, body := get(t, ts.URL+"/api/news")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error": "internal error"}`, string(body))
	assert.NotContains(t, string(body), "selection timeout")
}

func TestServer_NewsCount(t *testing.T) {
	ts, st := newTestServer(t)

	st.EXPECT().Count(mock.Anything).Return(int64(42), nil).Once()

	resp, body := get(t, ts.URL+"/api/news/count")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"count": 42}`, string(body))
}

func TestServer_NewsCount_Error(t *testing.T) {
	ts, st := newTestServer(t)

	st.EXPECT().Count(mock.Anything).
		Return(int64(0), errors.New("server selection timeout")).Once()

	resp, _ := get(t, ts.URL+"/api/news/count")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
