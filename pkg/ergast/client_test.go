package ergast_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1proxy/pkg/ergast"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seasons.json", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "5", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"MRData":{"SeasonTable":{"Seasons":[{"season":"1955"},{"season":"1956"}]}}}`))
	}))
	defer srv.Close()

	client := ergast.New(srv.URL, 2*time.Second)

	params := url.Values{}
	params.Set("limit", "2")
	params.Set("offset", "5")

	data, err := client.Fetch(context.Background(), "seasons", params)
	require.NoError(t, err)

	seasons := ergast.Table(data, "SeasonTable", "Seasons")
	require.Len(t, seasons, 2)

	first, ok := seasons[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1955", first["season"])
}

func TestFetchAppendsJSONSuffixOnce(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := ergast.New(srv.URL, 2*time.Second)

	_, err := client.Fetch(context.Background(), "2024", nil)
	require.NoError(t, err)
	assert.Equal(t, "/2024.json", gotPath)
}

func TestFetchUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := ergast.New(srv.URL, 2*time.Second)

	_, err := client.Fetch(context.Background(), "2024/drivers", nil)
	require.Error(t, err)

	var upstream *ergast.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.Status)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	client := ergast.New(baseURL, time.Second)

	_, err := client.Fetch(context.Background(), "seasons", nil)
	require.Error(t, err)

	var unavailable *ergast.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, err.Error(), "external data source unavailable")
}

func TestTableMissingLevels(t *testing.T) {
	cases := []struct {
		name string
		data map[string]any
	}{
		{"empty body", map[string]any{}},
		{"missing table", map[string]any{"MRData": map[string]any{}}},
		{"missing list", map[string]any{"MRData": map[string]any{"SeasonTable": map[string]any{}}}},
		{"mistyped table", map[string]any{"MRData": map[string]any{"SeasonTable": "oops"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := ergast.Table(tc.data, "SeasonTable", "Seasons")
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}
