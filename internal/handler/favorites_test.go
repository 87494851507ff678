package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1proxy/internal/handler"
	"f1proxy/internal/store"
)

func newFavoritesHandler() (*handler.FavoritesHandler, *store.MemoryStore) {
	mem := store.NewMemoryStore("f1")
	return handler.NewFavoritesHandler(mem, discardLogger()), mem
}

func postJSON(t *testing.T, fn http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func get(t *testing.T, fn http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func TestAddDriverThenList(t *testing.T) {
	h, _ := newFavoritesHandler()

	rec := postJSON(t, h.AddDriver, `{"driver_id":"hamilton","code":"HAM","given_name":"Lewis"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	rec = get(t, h.ListDrivers)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["count"])

	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	doc, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hamilton", doc["driver_id"])
	assert.Equal(t, "HAM", doc["code"])

	// The storage identifier crosses the boundary as a plain string.
	id, ok := doc["id"].(string)
	require.True(t, ok)
	assert.Equal(t, created.ID, id)
}

func TestDuplicateDriversAllowed(t *testing.T) {
	h, _ := newFavoritesHandler()

	first := postJSON(t, h.AddDriver, `{"driver_id":"hamilton"}`)
	second := postJSON(t, h.AddDriver, `{"driver_id":"hamilton"}`)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	rec := get(t, h.ListDrivers)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
}

func TestAddDriverMissingID(t *testing.T) {
	h, mem := newFavoritesHandler()

	rec := postJSON(t, h.AddDriver, `{"code":"HAM"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["detail"], "driver_id")

	docs, err := mem.ListAll(t.Context(), store.CollectionFavoriteDrivers)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestAddDriverMalformedBody(t *testing.T) {
	h, _ := newFavoritesHandler()

	rec := postJSON(t, h.AddDriver, `{"driver_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConstructorRoundTrip(t *testing.T) {
	h, _ := newFavoritesHandler()

	rec := postJSON(t, h.AddConstructor, `{"constructor_id":"mclaren","name":"McLaren","nationality":"British"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h.ListConstructors)
	body := decodeBody(t, rec)
	require.Equal(t, float64(1), body["count"])

	items := body["items"].([]any)
	doc := items[0].(map[string]any)
	assert.Equal(t, "mclaren", doc["constructor_id"])
	assert.Equal(t, "McLaren", doc["name"])
	assert.IsType(t, "", doc["id"])
}

func TestAddConstructorMissingID(t *testing.T) {
	h, _ := newFavoritesHandler()

	rec := postJSON(t, h.AddConstructor, `{"name":"McLaren"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestFavoritesWithoutStore(t *testing.T) {
	h := handler.NewFavoritesHandler(nil, discardLogger())

	rec := postJSON(t, h.AddDriver, `{"driver_id":"hamilton"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = get(t, h.ListDrivers)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListEmptyCollection(t *testing.T) {
	h, _ := newFavoritesHandler()

	rec := get(t, h.ListDrivers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"items":[]}`, rec.Body.String())
}
