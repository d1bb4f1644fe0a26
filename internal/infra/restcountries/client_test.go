package restcountries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"explorer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `[
	{
		"name": {"common": "Japan", "official": "Japan"},
		"capital": ["Tokyo"],
		"region": "Asia",
		"population": 126476461,
		"languages": {"jpn": "Japanese"},
		"currencies": {"JPY": {"name": "Japanese yen", "symbol": "¥"}},
		"borders": [],
		"timezones": ["UTC+09:00"],
		"flags": {"png": "https://flagcdn.com/w320/jp.png"}
	},
	{
		"name": {"common": "Canada", "official": "Canada"},
		"capital": ["Ottawa"],
		"region": "Americas",
		"population": 38005238,
		"languages": {"eng": "English", "fra": "French"},
		"currencies": {"CAD": {"name": "Canadian dollar", "symbol": "$"}},
		"borders": ["USA"],
		"timezones": ["UTC-08:00", "UTC-07:00"],
		"flags": {"png": "https://flagcdn.com/w320/ca.png"}
	}
]`

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		CountriesAPI: &config.CountriesAPIConfig{
			BaseURL: baseURL,
			Timeout: 2 * time.Second,
		},
	}

	return New(cfg).(*Client)
}

func TestClient_FetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/all", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "fields=")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	countries, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)

	japan := countries[0]
	assert.Equal(t, "Japan", japan.Name)
	assert.Equal(t, "Tokyo", japan.Capital)
	assert.Equal(t, "Asia", japan.Region)
	assert.Equal(t, int64(126476461), japan.Population)
	assert.Equal(t, []string{"Japanese"}, japan.Languages)
	assert.Equal(t, []string{"Japanese yen"}, japan.Currencies)
	assert.Empty(t, japan.Borders)
	assert.Equal(t, []string{"UTC+09:00"}, japan.Timezones)
	assert.Equal(t, "https://flagcdn.com/w320/jp.png", japan.FlagURL)

	canada := countries[1]
	assert.Equal(t, "Canada", canada.Name)
	assert.Equal(t, []string{"USA"}, canada.Borders)
	assert.Len(t, canada.Languages, 2)
}

func TestClient_FetchAll_SkipsNamelessEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"population": 42}, {"name": {"common": "Japan"}, "population": 1}]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	countries, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Japan", countries[0].Name)
}

func TestClient_FetchAll_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestClient_FetchAll_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message": "not an array"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected payload shape")
}
