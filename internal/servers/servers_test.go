package servers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergedFallsBackToCatalog(t *testing.T) {
	data := &LocalData{}
	merged := data.Merged()
	assert.Len(t, merged, len(Catalog))
	assert.Equal(t, "Cloudflare (CDN)", merged[0].Name)
}

func TestMergedPrefersRemoteAndFiltersDisabled(t *testing.T) {
	data := &LocalData{
		RemoteList: &List{
			Version: "2",
			Servers: []Metadata{
				{Name: "A", URL: "https://a.example/1", Enabled: true},
				{Name: "B", URL: "https://b.example/1", Enabled: false},
				{Name: "C", URL: "https://c.example/1", Enabled: true},
			},
		},
	}
	merged := data.Merged()
	require.Len(t, merged, 2)
	assert.Equal(t, "A", merged[0].Name)
	assert.Equal(t, "C", merged[1].Name)
}

func TestStale(t *testing.T) {
	fresh := &LocalData{CacheTimestamp: time.Now()}
	assert.False(t, fresh.Stale())

	old := &LocalData{CacheTimestamp: time.Now().Add(-8 * 24 * time.Hour)}
	assert.True(t, old.Stale())
}

func TestRecordResult(t *testing.T) {
	data := &LocalData{}
	url := "https://a.example/100MB.bin"

	data.RecordResult(url, true, 10, 50)
	data.RecordResult(url, true, 20, 150)
	data.RecordResult(url, false, 0, 0)

	health := data.Health[url]
	require.NotNil(t, health)
	assert.Equal(t, uint32(3), health.TotalChecks)
	assert.Equal(t, uint32(1), health.Failures)
	assert.InDelta(t, 2.0/3.0, health.SuccessRate, 1e-9)
	assert.InDelta(t, 15.0, health.AvgSpeedMbps, 1e-9)
	assert.InDelta(t, 100.0, health.AvgLatencyMs, 1e-9)
	require.NotNil(t, health.LastChecked)
}

func TestRecordResultSkipsUnmeasuredFigures(t *testing.T) {
	data := &LocalData{}
	url := "https://a.example/100MB.bin"

	data.RecordResult(url, true, 10, -1)
	health := data.Health[url]
	assert.InDelta(t, 10.0, health.AvgSpeedMbps, 1e-9)
	assert.Zero(t, health.AvgLatencyMs)
}

func TestFetchFrom(t *testing.T) {
	list := List{
		Version: "3",
		Updated: time.Now().UTC().Truncate(time.Second),
		Servers: []Metadata{{Name: "Remote", URL: "https://r.example/1", Enabled: true}},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(list)
	}))
	defer server.Close()

	fetched, err := fetchFrom(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "3", fetched.Version)
	require.Len(t, fetched.Servers, 1)
	assert.Equal(t, "Remote", fetched.Servers[0].Name)
}

func TestFetchFromUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := fetchFrom(url)
	assert.Error(t, err)
}

func TestProbe(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	badURL := bad.URL
	bad.Close()

	list := []Metadata{
		{Name: "good", URL: good.URL, Enabled: true},
		{Name: "bad", URL: badURL, Enabled: true},
	}
	results := Probe(context.Background(), list, 2)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Greater(t, results[0].Latency, time.Duration(0))
	assert.Error(t, results[1].Err)
}
