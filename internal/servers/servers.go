package servers

import "time"

// Metadata describes one speed test server entry.
type Metadata struct {
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	Provider string  `json:"provider,omitempty"`
	Location string  `json:"location,omitempty"`
	Region   string  `json:"region,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
	FileSize int64   `json:"file_size,omitempty"`
	Enabled  bool    `json:"enabled"`
}

// List is a versioned server catalog, fetched remotely or embedded.
type List struct {
	Version string     `json:"version"`
	Updated time.Time  `json:"updated"`
	Servers []Metadata `json:"servers"`
}

// Health accumulates per-server measurement history across runs.
type Health struct {
	URL          string     `json:"url"`
	LastChecked  *time.Time `json:"last_checked,omitempty"`
	SuccessRate  float64    `json:"success_rate"`
	AvgSpeedMbps float64    `json:"avg_speed_mbps"`
	AvgLatencyMs float64    `json:"avg_latency_ms"`
	Failures     uint32     `json:"failures"`
	TotalChecks  uint32     `json:"total_checks"`
	UserRating   *int       `json:"user_rating,omitempty"`
	UserNotes    string     `json:"user_notes,omitempty"`
}

// LocalData is the on-disk cache: health history plus the last fetched
// remote list.
type LocalData struct {
	Health         map[string]*Health `json:"health"`
	CacheTimestamp time.Time          `json:"cache_timestamp"`
	RemoteList     *List              `json:"remote_list,omitempty"`
}

// Embedded fallback servers, used when no remote list has been cached.
var Catalog = []Metadata{
	{Name: "Cloudflare (CDN)", URL: "https://speed.cloudflare.com/__down?bytes=100000000", Provider: "Cloudflare", FileSize: 100000000, Enabled: true},
	{Name: "Tele2 (Global)", URL: "http://speedtest.tele2.net/100MB.zip", Provider: "Tele2", FileSize: 100000000, Enabled: true},
	{Name: "Hetzner (Nuremberg)", URL: "https://nbg1-speed.hetzner.com/100MB.bin", Provider: "Hetzner", Location: "Nuremberg", Region: "EU", FileSize: 100000000, Enabled: true},
	{Name: "Hetzner (Falkenstein)", URL: "https://fsn1-speed.hetzner.com/100MB.bin", Provider: "Hetzner", Location: "Falkenstein", Region: "EU", FileSize: 100000000, Enabled: true},
	{Name: "Hetzner (Helsinki)", URL: "https://hel1-speed.hetzner.com/100MB.bin", Provider: "Hetzner", Location: "Helsinki", Region: "EU", FileSize: 100000000, Enabled: true},
	{Name: "Hetzner (Ashburn VA)", URL: "https://ash-speed.hetzner.com/100MB.bin", Provider: "Hetzner", Location: "Ashburn", Region: "US", FileSize: 100000000, Enabled: true},
	{Name: "Hetzner (Hillsboro OR)", URL: "https://hil-speed.hetzner.com/100MB.bin", Provider: "Hetzner", Location: "Hillsboro", Region: "US", FileSize: 100000000, Enabled: true},
	{Name: "Hetzner (Singapore)", URL: "https://sin-speed.hetzner.com/100MB.bin", Provider: "Hetzner", Location: "Singapore", Region: "APAC", FileSize: 100000000, Enabled: true},
	{Name: "Vultr (New Jersey)", URL: "https://nj-us-ping.vultr.com/vultr.com.100MB.bin", Provider: "Vultr", Location: "New Jersey", Region: "US", FileSize: 100000000, Enabled: true},
	{Name: "Vultr (Silicon Valley)", URL: "https://sjo-ca-us-ping.vultr.com/vultr.com.100MB.bin", Provider: "Vultr", Location: "Silicon Valley", Region: "US", FileSize: 100000000, Enabled: true},
	{Name: "Vultr (Singapore)", URL: "https://sgp-ping.vultr.com/vultr.com.100MB.bin", Provider: "Vultr", Location: "Singapore", Region: "APAC", FileSize: 100000000, Enabled: true},
}

// Merged returns the servers to offer: the cached remote list when
// present, otherwise the embedded catalog, with disabled entries removed.
func (d *LocalData) Merged() []Metadata {
	source := Catalog
	if d.RemoteList != nil {
		source = d.RemoteList.Servers
	}
	merged := make([]Metadata, 0, len(source))
	for _, server := range source {
		if server.Enabled {
			merged = append(merged, server)
		}
	}
	return merged
}

// RecordResult folds one measurement into the server's health history.
// A negative speed or latency means that figure was not measured and
// leaves the corresponding average untouched.
func (d *LocalData) RecordResult(url string, ok bool, speedMbps, latencyMs float64) {
	if d.Health == nil {
		d.Health = make(map[string]*Health)
	}
	health, exists := d.Health[url]
	if !exists {
		health = &Health{URL: url}
		d.Health[url] = health
	}
	now := time.Now().UTC()
	health.LastChecked = &now
	health.TotalChecks++
	if !ok {
		health.Failures++
	} else {
		successes := float64(health.TotalChecks - health.Failures)
		if speedMbps >= 0 {
			health.AvgSpeedMbps += (speedMbps - health.AvgSpeedMbps) / successes
		}
		if latencyMs >= 0 {
			health.AvgLatencyMs += (latencyMs - health.AvgLatencyMs) / successes
		}
	}
	health.SuccessRate = float64(health.TotalChecks-health.Failures) / float64(health.TotalChecks)
}
