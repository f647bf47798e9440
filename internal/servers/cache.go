package servers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/coryzibell/speedrun/internal/utils"
)

const (
	remoteListURL = "https://raw.githubusercontent.com/coryzibell/speedrun/main/servers.json"
	cacheExpiry   = 7 * 24 * time.Hour
	fetchTimeout  = 10 * time.Second
)

func cachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".speedrun_servers.json"
	}
	return filepath.Join(dir, "speedrun", "servers.json")
}

// LoadLocal reads the cached server data, returning empty data when the
// cache is missing or unreadable.
func LoadLocal() *LocalData {
	data := &LocalData{
		Health:         make(map[string]*Health),
		CacheTimestamp: time.Now().UTC(),
	}
	contents, err := os.ReadFile(cachePath())
	if err != nil {
		return data
	}
	var cached LocalData
	if err := json.Unmarshal(contents, &cached); err != nil {
		return data
	}
	if cached.Health == nil {
		cached.Health = make(map[string]*Health)
	}
	return &cached
}

func SaveLocal(data *LocalData) error {
	path := cachePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	contents, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0644)
}

// Stale reports whether the cached remote list should be refreshed.
func (d *LocalData) Stale() bool {
	return time.Since(d.CacheTimestamp) >= cacheExpiry
}

// Fetch downloads the remote server list.
func Fetch() (*List, error) {
	return fetchFrom(remoteListURL)
}

func fetchFrom(url string) (*List, error) {
	log := utils.GetLogger("servers")
	client := utils.NewClient(utils.ClientConfig{Timeout: fetchTimeout})
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "speedrun")
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var list List
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	log.Debug().Int("count", len(list.Servers)).Str("version", list.Version).Msg("Remote server list fetched")
	return &list, nil
}
