package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/coryzibell/speedrun/internal/utils"
)

const DefaultUserAgent = "Mozilla/5.0"

type CustomServer struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	UserAgent     string         `yaml:"user_agent"`
	SpeedUnit     string         `yaml:"speed_unit"`
	Interactive   bool           `yaml:"interactive"`
	CustomServers []CustomServer `yaml:"custom_servers"`
}

func Default() Config {
	return Config{
		UserAgent: DefaultUserAgent,
		SpeedUnit: "bits-metric",
	}
}

// paths returns candidate config locations in priority order: working
// directory first, then the home directory.
func paths() []string {
	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, "speedrun.yaml"))
		candidates = append(candidates, filepath.Join(cwd, ".speedrun.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".speedrun.yaml"))
	}
	return candidates
}

// Load reads the first parseable config file, falling back to defaults
// when none exists.
func Load() Config {
	log := utils.GetLogger("config")
	for _, path := range paths() {
		cfg, err := LoadFile(path)
		if err != nil {
			continue
		}
		log.Debug().Str("path", path).Msg("Config loaded")
		return cfg
	}
	return Default()
}

func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.SpeedUnit == "" {
		cfg.SpeedUnit = "bits-metric"
	}
	return cfg, nil
}
