package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

type APIConfig struct {
	BaseURL        string `yaml:"baseUrl"`
	AccessToken    string `yaml:"accessToken"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

type DownloadConfig struct {
	Dir string `yaml:"dir"`
}

type ExportConfig struct {
	ExcludedColumns     []string `yaml:"excludedColumns"`     // columns dropped from every written file
	RequestDelaySeconds int      `yaml:"requestDelaySeconds"` // courtesy delay after each fetch attempt
	RetryAttempts       int      `yaml:"retryAttempts"`
	RetryDelaySeconds   int      `yaml:"retryDelaySeconds"`
}

type Config struct {
	API      APIConfig      `yaml:"api"`
	Download DownloadConfig `yaml:"download"`
	Export   ExportConfig   `yaml:"export,omitempty"`
	Debug    bool
}

func Load(filename string) (*Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %v", err)
	}

	c := &Config{}
	err = yaml.Unmarshal(buf, c)
	if err != nil {
		return nil, fmt.Errorf("parsing yaml: %v", err)
	}
	c.applyDefaults()

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 10
	}
	if c.Download.Dir == "" {
		c.Download.Dir = "download"
	}
	if c.Export.RequestDelaySeconds == 0 {
		c.Export.RequestDelaySeconds = 1
	}
	if c.Export.RetryAttempts <= 0 {
		c.Export.RetryAttempts = 2
	}
	if c.Export.RetryDelaySeconds <= 0 {
		c.Export.RetryDelaySeconds = 5
	}
}

func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.Export.RequestDelaySeconds) * time.Second
}

func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Export.RetryDelaySeconds) * time.Second
}
