// Package config loads tool configuration from an optional quizpath.yaml
// plus QUIZPATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from file and environment.
type Config struct {
	User           string `mapstructure:"user"`            // learner whose attempt log is read and written
	DataDir        string `mapstructure:"data_dir"`        // directory holding catalog and graph files
	CatalogFile    string `mapstructure:"catalog_file"`    // question catalog, .csv or .json
	GraphFile      string `mapstructure:"graph_file"`      // prerequisite graph, topic|p1,p2 lines
	ReportDir      string `mapstructure:"report_dir"`      // where exported reports land
	RecommendCount int    `mapstructure:"recommend_count"` // K for top-K recommendations
}

// CatalogPath returns the resolved path of the question catalog.
func (c *Config) CatalogPath() string {
	return c.resolve(c.CatalogFile)
}

// GraphPath returns the resolved path of the prerequisite graph file.
func (c *Config) GraphPath() string {
	return c.resolve(c.GraphFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Load reads configuration. An explicit path wins; otherwise quizpath.yaml
// is looked up in the working directory and $XDG_CONFIG_HOME/quizpath.
// A missing config file is fine; defaults and environment apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("quizpath")
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if dir := configHome(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "quizpath"))
		}
	}

	v.SetDefault("user", "default")
	v.SetDefault("data_dir", "data")
	v.SetDefault("catalog_file", "questions.csv")
	v.SetDefault("graph_file", "knowledge_graph.txt")
	v.SetDefault("report_dir", "reports")
	v.SetDefault("recommend_count", 5)

	v.SetEnvPrefix("quizpath")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RecommendCount < 1 {
		cfg.RecommendCount = 5
	}
	return &cfg, nil
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
