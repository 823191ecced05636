package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray quizpath.yaml is picked up.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.User != "default" {
		t.Errorf("user: got %q, want default", cfg.User)
	}
	if cfg.CatalogFile != "questions.csv" {
		t.Errorf("catalog file: got %q, want questions.csv", cfg.CatalogFile)
	}
	if cfg.RecommendCount != 5 {
		t.Errorf("recommend count: got %d, want 5", cfg.RecommendCount)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizpath.yaml")
	content := "user: ada\ndata_dir: /srv/quiz\nrecommend_count: 8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.User != "ada" {
		t.Errorf("user: got %q, want ada", cfg.User)
	}
	if cfg.RecommendCount != 8 {
		t.Errorf("recommend count: got %d, want 8", cfg.RecommendCount)
	}
	// Unset keys keep their defaults.
	if cfg.GraphFile != "knowledge_graph.txt" {
		t.Errorf("graph file: got %q, want knowledge_graph.txt", cfg.GraphFile)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUIZPATH_USER", "grace")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.User != "grace" {
		t.Errorf("user: got %q, want grace", cfg.User)
	}
}

func TestLoad_BadRecommendCountFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizpath.yaml")
	if err := os.WriteFile(path, []byte("recommend_count: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RecommendCount != 5 {
		t.Errorf("recommend count: got %d, want fallback 5", cfg.RecommendCount)
	}
}

func TestPaths(t *testing.T) {
	cfg := &Config{DataDir: "data", CatalogFile: "questions.csv", GraphFile: "/etc/quiz/graph.txt"}
	if got := cfg.CatalogPath(); got != filepath.Join("data", "questions.csv") {
		t.Errorf("catalog path: got %q", got)
	}
	// Absolute file paths ignore the data dir.
	if got := cfg.GraphPath(); got != "/etc/quiz/graph.txt" {
		t.Errorf("graph path: got %q", got)
	}
}
