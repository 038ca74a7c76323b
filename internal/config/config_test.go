package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFeedsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feeds")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing feeds file: %v", err)
	}
	return path
}

func TestLoad_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("FEEDTERM_FEEDS", "/env/feeds")

	cfg := Load("/flag/feeds")
	if cfg.FeedsPath != "/flag/feeds" {
		t.Fatalf("unexpected feeds path: %s", cfg.FeedsPath)
	}
}

func TestLoad_EnvWinsOverDefault(t *testing.T) {
	t.Setenv("FEEDTERM_FEEDS", "/env/feeds")

	cfg := Load("")
	if cfg.FeedsPath != "/env/feeds" {
		t.Fatalf("unexpected feeds path: %s", cfg.FeedsPath)
	}
}

func TestLoad_DefaultUnderUserConfigDir(t *testing.T) {
	t.Setenv("FEEDTERM_FEEDS", "")

	cfg := Load("")
	if cfg.FeedsPath == "" {
		t.Skip("no user config dir on this platform")
	}
	if filepath.Base(cfg.FeedsPath) != "feeds" || filepath.Base(filepath.Dir(cfg.FeedsPath)) != "feedterm" {
		t.Fatalf("unexpected default path: %s", cfg.FeedsPath)
	}
}

func TestReadSourceList_SkipsInvalidLines(t *testing.T) {
	path := writeFeedsFile(t, "  \nhttps://example.com/feed\nnot-a-url\n")

	sources := Config{FeedsPath: path}.ReadSourceList()
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d: %v", len(sources), sources)
	}
	if sources[0] != "https://example.com/feed" {
		t.Fatalf("unexpected source: %s", sources[0])
	}
}

func TestReadSourceList_TrimsWhitespace(t *testing.T) {
	path := writeFeedsFile(t, "  https://a.example/feed  \nhttp://b.example/rss\n")

	sources := Config{FeedsPath: path}.ReadSourceList()
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d: %v", len(sources), sources)
	}
	if sources[0] != "https://a.example/feed" || sources[1] != "http://b.example/rss" {
		t.Fatalf("unexpected sources: %v", sources)
	}
}

func TestReadSourceList_MissingFile(t *testing.T) {
	cfg := Config{FeedsPath: filepath.Join(t.TempDir(), "does-not-exist")}
	if got := cfg.ReadSourceList(); got != nil {
		t.Fatalf("expected empty list for missing file, got %v", got)
	}
}

func TestReadSourceList_SchemeWithoutHost(t *testing.T) {
	path := writeFeedsFile(t, "file:///local/path\nmailto:user@example.com\nhttps://ok.example/feed\n")

	sources := Config{FeedsPath: path}.ReadSourceList()
	if len(sources) != 1 || sources[0] != "https://ok.example/feed" {
		t.Fatalf("expected only the hosted URL, got %v", sources)
	}
}
