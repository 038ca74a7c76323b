package config

import (
	"bufio"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Config holds runtime settings for the reader.
type Config struct {
	// FeedsPath is the file listing feed source URLs, one per line.
	FeedsPath string
}

// Load resolves the feeds-file location. Precedence: the explicit flag
// value, then FEEDTERM_FEEDS, then <user config dir>/feedterm/feeds.
func Load(flagPath string) Config {
	if flagPath != "" {
		return Config{FeedsPath: flagPath}
	}
	if env := os.Getenv("FEEDTERM_FEEDS"); env != "" {
		return Config{FeedsPath: env}
	}
	return Config{FeedsPath: defaultFeedsPath()}
}

func defaultFeedsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "feedterm", "feeds")
}

// ReadSourceList parses the feeds file into a list of source URLs.
// Blank lines and lines that are not absolute URLs with a host are
// skipped. A missing or unreadable file yields an empty list; the app
// treats that as "no feeds configured", not an error.
func (c Config) ReadSourceList() []string {
	file, err := os.Open(c.FeedsPath)
	if err != nil {
		return nil
	}
	defer file.Close()

	var sources []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		u, err := url.Parse(line)
		if err != nil || !u.IsAbs() || u.Host == "" {
			continue
		}
		sources = append(sources, line)
	}
	return sources
}
