package fetcher

import (
	"github.com/dustin/go-humanize"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	OutputDir       = "Fetched_Images"
	DefaultFileName = "downloaded_image.jpg"
	MaxImageSize    = 10 * 1024 * 1024
	RequestTimeout  = 10 * time.Second
)

var allowedSchemes = []string{"http", "https"}

// IsSafeURL reports whether raw parses with an http or https scheme.
func IsSafeURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return contains(allowedSchemes, strings.ToLower(u.Scheme))
}

// ResolveFileName returns the last segment of the URL path, or
// DefaultFileName when that segment is empty.
func ResolveFileName(u *url.URL) string {
	name := u.Path
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	switch name {
	case "", ".", "..":
		return DefaultFileName
	}
	return name
}

func isImage(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "image")
}

func contains(options []string, choice string) bool {
	for _, option := range options {
		if option == choice {
			return true
		}
	}
	return false
}

func createDirIfNotExist(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		err = os.MkdirAll(dirPath, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func fileExists(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}

func maxSizeHumanized() string {
	return humanize.IBytes(MaxImageSize)
}

func durationHumanized(duration time.Duration) string {
	return time.Time{}.Add(duration).Format("15:04:05")
}
