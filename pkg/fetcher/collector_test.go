package fetcher

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestCollectURLs(t *testing.T) {
	in := strings.NewReader("  http://a.example/x.jpg \nhttps://b.example/y.png\n\nhttp://c.example/z.gif\n")
	out := &bytes.Buffer{}

	URLs := CollectURLs(in, out)

	assert.Equal(t, []string{"http://a.example/x.jpg", "https://b.example/y.png"}, URLs)
	assert.Equal(t, 3, strings.Count(out.String(), "Image URL: "))
}

func TestCollectURLs_endOfInput(t *testing.T) {
	URLs := CollectURLs(strings.NewReader("http://a.example/x.jpg"), &bytes.Buffer{})
	assert.Equal(t, []string{"http://a.example/x.jpg"}, URLs)
}

func TestCollectURLs_blankFirstLine(t *testing.T) {
	URLs := CollectURLs(strings.NewReader("\nhttp://a.example/x.jpg\n"), &bytes.Buffer{})
	assert.Empty(t, URLs)
}

func TestPrintURLs(t *testing.T) {
	out := &bytes.Buffer{}
	PrintURLs(out, nil)
	assert.Contains(t, out.String(), "No URLs were provided.")

	out.Reset()
	PrintURLs(out, []string{"http://a.example/x.jpg", "ftp://b.example/y.png"})
	assert.Contains(t, out.String(), "You entered the following URLs:")
	assert.Contains(t, out.String(), "- http://a.example/x.jpg\n")
	assert.Contains(t, out.String(), "- ftp://b.example/y.png\n")
}

func TestRun_noURLs(t *testing.T) {
	f, out := newTestFetcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	results := f.Run(ctx, nil)

	assert.Empty(t, results)
	assert.Contains(t, out.String(), "Total URLs: 0")
	assert.NoDirExists(t, OutputDir)
}
