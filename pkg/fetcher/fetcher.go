package fetcher

import (
	"context"
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

var (
	ErrUnsafeURL = errors.New("only http and https URLs are allowed")
	ErrNotImage  = errors.New("content type is not an image")
	ErrTooLarge  = errors.New("content length exceeds size limit")
)

type Set map[string]struct{}

type Statistics struct {
	TotalURLs int
	Outcomes  map[Outcome]int
	TotalSize int64
	TotalTime time.Duration
}

// Fetcher processes URLs one at a time into OutputDir. The set of written
// file names lives for the whole run, so a name is saved at most once even
// before it shows up on disk.
type Fetcher struct {
	client      *Client
	out         io.Writer
	progressOut io.Writer

	fileNames Set
	stats     *Statistics
	runID     string
	log       *slog.Logger
}

func New(client *Client, out io.Writer) *Fetcher {
	runID := uuid.NewString()
	return &Fetcher{
		client:    client,
		out:       out,
		fileNames: Set{},
		stats: &Statistics{
			Outcomes: map[Outcome]int{},
		},
		runID: runID,
		log:   slog.Default().With(slog.String("run", runID)),
	}
}

// EnableProgress draws a bar on w while each request is in flight.
func (f *Fetcher) EnableProgress(w io.Writer) {
	f.progressOut = w
}

func (f *Fetcher) Stats() Statistics {
	return *f.stats
}

// Run processes every URL in order, reporting each result as it completes,
// then prints the run statistics.
func (f *Fetcher) Run(ctx context.Context, URLs []string) []Result {
	start := time.Now()
	results := make([]Result, 0, len(URLs))
	f.log.Debug("run started", slog.Int("urls", len(URLs)))
	for _, rawURL := range URLs {
		res := f.Process(ctx, rawURL)
		Report(f.out, res)
		f.record(res)
		results = append(results, res)
	}
	f.stats.TotalTime = time.Since(start)
	f.showStats()
	return results
}

// Process runs a single URL through the safety filter, the fetch, the
// header checks and the duplicate check, writing the image when all pass.
func (f *Fetcher) Process(ctx context.Context, rawURL string) Result {
	res := Result{URL: rawURL}
	log := f.log.With(slog.String("url", rawURL))

	u, err := url.Parse(rawURL)
	if err != nil || !IsSafeURL(rawURL) {
		log.Debug("skipping unsafe url")
		return res.fail(Unsafe, ErrUnsafeURL)
	}

	if err = createDirIfNotExist(OutputDir); err != nil {
		return res.fail(Failed, errors.Wrap(err, "Create folder ["+OutputDir+"] failed"))
	}

	bar := f.newBar(rawURL)
	defer bar.Complete()

	log.Debug("fetching")
	img, err := f.client.Fetch(ctx, rawURL)
	if err != nil {
		log.Debug("fetch failed", slog.Any("error", err))
		return res.fail(ConnectionError, err)
	}
	defer img.Close()

	res.ContentType = img.ContentType
	if !isImage(img.ContentType) {
		return res.fail(NotImage, ErrNotImage)
	}
	if img.ContentLength > MaxImageSize {
		log.Debug("content too large", slog.Int64("contentLength", img.ContentLength))
		return res.fail(TooLarge, errors.Wrapf(ErrTooLarge, "%d bytes", img.ContentLength))
	}

	res.FileName = ResolveFileName(u)
	res.Path = filepath.Join(OutputDir, res.FileName)
	if f.isDuplicate(res.FileName, res.Path) {
		res.Outcome = Duplicate
		return res
	}

	body, err := img.Bytes()
	if err != nil {
		return res.fail(ConnectionError, err)
	}

	if err = writeFile(res.Path, body); err != nil {
		if os.IsExist(err) {
			res.Outcome = Duplicate
			return res
		}
		return res.fail(Failed, errors.Wrap(err, "Create file ["+res.Path+"] failed"))
	}

	f.fileNames[res.FileName] = struct{}{}
	res.Size = int64(len(body))
	res.Outcome = Saved
	bar.Increment()
	log.Debug("image saved", slog.String("path", res.Path), slog.Int64("size", res.Size))
	return res
}

func (r Result) fail(outcome Outcome, err error) Result {
	r.Outcome = outcome
	r.Err = err
	return r
}

func (f *Fetcher) isDuplicate(fileName, path string) bool {
	if _, ok := f.fileNames[fileName]; ok {
		return true
	}
	return fileExists(path)
}

func (f *Fetcher) newBar(label string) BarAdapter {
	if f.progressOut == nil {
		return noopBar{}
	}
	return NewProgress(f.progressOut, label)
}

func (f *Fetcher) record(res Result) {
	f.stats.TotalURLs++
	f.stats.Outcomes[res.Outcome]++
	if res.OK() {
		f.stats.TotalSize += res.Size
	}
	if res.Outcome == Failed {
		f.log.Error("processing url failed", slog.String("url", res.URL), slog.Any("error", res.Err))
	}
}

func (f *Fetcher) showStats() {
	s := f.stats
	fmt.Fprintln(f.out, "Statistics:")
	fmt.Fprintf(f.out, "Total URLs: %d\n", s.TotalURLs)
	if n := s.Outcomes[Saved]; n > 0 {
		fmt.Fprintf(f.out, "\t%d saved\n", n)
		fmt.Fprintf(f.out, "\t\t%s size\n", humanize.Bytes(uint64(s.TotalSize)))
		fmt.Fprintf(f.out, "\t\t%s time\n", durationHumanized(s.TotalTime))
	}
	if n := s.Outcomes[Duplicate]; n > 0 {
		fmt.Fprintf(f.out, "\t%d duplicate\n", n)
	}
	skipped := 0
	for _, o := range []Outcome{Unsafe, ConnectionError, NotImage, TooLarge, Failed} {
		skipped += s.Outcomes[o]
	}
	if skipped > 0 {
		fmt.Fprintf(f.out, "Total skipped: %d\n", skipped)
		for _, o := range []Outcome{Unsafe, ConnectionError, NotImage, TooLarge, Failed} {
			if n := s.Outcomes[o]; n > 0 {
				fmt.Fprintf(f.out, "\t%d %s\n", n, o)
			}
		}
	}
}
