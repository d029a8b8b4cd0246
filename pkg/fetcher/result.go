package fetcher

import (
	"fmt"
	"io"
)

type Outcome int

const (
	Saved Outcome = iota
	Unsafe
	ConnectionError
	NotImage
	TooLarge
	Duplicate
	Failed
)

var outcomeNames = map[Outcome]string{
	Saved:           "saved",
	Unsafe:          "unsafe",
	ConnectionError: "connection error",
	NotImage:        "not an image",
	TooLarge:        "too large",
	Duplicate:       "duplicate",
	Failed:          "failed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is what happened to a single URL. Err is set for every outcome
// except Saved and Duplicate.
type Result struct {
	URL         string
	Outcome     Outcome
	FileName    string
	Path        string
	ContentType string
	Size        int64
	Err         error
}

func (r Result) OK() bool {
	return r.Outcome == Saved
}

// Report writes the console lines for r.
func Report(w io.Writer, r Result) {
	switch r.Outcome {
	case Saved:
		fmt.Fprintf(w, "\n✓ Successfully fetched: %s\n", r.FileName)
		fmt.Fprintf(w, "✓ Image saved to %s\n", r.Path)
		fmt.Fprintln(w, "\nConnection strengthened. Community enriched.")
		fmt.Fprintln(w)
	case Unsafe:
		fmt.Fprintf(w, "✗ Skipping unsafe URL: %s\n", r.URL)
	case ConnectionError:
		fmt.Fprintf(w, "✗ Connection error: %v\n", r.Err)
	case NotImage:
		fmt.Fprintf(w, "✗ Not an image: %s (Content-Type: %s)\n", r.URL, r.ContentType)
	case TooLarge:
		fmt.Fprintf(w, "✗ Skipping %s, file too large (>%s)\n", r.URL, maxSizeHumanized())
	case Duplicate:
		fmt.Fprintf(w, "⚠ Duplicate found, skipping: %s\n", r.FileName)
	default:
		fmt.Fprintf(w, "✗ An error occurred: %v\n", r.Err)
	}
}
