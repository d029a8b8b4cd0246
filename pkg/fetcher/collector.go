package fetcher

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

// CollectURLs prompts for one URL per line until a blank line or end of
// input, and returns the trimmed entries in order.
func CollectURLs(in io.Reader, out io.Writer) []string {
	var URLs []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for {
		fmt.Fprint(out, "Image URL: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		rawURL := strings.TrimSpace(scanner.Text())
		if rawURL == "" {
			break
		}
		URLs = append(URLs, rawURL)
	}
	return URLs
}

// PrintURLs echoes the collected list back before any fetching starts.
func PrintURLs(out io.Writer, URLs []string) {
	if len(URLs) == 0 {
		fmt.Fprintln(out, "\nNo URLs were provided.")
		return
	}
	fmt.Fprintln(out, "\nYou entered the following URLs:")
	for _, u := range URLs {
		fmt.Fprintln(out, "-", u)
	}
}
