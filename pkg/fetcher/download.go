package fetcher

import (
	"context"
	"fmt"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"io"
	"os"
)

const DefaultUserAgent = "imageFetcher/1.0"

// StatusError is returned by Fetch for responses outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}

// Image is a successful response whose body has not been read yet.
// ContentLength is -1 when the server did not send one.
type Image struct {
	StatusCode    int
	ContentType   string
	ContentLength int64
	body          io.ReadCloser
}

// Bytes reads the whole body and closes it.
func (img *Image) Bytes() ([]byte, error) {
	defer img.Close()
	b, err := io.ReadAll(img.body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body failed")
	}
	return b, nil
}

func (img *Image) Close() error {
	if img.body == nil {
		return nil
	}
	err := img.body.Close()
	img.body = nil
	return err
}

type Client struct {
	rc *resty.Client
}

func NewClient(userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	rc := resty.New().
		SetTimeout(RequestTimeout).
		SetHeader("User-Agent", userAgent).
		SetLogger(newRestyLogger())
	return &Client{rc: rc}
}

// Fetch issues a GET for rawURL and returns the response with its body
// still unread, so callers can check headers before pulling the payload.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Image, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		if resp != nil && resp.RawBody() != nil {
			_ = resp.RawBody().Close()
		}
		return nil, errors.Wrapf(err, "GET %s failed", rawURL)
	}

	if !resp.IsSuccess() {
		_ = resp.RawBody().Close()
		return nil, &StatusError{
			URL:        rawURL,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}

	return &Image{
		StatusCode:    resp.StatusCode(),
		ContentType:   resp.Header().Get("Content-Type"),
		ContentLength: resp.RawResponse.ContentLength,
		body:          resp.RawBody(),
	}, nil
}

// writeFile creates path exclusively and writes data in one shot.
func writeFile(path string, data []byte) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if _, err = out.Write(data); err != nil {
		_ = out.Close()
		return errors.Wrap(err, "Saving image ["+path+"] failed")
	}
	return out.Close()
}
