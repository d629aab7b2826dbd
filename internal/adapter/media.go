// SPDX-License-Identifier: Apache-2.0

// Package adapter provides outbound transport clients used by the service
// layer.
//
// The primary abstraction is [MediaProber], which checks externally hosted
// gallery images without downloading their bodies. The HTTP implementation
// ([NewHTTPMediaProber]) issues a HEAD request via resty and reports the
// content type and byte size the host advertises.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrMediaUnreachable indicates that the probed URL did not answer with
	// a successful status.
	ErrMediaUnreachable = errors.New("media url unreachable")
	// ErrNotAnImage indicates that the probed URL answered with a
	// non-image content type.
	ErrNotAnImage = errors.New("media url is not an image")
)

// ProbeResult holds the metadata advertised by a media host for one URL.
type ProbeResult struct {
	ContentType string
	Size        int64
}

// MediaProber checks an externally hosted media URL and reports its
// advertised metadata.
type MediaProber interface {
	// Probe issues a lightweight request to rawURL and returns the content
	// type and byte size the host reports. Returns [ErrMediaUnreachable] if
	// the host does not answer with a 2xx status, or [ErrNotAnImage] if the
	// reported content type is not an image.
	Probe(ctx context.Context, rawURL string) (ProbeResult, error)
}

type httpMediaProber struct {
	client *resty.Client
}

// NewHTTPMediaProber constructs an HTTP implementation of [MediaProber]
// backed by a resty client with the given request timeout.
func NewHTTPMediaProber(timeout time.Duration) MediaProber {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cli := resty.New().
		SetTimeout(timeout)

	return &httpMediaProber{client: cli}
}

// Probe implements [MediaProber] with a single HEAD request.
func (h *httpMediaProber) Probe(ctx context.Context, rawURL string) (ProbeResult, error) {
	if err := validateMediaURL(rawURL); err != nil {
		return ProbeResult{}, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Head(rawURL)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("%w: %w", ErrMediaUnreachable, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return ProbeResult{}, fmt.Errorf("%w: status %d", ErrMediaUnreachable, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return ProbeResult{}, fmt.Errorf("%w: %s", ErrNotAnImage, contentType)
	}

	var size int64
	if resp.RawResponse != nil && resp.RawResponse.ContentLength > 0 {
		size = resp.RawResponse.ContentLength
	}

	return ProbeResult{
		ContentType: contentType,
		Size:        size,
	}, nil
}

func validateMediaURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return fmt.Errorf("%w: empty url", ErrMediaUnreachable)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMediaUnreachable, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrMediaUnreachable, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url must include host", ErrMediaUnreachable)
	}

	return nil
}
