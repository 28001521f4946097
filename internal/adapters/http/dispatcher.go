package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/apiq/internal/domain"
	"github.com/bft-labs/apiq/internal/ports"
)

// Dispatcher sends a ResolvedRequest with exactly one attempt.
type Dispatcher struct {
	client ports.HTTPClient
	logger ports.Logger
}

// NewDispatcher creates a dispatcher using client for the round trip.
func NewDispatcher(client ports.HTTPClient, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		logger: logger,
	}
}

// Dispatch performs the request and reads the full response body.
// Every failure to obtain a complete response wraps domain.ErrTransport.
func (d *Dispatcher) Dispatch(ctx context.Context, req domain.ResolvedRequest) (domain.ResolvedResponse, error) {
	var body io.Reader
	if req.HasBody {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return domain.ResolvedResponse{}, fmt.Errorf("%w: create request: %w", domain.ErrUsage, err)
	}
	for _, h := range req.Headers {
		if strings.EqualFold(h.Name, "Host") {
			httpReq.Host = h.Value
			continue
		}
		httpReq.Header.Add(h.Name, h.Value)
	}

	start := time.Now()
	resp, err := d.client.Do(httpReq)
	if err != nil {
		return domain.ResolvedResponse{}, fmt.Errorf("%w: %s %s: %w", domain.ErrTransport, req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ResolvedResponse{}, fmt.Errorf("%w: read response body: %w", domain.ErrTransport, err)
	}

	d.logger.Debug("response received",
		ports.Int("status", resp.StatusCode),
		ports.Int("bytes", len(respBody)),
		ports.Duration("elapsed", time.Since(start)),
	)

	return domain.ResolvedResponse{
		StatusCode:    resp.StatusCode,
		StatusMessage: statusMessage(resp),
		Proto:         resp.Proto,
		Headers:       responseHeaders(resp.Header),
		Body:          respBody,
	}, nil
}

// statusMessage strips the numeric code from resp.Status ("404 Not Found").
func statusMessage(resp *http.Response) string {
	msg := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return msg
}

// responseHeaders flattens h into header lines. http.Header does not keep
// receipt order across names, so names are sorted; values of one name keep
// the order they were received in.
func responseHeaders(h http.Header) []domain.Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.Header, 0, len(names))
	for _, name := range names {
		for _, v := range h[name] {
			out = append(out, domain.Header{Name: name, Value: v})
		}
	}
	return out
}
