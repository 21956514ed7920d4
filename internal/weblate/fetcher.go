package weblate

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/logger"
)

// Fetcher defines the interface for reading a Weblate API resource
type Fetcher interface {
	// Fetch returns the body of a successful GET on uri
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

var userAgents = []string{
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64) Gecko/20100101 Firefox/32.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_9_6) AppleWebKit/537.78.2",
	"Mozilla/5.0 (Windows NT 6.3; WOW64) Gecko/20100101 Firefox/32.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X) Chrome/37.0.2062.120",
	"Mozilla/5.0 (Windows NT 6.1; WOW64; Trident/7.0; rv:11.0) like Gecko",
}

const (
	defaultTimeout    = 60 * time.Second
	defaultMaxRetries = 3
)

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %s", e.Status)
}

// Retryable reports whether the request may succeed when sent again
func (e *StatusError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// HTTPFetcher implements Fetcher over net/http with token authentication
// and retries for transient failures
type HTTPFetcher struct {
	client     *http.Client
	token      string
	maxRetries uint64
	newBackOff func() backoff.BackOff
	log        logger.Logger
}

// FetcherOption configures an HTTPFetcher
type FetcherOption func(*HTTPFetcher)

// WithMaxRetries sets how many times a transient failure is retried
func WithMaxRetries(n uint64) FetcherOption {
	return func(f *HTTPFetcher) {
		f.maxRetries = n
	}
}

// WithBackOff sets the retry schedule
func WithBackOff(newBackOff func() backoff.BackOff) FetcherOption {
	return func(f *HTTPFetcher) {
		f.newBackOff = newBackOff
	}
}

// NewHTTPFetcher creates a fetcher authenticating with token. verify=false
// disables TLS certificate verification.
func NewHTTPFetcher(token string, verify bool, log logger.Logger, opts ...FetcherOption) *HTTPFetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !verify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // --no-verify
	}

	f := &HTTPFetcher{
		client:     &http.Client{Transport: transport, Timeout: defaultTimeout},
		token:      token,
		maxRetries: defaultMaxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		log:        log,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs the GET, retrying network errors, 5xx and 429 responses
func (f *HTTPFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	var body []byte

	operation := func() error {
		data, err := f.fetchOnce(ctx, uri)
		if err != nil {
			if se, ok := err.(*StatusError); ok && !se.Retryable() {
				return backoff.Permanent(err)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		body = data
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(f.newBackOff(), f.maxRetries), ctx)
	notify := func(err error, wait time.Duration) {
		f.log.Warn("Retrying request",
			logger.F("uri", uri),
			logger.F("error", err.Error()),
			logger.F("wait", wait.String()),
		)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, err
	}
	return body, nil
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, text/javascript")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+f.token)
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return data, nil
}

// MockFetcher implements Fetcher for testing
type MockFetcher struct {
	// FetchFunc is called when Fetch is invoked
	FetchFunc func(ctx context.Context, uri string) ([]byte, error)

	// CallLog stores all calls for verification
	CallLog []MockCall
}

// MockCall represents a recorded call to the mock fetcher
type MockCall struct {
	URI    string
	Output []byte
	Error  error
}

// NewMockFetcher creates a MockFetcher answering from responses keyed by
// URI. Unknown URIs fail with a 404 StatusError.
func NewMockFetcher(responses map[string]string) *MockFetcher {
	return &MockFetcher{
		FetchFunc: func(_ context.Context, uri string) ([]byte, error) {
			body, ok := responses[uri]
			if !ok {
				return nil, &StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
			}
			return []byte(body), nil
		},
	}
}

// Fetch executes the mock FetchFunc
func (m *MockFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	var output []byte
	var err error

	if m.FetchFunc != nil {
		output, err = m.FetchFunc(ctx, uri)
	}

	m.CallLog = append(m.CallLog, MockCall{
		URI:    uri,
		Output: output,
		Error:  err,
	})

	return output, err
}

// URIs returns the fetched URIs in call order
func (m *MockFetcher) URIs() []string {
	uris := make([]string, 0, len(m.CallLog))
	for _, call := range m.CallLog {
		uris = append(uris, call.URI)
	}
	return uris
}

// Reset clears the call log
func (m *MockFetcher) Reset() {
	m.CallLog = []MockCall{}
}
