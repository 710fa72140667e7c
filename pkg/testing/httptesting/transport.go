package httptesting

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport routes requests to handlers by HTTP method and URL path.
// Every request that reaches RoundTrip is kept, including unrouted ones,
// so tests can assert how many calls went out. Requests with a done context are not kept.
type MockTransport struct {
	getHandlers  map[string]RoundTripFunc
	postHandlers map[string]RoundTripFunc

	mu       sync.Mutex
	requests []*CapturedRequest
}

// CapturedRequest is a request whose body was read at round-trip time.
type CapturedRequest struct {
	*http.Request

	Body []byte
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	if transport.getHandlers == nil {
		transport.getHandlers = make(map[string]RoundTripFunc)
	}

	transport.getHandlers[path] = f
}

func (transport *MockTransport) POST(path string, f RoundTripFunc) {
	if transport.postHandlers == nil {
		transport.postHandlers = make(map[string]RoundTripFunc)
	}

	transport.postHandlers[path] = f
}

// Requests returns the captured requests in arrival order.
func (transport *MockTransport) Requests() []*CapturedRequest {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	out := make([]*CapturedRequest, len(transport.requests))
	copy(out, transport.requests)
	return out
}

// LastRequest returns the latest captured request, or nil if nothing was sent.
func (transport *MockTransport) LastRequest() *CapturedRequest {
	transport.mu.Lock()
	defer transport.mu.Unlock()

	if len(transport.requests) == 0 {
		return nil
	}

	return transport.requests[len(transport.requests)-1]
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	captured, err := capture(req)
	if err != nil {
		return nil, err
	}

	transport.mu.Lock()
	transport.requests = append(transport.requests, captured)
	transport.mu.Unlock()

	var handlers map[string]RoundTripFunc

	switch strings.ToUpper(req.Method) {

	case "GET":
		handlers = transport.getHandlers
	case "POST":
		handlers = transport.postHandlers

	default:
		return nil, errors.Errorf("unsupported mock transport request method: %s", req.Method)

	}

	f, ok := handlers[req.URL.Path]
	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	return f(req)
}

// NewMockClient returns an http.Client that sends everything through the transport.
func NewMockClient(transport *MockTransport) *http.Client {
	return &http.Client{Transport: transport}
}

// capture reads the request body and restores it for the handler.
func capture(req *http.Request) (*CapturedRequest, error) {
	captured := &CapturedRequest{Request: req}
	if req.Body == nil {
		return captured, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read mock request body")
	}

	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(body))
	captured.Body = body
	return captured, nil
}
