package api

import (
	"io"
	"sync"

	fhttp "github.com/bogdanfinn/fhttp"
)

// MockResponseBody is a ReadCloser that simulates reading response data
type MockResponseBody struct {
	data []byte
	pos  int
}

// NewMockResponseBody creates a new MockResponseBody with the given data
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{data: data, pos: 0}
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	return nil
}

// MockHTTPDoer is a mock HTTPDoer that records every request it sees
type MockHTTPDoer struct {
	mu       sync.Mutex
	Status   int
	Body     []byte
	Err      error
	Requests []*fhttp.Request
	Bodies   []string
}

// Do implements the HTTPDoer interface
func (m *MockHTTPDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		m.Bodies = append(m.Bodies, string(data))
	} else {
		m.Bodies = append(m.Bodies, "")
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return &fhttp.Response{
		StatusCode: m.Status,
		Body:       NewMockResponseBody(m.Body),
		Header:     make(fhttp.Header),
	}, nil
}

// LastRequest returns the most recent request, or nil
func (m *MockHTTPDoer) LastRequest() *fhttp.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}

// NewMockHTTPDoer creates a MockHTTPDoer answering every request with body
func NewMockHTTPDoer(body string, statusCode int) *MockHTTPDoer {
	return &MockHTTPDoer{Status: statusCode, Body: []byte(body)}
}

// NewMockHTTPDoerWithError creates a MockHTTPDoer that fails every request
func NewMockHTTPDoerWithError(err error) *MockHTTPDoer {
	return &MockHTTPDoer{Err: err}
}

// blockingDoer waits for the request context to end
type blockingDoer struct{}

func (blockingDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	<-req.Context().Done()
	return nil, req.Context().Err()
}
