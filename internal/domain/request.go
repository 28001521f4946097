package domain

import "time"

// Built-in request defaults.
const (
	DefaultBaseURL     = "http://localhost:3000"
	DefaultContentType = "application/json"
	DefaultMethod      = "GET"
	DefaultPath        = "/"
)

// Header is a single header line. Requests and responses carry headers as an
// ordered slice so duplicates and send order survive.
type Header struct {
	Name  string
	Value string
}

// RequestOptions holds the per-invocation overrides from the command line.
// Zero values mean "not given".
type RequestOptions struct {
	Method      string
	Path        string
	BaseURL     string
	Token       string
	Profile     string
	Headers     []string
	Cookie      string
	ContentType string
	// Data is the body spec: a literal body or "@path".
	Data    string
	HasData bool
	// TimeoutSeconds <= 0 means no timeout was given.
	TimeoutSeconds int

	ShowHeaders bool
	Verbose     bool
	OnlyStatus  bool
	OutFile     string
}

// ResolvedRequest is the fully materialized outbound request.
type ResolvedRequest struct {
	Method  string
	URL     string
	Headers []Header
	Body    []byte
	HasBody bool
	// Timeout of zero means the transport default.
	Timeout time.Duration
}

// ResolvedResponse is the reply to a ResolvedRequest.
type ResolvedResponse struct {
	StatusCode    int
	StatusMessage string
	Proto         string
	Headers       []Header
	Body          []byte
}
