// Package request parses one raw HTTP/1.1 request buffer. The whole
// request is assumed to arrive in a single read; only the request line
// is interpreted, the rest of the header block is kept as opaque bytes.
package request

import (
	"bytes"
	"errors"
)

// Request holds what one socket read yielded: the method and the path
// exactly as sent on the wire (still percent-encoded), plus the raw
// header block up to the blank-line terminator.
type Request struct {
	Method      string
	RawPath     string
	HeaderBlock []byte
}

// Predefined errors for the two protocol-level failure classes.
var (
	ErrMalformedRequest = errors.New("malformed request")
	ErrMethodNotAllowed = errors.New("method not allowed")

	// HTTP spec requires CRLF as line terminator.
	separator        = []byte("\r\n")
	headerTerminator = []byte("\r\n\r\n")

	// Only these methods are served; everything else is rejected
	// before the path is even looked at.
	allowedMethods = map[string]struct{}{
		"GET": {}, "HEAD": {},
	}
)

// Parse extracts the request line from data.
//
// Contract:
//   - no CRLFCRLF header terminator anywhere in data => ErrMalformedRequest
//   - request line missing either of its first two spaces => ErrMalformedRequest
//   - method other than GET/HEAD => ErrMethodNotAllowed
//
// The path is everything between the first and second space; the
// protocol version token after it is ignored.
func Parse(data []byte) (*Request, error) {
	end := bytes.Index(data, headerTerminator)
	if end == -1 {
		return nil, ErrMalformedRequest
	}
	block := data[:end]

	line := block
	if i := bytes.Index(block, separator); i != -1 {
		line = block[:i]
	}

	sp1 := bytes.IndexByte(line, ' ')
	if sp1 == -1 {
		return nil, ErrMalformedRequest
	}
	rest := line[sp1+1:]
	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 == -1 {
		return nil, ErrMalformedRequest
	}

	method := string(line[:sp1])
	if _, ok := allowedMethods[method]; !ok {
		return nil, ErrMethodNotAllowed
	}

	return &Request{
		Method:      method,
		RawPath:     string(rest[:sp2]),
		HeaderBlock: block,
	}, nil
}

// FirstLine returns the bytes up to the first CRLF, for logging. If no
// terminator is present the whole buffer is returned.
func FirstLine(data []byte) string {
	if i := bytes.Index(data, separator); i != -1 {
		return string(data[:i])
	}
	return string(data)
}
