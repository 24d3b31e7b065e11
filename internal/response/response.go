package response

import (
	"fmt"
	"io"
	"net/textproto"
	"sort"
	"strconv"
	"strings"
	"time"

	"gohttpd/internal/headers"
)

type StatusCode int

const (
	OK                    StatusCode = 200
	BAD_REQUEST           StatusCode = 400
	FORBIDDEN             StatusCode = 403
	NOT_FOUND             StatusCode = 404
	METHOD_NOT_ALLOWED    StatusCode = 405
	INTERNAL_SERVER_ERROR StatusCode = 500
)

var StatusCodeName = map[StatusCode]string{
	OK:                    "OK",
	BAD_REQUEST:           "Bad Request",
	FORBIDDEN:             "Forbidden",
	NOT_FOUND:             "Not Found",
	METHOD_NOT_ALLOWED:    "Method Not Allowed",
	INTERNAL_SERVER_ERROR: "Internal Server Error",
}

// ReasonPhrase never fails; codes outside the table read "Unknown".
func ReasonPhrase(code StatusCode) string {
	if reason, ok := StatusCodeName[code]; ok {
		return reason
	}
	return "Unknown"
}

const httpVersion = "HTTP/1.1"

// RFC-1123 timestamp in GMT, the form HTTP dates are written in.
const dateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// DefaultMimeType is served when the extension is missing or unmapped.
const DefaultMimeType = "application/octet-stream"

// mimeTypes maps lowercase extensions (leading dot included) to
// content types. Fixed at startup, never mutated.
var mimeTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".css":   "text/css",
	".js":    "application/javascript",
	".json":  "application/json",
	".xml":   "application/xml",
	".txt":   "text/plain",
	".csv":   "text/csv",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".webp":  "image/webp",
	".pdf":   "application/pdf",
	".zip":   "application/zip",
	".gz":    "application/gzip",
	".mp3":   "audio/mpeg",
	".mp4":   "video/mp4",
	".wasm":  "application/wasm",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// MimeTypeFor resolves the content type from the extension: everything
// from the last dot onward, lowercased.
func MimeTypeFor(name string) string {
	dot := strings.LastIndexByte(name, '.')
	if dot == -1 {
		return DefaultMimeType
	}
	if mt, ok := mimeTypes[strings.ToLower(name[dot:])]; ok {
		return mt
	}
	return DefaultMimeType
}

// GetDefaultHeaders returns the six headers every response carries.
// Keys are stored lowercase to match headers.Headers behavior.
func GetDefaultHeaders(serverName, contentType string, contentLen int) headers.Headers {
	h := headers.NewHeaders()
	h.Set("server", serverName)
	h.Set("date", time.Now().UTC().Format(dateLayout))
	h.Set("content-type", contentType)
	h.Set("content-length", strconv.Itoa(contentLen))
	h.Set("connection", "close")
	return h
}

// headerOrder is the on-wire emission order. It is observable behavior,
// so it is fixed rather than sorted.
var headerOrder = []string{"server", "date", "content-type", "content-length", "connection"}

type Writer struct {
	writer io.Writer
}

func NewWriter(conn io.Writer) *Writer {
	return &Writer{writer: conn}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	_, err := fmt.Fprintf(w.writer, "%s %d %s\r\n", httpVersion, int(statusCode), ReasonPhrase(statusCode))
	return err
}

// WriteHeaders emits the standard headers in their fixed order, any
// remaining ones sorted, then the blank line ending the header block.
func (w *Writer) WriteHeaders(hdrs headers.Headers) error {
	if hdrs == nil {
		_, err := io.WriteString(w.writer, "\r\n")
		return err
	}

	emitted := make(map[string]bool, len(hdrs))
	for _, k := range headerOrder {
		if v := hdrs.Get(k); v != "" {
			if err := w.writeHeader(k, v); err != nil {
				return err
			}
			emitted[k] = true
		}
	}

	// Anything beyond the standard six, sorted for stable output.
	keys := make([]string, 0, len(hdrs))
	for k := range hdrs {
		if !emitted[strings.ToLower(k)] {
			keys = append(keys, strings.ToLower(k))
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.writeHeader(k, hdrs.Get(k)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w.writer, "\r\n")
	return err
}

func (w *Writer) writeHeader(key, value string) error {
	_, err := fmt.Fprintf(w.writer, "%s: %s\r\n", textproto.CanonicalMIMEHeaderKey(key), value)
	return err
}

// WriteBody writes the body bytes; callers skip it when the body is
// empty so nothing follows the blank line.
func (w *Writer) WriteBody(p []byte) (int, error) {
	return w.writer.Write(p)
}
