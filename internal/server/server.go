// Package server binds the listener and runs the request pipeline:
// one read per connection, parse, resolve, load, respond, close.
// Connections are served strictly one at a time.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"gohttpd/internal/config"
	"gohttpd/internal/console"
	"gohttpd/internal/errpage"
	"gohttpd/internal/request"
	"gohttpd/internal/response"
	"gohttpd/internal/store"
	"gohttpd/internal/target"
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
	store    *store.Store
	closed   atomic.Bool
}

// Serve binds the configured address and starts the accept loop.
// Binding failure is returned to the caller; the binary treats it as
// fatal.
func Serve(cfg *config.Config) (*Server, error) {
	lc := net.ListenConfig{Control: reuseAddr}
	l, err := lc.Listen(context.Background(), "tcp", cfg.ServerAddress())
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		listener: l,
		store:    store.New(cfg.Files.Root),
	}
	go s.listen()
	return s, nil
}

// reuseAddr sets SO_REUSEADDR before bind so restarts don't trip over
// sockets lingering in TIME_WAIT.
func reuseAddr(network, address string, c syscall.RawConn) error {
	var serr error
	if err := c.Control(func(fd uintptr) {
		serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	}); err != nil {
		return err
	}
	return serr
}

// Addr reports the bound address, useful when the port was 0.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close is idempotent.
func (s *Server) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.listener.Close()
}

// listen accepts and serves connections sequentially: each one is
// handled to completion before the next Accept. Accept errors are
// logged and skipped unless the listener was closed.
func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			console.Logf("accept failed: %v", err)
			continue
		}
		s.handle(conn)
	}
}

// handle runs one connection through the pipeline. The socket is
// closed on every exit path, exactly once.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	id := uuid.NewString()[:8]
	remoteHost, _, _ := net.SplitHostPort(conn.RemoteAddr().String())
	console.Logf("conn %s: accepted %s", id, remoteHost)

	_ = conn.SetReadDeadline(time.Now().Add(s.cfg.Server.ReadTimeout))

	// One read, one request. Whatever doesn't fit in the buffer is
	// never read and misparses.
	buf := make([]byte, s.cfg.Server.ReadBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			console.Logf("conn %s: closed by peer", id)
		} else {
			console.Logf("conn %s: read failed: %v", id, err)
		}
		return
	}

	raw := buf[:n]
	console.Logf("conn %s: %s", id, request.FirstLine(raw))

	status, contentType, body, served := s.route(raw)

	w := response.NewWriter(conn)
	if err := w.WriteStatusLine(status); err != nil {
		console.Logf("conn %s: write failed: %v", id, err)
		return
	}
	h := response.GetDefaultHeaders(s.cfg.Server.Name, contentType, len(body))
	if err := w.WriteHeaders(h); err != nil {
		console.Logf("conn %s: write failed: %v", id, err)
		return
	}
	if len(body) > 0 {
		if _, err := w.WriteBody(body); err != nil {
			console.Logf("conn %s: write failed: %v", id, err)
			return
		}
	}

	if served != "" {
		console.Logf("conn %s: served %s (%d bytes, %s)", id, served, len(body), humanize.Bytes(uint64(len(body))))
	} else {
		console.Logf("conn %s: responded %d %s", id, int(status), response.ReasonPhrase(status))
	}
}

// route maps the raw request bytes to a response. It returns the
// served file's relative path on success and "" for error outcomes.
func (s *Server) route(raw []byte) (status response.StatusCode, contentType string, body []byte, served string) {
	req, err := request.Parse(raw)
	if err != nil {
		code := response.BAD_REQUEST
		if errors.Is(err, request.ErrMethodNotAllowed) {
			code = response.METHOD_NOT_ALLOWED
		}
		return code, errpage.ContentType, errpage.Render(code, "the request could not be served"), ""
	}

	rel, err := target.Resolve(req.RawPath, s.cfg.Files.DefaultDocument)
	if err != nil {
		return response.FORBIDDEN, errpage.ContentType,
			errpage.Render(response.FORBIDDEN, "the requested path is not allowed"), ""
	}

	body, ok := s.store.Load(rel)
	if !ok {
		return response.NOT_FOUND, errpage.ContentType,
			errpage.Render(response.NOT_FOUND, "the requested file does not exist"), ""
	}

	// HEAD gets the full body too; the original never special-cased it.
	return response.OK, response.MimeTypeFor(rel), body, rel
}
