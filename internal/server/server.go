// Package server implements the --serve TCP validation mode: a line
// protocol where each connection sends one source blob terminated by a
// blank line and receives back an accept/reject verdict, running one
// validation per connection instead of spawning a language REPL, with
// structured logging and a per-connection correlation ID in place of a
// bare colored Printf line.
package server

import (
	"bufio"
	"fmt"
	"net"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"

	esvalidate "github.com/esvalidate/esvalidate"
)

// Server validates one source blob per TCP connection.
type Server struct {
	Log      *logrus.Logger
	MaxDepth int
}

// New creates a Server. If log is nil, a default logrus.Logger is used.
func New(log *logrus.Logger, maxDepth int) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{Log: log, MaxDepth: maxDepth}
}

// ListenAndServe listens on addr (":8080" style) and handles connections
// until the listener is closed or an unrecoverable accept error occurs.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	defer listener.Close()

	s.Log.WithField("addr", addr).Info("esvalidate server listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}
		go s.handleClient(conn)
	}
}

// handleClient reads one newline-terminated-by-blank-line source blob from
// conn, validates it, and writes back the same checkmark/cross verdict
// lines the CLI prints, tagging every log line with a correlation ID so
// concurrent connections can be told apart in the log stream.
func (s *Server) handleClient(conn net.Conn) {
	defer conn.Close()

	id, err := uuid.NewV4()
	corrID := "unknown"
	if err == nil {
		corrID = id.String()
	}
	log := s.Log.WithFields(logrus.Fields{"conn": corrID, "remote": conn.RemoteAddr().String()})
	log.Info("client connected")
	defer log.Info("client disconnected")

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var src strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		src.WriteString(line)
		src.WriteByte('\n')
	}

	log.Debug("validating submitted source")
	err = esvalidate.ValidateWithDepthLimit(corrID, []byte(src.String()), s.MaxDepth)
	if err == nil {
		fmt.Fprintln(conn, "✓ Syntax is valid")
		return
	}
	log.WithError(err).Debug("validation failed")
	fmt.Fprintln(conn, "✗ Syntax error detected")
	fmt.Fprintln(conn, "Error:", err.Error())
}
