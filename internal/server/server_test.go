package server

import (
	"bufio"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// startTestServer boots a Server on an ephemeral port in the background
// and returns the address once it has accepted connections.
func startTestServer(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	srv := &Server{Log: log, MaxDepth: 1000}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go srv.handleClient(conn)
		}
	}()
	t.Cleanup(func() { listener.Close() })
	return listener.Addr().String()
}

func sendAndRead(t *testing.T, addr, src string) string {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	require.NoError(t, err)
	defer conn.Close()

	fmt.Fprintf(conn, "%s\n\n", src)
	line, err := bufio.NewReader(conn).ReadString('\n')
	require.NoError(t, err)
	return line
}

func TestServer_ValidSourceReturnsAcceptVerdict(t *testing.T) {
	addr := startTestServer(t)
	line := sendAndRead(t, addr, "let x = 1;")
	require.Contains(t, line, "Syntax is valid")
}

func TestServer_InvalidSourceReturnsRejectVerdict(t *testing.T) {
	addr := startTestServer(t)
	line := sendAndRead(t, addr, "let x = @;")
	require.Contains(t, line, "Syntax error detected")
}
