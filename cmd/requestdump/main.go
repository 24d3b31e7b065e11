// requestdump accepts connections one at a time, reads a single buffer
// the way the server does, and prints what the pipeline would make of
// it — handy for poking at framing and path resolution without serving
// any files.
package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"gohttpd/internal/config"
	"gohttpd/internal/request"
	"gohttpd/internal/target"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("ERROR: bad configuration.\n", err)
		os.Exit(1)
	}

	tcp, err := net.Listen("tcp", cfg.ServerAddress())
	if err != nil {
		fmt.Println("ERROR: failed to open.\n", err)
		os.Exit(1)
	}
	defer tcp.Close()

	fmt.Println("Dumping requests arriving on", tcp.Addr())
	for {
		conn, err := tcp.Accept()
		if err != nil {
			fmt.Println("ERROR: failed to accept.\n", err)
			continue
		}
		dumpConn(conn, cfg)
	}
}

func dumpConn(conn net.Conn, cfg *config.Config) {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(cfg.Server.ReadTimeout))

	buf := make([]byte, cfg.Server.ReadBufferSize)
	n, err := conn.Read(buf)
	if n == 0 {
		fmt.Println("ERROR: nothing read:", err)
		return
	}

	raw := buf[:n]
	fmt.Printf("Read %d bytes from %s\n", n, conn.RemoteAddr())
	fmt.Println("First line:", request.FirstLine(raw))

	req, err := request.Parse(raw)
	if err != nil {
		fmt.Println("Parse outcome:", err)
		return
	}
	fmt.Printf("Request:\n- Method: %s\n- Raw path: %s\n", req.Method, req.RawPath)

	rel, err := target.Resolve(req.RawPath, cfg.Files.DefaultDocument)
	if err != nil {
		fmt.Println("Resolve outcome:", err)
		return
	}
	fmt.Println("- Resolved target:", rel)
}
