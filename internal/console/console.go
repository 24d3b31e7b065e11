// Package console writes the operator log: one timestamped line per
// event, `[YYYY-MM-DD HH:MM:SS] message`, on stdout by default.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const stampLayout = "2006-01-02 15:04:05"

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
)

// SetOutput redirects log lines; tests use this to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Logf writes one formatted, timestamped line.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "[%s] %s\n", time.Now().Format(stampLayout), fmt.Sprintf(format, args...))
}
