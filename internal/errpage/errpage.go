// Package errpage renders the HTML body sent with every non-200
// response.
package errpage

import (
	"fmt"

	"gohttpd/internal/response"
)

// ContentType applies to every generated page.
const ContentType = "text/html"

const pageTemplate = `<!DOCTYPE html>
<html>
<head><title>%d %s</title></head>
<body>
<h1>%d %s</h1>
<p>%s</p>
</body>
</html>
`

// Render produces a minimal self-contained document carrying the code
// and reason phrase in both title and heading. The message is a short
// fixed string chosen by the caller; internal details never end up here.
func Render(code response.StatusCode, message string) []byte {
	reason := response.ReasonPhrase(code)
	return fmt.Appendf(nil, pageTemplate, code, reason, code, reason, message)
}
