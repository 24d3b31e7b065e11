// Package headers provides the case-insensitive header map used to
// assemble responses. Request headers are never interpreted by this
// server, so there is no parsing here.
package headers

import "strings"

type Headers map[string]string

func NewHeaders() Headers { return Headers{} }

// Get is case-insensitive.
func (h Headers) Get(name string) string {
	return h[strings.ToLower(name)]
}

func (h Headers) Delete(name string) {
	delete(h, strings.ToLower(name))
}

// Set appends to an existing value with a comma, per field-merging
// rules; use Override to replace.
func (h Headers) Set(name, value string) {
	name = strings.ToLower(name)

	if old, ok := h[name]; ok {
		h[name] = old + "," + value
	} else {
		h[name] = value
	}
}

func (h Headers) Override(name, value string) {
	name = strings.ToLower(name)
	h[name] = value
}
