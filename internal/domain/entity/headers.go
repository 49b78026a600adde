package entity

// Headers is the normalised header set sent to the hotel API,
// keyed by the outbound header name.
type Headers map[string]string

// Get returns the value for an outbound header name
func (h Headers) Get(name string) (string, bool) {
	v, ok := h[name]
	return v, ok
}
