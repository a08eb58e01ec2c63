package curl

// Response is the immutable result of one successful Perform call.
type Response struct {
	// Code is the protocol status code reported by the engine.
	Code uint

	// Headers maps each header name to its values in arrival order.
	// Repeated names accumulate under one key.
	Headers map[string][]string

	// Body is the raw response body, the concatenation of every write
	// callback invocation in call order.
	Body []byte
}

// responseBuilder accumulates one transfer's inbound data. A fresh builder is
// created for every Perform call and is either finalized by build or
// discarded; it is never reused.
type responseBuilder struct {
	code    uint
	headers map[string][]string
	body    []byte
}

func newResponseBuilder() *responseBuilder {
	return &responseBuilder{
		headers: make(map[string][]string),
	}
}

// addHeader appends value to the sequence for name, creating the sequence on
// first occurrence.
func (b *responseBuilder) addHeader(name, value string) {
	b.headers[name] = append(b.headers[name], value)
}

// appendBody appends one write-callback chunk verbatim.
func (b *responseBuilder) appendBody(chunk []byte) {
	b.body = append(b.body, chunk...)
}

// build finalizes the builder into a Response. The builder must not be used
// afterward.
func (b *responseBuilder) build() *Response {
	return &Response{
		Code:    b.code,
		Headers: b.headers,
		Body:    b.body,
	}
}
