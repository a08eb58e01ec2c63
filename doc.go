// Package curl binds the libcurl easy interface: it owns one native transfer
// context per Handle, marshals typed options into the engine's variadic
// configuration call, and drives blocking transfers whose read, write, and
// header callbacks re-enter this package through fixed-signature trampolines.
//
// The package performs no network I/O itself. The native engine does the
// transfer; this binding configures it, feeds it an optional outbound body,
// and assembles its callbacks into an immutable Response.
//
// # Getting Started
//
// Create a handle, configure it, and perform a transfer:
//
//	handle := curl.New()
//	defer handle.Close()
//
//	if err := handle.SetURL("https://example.com/"); err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := handle.Perform(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Code, string(resp.Body))
//
// An outbound request body is any BodySource (io.Reader semantics):
//
//	resp, err := handle.Perform(curl.NewByteSource([]byte("payload")))
//
// A Handle is an exclusive-access resource: it must not be used from multiple
// goroutines at once, and no method is valid after Close.
package curl
