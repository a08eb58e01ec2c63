package curl

import (
	"io"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/curl/ffi"
	"github.com/opd-ai/curl/header"
)

// The three trampolines below satisfy the engine's fixed callback convention
// (buffer pointer, element size, element count, context token -> bytes
// processed). They are the only code that touches raw native memory; after
// the registry lookup everything is ordinary typed logic.
//
// Each computes size*nmemb exactly once so the buffer view and the reported
// count can never disagree.

// readBridge feeds the outbound body. A zero or stale token means no body is
// configured, reported as immediate end of stream.
func readBridge(ptr, size, nmemb, userdata uintptr) uintptr {
	if userdata == 0 {
		return 0
	}
	total := size * nmemb

	src, ok := contexts.lookup(userdata).(BodySource)
	if !ok || total == 0 || ptr == 0 {
		return 0
	}

	dst := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), total)
	n, err := src.Read(dst)
	switch {
	case err == nil:
		return uintptr(n)
	case err == io.EOF:
		// A reader may deliver final bytes together with EOF; the next
		// invocation then reports the clean end of stream.
		return uintptr(n)
	default:
		logrus.WithFields(logrus.Fields{
			"function": "readBridge",
			"error":    err.Error(),
		}).Warn("body source failed, aborting transfer")
		return ffi.ReadFuncAbort
	}
}

// writeBridge appends one inbound body chunk to the response builder. The
// engine treats any return short of total as a write failure, so the full
// count is reported even when no builder is configured.
func writeBridge(ptr, size, nmemb, userdata uintptr) uintptr {
	total := size * nmemb

	builder, ok := contexts.lookup(userdata).(*responseBuilder)
	if !ok || total == 0 || ptr == 0 {
		return total
	}

	builder.appendBody(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), total))
	return total
}

// headerBridge records one inbound header line. Lines that do not tokenize
// to a name/value pair (the status line, the blank separator) are ignored;
// the full count is reported either way.
func headerBridge(ptr, size, nmemb, userdata uintptr) uintptr {
	total := size * nmemb

	builder, ok := contexts.lookup(userdata).(*responseBuilder)
	if !ok || total == 0 || ptr == 0 {
		return total
	}

	line := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), total)
	if name, value, ok := header.Parse(line); ok {
		builder.addHeader(name, value)
	}
	return total
}
