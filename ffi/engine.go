package ffi

import (
	"fmt"
	"sync"
)

// Code wraps a native result code returned by the engine. Zero is success;
// every other value is a failure reported verbatim to the caller.
type Code int32

// Result codes the binding itself references. The full native table is much
// larger; unknown codes still round-trip through Code unchanged.
const (
	CodeOK                Code = 0
	CodeUnsupportedScheme Code = 1
	CodeFailedInit        Code = 2
	CodeURLMalformed      Code = 3
	CodeCouldntResolve    Code = 6
	CodeCouldntConnect    Code = 7
	CodeWriteError        Code = 23
	CodeReadError         Code = 26
	CodeTimedOut          Code = 28
	CodeAbortedByCallback Code = 42
)

var codeNames = map[Code]string{
	CodeOK:                "ok",
	CodeUnsupportedScheme: "unsupported scheme",
	CodeFailedInit:        "engine init failed",
	CodeURLMalformed:      "malformed URL",
	CodeCouldntResolve:    "could not resolve host",
	CodeCouldntConnect:    "could not connect",
	CodeWriteError:        "write error",
	CodeReadError:         "read error",
	CodeTimedOut:          "operation timed out",
	CodeAbortedByCallback: "aborted by callback",
}

// IsSuccess reports whether the code signals a successful native call.
func (c Code) IsSuccess() bool {
	return c == CodeOK
}

// Error implements the error interface so native failures can be returned
// directly from the binding's methods.
func (c Code) Error() string {
	if name, ok := codeNames[c]; ok {
		return fmt.Sprintf("curl: result code %d (%s)", int32(c), name)
	}
	return fmt.Sprintf("curl: result code %d", int32(c))
}

// Option identifies one native configuration key. The numeric encoding
// follows the native header: the key's base selects the value kind the
// variadic setopt call expects.
type Option int32

// Value-kind bases for Option keys.
const (
	OptTypeLong          Option = 0
	OptTypeObjectPoint   Option = 10000
	OptTypeFunctionPoint Option = 20000
)

// Option keys the binding touches directly. Any other native key passes
// through SetOpt with its numeric value.
const (
	OptWriteData      Option = OptTypeObjectPoint + 1
	OptURL            Option = OptTypeObjectPoint + 2
	OptReadData       Option = OptTypeObjectPoint + 9
	OptUserAgent      Option = OptTypeObjectPoint + 18
	OptHeaderData     Option = OptTypeObjectPoint + 29
	OptWriteFunction  Option = OptTypeFunctionPoint + 11
	OptReadFunction   Option = OptTypeFunctionPoint + 12
	OptHeaderFunction Option = OptTypeFunctionPoint + 79

	OptTimeout        Option = OptTypeLong + 13
	OptInFileSize     Option = OptTypeLong + 14
	OptVerbose        Option = OptTypeLong + 41
	OptNoProgress     Option = OptTypeLong + 43
	OptUpload         Option = OptTypeLong + 46
	OptPost           Option = OptTypeLong + 47
	OptFollowLocation Option = OptTypeLong + 52
)

// Info identifies one post-transfer attribute key for GetInfoLong.
type Info int32

// infoTypeLong is the native base for long-valued info keys.
const infoTypeLong Info = 0x200000

// InfoResponseCode selects the last transfer's protocol status code.
const InfoResponseCode Info = infoTypeLong + 2

// ReadFuncAbort is the reserved read-callback return value that tells the
// engine to cancel the transfer. It is distinct from every valid byte count.
const ReadFuncAbort uintptr = 0x10000000

// RawCallback is the fixed native transfer-callback convention: a buffer
// pointer, the element size and count, and the opaque context token, with the
// number of bytes processed as the return value.
type RawCallback func(ptr, size, nmemb, userdata uintptr) uintptr

// Ref is an opaque native engine instance. The zero Ref means the engine
// could not allocate one.
type Ref uintptr

// Engine is the native transfer engine's function-level contract. One
// SetOpt method exists per value kind the variadic native call accepts, so
// each option value has exactly one marshaling path.
type Engine interface {
	// Init allocates one native transfer context, or zero on failure.
	Init() Ref

	SetOptString(h Ref, opt Option, v string) Code
	SetOptLong(h Ref, opt Option, v int64) Code
	SetOptPointer(h Ref, opt Option, v uintptr) Code
	SetOptFunction(h Ref, opt Option, fn RawCallback) Code

	// Perform runs the configured transfer, blocking until it finishes and
	// re-entering the configured callbacks an engine-determined number of
	// times, possibly zero.
	Perform(h Ref) Code

	// GetInfoLong retrieves a long-valued post-transfer attribute.
	GetInfoLong(h Ref, key Info) (int64, Code)

	// Cleanup releases the native context. Exactly one call per
	// successfully initialized Ref.
	Cleanup(h Ref)
}

var (
	loadOnce   sync.Once
	loadEngine Engine
	loadErr    error
)

// Load returns the process-wide libcurl-backed Engine, resolving the shared
// library on first use.
func Load() (Engine, error) {
	loadOnce.Do(func() {
		loadEngine, loadErr = openDefault()
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return loadEngine, nil
}
