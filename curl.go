package curl

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/curl/ffi"
)

// ErrHandleClosed is returned by any operation on a Handle after Close.
var ErrHandleClosed = errors.New("curl: handle already closed")

// ErrReservedOption is returned by SetOpt for the callback options Perform
// manages internally.
var ErrReservedOption = errors.New("curl: option is managed by Perform")

// reservedOptions are the callback keys Perform rewires on every call.
// Letting SetOpt touch them would leave the precedence between caller wiring
// and Perform's wiring undefined, so they are rejected outright.
var reservedOptions = map[ffi.Option]bool{
	ffi.OptReadFunction:   true,
	ffi.OptReadData:       true,
	ffi.OptWriteFunction:  true,
	ffi.OptWriteData:      true,
	ffi.OptHeaderFunction: true,
	ffi.OptHeaderData:     true,
}

// Handle owns exactly one native transfer context. It is an exclusive-access
// resource: methods must not be called concurrently, and nothing is valid
// after Close.
type Handle struct {
	engine ffi.Engine
	ref    ffi.Ref
	closed bool
}

// New acquires a handle from the default libcurl-backed engine. Failure to
// load the engine or to allocate a native context is unrecoverable by the
// native contract and panics; every later failure is an ordinary error.
func New() *Handle {
	engine, err := ffi.Load()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "New",
			"error":    err.Error(),
		}).Error("native engine unavailable")
		panic(err)
	}
	return NewWithEngine(engine)
}

// NewWithEngine acquires a handle from an explicit engine. Panics if the
// engine cannot allocate a native context.
func NewWithEngine(engine ffi.Engine) *Handle {
	ref := engine.Init()
	if ref == 0 {
		logrus.WithFields(logrus.Fields{
			"function": "NewWithEngine",
		}).Error("native engine could not allocate a transfer context")
		panic(errors.New("curl: native engine could not allocate a transfer context"))
	}

	logrus.WithFields(logrus.Fields{
		"function": "NewWithEngine",
		"ref":      uintptr(ref),
	}).Info("transfer handle acquired")

	return &Handle{engine: engine, ref: ref}
}

// SetOpt marshals value for opt and issues one native configuration call. It
// mutates engine configuration only; no transfer starts. The callback options
// wired by Perform are rejected with ErrReservedOption.
func (h *Handle) SetOpt(opt ffi.Option, value OptValue) error {
	if h.closed {
		return ErrHandleClosed
	}
	if reservedOptions[opt] {
		return ErrReservedOption
	}

	if code := value.marshal(h.engine, h.ref, opt); !code.IsSuccess() {
		logrus.WithFields(logrus.Fields{
			"function": "SetOpt",
			"option":   int32(opt),
			"code":     int32(code),
		}).Error("native configuration call failed")
		return code
	}
	return nil
}

// SetURL sets the transfer target.
func (h *Handle) SetURL(url string) error {
	return h.SetOpt(ffi.OptURL, StringValue(url))
}

// Perform runs one blocking transfer. A non-nil body supplies the outbound
// request bytes; the handle borrows it only until Perform returns.
//
// On any failure — a native transfer error, a body-source abort, or a failed
// status-code query after a successful byte stream — Perform returns the
// error and discards whatever partial response data was accumulated. Callers
// get either a complete Response or an error, never both.
func (h *Handle) Perform(body BodySource) (*Response, error) {
	if h.closed {
		return nil, ErrHandleClosed
	}

	builder := newResponseBuilder()
	respToken := contexts.register(builder)
	defer contexts.release(respToken)

	var bodyToken uintptr
	if body != nil {
		bodyToken = contexts.register(body)
		defer contexts.release(bodyToken)
	}

	// Rewire the callback trio every call: configuration is not assumed to
	// persist, and the context tokens are fresh each time anyway.
	if code := h.wireCallbacks(bodyToken, respToken); !code.IsSuccess() {
		return nil, code
	}

	logrus.WithFields(logrus.Fields{
		"function": "Perform",
		"ref":      uintptr(h.ref),
		"has_body": body != nil,
	}).Debug("starting transfer")

	if code := h.engine.Perform(h.ref); !code.IsSuccess() {
		logrus.WithFields(logrus.Fields{
			"function": "Perform",
			"ref":      uintptr(h.ref),
			"code":     int32(code),
		}).Error("transfer failed")
		return nil, code
	}

	code, err := h.GetResponseCode()
	if err != nil {
		return nil, err
	}
	builder.code = code

	logrus.WithFields(logrus.Fields{
		"function": "Perform",
		"ref":      uintptr(h.ref),
		"status":   code,
		"body_len": len(builder.body),
	}).Debug("transfer complete")

	return builder.build(), nil
}

// wireCallbacks installs the three callback bridges and their context tokens,
// stopping at the first failed configuration call so no further calls land on
// a handle in an unknown state.
func (h *Handle) wireCallbacks(bodyToken, respToken uintptr) ffi.Code {
	if code := h.engine.SetOptFunction(h.ref, ffi.OptReadFunction, readBridge); !code.IsSuccess() {
		return code
	}
	if code := h.engine.SetOptPointer(h.ref, ffi.OptReadData, bodyToken); !code.IsSuccess() {
		return code
	}
	if code := h.engine.SetOptFunction(h.ref, ffi.OptWriteFunction, writeBridge); !code.IsSuccess() {
		return code
	}
	if code := h.engine.SetOptPointer(h.ref, ffi.OptWriteData, respToken); !code.IsSuccess() {
		return code
	}
	if code := h.engine.SetOptFunction(h.ref, ffi.OptHeaderFunction, headerBridge); !code.IsSuccess() {
		return code
	}
	return h.engine.SetOptPointer(h.ref, ffi.OptHeaderData, respToken)
}

// GetResponseCode queries the engine for the last transfer's status code.
func (h *Handle) GetResponseCode() (uint, error) {
	if h.closed {
		return 0, ErrHandleClosed
	}

	v, code := h.engine.GetInfoLong(h.ref, ffi.InfoResponseCode)
	if !code.IsSuccess() {
		logrus.WithFields(logrus.Fields{
			"function": "GetResponseCode",
			"code":     int32(code),
		}).Error("status query failed")
		return 0, code
	}
	return uint(v), nil
}

// Close releases the native transfer context. The release happens exactly
// once; a second Close returns ErrHandleClosed without touching the engine.
func (h *Handle) Close() error {
	if h.closed {
		return ErrHandleClosed
	}
	h.closed = true
	h.engine.Cleanup(h.ref)

	logrus.WithFields(logrus.Fields{
		"function": "Close",
		"ref":      uintptr(h.ref),
	}).Info("transfer handle released")

	return nil
}
