package curl

import "github.com/opd-ai/curl/ffi"

// OptValue is one typed configuration value for SetOpt. The union is closed:
// the native variadic call accepts exactly these four value kinds, and each
// variant owns its single marshaling path onto the engine.
type OptValue interface {
	marshal(e ffi.Engine, h ffi.Ref, opt ffi.Option) ffi.Code
}

// StringValue marshals as a C string.
type StringValue string

func (v StringValue) marshal(e ffi.Engine, h ffi.Ref, opt ffi.Option) ffi.Code {
	return e.SetOptString(h, opt, string(v))
}

// LongValue marshals as a native long.
type LongValue int64

func (v LongValue) marshal(e ffi.Engine, h ffi.Ref, opt ffi.Option) ffi.Code {
	return e.SetOptLong(h, opt, int64(v))
}

// PointerValue marshals as an opaque pointer-sized value. Pass only values
// the selected option documents as opaque data, never a Go pointer.
type PointerValue uintptr

func (v PointerValue) marshal(e ffi.Engine, h ffi.Ref, opt ffi.Option) ffi.Code {
	return e.SetOptPointer(h, opt, uintptr(v))
}

// FunctionValue marshals as a native function pointer with the transfer
// callback convention.
type FunctionValue ffi.RawCallback

func (v FunctionValue) marshal(e ffi.Engine, h ffi.Ref, opt ffi.Option) ffi.Code {
	return e.SetOptFunction(h, opt, ffi.RawCallback(v))
}
