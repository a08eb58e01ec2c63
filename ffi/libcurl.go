//go:build linux || freebsd || (darwin && amd64)

package ffi

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// libraryNames lists the shared-object names tried in order for this
// platform. Version-suffixed names come first so an unversioned dev symlink
// is only a fallback.
func libraryNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libcurl.4.dylib", "libcurl.dylib"}
	default:
		return []string{"libcurl.so.4", "libcurl.so"}
	}
}

// libcurl implements Engine on top of the real shared library. The variadic
// native setopt symbol is registered once per value kind, which pins the
// argument type purego passes for the third slot.
//
// Registering a variadic C function with a fixed prototype is only sound
// where the ABI passes the first few variadic arguments exactly like fixed
// ones: standard AAPCS64 (linux/freebsd arm64) and System V amd64. Apple
// arm64 passes every variadic argument on the stack, where a fixed-prototype
// call never writes it, so darwin/arm64 is excluded by the build tag and
// falls back to the stub loader.
type libcurl struct {
	init         func() uintptr
	setoptString func(h uintptr, opt int32, v string) int32
	setoptLong   func(h uintptr, opt int32, v int64) int32
	setoptPtr    func(h uintptr, opt int32, v uintptr) int32
	perform      func(h uintptr) int32
	getinfoLong  func(h uintptr, key int32, out *int64) int32
	cleanup      func(h uintptr)

	mu        sync.Mutex
	callbacks map[uintptr]uintptr
}

// openDefault loads libcurl and resolves the easy-interface symbols.
func openDefault() (Engine, error) {
	var handle uintptr
	var err error
	for _, name := range libraryNames() {
		handle, err = purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"function": "openDefault",
				"library":  name,
			}).Info("native transfer engine loaded")
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("curl: loading libcurl: %w", err)
	}

	l := &libcurl{callbacks: make(map[uintptr]uintptr)}
	purego.RegisterLibFunc(&l.init, handle, "curl_easy_init")
	purego.RegisterLibFunc(&l.setoptString, handle, "curl_easy_setopt")
	purego.RegisterLibFunc(&l.setoptLong, handle, "curl_easy_setopt")
	purego.RegisterLibFunc(&l.setoptPtr, handle, "curl_easy_setopt")
	purego.RegisterLibFunc(&l.perform, handle, "curl_easy_perform")
	purego.RegisterLibFunc(&l.getinfoLong, handle, "curl_easy_getinfo")
	purego.RegisterLibFunc(&l.cleanup, handle, "curl_easy_cleanup")
	return l, nil
}

func (l *libcurl) Init() Ref {
	return Ref(l.init())
}

func (l *libcurl) SetOptString(h Ref, opt Option, v string) Code {
	return Code(l.setoptString(uintptr(h), int32(opt), v))
}

func (l *libcurl) SetOptLong(h Ref, opt Option, v int64) Code {
	return Code(l.setoptLong(uintptr(h), int32(opt), v))
}

func (l *libcurl) SetOptPointer(h Ref, opt Option, v uintptr) Code {
	return Code(l.setoptPtr(uintptr(h), int32(opt), v))
}

func (l *libcurl) SetOptFunction(h Ref, opt Option, fn RawCallback) Code {
	return Code(l.setoptPtr(uintptr(h), int32(opt), l.callbackPtr(fn)))
}

// callbackPtr returns a C-callable pointer for fn. Native callback slots are
// a process-global resource with a hard cap, so pointers are cached by
// function identity; callers pass top-level functions, never closures.
func (l *libcurl) callbackPtr(fn RawCallback) uintptr {
	key := reflect.ValueOf(fn).Pointer()

	l.mu.Lock()
	defer l.mu.Unlock()

	if p, ok := l.callbacks[key]; ok {
		return p
	}
	p := purego.NewCallback(func(ptr, size, nmemb, userdata uintptr) uintptr {
		return fn(ptr, size, nmemb, userdata)
	})
	l.callbacks[key] = p
	return p
}

func (l *libcurl) Perform(h Ref) Code {
	return Code(l.perform(uintptr(h)))
}

func (l *libcurl) GetInfoLong(h Ref, key Info) (int64, Code) {
	var out int64
	code := Code(l.getinfoLong(uintptr(h), int32(key), &out))
	return out, code
}

func (l *libcurl) Cleanup(h Ref) {
	l.cleanup(uintptr(h))
}
