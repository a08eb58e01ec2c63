//go:build !linux && !freebsd && !(darwin && amd64)

package ffi

import "errors"

// No loader here: besides genuinely unsupported platforms this covers
// darwin/arm64, where variadic arguments are stack-passed and a
// fixed-prototype registration of the variadic engine symbols would hand the
// native side garbage for every option value.
func openDefault() (Engine, error) {
	return nil, errors.New("curl: no native engine loader for this platform")
}
