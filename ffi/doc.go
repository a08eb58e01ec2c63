// Package ffi declares the native transfer engine's function-level ABI and
// provides the default implementation, which loads libcurl at runtime.
//
// The ABI is expressed as the Engine interface so that everything above it is
// ordinary, type-checked Go: the root package drives transfers through an
// Engine without knowing whether the calls land in libcurl or in a test
// double. Only the libcurl-backed implementation in this package touches the
// dynamic loader.
package ffi
