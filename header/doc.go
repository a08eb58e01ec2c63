// Package header tokenizes raw header lines delivered by the transfer
// engine's header callback into name/value pairs.
package header
