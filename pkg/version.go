// Package cogpn resolves noisy South African postal addresses into
// municipality, town and suburb using a place gazetteer and a term
// association model learned from labelled addresses.
package cogpn

var (
	// Version of the application.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
