package trsector

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger sets the logger used for level build diagnostics. Nothing is
// logged by default.
func SetLogger(l zerolog.Logger) {
	logger = l
}
