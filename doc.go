// Package gingerlib provides the algebraic substrate of pairing-friendly
// elliptic curve cryptography: generic tower field extensions built on top of
// arbitrary base fields.
//
// The core lives in field/cubic, a compile-time parameterized degree-3
// extension engine. Concrete towers are instantiated under ecc (currently
// the BW6-761 𝔽p³). The gpu package carries the device core-count table used
// to tune accelerated MSM and FFT kernels in consuming layers; it performs no
// dispatch itself.
package gingerlib

import (
	"github.com/blang/semver/v4"
)

// Version of the library
var Version = semver.MustParse("0.1.0")
