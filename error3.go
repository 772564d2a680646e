// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// These constants identify errors related to parsing and validating public
// keys.
const (
	// ErrPubKeyInvalidLen is returned when a public key that should be a
	// compressed, uncompressed, or hybrid public key is not one of the
	// allowed lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when a public key does not have one
	// of the allowed format tag values.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when a public key has an x coordinate that
	// is greater than or equal to the field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when a public key has a y coordinate that
	// is greater than or equal to the field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when a public key is not a point on the
	// secp256k1 curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyMismatchedOddness is returned when a hybrid public key has a
	// format tag parity that does not match the parity of the provided y
	// coordinate.
	ErrPubKeyMismatchedOddness = ErrorKind("ErrPubKeyMismatchedOddness")
)

// These constants identify errors related to validating and tweaking private
// keys and public keys.
const (
	// ErrInvalidPrivKey is returned when a supplied private key scalar is
	// zero or is greater than or equal to the group order.
	ErrInvalidPrivKey = ErrorKind("ErrInvalidPrivKey")

	// ErrTweakOutOfRange is returned when a tweak value supplied to one of the
	// tweak operations is greater than or equal to the group order.
	ErrTweakOutOfRange = ErrorKind("ErrTweakOutOfRange")

	// ErrTweakOverflow is returned when adding or multiplying a private key by
	// a tweak produces a zero scalar, or multiplying produces a zero tweak.
	ErrTweakOverflow = ErrorKind("ErrTweakOverflow")

	// ErrPubKeyTweakInfinity is returned when a public-key tweak-add operation
	// results in the point at infinity.
	ErrPubKeyTweakInfinity = ErrorKind("ErrPubKeyTweakInfinity")

	// ErrInvalidDERKey is returned when parsing a legacy SEC1 EC PRIVATE KEY
	// DER envelope fails because it does not match the expected template.
	ErrInvalidDERKey = ErrorKind("ErrInvalidDERKey")
)

// These constants identify errors related to the lifecycle of a Context.
const (
	// ErrContextNotReady is returned when an operation that requires a
	// precomputed table is invoked on a Context that was constructed without
	// the corresponding flag, or after the Context has been destroyed.
	ErrContextNotReady = ErrorKind("ErrContextNotReady")
)
