// Copyright 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// PubKeyFormatCompressedEven is the header byte tag used to identify a
	// public key encoded in the compressed format with an even y coordinate.
	PubKeyFormatCompressedEven byte = 0x02

	// PubKeyFormatCompressedOdd is the header byte tag used to identify a
	// public key encoded in the compressed format with an odd y coordinate.
	PubKeyFormatCompressedOdd byte = 0x03

	// PubKeyFormatUncompressed is the header byte tag used to identify a
	// public key encoded in the uncompressed format.
	PubKeyFormatUncompressed byte = 0x04

	// pubkeyCompressed is the header byte tag used to identify a public key
	// encoded in the compressed format with an even y coordinate.
	pubkeyCompressed = PubKeyFormatCompressedEven

	// pubkeyCompressed2 is the header byte tag used to identify a public key
	// encoded in the compressed format with an odd y coordinate.
	pubkeyCompressed2 = PubKeyFormatCompressedOdd

	// pubkeyUncompressed is the header byte tag used to identify a public
	// key encoded in the uncompressed format.
	pubkeyUncompressed = PubKeyFormatUncompressed

	// pubkeyHybrid1 and pubkeyHybrid2 are the header byte tags used to
	// identify a public key encoded in the hybrid format, which carries
	// both coordinates like the uncompressed format but additionally
	// encodes the y coordinate's parity in the tag, as compressed keys do.
	// This package only accepts hybrid-encoded keys on parse; it never
	// emits them.
	pubkeyHybrid1 byte = 0x06
	pubkeyHybrid2 byte = 0x07
)

// PublicKey provides facilities for efficiently and securely working with
// secp256k1 public keys within this package and includes functions to
// serialize in both the distinguished compressed and uncompressed formats.
type PublicKey struct {
	X, Y *big.Int
}

// NewPublicKey instantiates a new public key with the given affine
// coordinates, expressed as normalized field values.
func NewPublicKey(x, y *FieldVal) *PublicKey {
	xBytes, yBytes := x.Bytes(), y.Bytes()
	return &PublicKey{
		X: new(big.Int).SetBytes(xBytes[:]),
		Y: new(big.Int).SetBytes(yBytes[:]),
	}
}

// AsJacobian converts the public key into a Jacobian point with Z=1 and
// stores the result in result.
func (p *PublicKey) AsJacobian(result *JacobianPoint) {
	bigAffineToJacobian(p.X, p.Y, result)
}

// isOddBigInt returns whether the passed big integer is odd.
func isOddBigInt(v *big.Int) bool {
	return v.Bit(0) == 1
}

// ParsePubKey parses a public key for the secp256k1 curve encoded according
// to the format specified by ANSI X9.62-1998, which means it is also
// compatible with the SEC (Standards for Efficient Cryptography) specs.
// That is to say, it accepts the compressed, uncompressed, and hybrid
// formats.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	var x, y FieldVal
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		format := serialized[0]
		switch format {
		case pubkeyUncompressed, pubkeyHybrid1, pubkeyHybrid2:
		default:
			return nil, makeError(ErrPubKeyInvalidFormat, fmt.Sprintf(
				"invalid magic in pubkey str: %d", serialized[0]))
		}

		if overflow := x.SetByteSlice(serialized[1:33]); overflow {
			return nil, makeError(ErrPubKeyXTooBig, "pubkey x parameter is >= "+
				"field prime")
		}
		if overflow := y.SetByteSlice(serialized[33:]); overflow {
			return nil, makeError(ErrPubKeyYTooBig, "pubkey y parameter is >= "+
				"field prime")
		}
		if !isOnCurve(&x, &y) {
			return nil, makeError(ErrPubKeyNotOnCurve, "pubkey isn't on "+
				"secp256k1 curve")
		}

		// A hybrid-encoded key additionally claims the y coordinate's
		// parity in its format tag; the claim must match the actual
		// coordinate that was just validated against the curve equation.
		if format == pubkeyHybrid1 || format == pubkeyHybrid2 {
			wantOdd := format == pubkeyHybrid2
			if y.IsOdd() != wantOdd {
				return nil, makeError(ErrPubKeyMismatchedOddness, "hybrid "+
					"pubkey format tag parity does not match y coordinate")
			}
		}

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		ybit := format == pubkeyCompressed2
		switch format {
		case pubkeyCompressed, pubkeyCompressed2:
		default:
			return nil, makeError(ErrPubKeyInvalidFormat, fmt.Sprintf(
				"invalid magic in compressed pubkey string: %d", format))
		}

		if overflow := x.SetByteSlice(serialized[1:33]); overflow {
			return nil, makeError(ErrPubKeyXTooBig, "pubkey x parameter is >= "+
				"field prime")
		}
		if !DecompressY(&x, ybit, &y) {
			return nil, makeError(ErrPubKeyNotOnCurve, "invalid compressed "+
				"pubkey: not a valid x coordinate")
		}
		y.Normalize()

	default:
		return nil, makeError(ErrPubKeyInvalidLen, fmt.Sprintf(
			"invalid pub key length %d", len(serialized)))
	}

	return NewPublicKey(&x, &y), nil
}

// PubkeyVerify reports whether serialized is a validly-encoded public key
// that parses to a point on the secp256k1 curve, in any of the compressed,
// uncompressed, or hybrid formats accepted by ParsePubKey.
func PubkeyVerify(serialized []byte) bool {
	_, err := ParsePubKey(serialized)
	return err == nil
}

// SerializeUncompressed serializes a public key in the 65-byte uncompressed
// format.
func (p PublicKey) SerializeUncompressed() []byte {
	var x, y FieldVal
	x.SetByteSlice(p.X.Bytes())
	y.SetByteSlice(p.Y.Bytes())

	var b [PubKeyBytesLenUncompressed]byte
	b[0] = pubkeyUncompressed
	xb, yb := x.Bytes(), y.Bytes()
	copy(b[1:33], xb[:])
	copy(b[33:65], yb[:])
	return b[:]
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (p PublicKey) SerializeCompressed() []byte {
	var x, y FieldVal
	x.SetByteSlice(p.X.Bytes())
	y.SetByteSlice(p.Y.Bytes())

	format := pubkeyCompressed
	if y.IsOdd() {
		format = pubkeyCompressed2
	}
	var b [PubKeyBytesLenCompressed]byte
	b[0] = format
	xb := x.Bytes()
	copy(b[1:33], xb[:])
	return b[:]
}

// Serialize serializes the public key using the compressed format. This
// form is the most widely used and preferred since it takes up
// approximately half the storage of the uncompressed format.
func (p PublicKey) Serialize() []byte {
	return p.SerializeCompressed()
}

// IsEqual compares this public key instance to the one passed, returning
// true if both public keys are equivalent.
func (p *PublicKey) IsEqual(otherPubKey *PublicKey) bool {
	return p.X.Cmp(otherPubKey.X) == 0 && p.Y.Cmp(otherPubKey.Y) == 0
}

// AsJacobianPoint is a convenience helper that returns a fresh Jacobian
// point for the public key rather than requiring the caller to allocate one.
func (p *PublicKey) AsJacobianPoint() JacobianPoint {
	var result JacobianPoint
	p.AsJacobian(&result)
	return result
}

// PubKeyTweakAdd returns the public key that results from adding tweak*G to
// key.  It returns an error if the tweak is out of range or the result is
// the point at infinity.
func PubKeyTweakAdd(key *PublicKey, tweak []byte) (*PublicKey, error) {
	t, err := tweakScalar(tweak)
	if err != nil {
		return nil, err
	}

	var tweakPoint, keyPoint, sum JacobianPoint
	ScalarBaseMultNonConst(&t, &tweakPoint)
	key.AsJacobian(&keyPoint)
	AddNonConst(&keyPoint, &tweakPoint, &sum)
	if sum.Z.IsZero() {
		return nil, makeError(ErrPubKeyTweakInfinity, "public key tweak "+
			"addition produced the point at infinity")
	}

	sum.ToAffine()
	return NewPublicKey(&sum.X, &sum.Y), nil
}

// PubKeyTweakMul returns the public key that results from multiplying key by
// tweak.  It returns an error if the tweak is out of range, zero, or the
// result is the point at infinity.
func PubKeyTweakMul(key *PublicKey, tweak []byte) (*PublicKey, error) {
	t, err := tweakScalar(tweak)
	if err != nil {
		return nil, err
	}
	if t.IsZero() {
		return nil, makeError(ErrTweakOverflow, "tweak value is zero")
	}

	var keyPoint, result JacobianPoint
	key.AsJacobian(&keyPoint)
	ScalarMultNonConst(&t, &keyPoint, &result)
	if result.Z.IsZero() {
		return nil, makeError(ErrPubKeyTweakInfinity, "public key tweak "+
			"multiplication produced the point at infinity")
	}

	result.ToAffine()
	return NewPublicKey(&result.X, &result.Y), nil
}
