// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"math/big"
)

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
// The secp256k1 field prime is p = 2^256 - 2^32 - 977. The canonical value
// (fieldPrime) is defined alongside the rest of the curve parameters in
// ellipticadaptor.go.

// FieldVal implements fixed-precision arithmetic over the secp256k1 field.
// The canonical value is tracked with a single big.Int that is immediately
// folded back into [0, p) after every operation, which makes Normalize a
// no-op.  The exported surface, including the magnitude-bearing Negate(m)
// and MulInt(k) signatures, mirrors the semantics of a limb-based
// implementation so callers never need to reason about the internal
// representation, though operations here are not constant time.
type FieldVal struct {
	val big.Int
}

// normalizeBig reduces v into [0, p) in place.
func normalizeBig(v *big.Int) *big.Int {
	v.Mod(v, fieldPrime)
	if v.Sign() < 0 {
		v.Add(v, fieldPrime)
	}
	return v
}

// Zero sets the field value to 0.
func (f *FieldVal) Zero() {
	f.val.SetInt64(0)
}

// Set sets f equal to val and returns f for chaining.
func (f *FieldVal) Set(val *FieldVal) *FieldVal {
	f.val.Set(&val.val)
	return f
}

// SetInt sets f to the passed small integer and returns f for chaining.
func (f *FieldVal) SetInt(ui uint16) *FieldVal {
	f.val.SetUint64(uint64(ui))
	return f
}

// SetBytes interprets b as a 256-bit big-endian unsigned integer, reduces it
// modulo the field prime and sets f to the result.
func (f *FieldVal) SetBytes(b *[32]byte) *FieldVal {
	f.val.SetBytes(b[:])
	normalizeBig(&f.val)
	return f
}

// SetByteSlice interprets b as a big-endian unsigned integer, packing it
// into a 32-byte big-endian array first (truncating any leading bytes
// beyond 32), reduces it modulo the field prime, and sets f to the result.
// It returns whether or not the value overflowed the field prime.
func (f *FieldVal) SetByteSlice(b []byte) bool {
	var buf [32]byte
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(buf[32-len(b):], b)
	f.val.SetBytes(buf[:])
	overflow := f.val.Cmp(fieldPrime) >= 0
	normalizeBig(&f.val)
	return overflow
}

// SetHex decodes the passed big-endian hex string (without a "0x" prefix,
// an odd number of nibbles is tolerated by left-padding with a zero) into
// f, reducing it modulo the field prime.  It is intended for hard-coded
// constants and panics on malformed input.
func (f *FieldVal) SetHex(s string) *FieldVal {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("secp256k1: invalid hex in FieldVal.SetHex: " + err.Error())
	}
	f.val.SetBytes(b)
	normalizeBig(&f.val)
	return f
}

// Normalize reduces f to its unique representation in [0, p).  Because this
// implementation always keeps the backing value reduced, Normalize is a
// no-op provided for API compatibility with the reference limb
// implementation, which requires an explicit call before comparison or
// serialization.
func (f *FieldVal) Normalize() *FieldVal {
	normalizeBig(&f.val)
	return f
}

// NormalizeWeak is the "weak" form of Normalize, provided for API parity
// with code that distinguishes a cheaper partial reduction from a full one.
// Every FieldVal here is already fully reduced, so it behaves identically
// to Normalize.
func (f *FieldVal) NormalizeWeak() *FieldVal {
	return f.Normalize()
}

// Add adds val to f and returns f for chaining.  The result is reduced
// immediately.
func (f *FieldVal) Add(val *FieldVal) *FieldVal {
	f.val.Add(&f.val, &val.val)
	normalizeBig(&f.val)
	return f
}

// Add2 sets f = a + b and returns f for chaining.
func (f *FieldVal) Add2(a, b *FieldVal) *FieldVal {
	f.val.Add(&a.val, &b.val)
	normalizeBig(&f.val)
	return f
}

// AddInt adds the passed small integer to f and returns f for chaining.
func (f *FieldVal) AddInt(ui uint16) *FieldVal {
	f.val.Add(&f.val, big.NewInt(int64(ui)))
	normalizeBig(&f.val)
	return f
}

// MulInt multiplies f by the passed small integer and returns f for
// chaining.
func (f *FieldVal) MulInt(ui uint32) *FieldVal {
	f.val.Mul(&f.val, new(big.Int).SetUint64(uint64(ui)))
	normalizeBig(&f.val)
	return f
}

// Negate computes -f and returns f for chaining.  The magnitude parameter is
// the caller-asserted upper bound on f's magnitude before negation; it is
// accepted but unused since every FieldVal here is always already reduced.
func (f *FieldVal) Negate(magnitude uint32) *FieldVal {
	f.val.Sub(fieldPrime, &f.val)
	normalizeBig(&f.val)
	return f
}

// Mul multiplies f by val and returns f for chaining.
func (f *FieldVal) Mul(val *FieldVal) *FieldVal {
	f.val.Mul(&f.val, &val.val)
	normalizeBig(&f.val)
	return f
}

// Mul2 sets f = a * b and returns f for chaining.
func (f *FieldVal) Mul2(a, b *FieldVal) *FieldVal {
	f.val.Mul(&a.val, &b.val)
	normalizeBig(&f.val)
	return f
}

// Square squares f and returns f for chaining.
func (f *FieldVal) Square() *FieldVal {
	f.val.Mul(&f.val, &f.val)
	normalizeBig(&f.val)
	return f
}

// SquareVal sets f = val * val and returns f for chaining.
func (f *FieldVal) SquareVal(val *FieldVal) *FieldVal {
	f.val.Mul(&val.val, &val.val)
	normalizeBig(&f.val)
	return f
}

// IsZero returns whether or not f is equal to zero.
func (f *FieldVal) IsZero() bool {
	return f.val.Sign() == 0
}

// IsOdd returns whether or not f is an odd number modulo the field prime.
func (f *FieldVal) IsOdd() bool {
	return f.val.Bit(0) == 1
}

// IsOddBit returns 1 if f is odd and 0 otherwise, to allow branch-free use in
// the contexts (such as ECDSA recovery codes) that need a numeric rather
// than a boolean flag.
func (f *FieldVal) IsOddBit() uint32 {
	return uint32(f.val.Bit(0))
}

// Equals returns whether or not f and val represent the same field element.
func (f *FieldVal) Equals(val *FieldVal) bool {
	return f.val.Cmp(&val.val) == 0
}

// IsGtOrEqPrimeMinusOrder returns whether or not f, which is assumed to hold
// a value already reduced modulo the group order n, is greater than or
// equal to p - n.  It is used by ECDSA verification and recovery to decide
// whether adding n back to a reduced x-coordinate would still fit under the
// field prime.
func (f *FieldVal) IsGtOrEqPrimeMinusOrder() bool {
	return f.val.Cmp(fieldPrimeMinusOrder) >= 0
}

// fieldPrimeMinusOrder is p - n, precomputed once.
var fieldPrimeMinusOrder = new(big.Int).Sub(fieldPrime, curveOrder)

// PutBytes serializes f as a big-endian 32-byte array into b.
func (f *FieldVal) PutBytes(b *[32]byte) {
	normalizeBig(&f.val)
	putBigBytes(b, &f.val)
}

// PutBytesUnchecked serializes f as a big-endian value into b, which must
// have a length of at least 32 bytes.
func (f *FieldVal) PutBytesUnchecked(b []byte) {
	normalizeBig(&f.val)
	putBigBytesSlice(b, &f.val)
}

// Bytes returns f serialized as a big-endian 32-byte array.
func (f *FieldVal) Bytes() [32]byte {
	var b [32]byte
	f.PutBytes(&b)
	return b
}

// String returns f as a zero-padded 64-character hex string.
func (f *FieldVal) String() string {
	b := f.Bytes()
	return hex.EncodeToString(b[:])
}

// Inverse computes the multiplicative inverse of f modulo the field prime
// and returns f for chaining, using big.Int's extended-Euclidean
// ModInverse.  This is not constant time.  It panics if f is zero, exactly
// as dividing by zero should.
func (f *FieldVal) Inverse() *FieldVal {
	if f.val.Sign() == 0 {
		panic("secp256k1: inverse of zero field element")
	}
	f.val.ModInverse(&f.val, fieldPrime)
	return f
}

// InverseVal sets f to the multiplicative inverse of val modulo the field
// prime.  The "Val" suffix follows this package's "_var"/NonConst naming
// convention: it must only ever be called on public data.
func (f *FieldVal) InverseVal(val *FieldVal) *FieldVal {
	f.Set(val)
	return f.Inverse()
}

// Sqrt sets f to a square root of val modulo the field prime using the
// Tonelli-Shanks specialization valid because p ≡ 3 (mod 4): candidate =
// val^((p+1)/4).  It returns whether or not val was actually a quadratic
// residue (i.e. whether the computed candidate squares back to val).
func (f *FieldVal) Sqrt(val *FieldVal) bool {
	var exp big.Int
	exp.Add(fieldPrime, big.NewInt(1))
	exp.Rsh(&exp, 2)
	f.val.Exp(&val.val, &exp, fieldPrime)

	var check big.Int
	check.Mul(&f.val, &f.val)
	check.Mod(&check, fieldPrime)
	return check.Cmp(&val.val) == 0
}

// putBigBytes writes v into b as a big-endian 32-byte value.
func putBigBytes(b *[32]byte, v *big.Int) {
	for i := range b {
		b[i] = 0
	}
	vb := v.Bytes()
	copy(b[32-len(vb):], vb)
}

// putBigBytesSlice writes v into b (which must have len(b) >= 32) as a
// big-endian value, left-padded with zeroes.
func putBigBytesSlice(b []byte, v *big.Int) {
	for i := 0; i < 32; i++ {
		b[i] = 0
	}
	vb := v.Bytes()
	copy(b[32-len(vb):32], vb)
}
