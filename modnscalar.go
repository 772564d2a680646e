// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
	"math/big"
)

// curveOrder is the order n of the secp256k1 base point G -- the number of
// distinct points in the cyclic group it generates, and the modulus every
// ModNScalar is reduced against.
var curveOrder = func() *big.Int {
	n, ok := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	if !ok {
		panic("invalid secp256k1 group order")
	}
	return n
}()

// halfOrder is n/2, used to decide whether a scalar lies in the upper half
// of the group order for canonical low-s signature encoding.
var halfOrder = new(big.Int).Rsh(curveOrder, 1)

// ModNScalar implements fixed-precision arithmetic modulo the group order
// n. The canonical value is tracked with a single big.Int kept perpetually
// reduced into [0, n).  The exported surface, including the _var/NonConst
// naming convention for variable-time operations on public data, mirrors
// the semantics of a limb-based implementation, though operations here are
// not constant time.
type ModNScalar struct {
	val big.Int
}

func normalizeModN(v *big.Int) *big.Int {
	v.Mod(v, curveOrder)
	if v.Sign() < 0 {
		v.Add(v, curveOrder)
	}
	return v
}

// Zero sets the scalar to 0.
func (s *ModNScalar) Zero() {
	s.val.SetInt64(0)
}

// Set sets s equal to val and returns s for chaining.
func (s *ModNScalar) Set(val *ModNScalar) *ModNScalar {
	s.val.Set(&val.val)
	return s
}

// SetInt sets s to the passed small integer and returns s for chaining.
func (s *ModNScalar) SetInt(ui uint32) *ModNScalar {
	s.val.SetUint64(uint64(ui))
	return s
}

// SetBytes interprets b as a 256-bit big-endian unsigned integer, sets s to
// it reduced modulo the group order, and returns whether or not the value
// originally overflowed the order.
func (s *ModNScalar) SetBytes(b *[32]byte) uint32 {
	s.val.SetBytes(b[:])
	overflow := uint32(0)
	if s.val.Cmp(curveOrder) >= 0 {
		overflow = 1
	}
	normalizeModN(&s.val)
	return overflow
}

// SetByteSlice interprets b as a big-endian unsigned integer (truncated to
// its low 32 bytes if longer), sets s to it reduced modulo the group order,
// and returns whether or not the value overflowed the order.
func (s *ModNScalar) SetByteSlice(b []byte) bool {
	var buf [32]byte
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(buf[32-len(b):], b)
	s.val.SetBytes(buf[:])
	overflow := s.val.Cmp(curveOrder) >= 0
	normalizeModN(&s.val)
	return overflow
}

// SetHex decodes the passed big-endian hex string into s, reduced modulo
// the group order. It is intended for hard-coded constants and panics on
// malformed input.
func (s *ModNScalar) SetHex(str string) *ModNScalar {
	if len(str)%2 != 0 {
		str = "0" + str
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		panic("secp256k1: invalid hex in ModNScalar.SetHex: " + err.Error())
	}
	s.val.SetBytes(b)
	normalizeModN(&s.val)
	return s
}

// IsZero returns whether or not s is the zero scalar.
func (s *ModNScalar) IsZero() bool {
	return s.val.Sign() == 0
}

// IsOverHalfOrder returns whether or not s exceeds the group order divided
// by two, the threshold ECDSA uses to pick the canonical "low s" form of a
// signature.
func (s *ModNScalar) IsOverHalfOrder() bool {
	return s.val.Cmp(halfOrder) > 0
}

// Negate computes -s mod n in place and returns s for chaining.
func (s *ModNScalar) Negate() *ModNScalar {
	s.val.Sub(curveOrder, &s.val)
	normalizeModN(&s.val)
	return s
}

// Add adds val to s modulo the group order and returns s for chaining.
func (s *ModNScalar) Add(val *ModNScalar) *ModNScalar {
	s.val.Add(&s.val, &val.val)
	normalizeModN(&s.val)
	return s
}

// Add2 sets s = a + b mod n and returns s for chaining.
func (s *ModNScalar) Add2(a, b *ModNScalar) *ModNScalar {
	s.val.Add(&a.val, &b.val)
	normalizeModN(&s.val)
	return s
}

// Mul multiplies s by val modulo the group order and returns s for
// chaining.
func (s *ModNScalar) Mul(val *ModNScalar) *ModNScalar {
	s.val.Mul(&s.val, &val.val)
	normalizeModN(&s.val)
	return s
}

// Mul2 sets s = a * b mod n and returns s for chaining.
func (s *ModNScalar) Mul2(a, b *ModNScalar) *ModNScalar {
	s.val.Mul(&a.val, &b.val)
	normalizeModN(&s.val)
	return s
}

// Equals returns whether or not s and val represent the same scalar.
func (s *ModNScalar) Equals(val *ModNScalar) bool {
	return s.val.Cmp(&val.val) == 0
}

// Inverse computes the multiplicative inverse of s modulo the group order
// and returns s for chaining, using big.Int's ModInverse.  This is not
// constant time.  Panics if s is zero.
func (s *ModNScalar) Inverse() *ModNScalar {
	if s.val.Sign() == 0 {
		panic("secp256k1: inverse of zero scalar")
	}
	s.val.ModInverse(&s.val, curveOrder)
	return s
}

// InverseValNonConst sets s to the multiplicative inverse of val modulo the
// group order. The "NonConst" suffix follows this package's variable-time
// naming convention and must only ever be used on non-secret scalars (e.g.
// a public signature's s value during verification).
func (s *ModNScalar) InverseValNonConst(val *ModNScalar) *ModNScalar {
	s.Set(val)
	return s.Inverse()
}

// Bytes returns s serialized as a big-endian 32-byte array.
func (s *ModNScalar) Bytes() [32]byte {
	var b [32]byte
	s.PutBytes(&b)
	return b
}

// PutBytes serializes s as a big-endian 32-byte array into b.
func (s *ModNScalar) PutBytes(b *[32]byte) {
	normalizeModN(&s.val)
	putBigBytes(b, &s.val)
}

// PutBytesUnchecked serializes s as a big-endian value into b, which must
// have a length of at least 32 bytes. Named "Unchecked" because, unlike
// the array-typed PutBytes, the slice length is not asserted at compile
// time.
func (s *ModNScalar) PutBytesUnchecked(b []byte) {
	normalizeModN(&s.val)
	putBigBytesSlice(b, &s.val)
}

// String returns s as a zero-padded 64-character hex string.
func (s *ModNScalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}
