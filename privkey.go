// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/asn1"
)

// PrivateKey provides facilities for working with secp256k1 private keys within
// this package and includes functionality such as serializing and parsing them
// as well as computing their associated public key.
type PrivateKey struct {
	key ModNScalar
}

// NewPrivateKey instantiates a new private key from a scalar encoded as a
// big integer.
func NewPrivateKey(key *ModNScalar) *PrivateKey {
	return &PrivateKey{key: *key}
}

// PrivKeyFromBytes returns a private based on the provided byte slice which is
// interpreted as an unsigned 256-bit big-endian integer in the range [0, N-1],
// where N is the order of the curve.
//
// Note that this means passing a slice with more than 32 bytes is truncated and
// that truncated value is reduced modulo N.  It is up to the caller to either
// provide a value in the appropriate range or choose to accept the described
// behavior.
//
// Typically callers should simply make use of GeneratePrivateKey when creating
// private keys which properly handles generation of appropriate values.
func PrivKeyFromBytes(privKeyBytes []byte) *PrivateKey {
	var d ModNScalar
	d.SetByteSlice(privKeyBytes)
	return NewPrivateKey(&d)
}

// GeneratePrivateKey returns a private key that is suitable for use with
// secp256k1.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := ecdsa.GenerateKey(S256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return PrivKeyFromBytes(key.D.Bytes()), nil
}

// PubKey computes and returns the public key corresponding to this private key.
func (p *PrivateKey) PubKey() *PublicKey {
	var result JacobianPoint
	ScalarBaseMultNonConst(&p.key, &result)
	result.ToAffine()
	return NewPublicKey(&result.X, &result.Y)
}

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p PrivateKey) Serialize() []byte {
	privKeyBytes := p.key.Bytes()
	return privKeyBytes[:]
}

// zeroArray32 zeroes the contents of a.  It is used to scrub copies of
// private scalars and nonces out of memory as soon as they are no longer
// needed.
func zeroArray32(a *[32]byte) {
	for i := range a {
		a[i] = 0
	}
}

// SeckeyVerify reports whether privKeyBytes is a validly-ranged private key
// scalar, i.e. interpreted as a big-endian 256-bit integer it lies in
// [1, N-1] where N is the group order.
func SeckeyVerify(privKeyBytes []byte) bool {
	var d ModNScalar
	overflow := d.SetByteSlice(privKeyBytes)
	return !overflow && !d.IsZero()
}

// tweakScalar parses the passed 32-byte tweak into a scalar, rejecting
// values that are greater than or equal to the group order.
func tweakScalar(tweak []byte) (ModNScalar, error) {
	var t ModNScalar
	if overflow := t.SetByteSlice(tweak); overflow {
		return t, makeError(ErrTweakOutOfRange, "tweak value is >= group order")
	}
	return t, nil
}

// PrivKeyTweakAdd adds tweak to key's scalar modulo the group order and
// returns the resulting private key.  It returns an error if the tweak is
// out of range or if the result is the zero scalar.
func PrivKeyTweakAdd(key *PrivateKey, tweak []byte) (*PrivateKey, error) {
	t, err := tweakScalar(tweak)
	if err != nil {
		return nil, err
	}

	result := new(ModNScalar).Add2(&key.key, &t)
	if result.IsZero() {
		return nil, makeError(ErrTweakOverflow, "tweak addition produced a "+
			"zero private key")
	}
	return NewPrivateKey(result), nil
}

// PrivKeyTweakMul multiplies key's scalar by tweak modulo the group order
// and returns the resulting private key.  It returns an error if the tweak
// is out of range, zero, or if the result is the zero scalar.
func PrivKeyTweakMul(key *PrivateKey, tweak []byte) (*PrivateKey, error) {
	t, err := tweakScalar(tweak)
	if err != nil {
		return nil, err
	}
	if t.IsZero() {
		return nil, makeError(ErrTweakOverflow, "tweak value is zero")
	}

	result := new(ModNScalar).Mul2(&key.key, &t)
	if result.IsZero() {
		return nil, makeError(ErrTweakOverflow, "tweak multiplication "+
			"produced a zero private key")
	}
	return NewPrivateKey(result), nil
}

// ecPrivateKey mirrors the ASN.1 "EC PRIVATE KEY" structure from SEC1
// section C.4, as produced by, e.g., "openssl ecparam -genkey".
type ecPrivateKey struct {
	Version    int
	PrivateKey []byte
	Parameters asn1.ObjectIdentifier `asn1:"optional,explicit,tag:0"`
	PublicKey  asn1.BitString        `asn1:"optional,explicit,tag:1"`
}

// oidSecp256k1 is the named curve OID for secp256k1 (1.3.132.0.10).
var oidSecp256k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

// PrivKeyFromDER parses a private key encoded according to the legacy SEC1
// "EC PRIVATE KEY" ASN.1 structure, such as the one produced by OpenSSL's
// EC_KEY serialization. The curve parameters and public key fields, when
// present, are not validated against the private scalar; callers that need
// that guarantee should compare PubKey() against the decoded value
// themselves.
func PrivKeyFromDER(der []byte) (*PrivateKey, error) {
	var key ecPrivateKey
	if _, err := asn1.Unmarshal(der, &key); err != nil {
		return nil, makeError(ErrInvalidDERKey, "malformed EC PRIVATE KEY: "+err.Error())
	}
	if key.Version != 1 {
		return nil, makeError(ErrInvalidDERKey, "unsupported EC PRIVATE KEY version")
	}
	if len(key.PrivateKey) == 0 || len(key.PrivateKey) > PrivKeyBytesLen {
		return nil, makeError(ErrInvalidDERKey, "invalid EC PRIVATE KEY private key length")
	}

	priv := PrivKeyFromBytes(key.PrivateKey)
	if priv.key.IsZero() {
		return nil, makeError(ErrInvalidPrivKey, "private key scalar is zero")
	}
	return priv, nil
}

// ToDER encodes the private key using the legacy SEC1 "EC PRIVATE KEY" ASN.1
// structure, including the secp256k1 named curve OID and the corresponding
// uncompressed public key, for interop with tools that expect that format.
func (p *PrivateKey) ToDER() ([]byte, error) {
	pubBytes := p.PubKey().SerializeUncompressed()
	key := ecPrivateKey{
		Version:    1,
		PrivateKey: p.Serialize(),
		Parameters: oidSecp256k1,
		PublicKey: asn1.BitString{
			Bytes:     pubBytes,
			BitLength: len(pubBytes) * 8,
		},
	}
	return asn1.Marshal(key)
}
