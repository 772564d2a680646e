// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"
	mrand "math/rand"
	"testing"
)

// randFieldVal returns a random, normalized field value obtained from the
// provided random source.
func randFieldVal(t *testing.T, rng *mrand.Rand) *FieldVal {
	t.Helper()

	var buf [32]byte
	if _, err := rng.Read(buf[:]); err != nil {
		t.Fatalf("failed to read random bytes: %v", err)
	}
	return new(FieldVal).SetBytes(&buf)
}

// randIntAndModNScalar returns a random scalar in [0, N-1] both as a big
// integer and as a ModNScalar representing the same value, obtained from the
// provided random source.
func randIntAndModNScalar(t *testing.T, rng *mrand.Rand) (*big.Int, *ModNScalar) {
	t.Helper()

	var buf [32]byte
	if _, err := rng.Read(buf[:]); err != nil {
		t.Fatalf("failed to read random bytes: %v", err)
	}

	bigIntVal := new(big.Int).SetBytes(buf[:])
	bigIntVal.Mod(bigIntVal, curveParams.N)

	modNVal := new(ModNScalar)
	modNBytes := bigIntVal.Bytes()
	var padded [32]byte
	copy(padded[32-len(modNBytes):], modNBytes)
	modNVal.SetBytes(&padded)

	return bigIntVal, modNVal
}
