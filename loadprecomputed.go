// Copyright 2015 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto/rand"
	"sync"
)

// bytePointTable describes a table used to house pre-computed values for
// accelerating scalar base multiplication. It holds, for each of the 32
// bytes of a scalar and each of the 256 possible values of that byte, the
// Jacobian coordinates of value*256^byteNum*G, blinded by a single
// additively-shared point so that no entry the table ever yields is the
// point at infinity and no single entry reveals an unblinded multiple of G.
type bytePointTable [32][256][3]FieldVal

// basePointJacobian returns the secp256k1 base point G as a Jacobian point
// with Z=1.
func basePointJacobian() JacobianPoint {
	var p JacobianPoint
	bigAffineToJacobian(curveParams.Gx, curveParams.Gy, &p)
	return p
}

// scalarMultSimple computes k*point via plain double-and-add without
// relying on any precomputed table. It exists solely to bootstrap the
// fixed-base table itself (and the blinding point below), both of which are
// computed before the table exists, so it cannot use ScalarBaseMultNonConst.
func scalarMultSimple(k *ModNScalar, point *JacobianPoint) JacobianPoint {
	var result JacobianPoint // point at infinity: X=Y=Z=0
	kBytes := k.Bytes()
	for _, b := range kBytes {
		for bit := 7; bit >= 0; bit-- {
			var doubled JacobianPoint
			DoubleNonConst(&result, &doubled)
			result = doubled
			if (b>>uint(bit))&1 == 1 {
				var sum JacobianPoint
				AddNonConst(&result, point, &sum)
				result = sum
			}
		}
	}
	return result
}

// ecmultGenBlindOnce guards the one-time generation of the blinding scalar
// and its corresponding point used to mask the fixed-base multiplication
// table. The blind is generated fresh for the lifetime of the process,
// mirroring the "generator blinding" defense against power-analysis side
// channels on the scalar base multiplication table described for this
// package: every table entry carries the same added point, so recovering an
// individual entry does not by itself reveal a clean multiple of G.
var (
	ecmultGenBlindOnce sync.Once
	ecmultGenBlind     ModNScalar
	ecmultGenBlindPt   JacobianPoint
	ecmultGenBlindComp JacobianPoint // 32 * ecmultGenBlindPt, precomputed
)

func ensureEcmultGenBlind() {
	ecmultGenBlindOnce.Do(func() {
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			panic("secp256k1: failed to generate scalar base mult blind: " + err.Error())
		}
		ecmultGenBlind.SetBytes(&buf)
		if ecmultGenBlind.IsZero() {
			ecmultGenBlind.SetInt(1)
		}
		g := basePointJacobian()
		ecmultGenBlindPt = scalarMultSimple(&ecmultGenBlind, &g)
		ecmultGenBlindComp = scalarMultSimple(new(ModNScalar).SetInt(32), &ecmultGenBlindPt)
	})
}

// buildBytePointTable computes the full blinded fixed-base table described
// by bytePointTable, derived directly from the curve's own doubling/
// addition formulas at package initialization time.
func buildBytePointTable() *bytePointTable {
	ensureEcmultGenBlind()

	var table bytePointTable
	cur := basePointJacobian() // 256^byteNum * G, starting at byteNum = 0
	two56 := new(ModNScalar).SetInt(256)
	for byteNum := 0; byteNum < 32; byteNum++ {
		acc := JacobianPoint{} // i*cur accumulator, starts at i=0 (identity)
		for i := 0; i < 256; i++ {
			var blinded JacobianPoint
			AddNonConst(&acc, &ecmultGenBlindPt, &blinded)
			table[byteNum][i] = [3]FieldVal{blinded.X, blinded.Y, blinded.Z}

			if i+1 < 256 {
				var next JacobianPoint
				AddNonConst(&acc, &cur, &next)
				acc = next
			}
		}

		if byteNum+1 < 32 {
			cur = scalarMultSimple(two56, &cur)
		}
	}
	return &table
}

// s256BytePoints houses the pre-computed, blinded values used to accelerate
// scalar base multiplication such that they are only computed on first use.
var s256BytePoints = func() func() *bytePointTable {
	var data *bytePointTable
	var once sync.Once
	return func() *bytePointTable {
		once.Do(func() {
			data = buildBytePointTable()
		})
		return data
	}
}()
