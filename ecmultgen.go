// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ScalarBaseMultNonConst computes k*G, where G is the secp256k1 base point,
// using the blinded precomputed table of byte-indexed multiples of G, and
// stores the result in result.
//
// Despite the table scan this performs, the big.Int-backed FieldVal
// arithmetic underneath is not constant time, so this routine should not be
// relied upon to withstand a timing or power-analysis adversary; it is
// named ScalarBaseMultNonConst to match this package's variable-time
// naming convention.
func ScalarBaseMultNonConst(k *ModNScalar, result *JacobianPoint) {
	table := s256BytePoints()
	ensureEcmultGenBlind()

	kBytes := k.Bytes()
	acc := JacobianPoint{} // point at infinity
	for byteNum := 0; byteNum < 32; byteNum++ {
		idx := kBytes[31-byteNum]
		entry := table[byteNum][idx]
		window := JacobianPoint{X: entry[0], Y: entry[1], Z: entry[2]}

		var sum JacobianPoint
		AddNonConst(&acc, &window, &sum)
		acc = sum
	}

	// Each of the 32 window lookups above added the same blinding point, so
	// the accumulator currently holds k*G + 32*blind; remove the known
	// compensation to recover k*G.
	var negComp JacobianPoint
	jacobianNegate(&ecmultGenBlindComp, &negComp)
	AddNonConst(&acc, &negComp, result)
}
