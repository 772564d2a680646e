// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// ScalarMultNonConst computes k*point, where point is an arbitrary point on
// the curve (as opposed to the fixed base point G), and stores the result
// in result. It scans a non-adjacent form encoding of k and is intended for
// use only with public scalars and points, such as during signature
// verification and public key recovery, since its running time depends on
// the bit pattern of k.
func ScalarMultNonConst(k *ModNScalar, point, result *JacobianPoint) {
	kBytes := k.Bytes()
	encoded := naf(kBytes[:])
	pos, neg := encoded.Pos(), encoded.Neg()

	var negPoint JacobianPoint
	jacobianNegate(point, &negPoint)

	width := len(pos)
	if len(neg) > width {
		width = len(neg)
	}
	posPadded := make([]byte, width)
	copy(posPadded[width-len(pos):], pos)
	negPadded := make([]byte, width)
	copy(negPadded[width-len(neg):], neg)

	acc := JacobianPoint{} // point at infinity
	for byteIdx := 0; byteIdx < width; byteIdx++ {
		pb, nb := posPadded[byteIdx], negPadded[byteIdx]
		for bit := 7; bit >= 0; bit-- {
			var doubled JacobianPoint
			DoubleNonConst(&acc, &doubled)
			acc = doubled

			switch {
			case (pb>>uint(bit))&1 == 1:
				var sum JacobianPoint
				AddNonConst(&acc, point, &sum)
				acc = sum
			case (nb>>uint(bit))&1 == 1:
				var sum JacobianPoint
				AddNonConst(&acc, &negPoint, &sum)
				acc = sum
			}
		}
	}

	*result = acc
}
