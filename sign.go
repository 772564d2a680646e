package secp256k1

import (
	"crypto"
	"io"
)

type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Sign will sign the provided digest, returning the resulting signature. [SignOptions] can be used
// to pass options.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sig, err := signWithRand(privkey, rand, digest)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil // DER
}

// Public returns the public key corresponding to privkey, completing the
// crypto.Signer interface.
func (privkey *PrivateKey) Public() crypto.PublicKey {
	return privkey.PubKey().ToECDSA()
}
