// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"errors"
	"testing"
)

// TestContextSignVerify exercises the happy path of constructing a Context
// with both capabilities and using it to sign and verify.
func TestContextSignVerify(t *testing.T) {
	ctx := NewContext(ContextSign | ContextVerify)

	privKey := PrivKeyFromBytes(hexToBytes("0606060606060606060606060606060606060606060606060606060606060606"))
	hash := hexToBytes("0707070707070707070707070707070707070707070707070707070707070707")

	sig, err := ctx.Sign(privKey, hash)
	if err != nil {
		t.Fatalf("unexpected error signing: %v", err)
	}

	ok, err := ctx.Verify(sig, hash, privKey.PubKey())
	if err != nil {
		t.Fatalf("unexpected error verifying: %v", err)
	}
	if !ok {
		t.Error("expected signature to verify")
	}
}

// TestContextMissingCapability ensures a Context constructed without a
// given capability refuses to perform the corresponding operation.
func TestContextMissingCapability(t *testing.T) {
	privKey := PrivKeyFromBytes(hexToBytes("0808080808080808080808080808080808080808080808080808080808080808"))
	hash := hexToBytes("0909090909090909090909090909090909090909090909090909090909090909")

	signOnly := NewContext(ContextSign)
	if _, err := signOnly.Verify(nil, hash, privKey.PubKey()); !errors.Is(err, ErrContextNotReady) {
		t.Errorf("expected ErrContextNotReady, got %v", err)
	}

	verifyOnly := NewContext(ContextVerify)
	if _, err := verifyOnly.Sign(privKey, hash); !errors.Is(err, ErrContextNotReady) {
		t.Errorf("expected ErrContextNotReady, got %v", err)
	}

	none := NewContext(ContextNone)
	if _, err := none.Sign(privKey, hash); !errors.Is(err, ErrContextNotReady) {
		t.Errorf("expected ErrContextNotReady, got %v", err)
	}
}

// TestContextDestroy ensures a destroyed Context rejects further use.
func TestContextDestroy(t *testing.T) {
	privKey := PrivKeyFromBytes(hexToBytes("0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a"))
	hash := hexToBytes("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")

	ctx := NewContext(ContextSign | ContextVerify)
	if _, err := ctx.Sign(privKey, hash); err != nil {
		t.Fatalf("unexpected error before destroy: %v", err)
	}

	ctx.Destroy()

	if _, err := ctx.Sign(privKey, hash); !errors.Is(err, ErrContextNotReady) {
		t.Errorf("expected ErrContextNotReady after Destroy, got %v", err)
	}
	if _, err := ctx.Verify(nil, hash, privKey.PubKey()); !errors.Is(err, ErrContextNotReady) {
		t.Errorf("expected ErrContextNotReady after Destroy, got %v", err)
	}
}

// TestDefaultContext ensures the lazily-built default context is usable and
// stable across calls.
func TestDefaultContext(t *testing.T) {
	first := DefaultContext()
	second := DefaultContext()
	if first != second {
		t.Error("expected DefaultContext to return the same instance every call")
	}

	privKey := PrivKeyFromBytes(hexToBytes("0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c0c"))
	hash := hexToBytes("0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d0d")

	sig, err := first.Sign(privKey, hash)
	if err != nil {
		t.Fatalf("unexpected error signing with default context: %v", err)
	}
	ok, err := first.Verify(sig, hash, privKey.PubKey())
	if err != nil {
		t.Fatalf("unexpected error verifying with default context: %v", err)
	}
	if !ok {
		t.Error("expected signature to verify with default context")
	}
}
