// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "sync"

// ContextFlag selects which capabilities a Context is prepared to perform.
// A Context only pays for the setup work (in particular, priming the
// blinded fixed-base multiplication table) for the capabilities it is
// asked for.
type ContextFlag uint32

const (
	// ContextSign indicates a Context may be used to produce signatures.
	ContextSign ContextFlag = 1 << iota

	// ContextVerify indicates a Context may be used to verify signatures.
	ContextVerify

	// ContextNone requests a Context with neither capability.  Such a
	// Context is only useful as a placeholder; every Sign or Verify call
	// against it fails with ErrContextNotReady.
	ContextNone ContextFlag = 0
)

// Context is an explicit handle on the package's signing and verification
// capabilities. Unlike the bare package-level Sign/Verify functions, which
// reach for a lazily-initialized default instance behind the scenes, a
// Context makes that initialization, its capability set, and its lifetime
// visible and controllable by the caller.
//
// A Context's blinded fixed-base multiplication table is the same shared,
// process-wide table the package-level functions use (see
// loadprecomputed.go); Context does not fork a second copy of that table
// per instance. What Context adds is a capability check and an explicit
// end of life: once Destroy is called, every subsequent Sign or Verify call
// against that Context fails instead of silently continuing to work.
//
// A Context is safe for concurrent use by multiple goroutines.
type Context struct {
	mu        sync.RWMutex
	flags     ContextFlag
	destroyed bool
}

// NewContext returns a new Context prepared for the capabilities named by
// flags. Passing ContextSign primes the package's shared blinded
// fixed-base table immediately rather than on first use.
func NewContext(flags ContextFlag) *Context {
	ctx := &Context{flags: flags}
	if flags&ContextSign != 0 {
		ensureEcmultGenBlind()
		s256BytePoints()
	}
	return ctx
}

// Destroy marks the Context as no longer usable. It does not affect other
// Context values or the package-level default context, since the
// underlying blinded table is a shared resource rather than one owned
// exclusively by this Context.
func (ctx *Context) Destroy() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.destroyed = true
}

// ready reports whether the requested capability is available, returning
// ErrContextNotReady if the Context was destroyed or was never granted
// that capability.
func (ctx *Context) ready(want ContextFlag) error {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	if ctx.destroyed {
		return makeError(ErrContextNotReady, "context has been destroyed")
	}
	if ctx.flags&want == 0 {
		return makeError(ErrContextNotReady, "context was not constructed with the requested capability")
	}
	return nil
}

// Sign produces a signature over hash using key, identically to the
// package-level Sign function, after checking that this Context was
// constructed with ContextSign and has not been destroyed.
func (ctx *Context) Sign(key *PrivateKey, hash []byte) (*Signature, error) {
	if err := ctx.ready(ContextSign); err != nil {
		return nil, err
	}
	return Sign(key, hash), nil
}

// Verify reports whether sig is a valid signature over hash for pubKey,
// identically to (*Signature).Verify, after checking that this Context was
// constructed with ContextVerify and has not been destroyed.
func (ctx *Context) Verify(sig *Signature, hash []byte, pubKey *PublicKey) (bool, error) {
	if err := ctx.ready(ContextVerify); err != nil {
		return false, err
	}
	return sig.Verify(hash, pubKey), nil
}

// defaultContext is the package-level singleton returned by DefaultContext,
// built lazily on first use so that a caller who never touches Context pays
// no extra setup cost.  The bare Sign and Verify package functions do not go
// through it.
var (
	defaultContextOnce sync.Once
	defaultContext     *Context
)

// DefaultContext returns the package's lazily-constructed default Context,
// prepared for both signing and verification.
func DefaultContext() *Context {
	defaultContextOnce.Do(func() {
		defaultContext = NewContext(ContextSign | ContextVerify)
	})
	return defaultContext
}
