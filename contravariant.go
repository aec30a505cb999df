// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Contravariant is the dual of Functor: transforming an F[A] into an F[B]
// consumes a function from the NEW element type into the old one.
// Consumers of values (predicates, encoders, comparators) are the typical
// instances.
//
// Laws:
//
//   - identity: Contramap(fa, id) == fa
//   - composition: Contramap(Contramap(fa, f), g) == Contramap(fa, f∘g)
//     (reversed relative to Functor)
type Contravariant[A, B, FA, FB any] struct {
	Invariant[A, B, FA, FB]

	// Contramap transforms an F[A] into an F[B] by pre-composing with a
	// function from B to A.
	Contramap func(fa FA, f func(B) A) FB
}

// MakeContravariant builds a Contravariant from its contramap operation,
// deriving the Invariant capability.
func MakeContravariant[A, B, FA, FB any](cm func(FA, func(B) A) FB) Contravariant[A, B, FA, FB] {
	return Contravariant[A, B, FA, FB]{
		Invariant: InvariantFromContramap(cm),
		Contramap: cm,
	}
}

// LiftContravariant turns a plain function into a container-transforming
// function running in the opposite direction.
func LiftContravariant[A, B, FA, FB any](c Contravariant[A, B, FA, FB], fn func(B) A) func(FA) FB {
	return func(fa FA) FB {
		return c.Contramap(fa, fn)
	}
}
