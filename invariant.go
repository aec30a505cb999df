// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Invariant is the weakest transformation capability: mapping in both
// directions at once. It is the common ancestor of Functor and
// Contravariant in the capability lattice.
//
// Laws:
//
//   - identity: IMap(fa, id, id) == fa
//   - composition: IMap(IMap(fa, f1, g1), f2, g2) == IMap(fa, f2∘f1, g1∘g2)
//     (forward functions compose forward, backward functions backward)
type Invariant[A, B, FA, FB any] struct {
	// IMap transforms an F[A] into an F[B] given a transformation from A
	// to B and one from B to A. Covariant containers use only f,
	// contravariant ones only g.
	IMap func(fa FA, f func(A) B, g func(B) A) FB
}

// InvariantFromMap derives the Invariant capability of a covariant
// container: the backward function is ignored.
func InvariantFromMap[A, B, FA, FB any](m func(FA, func(A) B) FB) Invariant[A, B, FA, FB] {
	return Invariant[A, B, FA, FB]{
		IMap: func(fa FA, f func(A) B, _ func(B) A) FB {
			return m(fa, f)
		},
	}
}

// InvariantFromContramap derives the Invariant capability of a
// contravariant container: the forward function is ignored.
func InvariantFromContramap[A, B, FA, FB any](cm func(FA, func(B) A) FB) Invariant[A, B, FA, FB] {
	return Invariant[A, B, FA, FB]{
		IMap: func(fa FA, _ func(A) B, g func(B) A) FB {
			return cm(fa, g)
		},
	}
}

// LiftInvariant turns a pair of element transformations into a container
// transformation.
func LiftInvariant[A, B, FA, FB any](inv Invariant[A, B, FA, FB], f func(A) B, g func(B) A) func(FA) FB {
	return func(fa FA) FB {
		return inv.IMap(fa, f, g)
	}
}
