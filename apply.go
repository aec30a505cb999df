// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Apply is Functor plus Semigroupal plus application of a function living
// inside the context to a value living inside the context. The function
// sits in the FIRST argument of Ap.
//
// Law: Ap must agree with Product followed by Map —
// Ap(ff, fa) == Map(Product(ff, fa), func(p) { return p.Fst(p.Snd) })
// modulo the pairing order fixed by this package (function first).
type Apply[A, B, FA, FB, FF, FAB any] struct {
	Functor[A, B, FA, FB]
	Semigroupal[A, B, FA, FB, FAB]

	// Ap applies every function in an F[func(A) B] to every value in an
	// F[A], with the container's pairing semantics.
	Ap func(ff FF, fa FA) FB
}

// Map2 combines two effectful values with a binary function. It is Product
// followed by Map, and must always agree with spelling those out.
func Map2[A, B, C, FA, FB, FAB, FC any](
	s Semigroupal[A, B, FA, FB, FAB],
	f Functor[Pair[A, B], C, FAB, FC],
	fa FA, fb FB, fn func(A, B) C,
) FC {
	return f.Map(s.Product(fa, fb), func(p Pair[A, B]) C {
		return fn(p.Fst, p.Snd)
	})
}

// ProductR combines two effectful values, keeping only the second result.
func ProductR[A, B, FA, FB, FAB any](
	s Semigroupal[A, B, FA, FB, FAB],
	f Functor[Pair[A, B], B, FAB, FB],
	fa FA, fb FB,
) FB {
	return Map2(s, f, fa, fb, func(_ A, b B) B { return b })
}

// ProductL combines two effectful values, keeping only the first result.
func ProductL[A, B, FA, FB, FAB any](
	s Semigroupal[A, B, FA, FB, FAB],
	f Functor[Pair[A, B], A, FAB, FA],
	fa FA, fb FB,
) FA {
	return Map2(s, f, fa, fb, func(a A, _ B) A { return a })
}
