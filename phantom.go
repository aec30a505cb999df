// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Phantom is a container that stores nothing and only carries its element
// type at compile time. Every capability is implemented trivially, which
// makes it both a useful type-level marker and the degenerate test case
// for the laws: it is covariant and contravariant at once.
type Phantom[A any] struct{}

// MkPhantom constructs the sole Phantom value for A.
func MkPhantom[A any]() Phantom[A] {
	return Phantom[A]{}
}

// PhantomFunctor builds the (vacuous) Functor dictionary for Phantom.
func PhantomFunctor[A, B any]() Functor[A, B, Phantom[A], Phantom[B]] {
	return MakeFunctor(func(Phantom[A], func(A) B) Phantom[B] {
		return Phantom[B]{}
	})
}

// PhantomContravariant builds the (vacuous) Contravariant dictionary.
func PhantomContravariant[A, B any]() Contravariant[A, B, Phantom[A], Phantom[B]] {
	return MakeContravariant(func(Phantom[A], func(B) A) Phantom[B] {
		return Phantom[B]{}
	})
}

// PhantomSemigroupal pairs two phantoms into a phantom.
func PhantomSemigroupal[A, B any]() Semigroupal[A, B, Phantom[A], Phantom[B], Phantom[Pair[A, B]]] {
	return Semigroupal[A, B, Phantom[A], Phantom[B], Phantom[Pair[A, B]]]{
		Product: func(Phantom[A], Phantom[B]) Phantom[Pair[A, B]] {
			return Phantom[Pair[A, B]]{}
		},
	}
}

// PhantomApplicative builds the Applicative dictionary for Phantom. The
// continuation-free operations never inspect their arguments.
func PhantomApplicative[A, B any]() Applicative[A, B, Phantom[A], Phantom[B], Phantom[func(A) B], Phantom[Pair[A, B]]] {
	return Applicative[A, B, Phantom[A], Phantom[B], Phantom[func(A) B], Phantom[Pair[A, B]]]{
		Apply: Apply[A, B, Phantom[A], Phantom[B], Phantom[func(A) B], Phantom[Pair[A, B]]]{
			Functor:     PhantomFunctor[A, B](),
			Semigroupal: PhantomSemigroupal[A, B](),
			Ap: func(Phantom[func(A) B], Phantom[A]) Phantom[B] {
				return Phantom[B]{}
			},
		},
		Pure: func(A) Phantom[A] { return Phantom[A]{} },
	}
}

// PhantomMonad builds the full Monad dictionary; FlatMap has no value to
// feed the continuation and never calls it.
func PhantomMonad[A, B any]() Monad[A, B, Phantom[A], Phantom[B], Phantom[func(A) B], Phantom[Pair[A, B]]] {
	flatMap := func(Phantom[A], func(A) Phantom[B]) Phantom[B] {
		return Phantom[B]{}
	}
	m := Monad[A, B, Phantom[A], Phantom[B], Phantom[func(A) B], Phantom[Pair[A, B]]]{
		Applicative: PhantomApplicative[A, B](),
	}
	m.FlatMap = flatMap
	return m
}

// PhantomMonoid is the one-value monoid on Phantom.
func PhantomMonoid[A any]() Monoid[Phantom[A]] {
	return Monoid[Phantom[A]]{
		Semigroup: Semigroup[Phantom[A]]{
			Combine: func(Phantom[A], Phantom[A]) Phantom[A] { return Phantom[A]{} },
		},
		Empty: func() Phantom[A] { return Phantom[A]{} },
	}
}
