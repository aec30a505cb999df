// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Reader is a computation that produces an A from a shared environment R.
// It is the dependency-injection container: Map and FlatMap build the
// pipeline first, the environment is supplied once at the end.
type Reader[R, A any] func(r R) A

// Ask is the Reader returning the environment itself.
func Ask[R any]() Reader[R, R] {
	return func(r R) R { return r }
}

// Local runs the Reader against a transformed environment.
func Local[R, A any](ra Reader[R, A], f func(R) R) Reader[R, A] {
	return func(r R) A { return ra(f(r)) }
}

// MapReader post-processes the produced value.
func MapReader[R, A, B any](ra Reader[R, A], f func(A) B) Reader[R, B] {
	return func(r R) B { return f(ra(r)) }
}

// FlatMapReader feeds the produced value to a Reader-returning
// continuation, running both against the same environment.
func FlatMapReader[R, A, B any](ra Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return func(r R) B { return f(ra(r))(r) }
}

// ReaderFunctor builds the Functor dictionary for Readers over R.
func ReaderFunctor[R, A, B any]() Functor[A, B, Reader[R, A], Reader[R, B]] {
	return MakeFunctor(MapReader[R, A, B])
}

// ReaderSemigroupal runs both Readers against the same environment and
// pairs the results.
func ReaderSemigroupal[R, A, B any]() Semigroupal[A, B, Reader[R, A], Reader[R, B], Reader[R, Pair[A, B]]] {
	return Semigroupal[A, B, Reader[R, A], Reader[R, B], Reader[R, Pair[A, B]]]{
		Product: func(ra Reader[R, A], rb Reader[R, B]) Reader[R, Pair[A, B]] {
			return func(r R) Pair[A, B] {
				return Pair[A, B]{Fst: ra(r), Snd: rb(r)}
			}
		},
	}
}

// ReaderApply builds the Apply dictionary for Readers.
func ReaderApply[R, A, B any]() Apply[A, B, Reader[R, A], Reader[R, B], Reader[R, func(A) B], Reader[R, Pair[A, B]]] {
	return Apply[A, B, Reader[R, A], Reader[R, B], Reader[R, func(A) B], Reader[R, Pair[A, B]]]{
		Functor:     ReaderFunctor[R, A, B](),
		Semigroupal: ReaderSemigroupal[R, A, B](),
		Ap: func(rf Reader[R, func(A) B], ra Reader[R, A]) Reader[R, B] {
			return func(r R) B { return rf(r)(ra(r)) }
		},
	}
}

// ReaderApplicative builds the Applicative dictionary; Pure ignores the
// environment.
func ReaderApplicative[R, A, B any]() Applicative[A, B, Reader[R, A], Reader[R, B], Reader[R, func(A) B], Reader[R, Pair[A, B]]] {
	return Applicative[A, B, Reader[R, A], Reader[R, B], Reader[R, func(A) B], Reader[R, Pair[A, B]]]{
		Apply: ReaderApply[R, A, B](),
		Pure: func(a A) Reader[R, A] {
			return func(R) A { return a }
		},
	}
}

// ReaderMonad builds the full Monad dictionary for Readers.
func ReaderMonad[R, A, B any]() Monad[A, B, Reader[R, A], Reader[R, B], Reader[R, func(A) B], Reader[R, Pair[A, B]]] {
	return Monad[A, B, Reader[R, A], Reader[R, B], Reader[R, func(A) B], Reader[R, Pair[A, B]]]{
		Applicative: ReaderApplicative[R, A, B](),
		FlatMap:     FlatMapReader[R, A, B],
	}
}
