// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// State is a computation that threads a mutable-looking S through a pure
// pipeline: it takes the current state and returns a result together with
// the next state.
type State[S, A any] func(s S) (A, S)

// GetState yields the current state as the result.
func GetState[S any]() State[S, S] {
	return func(s S) (S, S) { return s, s }
}

// PutState replaces the state.
func PutState[S any](s S) State[S, Unit] {
	return func(S) (Unit, S) { return Unit{}, s }
}

// ModifyState transforms the state in place.
func ModifyState[S any](f func(S) S) State[S, Unit] {
	return func(s S) (Unit, S) { return Unit{}, f(s) }
}

// EvalState runs the computation and keeps only the result.
func EvalState[S, A any](sa State[S, A], s S) A {
	a, _ := sa(s)
	return a
}

// ExecState runs the computation and keeps only the final state.
func ExecState[S, A any](sa State[S, A], s S) S {
	_, s2 := sa(s)
	return s2
}

// MapState post-processes the result, leaving state threading alone.
func MapState[S, A, B any](sa State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, s2 := sa(s)
		return f(a), s2
	}
}

// FlatMapState feeds the result to a State-returning continuation,
// threading the updated state into it.
func FlatMapState[S, A, B any](sa State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, s2 := sa(s)
		return f(a)(s2)
	}
}

// StateFunctor builds the Functor dictionary for State over S.
func StateFunctor[S, A, B any]() Functor[A, B, State[S, A], State[S, B]] {
	return MakeFunctor(MapState[S, A, B])
}

// StateSemigroupal runs the first computation, threads its state into the
// second, and pairs the results. Unlike Reader, Product here is ordered.
func StateSemigroupal[S, A, B any]() Semigroupal[A, B, State[S, A], State[S, B], State[S, Pair[A, B]]] {
	return Semigroupal[A, B, State[S, A], State[S, B], State[S, Pair[A, B]]]{
		Product: func(sa State[S, A], sb State[S, B]) State[S, Pair[A, B]] {
			return func(s S) (Pair[A, B], S) {
				a, s2 := sa(s)
				b, s3 := sb(s2)
				return Pair[A, B]{Fst: a, Snd: b}, s3
			}
		},
	}
}

// StateApply builds the Apply dictionary; the function computation runs
// first.
func StateApply[S, A, B any]() Apply[A, B, State[S, A], State[S, B], State[S, func(A) B], State[S, Pair[A, B]]] {
	return Apply[A, B, State[S, A], State[S, B], State[S, func(A) B], State[S, Pair[A, B]]]{
		Functor:     StateFunctor[S, A, B](),
		Semigroupal: StateSemigroupal[S, A, B](),
		Ap: func(sf State[S, func(A) B], sa State[S, A]) State[S, B] {
			return func(s S) (B, S) {
				f, s2 := sf(s)
				a, s3 := sa(s2)
				return f(a), s3
			}
		},
	}
}

// StateApplicative builds the Applicative dictionary; Pure leaves the
// state untouched.
func StateApplicative[S, A, B any]() Applicative[A, B, State[S, A], State[S, B], State[S, func(A) B], State[S, Pair[A, B]]] {
	return Applicative[A, B, State[S, A], State[S, B], State[S, func(A) B], State[S, Pair[A, B]]]{
		Apply: StateApply[S, A, B](),
		Pure: func(a A) State[S, A] {
			return func(s S) (A, S) { return a, s }
		},
	}
}

// StateMonad builds the full Monad dictionary for State.
func StateMonad[S, A, B any]() Monad[A, B, State[S, A], State[S, B], State[S, func(A) B], State[S, Pair[A, B]]] {
	return Monad[A, B, State[S, A], State[S, B], State[S, func(A) B], State[S, Pair[A, B]]]{
		Applicative: StateApplicative[S, A, B](),
		FlatMap:     FlatMapState[S, A, B],
	}
}
