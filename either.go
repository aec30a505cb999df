// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Either holds exactly one of two values: a Left of type E or a Right of
// type A. By convention Left carries the error and Right the result, and
// all single-slot capabilities act on the Right slot. The zero value is
// Left of E's zero value.
type Either[E, A any] struct {
	left    E
	right   A
	isRight bool
}

// Left constructs an Either holding the error slot.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right constructs an Either holding the result slot.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{right: a, isRight: true}
}

// EitherFromError bridges Go's (value, error) convention: a non-nil error
// becomes Left, otherwise the value becomes Right.
func EitherFromError[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

// IsLeft reports whether the error slot is occupied.
func (e Either[E, A]) IsLeft() bool { return !e.isRight }

// IsRight reports whether the result slot is occupied.
func (e Either[E, A]) IsRight() bool { return e.isRight }

// GetLeft returns the error slot and whether it was occupied.
func (e Either[E, A]) GetLeft() (E, bool) {
	return e.left, !e.isRight
}

// GetRight returns the result slot and whether it was occupied.
func (e Either[E, A]) GetRight() (A, bool) {
	return e.right, e.isRight
}

// GetOrElse returns the Right value, or fallback on Left.
func (e Either[E, A]) GetOrElse(fallback A) A {
	if e.isRight {
		return e.right
	}
	return fallback
}

// Swap exchanges the two slots.
func (e Either[E, A]) Swap() Either[A, E] {
	if e.isRight {
		return Left[A, E](e.right)
	}
	return Right[A](e.left)
}

// ToOption forgets the error.
func (e Either[E, A]) ToOption() Option[A] {
	if e.isRight {
		return Some(e.right)
	}
	return None[A]()
}

// MapEither transforms the Right slot, passing a Left through unchanged.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return Right[E](f(e.right))
}

// MapLeftEither transforms the Left slot, passing a Right through unchanged.
func MapLeftEither[E, A, F any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// FlatMapEither sequences an Either-producing continuation on the Right
// slot.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !e.isRight {
		return Left[E, B](e.left)
	}
	return f(e.right)
}

// FoldEither eliminates the Either with one handler per slot.
func FoldEither[E, A, B any](e Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// EitherFunctor builds the Functor dictionary for Either over the Right
// slot.
func EitherFunctor[E, A, B any]() Functor[A, B, Either[E, A], Either[E, B]] {
	return MakeFunctor(MapEither[E, A, B])
}

// EitherSemigroupal pairs two Eithers; the first Left encountered wins,
// left operand checked first. Accumulation of errors is Validated's job.
func EitherSemigroupal[E, A, B any]() Semigroupal[A, B, Either[E, A], Either[E, B], Either[E, Pair[A, B]]] {
	return Semigroupal[A, B, Either[E, A], Either[E, B], Either[E, Pair[A, B]]]{
		Product: func(fa Either[E, A], fb Either[E, B]) Either[E, Pair[A, B]] {
			if !fa.isRight {
				return Left[E, Pair[A, B]](fa.left)
			}
			if !fb.isRight {
				return Left[E, Pair[A, B]](fb.left)
			}
			return Right[E](Pair[A, B]{Fst: fa.right, Snd: fb.right})
		},
	}
}

// EitherApply builds the Apply dictionary for Either.
func EitherApply[E, A, B any]() Apply[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]] {
	return Apply[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]]{
		Functor:     EitherFunctor[E, A, B](),
		Semigroupal: EitherSemigroupal[E, A, B](),
		Ap: func(ff Either[E, func(A) B], fa Either[E, A]) Either[E, B] {
			if !ff.isRight {
				return Left[E, B](ff.left)
			}
			return MapEither(fa, ff.right)
		},
	}
}

// EitherApplicative builds the Applicative dictionary for Either.
func EitherApplicative[E, A, B any]() Applicative[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]] {
	return Applicative[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]]{
		Apply: EitherApply[E, A, B](),
		Pure:  Right[E, A],
	}
}

// EitherFlatMap builds the FlatMap dictionary for Either.
func EitherFlatMap[E, A, B any]() FlatMap[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]] {
	return FlatMap[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]]{
		Apply:   EitherApply[E, A, B](),
		FlatMap: FlatMapEither[E, A, B],
	}
}

// EitherMonad builds the full Monad dictionary for Either.
func EitherMonad[E, A, B any]() Monad[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]] {
	return Monad[A, B, Either[E, A], Either[E, B], Either[E, func(A) B], Either[E, Pair[A, B]]]{
		Applicative: EitherApplicative[E, A, B](),
		FlatMap:     FlatMapEither[E, A, B],
	}
}

// EitherBifunctor maps both slots at once.
func EitherBifunctor[E, A, F, B any]() Bifunctor[E, A, F, B, Either[E, A], Either[F, B]] {
	return Bifunctor[E, A, F, B, Either[E, A], Either[F, B]]{
		BiMap: func(e Either[E, A], f func(E) F, g func(A) B) Either[F, B] {
			if e.isRight {
				return Right[F](g(e.right))
			}
			return Left[F, B](f(e.left))
		},
	}
}
