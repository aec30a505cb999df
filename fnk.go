// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// FnK is a container-to-container function at one element type: the Go
// spelling of a natural transformation component. Naturality — commuting
// with Map on both sides — is a law on the implementation, not something
// the type system can enforce here.
type FnK[FA, GA any] func(fa FA) GA

// ComposeFnK runs g after f.
func ComposeFnK[FA, GA, HA any](g FnK[GA, HA], f FnK[FA, GA]) FnK[FA, HA] {
	return func(fa FA) HA { return g(f(fa)) }
}

// AndThenFnK runs f, then g. ComposeFnK with the arguments flipped.
func AndThenFnK[FA, GA, HA any](f FnK[FA, GA], g FnK[GA, HA]) FnK[FA, HA] {
	return func(fa FA) HA { return g(f(fa)) }
}

// FirstToOption takes the first element of a slice, None when empty.
func FirstToOption[A any]() FnK[[]A, Option[A]] {
	return func(xs []A) Option[A] {
		if len(xs) == 0 {
			return None[A]()
		}
		return Some(xs[0])
	}
}

// LastToOption takes the last element of a slice, None when empty.
func LastToOption[A any]() FnK[[]A, Option[A]] {
	return func(xs []A) Option[A] {
		if len(xs) == 0 {
			return None[A]()
		}
		return Some(xs[len(xs)-1])
	}
}

// NthToOption takes the element at index n, None when out of range.
func NthToOption[A any](n int) FnK[[]A, Option[A]] {
	return func(xs []A) Option[A] {
		if n < 0 || n >= len(xs) {
			return None[A]()
		}
		return Some(xs[n])
	}
}

// FirstToEither takes the first element, or Left of the lazily built error
// when the slice is empty.
func FirstToEither[E, A any](onEmpty func() E) FnK[[]A, Either[E, A]] {
	return func(xs []A) Either[E, A] {
		if len(xs) == 0 {
			return Left[E, A](onEmpty())
		}
		return Right[E](xs[0])
	}
}

// NthToEither takes the element at index n, or Left when out of range.
func NthToEither[E, A any](n int, onMissing func() E) FnK[[]A, Either[E, A]] {
	return func(xs []A) Either[E, A] {
		if n < 0 || n >= len(xs) {
			return Left[E, A](onMissing())
		}
		return Right[E](xs[n])
	}
}

// OptionToSlice widens an Option into a zero- or one-element slice.
func OptionToSlice[A any]() FnK[Option[A], []A] {
	return func(o Option[A]) []A {
		if a, ok := o.Get(); ok {
			return []A{a}
		}
		return nil
	}
}

// EitherToSlice widens an Either into a zero- or one-element slice,
// dropping the error.
func EitherToSlice[E, A any]() FnK[Either[E, A], []A] {
	return func(e Either[E, A]) []A {
		if a, ok := e.GetRight(); ok {
			return []A{a}
		}
		return nil
	}
}

// EitherToOption forgets the error slot.
func EitherToOption[E, A any]() FnK[Either[E, A], Option[A]] {
	return Either[E, A].ToOption
}

// OptionToEither fills the missing error with a lazily built default.
func OptionToEither[E, A any](onNone func() E) FnK[Option[A], Either[E, A]] {
	return func(o Option[A]) Either[E, A] {
		if a, ok := o.Get(); ok {
			return Right[E](a)
		}
		return Left[E, A](onNone())
	}
}

// NEVecToSlice forgets the non-emptiness evidence.
func NEVecToSlice[A any]() FnK[NEVec[A], []A] {
	return NEVec[A].ToSlice
}

// OptionTo widens an Option into any container with a Pure and an empty
// element: Some goes through pure, None becomes the identity.
func OptionTo[A, FA any](p Pure[A, FA], m Monoid[FA]) FnK[Option[A], FA] {
	return func(o Option[A]) FA {
		if a, ok := o.Get(); ok {
			return p(a)
		}
		return m.Empty()
	}
}
