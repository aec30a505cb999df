// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Validated is Either's error-accumulating sibling: Valid carries a result
// of type A, Invalid carries an error of type E. Unlike Either, the
// independent combinators (Product, Ap, the MapN family) run BOTH operands
// and merge failures through a Semigroup on E, so a form with three bad
// fields reports three errors, not one.
//
// Validated is deliberately not a Monad. Dependent sequencing cannot run
// the second step when the first failed, so a FlatMap-based Product would
// short-circuit and disagree with the accumulating Ap, breaking the
// consistency law between them. Fail-fast chaining is still available as
// the weak AndThen capability; use ToEither for longer monadic pipelines.
type Validated[A, E any] struct {
	value   A
	err     E
	isValid bool
}

// Valid constructs a successful Validated.
func Valid[A, E any](a A) Validated[A, E] {
	return Validated[A, E]{value: a, isValid: true}
}

// Invalid constructs a failed Validated.
func Invalid[A, E any](e E) Validated[A, E] {
	return Validated[A, E]{err: e}
}

// InvalidNev wraps a single error in a non-empty vector, the conventional
// accumulator type.
func InvalidNev[A, E any](e E) Validated[A, NEVec[E]] {
	return Invalid[A](NEVecOf(e))
}

// ValidatedFromEither converts, keeping the error as-is.
func ValidatedFromEither[E, A any](e Either[E, A]) Validated[A, E] {
	if a, ok := e.GetRight(); ok {
		return Valid[A, E](a)
	}
	l, _ := e.GetLeft()
	return Invalid[A](l)
}

// IsValid reports whether the result slot is occupied.
func (v Validated[A, E]) IsValid() bool { return v.isValid }

// IsInvalid reports whether the error slot is occupied.
func (v Validated[A, E]) IsInvalid() bool { return !v.isValid }

// Get returns the result slot and whether it was occupied.
func (v Validated[A, E]) Get() (A, bool) {
	return v.value, v.isValid
}

// GetInvalid returns the error slot and whether it was occupied.
func (v Validated[A, E]) GetInvalid() (E, bool) {
	return v.err, !v.isValid
}

// GetOrElse returns the result, or fallback on Invalid.
func (v Validated[A, E]) GetOrElse(fallback A) A {
	if v.isValid {
		return v.value
	}
	return fallback
}

// ToEither converts; accumulation stops mattering once in Either.
func (v Validated[A, E]) ToEither() Either[E, A] {
	if v.isValid {
		return Right[E](v.value)
	}
	return Left[E, A](v.err)
}

// ToOption forgets the error.
func (v Validated[A, E]) ToOption() Option[A] {
	if v.isValid {
		return Some(v.value)
	}
	return None[A]()
}

// MapValidated transforms the result slot.
func MapValidated[A, B, E any](v Validated[A, E], f func(A) B) Validated[B, E] {
	if !v.isValid {
		return Invalid[B, E](v.err)
	}
	return Valid[B, E](f(v.value))
}

// MapInvalid transforms the error slot.
func MapInvalid[A, E, F any](v Validated[A, E], f func(E) F) Validated[A, F] {
	if v.isValid {
		return Valid[A, F](v.value)
	}
	return Invalid[A](f(v.err))
}

// AndThenValidated is the fail-fast dependent chain: the continuation runs
// only on Valid, and a single error propagates without accumulation.
func AndThenValidated[A, B, E any](v Validated[A, E], f func(A) Validated[B, E]) Validated[B, E] {
	if !v.isValid {
		return Invalid[B, E](v.err)
	}
	return f(v.value)
}

// FoldValidated eliminates the Validated with one handler per slot.
func FoldValidated[A, E, B any](v Validated[A, E], onInvalid func(E) B, onValid func(A) B) B {
	if v.isValid {
		return onValid(v.value)
	}
	return onInvalid(v.err)
}

// ValidatedFunctor builds the Functor dictionary over the result slot.
func ValidatedFunctor[A, B, E any]() Functor[A, B, Validated[A, E], Validated[B, E]] {
	return MakeFunctor(MapValidated[A, B, E])
}

// ValidatedAndThen builds the weak sequencing dictionary. No Semigroup
// needed: fail-fast chaining never merges two errors.
func ValidatedAndThen[A, B, E any]() AndThen[A, B, Validated[A, E], Validated[B, E]] {
	return AndThenValidated[A, B, E]
}

// ValidatedSemigroupalOf pairs two Validateds, accumulating errors with se
// when both fail; the left operand's error comes first.
func ValidatedSemigroupalOf[A, B, E any](se Semigroup[E]) Semigroupal[A, B, Validated[A, E], Validated[B, E], Validated[Pair[A, B], E]] {
	return Semigroupal[A, B, Validated[A, E], Validated[B, E], Validated[Pair[A, B], E]]{
		Product: func(va Validated[A, E], vb Validated[B, E]) Validated[Pair[A, B], E] {
			switch {
			case va.isValid && vb.isValid:
				return Valid[Pair[A, B], E](Pair[A, B]{Fst: va.value, Snd: vb.value})
			case !va.isValid && !vb.isValid:
				return Invalid[Pair[A, B]](se.Combine(va.err, vb.err))
			case !va.isValid:
				return Invalid[Pair[A, B], E](va.err)
			default:
				return Invalid[Pair[A, B], E](vb.err)
			}
		},
	}
}

// ValidatedApplyOf builds the accumulating Apply dictionary. When both the
// function and the argument are Invalid, the function's error comes first.
func ValidatedApplyOf[A, B, E any](se Semigroup[E]) Apply[A, B, Validated[A, E], Validated[B, E], Validated[func(A) B, E], Validated[Pair[A, B], E]] {
	return Apply[A, B, Validated[A, E], Validated[B, E], Validated[func(A) B, E], Validated[Pair[A, B], E]]{
		Functor:     ValidatedFunctor[A, B, E](),
		Semigroupal: ValidatedSemigroupalOf[A, B](se),
		Ap: func(ff Validated[func(A) B, E], va Validated[A, E]) Validated[B, E] {
			switch {
			case ff.isValid && va.isValid:
				return Valid[B, E](ff.value(va.value))
			case !ff.isValid && !va.isValid:
				return Invalid[B](se.Combine(ff.err, va.err))
			case !ff.isValid:
				return Invalid[B, E](ff.err)
			default:
				return Invalid[B, E](va.err)
			}
		},
	}
}

// ValidatedApplicativeOf builds the accumulating Applicative dictionary.
// There is deliberately no ValidatedFlatMap or ValidatedMonad counterpart.
func ValidatedApplicativeOf[A, B, E any](se Semigroup[E]) Applicative[A, B, Validated[A, E], Validated[B, E], Validated[func(A) B, E], Validated[Pair[A, B], E]] {
	return Applicative[A, B, Validated[A, E], Validated[B, E], Validated[func(A) B, E], Validated[Pair[A, B], E]]{
		Apply: ValidatedApplyOf[A, B](se),
		Pure:  Valid[A, E],
	}
}

// ValidatedBifunctor maps both slots at once.
func ValidatedBifunctor[A, E, B, F any]() Bifunctor[A, E, B, F, Validated[A, E], Validated[B, F]] {
	return Bifunctor[A, E, B, F, Validated[A, E], Validated[B, F]]{
		BiMap: func(v Validated[A, E], f func(A) B, g func(E) F) Validated[B, F] {
			if v.isValid {
				return Valid[B, F](f(v.value))
			}
			return Invalid[B](g(v.err))
		},
	}
}

// ValidatedSemigroupOf combines two Validateds slot-wise: two Valids merge
// with sa, two Invalids with se, and an Invalid absorbs a Valid.
func ValidatedSemigroupOf[A, E any](sa Semigroup[A], se Semigroup[E]) Semigroup[Validated[A, E]] {
	return Semigroup[Validated[A, E]]{
		Combine: func(x, y Validated[A, E]) Validated[A, E] {
			switch {
			case x.isValid && y.isValid:
				return Valid[A, E](sa.Combine(x.value, y.value))
			case !x.isValid && !y.isValid:
				return Invalid[A](se.Combine(x.err, y.err))
			case !x.isValid:
				return x
			default:
				return y
			}
		},
	}
}
