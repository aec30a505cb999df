// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Option is a container holding zero or one value of type A. The zero value
// is None.
type Option[A any] struct {
	value  A
	isSome bool
}

// Some wraps a value in a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, isSome: true}
}

// None constructs the absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// SomeIf wraps a value when cond holds, otherwise yields None.
func SomeIf[A any](cond bool, a A) Option[A] {
	if cond {
		return Some(a)
	}
	return None[A]()
}

// OptionFromPtr treats a nil pointer as None and dereferences otherwise.
func OptionFromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// IsSome reports whether a value is present.
func (o Option[A]) IsSome() bool { return o.isSome }

// IsNone reports whether the Option is absent.
func (o Option[A]) IsNone() bool { return !o.isSome }

// Get returns the contained value and whether it was present.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.isSome
}

// GetOrElse returns the contained value, or fallback when absent.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.isSome {
		return o.value
	}
	return fallback
}

// GetOrElseF returns the contained value, computing the fallback lazily.
func (o Option[A]) GetOrElseF(fallback func() A) A {
	if o.isSome {
		return o.value
	}
	return fallback()
}

// OrElse returns o when present, otherwise the lazily computed alternative.
func (o Option[A]) OrElse(alt func() Option[A]) Option[A] {
	if o.isSome {
		return o
	}
	return alt()
}

// Filter keeps a present value only when it satisfies pred.
func (o Option[A]) Filter(pred func(A) bool) Option[A] {
	if o.isSome && pred(o.value) {
		return o
	}
	return None[A]()
}

// ToPtr returns a pointer to a copy of the value, or nil when absent.
func (o Option[A]) ToPtr() *A {
	if !o.isSome {
		return nil
	}
	v := o.value
	return &v
}

// MapOption transforms a present value. Free function because Go methods
// cannot introduce the target type parameter.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.isSome {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMapOption sequences an Option-producing continuation.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.isSome {
		return None[B]()
	}
	return f(o.value)
}

// FoldOption eliminates the Option: onNone for absence, onSome for presence.
func FoldOption[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// OptionFunctor builds the Functor dictionary for Option at element types
// A to B.
func OptionFunctor[A, B any]() Functor[A, B, Option[A], Option[B]] {
	return MakeFunctor(MapOption[A, B])
}

// OptionSemigroupal pairs two Options; the result is present only when both
// operands are.
func OptionSemigroupal[A, B any]() Semigroupal[A, B, Option[A], Option[B], Option[Pair[A, B]]] {
	return Semigroupal[A, B, Option[A], Option[B], Option[Pair[A, B]]]{
		Product: func(fa Option[A], fb Option[B]) Option[Pair[A, B]] {
			if !fa.isSome || !fb.isSome {
				return None[Pair[A, B]]()
			}
			return Some(Pair[A, B]{Fst: fa.value, Snd: fb.value})
		},
	}
}

// OptionApply builds the Apply dictionary for Option.
func OptionApply[A, B any]() Apply[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]] {
	return Apply[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]]{
		Functor:     OptionFunctor[A, B](),
		Semigroupal: OptionSemigroupal[A, B](),
		Ap: func(ff Option[func(A) B], fa Option[A]) Option[B] {
			if !ff.isSome {
				return None[B]()
			}
			return MapOption(fa, ff.value)
		},
	}
}

// OptionApplicative builds the Applicative dictionary for Option.
func OptionApplicative[A, B any]() Applicative[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]] {
	return Applicative[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]]{
		Apply: OptionApply[A, B](),
		Pure:  Some[A],
	}
}

// OptionFlatMap builds the FlatMap dictionary for Option.
func OptionFlatMap[A, B any]() FlatMap[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]] {
	return FlatMap[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]]{
		Apply:   OptionApply[A, B](),
		FlatMap: FlatMapOption[A, B],
	}
}

// OptionMonad builds the full Monad dictionary for Option.
func OptionMonad[A, B any]() Monad[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]] {
	return Monad[A, B, Option[A], Option[B], Option[func(A) B], Option[Pair[A, B]]]{
		Applicative: OptionApplicative[A, B](),
		FlatMap:     FlatMapOption[A, B],
	}
}

// OptionSemigroupOf lifts a Semigroup on A to Option[A]: None is absorbed
// on either side and two present values combine with sa.
func OptionSemigroupOf[A any](sa Semigroup[A]) Semigroup[Option[A]] {
	return Semigroup[Option[A]]{
		Combine: func(x, y Option[A]) Option[A] {
			switch {
			case !x.isSome:
				return y
			case !y.isSome:
				return x
			default:
				return Some(sa.Combine(x.value, y.value))
			}
		},
	}
}

// OptionMonoidOf is OptionSemigroupOf with None as the identity. Note the
// inner type only needs a Semigroup.
func OptionMonoidOf[A any](sa Semigroup[A]) Monoid[Option[A]] {
	return Monoid[Option[A]]{
		Semigroup: OptionSemigroupOf(sa),
		Empty:     None[A],
	}
}
