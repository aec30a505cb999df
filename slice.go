// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Capability dictionaries for plain slices. A slice models nondeterminism:
// Product and Ap range over every combination of elements, and an empty
// operand annihilates the result.

// MapSlice applies f to every element, preserving order.
func MapSlice[A, B any](xs []A, f func(A) B) []B {
	if xs == nil {
		return nil
	}
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// FlatMapSlice applies f to every element and concatenates the results in
// order.
func FlatMapSlice[A, B any](xs []A, f func(A) []B) []B {
	var out []B
	for _, x := range xs {
		out = append(out, f(x)...)
	}
	return out
}

// FilterSlice keeps the elements satisfying pred, preserving order.
func FilterSlice[A any](xs []A, pred func(A) bool) []A {
	var out []A
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// SliceFunctor builds the Functor dictionary for slices.
func SliceFunctor[A, B any]() Functor[A, B, []A, []B] {
	return MakeFunctor(MapSlice[A, B])
}

// SliceSemigroupal forms the cross product of two slices. The first operand
// drives the outer loop, so the result is ordered by the first slice first.
func SliceSemigroupal[A, B any]() Semigroupal[A, B, []A, []B, []Pair[A, B]] {
	return Semigroupal[A, B, []A, []B, []Pair[A, B]]{
		Product: func(xs []A, ys []B) []Pair[A, B] {
			if len(xs) == 0 || len(ys) == 0 {
				return nil
			}
			out := make([]Pair[A, B], 0, len(xs)*len(ys))
			for _, x := range xs {
				for _, y := range ys {
					out = append(out, Pair[A, B]{Fst: x, Snd: y})
				}
			}
			return out
		},
	}
}

// SliceApply builds the Apply dictionary for slices. Ap pairs every
// function with every argument, functions in the outer loop.
func SliceApply[A, B any]() Apply[A, B, []A, []B, []func(A) B, []Pair[A, B]] {
	return Apply[A, B, []A, []B, []func(A) B, []Pair[A, B]]{
		Functor:     SliceFunctor[A, B](),
		Semigroupal: SliceSemigroupal[A, B](),
		Ap: func(ffs []func(A) B, xs []A) []B {
			if len(ffs) == 0 || len(xs) == 0 {
				return nil
			}
			out := make([]B, 0, len(ffs)*len(xs))
			for _, f := range ffs {
				for _, x := range xs {
					out = append(out, f(x))
				}
			}
			return out
		},
	}
}

// SliceApplicative builds the Applicative dictionary for slices; Pure is
// the one-element slice.
func SliceApplicative[A, B any]() Applicative[A, B, []A, []B, []func(A) B, []Pair[A, B]] {
	return Applicative[A, B, []A, []B, []func(A) B, []Pair[A, B]]{
		Apply: SliceApply[A, B](),
		Pure:  func(a A) []A { return []A{a} },
	}
}

// SliceFlatMap builds the FlatMap dictionary for slices.
func SliceFlatMap[A, B any]() FlatMap[A, B, []A, []B, []func(A) B, []Pair[A, B]] {
	return FlatMap[A, B, []A, []B, []func(A) B, []Pair[A, B]]{
		Apply:   SliceApply[A, B](),
		FlatMap: FlatMapSlice[A, B],
	}
}

// SliceMonad builds the full Monad dictionary for slices.
func SliceMonad[A, B any]() Monad[A, B, []A, []B, []func(A) B, []Pair[A, B]] {
	return Monad[A, B, []A, []B, []func(A) B, []Pair[A, B]]{
		Applicative: SliceApplicative[A, B](),
		FlatMap:     FlatMapSlice[A, B],
	}
}

// SliceSemigroup combines slices by concatenation into a fresh slice.
func SliceSemigroup[A any]() Semigroup[[]A] {
	return Semigroup[[]A]{
		Combine: func(xs, ys []A) []A {
			if len(xs) == 0 && len(ys) == 0 {
				return nil
			}
			out := make([]A, 0, len(xs)+len(ys))
			out = append(out, xs...)
			return append(out, ys...)
		},
	}
}

// SliceMonoid is SliceSemigroup with the empty slice as identity.
func SliceMonoid[A any]() Monoid[[]A] {
	return Monoid[[]A]{
		Semigroup: SliceSemigroup[A](),
		Empty:     func() []A { return nil },
	}
}
