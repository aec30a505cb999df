// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

import "golang.org/x/exp/maps"

// Capability dictionaries for map[K]V, acting on the value slot. Maps are
// a Functor and a FlatMap but not an Applicative: Pure would need a value
// at every possible key.

// MapValues applies f to every value, keeping keys.
func MapValues[K comparable, A, B any](m map[K]A, f func(A) B) map[K]B {
	if m == nil {
		return nil
	}
	out := make(map[K]B, len(m))
	for k, a := range m {
		out[k] = f(a)
	}
	return out
}

// FlatMapValues binds each entry through f and keeps the result f(a) holds
// under the same key, dropping the entry otherwise.
func FlatMapValues[K comparable, A, B any](m map[K]A, f func(A) map[K]B) map[K]B {
	if m == nil {
		return nil
	}
	out := make(map[K]B)
	for k, a := range m {
		if b, ok := f(a)[k]; ok {
			out[k] = b
		}
	}
	return out
}

// MapKFunctor builds the value Functor dictionary for maps keyed by K.
func MapKFunctor[K comparable, A, B any]() Functor[A, B, map[K]A, map[K]B] {
	return MakeFunctor(MapValues[K, A, B])
}

// MapKSemigroupal pairs values sharing a key; keys present in only one
// operand are dropped.
func MapKSemigroupal[K comparable, A, B any]() Semigroupal[A, B, map[K]A, map[K]B, map[K]Pair[A, B]] {
	return Semigroupal[A, B, map[K]A, map[K]B, map[K]Pair[A, B]]{
		Product: func(ma map[K]A, mb map[K]B) map[K]Pair[A, B] {
			if ma == nil || mb == nil {
				return nil
			}
			out := make(map[K]Pair[A, B])
			for k, a := range ma {
				if b, ok := mb[k]; ok {
					out[k] = Pair[A, B]{Fst: a, Snd: b}
				}
			}
			return out
		},
	}
}

// MapKApply builds the Apply dictionary for maps: a function applies only
// to the argument stored under the same key.
func MapKApply[K comparable, A, B any]() Apply[A, B, map[K]A, map[K]B, map[K]func(A) B, map[K]Pair[A, B]] {
	return Apply[A, B, map[K]A, map[K]B, map[K]func(A) B, map[K]Pair[A, B]]{
		Functor:     MapKFunctor[K, A, B](),
		Semigroupal: MapKSemigroupal[K, A, B](),
		Ap: func(ff map[K]func(A) B, ma map[K]A) map[K]B {
			if ff == nil || ma == nil {
				return nil
			}
			out := make(map[K]B)
			for k, f := range ff {
				if a, ok := ma[k]; ok {
					out[k] = f(a)
				}
			}
			return out
		},
	}
}

// MapKFlatMap builds the FlatMap dictionary for maps.
func MapKFlatMap[K comparable, A, B any]() FlatMap[A, B, map[K]A, map[K]B, map[K]func(A) B, map[K]Pair[A, B]] {
	return FlatMap[A, B, map[K]A, map[K]B, map[K]func(A) B, map[K]Pair[A, B]]{
		Apply:   MapKApply[K, A, B](),
		FlatMap: FlatMapValues[K, A, B],
	}
}

// MapKBifunctor maps keys and values at once. When the key function
// collides two entries the surviving value is unspecified, like map
// iteration order itself.
func MapKBifunctor[K, K2 comparable, A, B any]() Bifunctor[K, A, K2, B, map[K]A, map[K2]B] {
	return Bifunctor[K, A, K2, B, map[K]A, map[K2]B]{
		BiMap: func(m map[K]A, f func(K) K2, g func(A) B) map[K2]B {
			if m == nil {
				return nil
			}
			out := make(map[K2]B, len(m))
			for k, a := range m {
				out[f(k)] = g(a)
			}
			return out
		},
	}
}

// MapKUnionSemigroupOf combines maps by key union, resolving collisions
// with the value semigroup.
func MapKUnionSemigroupOf[K comparable, A any](sa Semigroup[A]) Semigroup[map[K]A] {
	return Semigroup[map[K]A]{
		Combine: func(x, y map[K]A) map[K]A {
			if len(x) == 0 && len(y) == 0 {
				return nil
			}
			out := maps.Clone(x)
			if out == nil {
				out = make(map[K]A, len(y))
			}
			for k, b := range y {
				if a, ok := out[k]; ok {
					out[k] = sa.Combine(a, b)
				} else {
					out[k] = b
				}
			}
			return out
		},
	}
}

// MapKUnionMonoidOf is MapKUnionSemigroupOf with the empty map as identity.
func MapKUnionMonoidOf[K comparable, A any](sa Semigroup[A]) Monoid[map[K]A] {
	return Monoid[map[K]A]{
		Semigroup: MapKUnionSemigroupOf[K](sa),
		Empty:     func() map[K]A { return nil },
	}
}
