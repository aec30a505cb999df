// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

import "golang.org/x/exp/maps"

// Set is an unordered collection of distinct comparable values.
type Set[A comparable] map[A]struct{}

// NewSet builds a set from the given elements.
func NewSet[A comparable](elems ...A) Set[A] {
	s := make(Set[A], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s Set[A]) Contains(a A) bool {
	_, ok := s[a]
	return ok
}

// Len returns the number of elements.
func (s Set[A]) Len() int { return len(s) }

// Insert returns a copy of the set with a added.
func (s Set[A]) Insert(a A) Set[A] {
	out := maps.Clone(s)
	if out == nil {
		out = make(Set[A], 1)
	}
	out[a] = struct{}{}
	return out
}

// Delete returns a copy of the set with a removed.
func (s Set[A]) Delete(a A) Set[A] {
	out := maps.Clone(s)
	delete(out, a)
	return out
}

// ToSlice returns the elements in unspecified order.
func (s Set[A]) ToSlice() []A {
	return maps.Keys(s)
}

// MapSet applies f to every element. The result can be smaller than the
// input when f is not injective.
func MapSet[A, B comparable](s Set[A], f func(A) B) Set[B] {
	if s == nil {
		return nil
	}
	out := make(Set[B], len(s))
	for a := range s {
		out[f(a)] = struct{}{}
	}
	return out
}

// FlatMapSet binds each element through f and unions the results.
func FlatMapSet[A, B comparable](s Set[A], f func(A) Set[B]) Set[B] {
	if s == nil {
		return nil
	}
	out := make(Set[B])
	for a := range s {
		for b := range f(a) {
			out[b] = struct{}{}
		}
	}
	return out
}

// SetFunctor builds the Functor dictionary for sets. Both element types
// must be comparable, so Set is a functor on a restricted category; the
// dictionary machinery does not care.
func SetFunctor[A, B comparable]() Functor[A, B, Set[A], Set[B]] {
	return MakeFunctor(MapSet[A, B])
}

// SetSemigroupal forms the cross product of two sets. The pair element is
// comparable whenever both inputs are, so the result is again a valid set;
// there is no SetApply counterpart because Go function values are not
// comparable and cannot populate a Set.
func SetSemigroupal[A, B comparable]() Semigroupal[A, B, Set[A], Set[B], Set[Pair[A, B]]] {
	return Semigroupal[A, B, Set[A], Set[B], Set[Pair[A, B]]]{
		Product: func(sa Set[A], sb Set[B]) Set[Pair[A, B]] {
			if len(sa) == 0 || len(sb) == 0 {
				return nil
			}
			out := make(Set[Pair[A, B]], len(sa)*len(sb))
			for a := range sa {
				for b := range sb {
					out[Pair[A, B]{Fst: a, Snd: b}] = struct{}{}
				}
			}
			return out
		},
	}
}

// SetSemigroup combines sets by union.
func SetSemigroup[A comparable]() Semigroup[Set[A]] {
	return Semigroup[Set[A]]{
		Combine: func(x, y Set[A]) Set[A] {
			if len(x) == 0 && len(y) == 0 {
				return nil
			}
			out := make(Set[A], len(x)+len(y))
			for a := range x {
				out[a] = struct{}{}
			}
			for a := range y {
				out[a] = struct{}{}
			}
			return out
		},
	}
}

// SetIntersectSemigroup combines sets by intersection.
func SetIntersectSemigroup[A comparable]() Semigroup[Set[A]] {
	return Semigroup[Set[A]]{
		Combine: func(x, y Set[A]) Set[A] {
			if len(x) == 0 || len(y) == 0 {
				return nil
			}
			out := make(Set[A])
			for a := range x {
				if _, ok := y[a]; ok {
					out[a] = struct{}{}
				}
			}
			return out
		},
	}
}

// SetMonoid is the union semigroup with the empty set as identity.
func SetMonoid[A comparable]() Monoid[Set[A]] {
	return Monoid[Set[A]]{
		Semigroup: SetSemigroup[A](),
		Empty:     func() Set[A] { return nil },
	}
}
