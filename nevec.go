// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// NEVec is a vector that always holds at least one element, represented as
// a distinguished head plus an ordinary tail. The non-emptiness invariant
// is structural: there is no way to build or shrink a NEVec to zero
// elements. That gives it a total Head and a concatenation Semigroup, but
// no Monoid, since no empty identity exists.
type NEVec[A any] struct {
	head A
	tail []A
}

// NEVecOf builds a non-empty vector from a head and optional tail.
func NEVecOf[A any](head A, tail ...A) NEVec[A] {
	t := make([]A, len(tail))
	copy(t, tail)
	return NEVec[A]{head: head, tail: t}
}

// NEVecFromSlice validates non-emptiness at run time, returning None for
// an empty slice.
func NEVecFromSlice[A any](xs []A) Option[NEVec[A]] {
	if len(xs) == 0 {
		return None[NEVec[A]]()
	}
	return Some(NEVecOf(xs[0], xs[1:]...))
}

// Head returns the first element. Total: a NEVec is never empty.
func (v NEVec[A]) Head() A { return v.head }

// Tail returns the elements after the head, possibly empty.
func (v NEVec[A]) Tail() []A {
	out := make([]A, len(v.tail))
	copy(out, v.tail)
	return out
}

// Last returns the final element.
func (v NEVec[A]) Last() A {
	if len(v.tail) == 0 {
		return v.head
	}
	return v.tail[len(v.tail)-1]
}

// Len returns the element count, always at least 1.
func (v NEVec[A]) Len() int { return 1 + len(v.tail) }

// Get returns the element at index i, or None when out of range.
func (v NEVec[A]) Get(i int) Option[A] {
	switch {
	case i < 0 || i >= v.Len():
		return None[A]()
	case i == 0:
		return Some(v.head)
	default:
		return Some(v.tail[i-1])
	}
}

// Append returns a copy with a added at the end.
func (v NEVec[A]) Append(a A) NEVec[A] {
	t := make([]A, 0, len(v.tail)+1)
	t = append(t, v.tail...)
	t = append(t, a)
	return NEVec[A]{head: v.head, tail: t}
}

// Prepend returns a copy with a added at the front.
func (v NEVec[A]) Prepend(a A) NEVec[A] {
	t := make([]A, 0, len(v.tail)+1)
	t = append(t, v.head)
	t = append(t, v.tail...)
	return NEVec[A]{head: a, tail: t}
}

// Concat appends another non-empty vector.
func (v NEVec[A]) Concat(w NEVec[A]) NEVec[A] {
	t := make([]A, 0, len(v.tail)+w.Len())
	t = append(t, v.tail...)
	t = append(t, w.head)
	t = append(t, w.tail...)
	return NEVec[A]{head: v.head, tail: t}
}

// RemoveAt returns a copy without the element at index i. Panics when i is
// out of range or when the vector holds a single element, because removal
// would break the non-emptiness invariant.
func (v NEVec[A]) RemoveAt(i int) NEVec[A] {
	if i < 0 || i >= v.Len() {
		panic("go2fun: NEVec index out of range")
	}
	if v.Len() == 1 {
		panic("go2fun: cannot remove the last element of a NEVec")
	}
	if i == 0 {
		return NEVecOf(v.tail[0], v.tail[1:]...)
	}
	t := make([]A, 0, len(v.tail)-1)
	t = append(t, v.tail[:i-1]...)
	t = append(t, v.tail[i:]...)
	return NEVec[A]{head: v.head, tail: t}
}

// ToSlice returns all elements in order as a fresh slice.
func (v NEVec[A]) ToSlice() []A {
	out := make([]A, 0, v.Len())
	out = append(out, v.head)
	return append(out, v.tail...)
}

// MapNEVec applies f to every element.
func MapNEVec[A, B any](v NEVec[A], f func(A) B) NEVec[B] {
	t := make([]B, len(v.tail))
	for i, a := range v.tail {
		t[i] = f(a)
	}
	return NEVec[B]{head: f(v.head), tail: t}
}

// FlatMapNEVec binds every element through f and concatenates. Totality
// follows from non-emptiness on both sides: at least one inner vector
// exists and each contributes at least one element.
func FlatMapNEVec[A, B any](v NEVec[A], f func(A) NEVec[B]) NEVec[B] {
	out := f(v.head)
	for _, a := range v.tail {
		out = out.Concat(f(a))
	}
	return out
}

// NEVecFunctor builds the Functor dictionary for non-empty vectors.
func NEVecFunctor[A, B any]() Functor[A, B, NEVec[A], NEVec[B]] {
	return MakeFunctor(MapNEVec[A, B])
}

// NEVecSemigroupal forms the cross product, first operand outermost.
func NEVecSemigroupal[A, B any]() Semigroupal[A, B, NEVec[A], NEVec[B], NEVec[Pair[A, B]]] {
	return Semigroupal[A, B, NEVec[A], NEVec[B], NEVec[Pair[A, B]]]{
		Product: func(va NEVec[A], vb NEVec[B]) NEVec[Pair[A, B]] {
			return FlatMapNEVec(va, func(a A) NEVec[Pair[A, B]] {
				return MapNEVec(vb, func(b B) Pair[A, B] {
					return Pair[A, B]{Fst: a, Snd: b}
				})
			})
		},
	}
}

// NEVecApply builds the Apply dictionary for non-empty vectors.
func NEVecApply[A, B any]() Apply[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]] {
	return Apply[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]]{
		Functor:     NEVecFunctor[A, B](),
		Semigroupal: NEVecSemigroupal[A, B](),
		Ap: func(ff NEVec[func(A) B], va NEVec[A]) NEVec[B] {
			return FlatMapNEVec(ff, func(f func(A) B) NEVec[B] {
				return MapNEVec(va, f)
			})
		},
	}
}

// NEVecApplicative builds the Applicative dictionary; Pure is the
// singleton vector.
func NEVecApplicative[A, B any]() Applicative[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]] {
	return Applicative[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]]{
		Apply: NEVecApply[A, B](),
		Pure:  func(a A) NEVec[A] { return NEVecOf(a) },
	}
}

// NEVecFlatMap builds the FlatMap dictionary for non-empty vectors.
func NEVecFlatMap[A, B any]() FlatMap[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]] {
	return FlatMap[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]]{
		Apply:   NEVecApply[A, B](),
		FlatMap: FlatMapNEVec[A, B],
	}
}

// NEVecMonad builds the full Monad dictionary for non-empty vectors.
func NEVecMonad[A, B any]() Monad[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]] {
	return Monad[A, B, NEVec[A], NEVec[B], NEVec[func(A) B], NEVec[Pair[A, B]]]{
		Applicative: NEVecApplicative[A, B](),
		FlatMap:     FlatMapNEVec[A, B],
	}
}

// NEVecSemigroup combines non-empty vectors by concatenation. There is no
// matching Monoid.
func NEVecSemigroup[A any]() Semigroup[NEVec[A]] {
	return Semigroup[NEVec[A]]{
		Combine: NEVec[A].Concat,
	}
}
