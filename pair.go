// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MkPair pairs two values.
func MkPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// SwapPair exchanges the two slots.
func SwapPair[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}

// AssocL reassociates (a, (b, c)) to ((a, b), c).
// Together with AssocR it is the bijection under which Product is
// associative.
func AssocL[A, B, C any](p Pair[A, Pair[B, C]]) Pair[Pair[A, B], C] {
	return Pair[Pair[A, B], C]{
		Fst: Pair[A, B]{Fst: p.Fst, Snd: p.Snd.Fst},
		Snd: p.Snd.Snd,
	}
}

// AssocR reassociates ((a, b), c) to (a, (b, c)).
func AssocR[A, B, C any](p Pair[Pair[A, B], C]) Pair[A, Pair[B, C]] {
	return Pair[A, Pair[B, C]]{
		Fst: p.Fst.Fst,
		Snd: Pair[B, C]{Fst: p.Fst.Snd, Snd: p.Snd},
	}
}

// PairBifunctor maps both slots of a Pair independently.
func PairBifunctor[A, B, C, D any]() Bifunctor[A, B, C, D, Pair[A, B], Pair[C, D]] {
	return Bifunctor[A, B, C, D, Pair[A, B], Pair[C, D]]{
		BiMap: func(p Pair[A, B], f func(A) C, g func(B) D) Pair[C, D] {
			return Pair[C, D]{Fst: f(p.Fst), Snd: g(p.Snd)}
		},
	}
}

// PairSemigroupOf combines pairs slot by slot.
func PairSemigroupOf[A, B any](sa Semigroup[A], sb Semigroup[B]) Semigroup[Pair[A, B]] {
	return Semigroup[Pair[A, B]]{
		Combine: func(x, y Pair[A, B]) Pair[A, B] {
			return Pair[A, B]{Fst: sa.Combine(x.Fst, y.Fst), Snd: sb.Combine(x.Snd, y.Snd)}
		},
	}
}

// PairMonoidOf is PairSemigroupOf with the slotwise identity.
func PairMonoidOf[A, B any](ma Monoid[A], mb Monoid[B]) Monoid[Pair[A, B]] {
	return Monoid[Pair[A, B]]{
		Semigroup: PairSemigroupOf(ma.Semigroup, mb.Semigroup),
		Empty: func() Pair[A, B] {
			return Pair[A, B]{Fst: ma.Empty(), Snd: mb.Empty()}
		},
	}
}
