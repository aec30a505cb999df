// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Predicate is a boolean-valued test on A. It consumes its type parameter,
// so it is the canonical Contravariant container: adapting a Predicate[B]
// to inputs of type A needs a function A to B, not the other way around.
type Predicate[A any] func(A) bool

// And is the pointwise conjunction; p.And(q) short-circuits like &&.
func (p Predicate[A]) And(q Predicate[A]) Predicate[A] {
	return func(a A) bool { return p(a) && q(a) }
}

// Or is the pointwise disjunction.
func (p Predicate[A]) Or(q Predicate[A]) Predicate[A] {
	return func(a A) bool { return p(a) || q(a) }
}

// Not negates the predicate.
func (p Predicate[A]) Not() Predicate[A] {
	return func(a A) bool { return !p(a) }
}

// ContramapPredicate adapts a predicate on B to inputs of type A.
func ContramapPredicate[A, B any](p Predicate[A], f func(B) A) Predicate[B] {
	return func(b B) bool { return p(f(b)) }
}

// PredicateContravariant builds the Contravariant dictionary for
// predicates.
func PredicateContravariant[A, B any]() Contravariant[A, B, Predicate[A], Predicate[B]] {
	return MakeContravariant(ContramapPredicate[A, B])
}

// PredicateAndSemigroup combines predicates by conjunction.
func PredicateAndSemigroup[A any]() Semigroup[Predicate[A]] {
	return Semigroup[Predicate[A]]{
		Combine: func(p, q Predicate[A]) Predicate[A] { return p.And(q) },
	}
}

// PredicateOrSemigroup combines predicates by disjunction.
func PredicateOrSemigroup[A any]() Semigroup[Predicate[A]] {
	return Semigroup[Predicate[A]]{
		Combine: func(p, q Predicate[A]) Predicate[A] { return p.Or(q) },
	}
}

// PredicateAndMonoid is the conjunction semigroup with the always-true
// predicate as identity.
func PredicateAndMonoid[A any]() Monoid[Predicate[A]] {
	return Monoid[Predicate[A]]{
		Semigroup: PredicateAndSemigroup[A](),
		Empty:     func() Predicate[A] { return func(A) bool { return true } },
	}
}

// PredicateOrMonoid is the disjunction semigroup with the always-false
// predicate as identity.
func PredicateOrMonoid[A any]() Monoid[Predicate[A]] {
	return Monoid[Predicate[A]]{
		Semigroup: PredicateOrSemigroup[A](),
		Empty:     func() Predicate[A] { return func(A) bool { return false } },
	}
}
