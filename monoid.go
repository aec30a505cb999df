// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

import "golang.org/x/exp/constraints"

// Monoid is a Semigroup with an identity element.
//
// Laws: Combine(Empty(), x) == x and Combine(x, Empty()) == x.
type Monoid[A any] struct {
	Semigroup[A]

	// Empty produces the identity element.
	Empty func() A
}

// CombineAll folds a slice left-to-right starting from the identity, so the
// empty slice yields Empty().
func (m Monoid[A]) CombineAll(xs []A) A {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// IsEmpty reports whether a equals the monoid's identity element. Split out
// as a free function because it needs comparability the Monoid type itself
// does not require.
func IsEmpty[A comparable](m Monoid[A], a A) bool {
	return a == m.Empty()
}

// SumMonoid is SumSemigroup with identity zero.
func SumMonoid[N constraints.Integer | constraints.Float]() Monoid[N] {
	return Monoid[N]{Semigroup: SumSemigroup[N](), Empty: func() N { return 0 }}
}

// ProductMonoid is ProductSemigroup with identity one.
func ProductMonoid[N constraints.Integer | constraints.Float]() Monoid[N] {
	return Monoid[N]{Semigroup: ProductSemigroup[N](), Empty: func() N { return 1 }}
}

// StringMonoid is StringSemigroup with the empty string as identity.
func StringMonoid() Monoid[string] {
	return Monoid[string]{Semigroup: StringSemigroup(), Empty: func() string { return "" }}
}

// AllMonoid is AllSemigroup with identity true.
func AllMonoid() Monoid[bool] {
	return Monoid[bool]{Semigroup: AllSemigroup(), Empty: func() bool { return true }}
}

// AnyMonoid is AnySemigroup with identity false.
func AnyMonoid() Monoid[bool] {
	return Monoid[bool]{Semigroup: AnySemigroup(), Empty: func() bool { return false }}
}

// UnitMonoid is the trivial monoid on the one-value type.
func UnitMonoid() Monoid[Unit] {
	return Monoid[Unit]{Semigroup: UnitSemigroup(), Empty: func() Unit { return Unit{} }}
}
