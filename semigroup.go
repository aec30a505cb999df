// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

import "golang.org/x/exp/constraints"

// Semigroup is an associative binary operation on A, passed around as a
// first-class dictionary like the container capabilities.
//
// Law: Combine(Combine(x, y), z) == Combine(x, Combine(y, z)).
type Semigroup[A any] struct {
	Combine func(x, y A) A
}

// CombineN combines a with itself n additional times: CombineN(a, 0) == a,
// CombineN(a, 1) == Combine(a, a), and so on. Panics if n is negative.
func (s Semigroup[A]) CombineN(a A, n int) A {
	if n < 0 {
		panic("go2fun: CombineN with negative repetition count")
	}
	acc := a
	for i := 0; i < n; i++ {
		acc = s.Combine(acc, a)
	}
	return acc
}

// CombineAllOption folds a slice left-to-right, returning None for an empty
// input. The total variant that needs no identity element; Monoid.CombineAll
// covers the case where one exists.
func (s Semigroup[A]) CombineAllOption(xs []A) Option[A] {
	if len(xs) == 0 {
		return None[A]()
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = s.Combine(acc, x)
	}
	return Some(acc)
}

// SumSemigroup combines numbers by addition.
func SumSemigroup[N constraints.Integer | constraints.Float]() Semigroup[N] {
	return Semigroup[N]{Combine: func(x, y N) N { return x + y }}
}

// ProductSemigroup combines numbers by multiplication.
func ProductSemigroup[N constraints.Integer | constraints.Float]() Semigroup[N] {
	return Semigroup[N]{Combine: func(x, y N) N { return x * y }}
}

// MinSemigroup keeps the smaller operand.
func MinSemigroup[O constraints.Ordered]() Semigroup[O] {
	return Semigroup[O]{Combine: func(x, y O) O {
		if y < x {
			return y
		}
		return x
	}}
}

// MaxSemigroup keeps the larger operand.
func MaxSemigroup[O constraints.Ordered]() Semigroup[O] {
	return Semigroup[O]{Combine: func(x, y O) O {
		if y > x {
			return y
		}
		return x
	}}
}

// StringSemigroup combines strings by concatenation.
func StringSemigroup() Semigroup[string] {
	return Semigroup[string]{Combine: func(x, y string) string { return x + y }}
}

// FirstSemigroup always keeps the left operand.
func FirstSemigroup[A any]() Semigroup[A] {
	return Semigroup[A]{Combine: func(x, _ A) A { return x }}
}

// LastSemigroup always keeps the right operand.
func LastSemigroup[A any]() Semigroup[A] {
	return Semigroup[A]{Combine: func(_, y A) A { return y }}
}

// AllSemigroup combines booleans by conjunction.
func AllSemigroup() Semigroup[bool] {
	return Semigroup[bool]{Combine: func(x, y bool) bool { return x && y }}
}

// AnySemigroup combines booleans by disjunction.
func AnySemigroup() Semigroup[bool] {
	return Semigroup[bool]{Combine: func(x, y bool) bool { return x || y }}
}

// UnitSemigroup is the trivial semigroup on the one-value type.
func UnitSemigroup() Semigroup[Unit] {
	return Semigroup[Unit]{Combine: func(Unit, Unit) Unit { return Unit{} }}
}
