// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Plain function combinators. They carry no container capability; they
// exist so call sites of Map, Ap and friends can be written point-free.

// Id returns its argument.
func Id[A any](a A) A { return a }

// Constant builds a nullary function always producing a.
func Constant[A any](a A) func() A {
	return func() A { return a }
}

// Constant1 builds a unary function ignoring its argument.
func Constant1[A, B any](a A) func(B) A {
	return func(B) A { return a }
}

// Constant2 builds a binary function ignoring both arguments.
func Constant2[A, B, C any](a A) func(B, C) A {
	return func(B, C) A { return a }
}

// Compose runs f after g: Compose(f, g)(a) == f(g(a)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(g(a)) }
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C { return f(a, b) }
}

// Substitution is the S combinator: applies f to a and to g(a).
func Substitution[A, B, C any](f func(A, B) C, g func(A) B) func(A) C {
	return func(a A) C { return f(a, g(a)) }
}

// Curry2 turns a binary function into a chain of unary ones.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}
}

// Curry3 turns a ternary function into a chain of unary ones.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	}
}

// Curry4 turns a 4-ary function into a chain of unary ones.
func Curry4[A, B, C, D, E any](f func(A, B, C, D) E) func(A) func(B) func(C) func(D) E {
	return func(a A) func(B) func(C) func(D) E {
		return func(b B) func(C) func(D) E {
			return func(c C) func(D) E {
				return func(d D) E { return f(a, b, c, d) }
			}
		}
	}
}

// Uncurry2 undoes Curry2.
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C { return f(a)(b) }
}

// Uncurry3 undoes Curry3.
func Uncurry3[A, B, C, D any](f func(A) func(B) func(C) D) func(A, B, C) D {
	return func(a A, b B, c C) D { return f(a)(b)(c) }
}

// Tupled packs a binary function's arguments into a Pair.
func Tupled[A, B, C any](f func(A, B) C) func(Pair[A, B]) C {
	return func(p Pair[A, B]) C { return f(p.Fst, p.Snd) }
}

// Untupled undoes Tupled.
func Untupled[A, B, C any](f func(Pair[A, B]) C) func(A, B) C {
	return func(a A, b B) C { return f(Pair[A, B]{Fst: a, Snd: b}) }
}
