// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// FlatMap is Apply plus dependent sequencing: the continuation passed to
// FlatMap receives the VALUE produced by the first effect, not just its
// type, so the second effect can be chosen at run time. Apply combines
// effects obliviously; FlatMap lets them depend on each other.
//
// Laws (given a compatible Pure):
//
//   - left identity: FlatMap(Pure(x), f) == f(x)
//   - right identity: FlatMap(m, Pure) == m
//   - associativity: FlatMap(FlatMap(m, f), g) ==
//     FlatMap(m, func(x) { return FlatMap(f(x), g) })
//
// A short-circuiting container invokes the continuation only for values
// that survive the first effect: binding on None never calls f.
type FlatMap[A, B, FA, FB, FF, FAB any] struct {
	Apply[A, B, FA, FB, FF, FAB]

	// FlatMap sequences an effectful computation.
	FlatMap func(fa FA, f func(A) FB) FB
}

// ToAndThen derives the weak sequencing capability from full monadic bind.
func (m FlatMap[A, B, FA, FB, FF, FAB]) ToAndThen() AndThen[A, B, FA, FB] {
	return AndThen[A, B, FA, FB](m.FlatMap)
}

// Flatten collapses a nested context: F[F[A]] to F[A]. It is FlatMap with
// the identity continuation.
func Flatten[A, FA, FFA, FF, FAB any](m FlatMap[FA, A, FFA, FA, FF, FAB], ffa FFA) FA {
	return m.FlatMap(ffa, func(fa FA) FA { return fa })
}

// MProduct pairs every value with the result of running the continuation
// on it.
func MProduct[A, B, FA, FB, FAB, FF, FX any](
	m FlatMap[A, Pair[A, B], FA, FAB, FF, FX],
	f Functor[B, Pair[A, B], FB, FAB],
	fa FA, fn func(A) FB,
) FAB {
	return m.FlatMap(fa, func(a A) FAB {
		return f.Map(fn(a), func(b B) Pair[A, B] {
			return Pair[A, B]{Fst: a, Snd: b}
		})
	})
}

// IfM is a conditional lifted into the context: each boolean value selects
// which effectful branch to run.
func IfM[B, FBool, FB, FF, FAB any](
	m FlatMap[bool, B, FBool, FB, FF, FAB],
	cond FBool, ifTrue, ifFalse func() FB,
) FB {
	return m.FlatMap(cond, func(c bool) FB {
		if c {
			return ifTrue()
		}
		return ifFalse()
	})
}

// FlatTap runs an effectful function for its effect and keeps the original
// value.
func FlatTap[A, B, FA, FB, FF, FAB any](
	m FlatMap[A, A, FA, FA, FF, FAB],
	f Functor[B, A, FB, FA],
	fa FA, fn func(A) FB,
) FA {
	return m.FlatMap(fa, func(a A) FA {
		return f.Map(fn(a), func(B) A { return a })
	})
}
