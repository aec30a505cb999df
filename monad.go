// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Monad is Applicative plus dependent sequencing. It adds no primitive
// operation of its own beyond the law obligation that Map, Ap and
// FlatMap+Pure agree:
//
//	FlatMap(m, func(a) { return Pure(f(a)) }) == Map(m, f)
type Monad[A, B, FA, FB, FF, FAB any] struct {
	Applicative[A, B, FA, FB, FF, FAB]

	// FlatMap sequences an effectful computation.
	FlatMap func(fa FA, f func(A) FB) FB
}

// ToFlatMap forgets Pure.
func (m Monad[A, B, FA, FB, FF, FAB]) ToFlatMap() FlatMap[A, B, FA, FB, FF, FAB] {
	return FlatMap[A, B, FA, FB, FF, FAB]{
		Apply:   m.Apply,
		FlatMap: m.FlatMap,
	}
}

// ToAndThen derives the weak sequencing capability from full monadic bind.
func (m Monad[A, B, FA, FB, FF, FAB]) ToAndThen() AndThen[A, B, FA, FB] {
	return AndThen[A, B, FA, FB](m.FlatMap)
}
