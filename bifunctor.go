// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Bifunctor is the two-slot generalization of Functor for constructors
// with two independent element types (Either, Pair, map entries).
//
// Laws:
//
//   - identity: BiMap(fab, id, id) == fab
//   - composition: BiMap(BiMap(fab, f1, g1), f2, g2) ==
//     BiMap(fab, f2∘f1, g2∘g1) (each side composes independently)
type Bifunctor[A, B, C, D, FAB, FCD any] struct {
	// BiMap transforms an F[A, B] into an F[C, D] by mapping both slots
	// at once.
	BiMap func(fab FAB, f func(A) C, g func(B) D) FCD
}

// LeftMap maps only the first slot.
func LeftMap[A, B, C, FAB, FCB any](bf Bifunctor[A, B, C, B, FAB, FCB], fab FAB, f func(A) C) FCB {
	return bf.BiMap(fab, f, func(b B) B { return b })
}

// RightMap maps only the second slot.
func RightMap[A, B, D, FAB, FAD any](bf Bifunctor[A, B, A, D, FAB, FAD], fab FAB, g func(B) D) FAD {
	return bf.BiMap(fab, func(a A) A { return a }, g)
}
