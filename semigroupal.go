// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Semigroupal captures composing two independently-effectful values into a
// single effectful pair, preserving the effects of both. For Option the
// pair is present only when both inputs are; for slices it is the cross
// product; for Validated both failures are combined.
//
// Law: Product is associative under the AssocL/AssocR bijection —
// reassociating Product(Product(fa, fb), fc) yields
// Product(fa, Product(fb, fc)).
type Semigroupal[A, B, FA, FB, FAB any] struct {
	// Product combines an F[A] and an F[B] into an F[Pair[A, B]].
	Product func(fa FA, fb FB) FAB
}
