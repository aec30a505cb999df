// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Applicative is Apply plus Pure.
//
// Laws (in addition to the Apply law):
//
//   - identity: Ap(Pure(id), fa) == fa
//   - homomorphism: Ap(Pure(f), Pure(x)) == Pure(f(x))
//   - map coherence: Map(fa, f) == Ap(Pure(f), fa)
//   - unit: Map(PureUnit(p), func(Unit) A { return x }) == Pure(x)
type Applicative[A, B, FA, FB, FF, FAB any] struct {
	Apply[A, B, FA, FB, FF, FAB]

	Pure Pure[A, FA]
}
