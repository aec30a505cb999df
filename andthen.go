// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// AndThen is the weak sequencing capability: the bind signature without the
// monad laws attached. Some containers can sequence fail-fast without being
// monads at all — Validated accumulates errors under Product/Ap, which is
// inconsistent with monadic bind, yet its AndThen is still well defined.
// ApN is built on AndThen for exactly that reason.
//
// Every FlatMap yields an AndThen via FlatMap.ToAndThen.
type AndThen[A, B, FA, FB any] func(fa FA, f func(A) FB) FB
