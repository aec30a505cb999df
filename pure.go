// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Pure lifts a plain value into a context with no additional effect
// content: Some for Option, a one-element slice, Valid for Validated.
type Pure[A, FA any] func(a A) FA

// PureUnit lifts Unit into a context.
func PureUnit[FU any](p Pure[Unit, FU]) FU {
	return p(Unit{})
}
