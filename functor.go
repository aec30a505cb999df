// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Functor is the covariant mapping capability of a type constructor.
//
// Laws:
//
//   - identity: Map(fa, id) == fa
//   - composition: Map(Map(fa, f), g) == Map(fa, g∘f)
//
// A container invokes the callback exactly once per element it holds: a
// present Option calls it once, an absent one never.
type Functor[A, B, FA, FB any] struct {
	Invariant[A, B, FA, FB]

	// Map transforms an F[A] into an F[B] by applying f to every element.
	Map func(fa FA, f func(A) B) FB
}

// MakeFunctor builds a Functor from its map operation, deriving the
// Invariant capability.
func MakeFunctor[A, B, FA, FB any](m func(FA, func(A) B) FB) Functor[A, B, FA, FB] {
	return Functor[A, B, FA, FB]{
		Invariant: InvariantFromMap(m),
		Map:       m,
	}
}

// Lift turns a plain function into a container-transforming function.
func Lift[A, B, FA, FB any](f Functor[A, B, FA, FB], fn func(A) B) func(FA) FB {
	return func(fa FA) FB {
		return f.Map(fa, fn)
	}
}

// FProduct pairs every element with the result of applying fn to it.
func FProduct[A, B, FA, FAB any](f Functor[A, Pair[A, B], FA, FAB], fa FA, fn func(A) B) FAB {
	return f.Map(fa, func(a A) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: fn(a)}
	})
}

// FProductLeft pairs the result of applying fn with every element, result
// on the left.
func FProductLeft[A, B, FA, FBA any](f Functor[A, Pair[B, A], FA, FBA], fa FA, fn func(A) B) FBA {
	return f.Map(fa, func(a A) Pair[B, A] {
		return Pair[B, A]{Fst: fn(a), Snd: a}
	})
}

// MapConst replaces every element with the supplied value.
func MapConst[A, B, FA, FB any](f Functor[A, B, FA, FB], fa FA, b B) FB {
	return f.Map(fa, func(A) B { return b })
}

// Void empties the container of its values, preserving the structure.
func Void[A, FA, FU any](f Functor[A, Unit, FA, FU], fa FA) FU {
	return MapConst(f, fa, Unit{})
}

// TupleLeft pairs every element with the supplied value on the left.
func TupleLeft[A, B, FA, FBA any](f Functor[A, Pair[B, A], FA, FBA], fa FA, b B) FBA {
	return f.Map(fa, func(a A) Pair[B, A] {
		return Pair[B, A]{Fst: b, Snd: a}
	})
}

// TupleRight pairs every element with the supplied value on the right.
func TupleRight[A, B, FA, FAB any](f Functor[A, Pair[A, B], FA, FAB], fa FA, b B) FAB {
	return f.Map(fa, func(a A) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: b}
	})
}

// UnZip splits a container of pairs into two containers, one per slot.
// The input is traversed twice.
func UnZip[A, B, FAB, FA, FB any](
	ffst Functor[Pair[A, B], A, FAB, FA],
	fsnd Functor[Pair[A, B], B, FAB, FB],
	fab FAB,
) (FA, FB) {
	fa := ffst.Map(fab, func(p Pair[A, B]) A { return p.Fst })
	fb := fsnd.Map(fab, func(p Pair[A, B]) B { return p.Snd })
	return fa, fb
}

// IfF is a conditional lifted into the container: every boolean element is
// replaced by the corresponding branch's value.
func IfF[B, FBool, FB any](f Functor[bool, B, FBool, FB], cond FBool, ifTrue, ifFalse func() B) FB {
	return f.Map(cond, func(c bool) B {
		if c {
			return ifTrue()
		}
		return ifFalse()
	})
}
