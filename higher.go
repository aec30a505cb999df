// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Higher-kinded types cannot be expressed directly in Go: a type parameter
// always stands for a complete type, never for a type constructor with a
// hole in it, and methods cannot introduce type parameters of their own.
//
// This package therefore encodes the projection "the same container, holding
// a different element type" by naming every instantiation explicitly. A
// capability of a constructor F at element types A and B is a dictionary
// value parameterized by A, B and the concrete instantiations of F the
// operations touch:
//
//   - FA — F applied to A
//   - FB — F applied to B
//   - FF — F applied to func(A) B, where the capability applies functions
//     inside the context
//   - FAB — F applied to Pair[A, B], where the capability pairs effects
//
// The round-trip invariant (Target<Param> = Self, and Target<X> holds X for
// every X) is maintained by the adapter constructors: OptionFunctor[A, B]
// returns Functor[A, B, Option[A], Option[B]] with every slot tied to the
// Option constructor. Generic code never needs to reinterpret one
// instantiation as another — reshaping nested pairs is an ordinary Map with
// AssocL/AssocR — so the encoding has no unsafe escape hatch.
//
// Dictionaries are structs of function fields rather than interfaces so that
// type inference works at the call sites of generic combinators: Go unifies
// the type arguments of a generic struct argument, but cannot infer through
// an interface's method set.

// Unit is the one-value type. Containers emptied of their payload hold Unit.
type Unit struct{}
