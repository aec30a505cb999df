// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package go2fun provides functional programming capabilities — Functor,
// Applicative, Monad and friends — for concrete Go containers.
//
// Go generics have no higher-kinded types: a type parameter must stand for
// a complete type, never for a bare constructor like Option or []. The
// package works around this with explicit capability dictionaries: a
// capability is a generic struct of function fields instantiated at both
// an element transition (A to B) and the matching container transition
// (FA to FB), where FA and FB are the concrete instantiations F[A] and
// F[B] of one constructor. The dictionary carrying F[A] alongside F[B] is
// what ties the two container types to the same constructor; the laws on
// each capability make the tie honest.
//
// # Capability Lattice
//
// Capabilities form a lattice by struct embedding, weakest at the top:
//
//   - [Invariant]: bidirectional mapping, ancestor of the two branches
//   - [Functor]: covariant Map; [Contravariant]: Contramap for consumers
//   - [Semigroupal]: Product, pairing two independent effects
//   - [Apply]: Functor + Semigroupal + Ap (function applied inside the context)
//   - [Pure]: lifting a plain value; [Applicative]: Apply + Pure
//   - [AndThen]: weak dependent sequencing, no laws beyond its signature
//   - [FlatMap]: Apply + lawful bind; [Monad]: Applicative + FlatMap
//   - [Bifunctor]: mapping the two slots of a two-parameter constructor
//
// Dictionaries are built by per-container constructor functions
// ([OptionMonad], [SliceApplicative], [EitherBifunctor], ...) and consumed
// by free generic combinators ([Map2] through [Map5], [Ap2] through [Ap4],
// [Flatten], [ProductR], ...). Go infers every type argument of a free
// combinator from the dictionary arguments, so call sites stay clean.
//
// # Containers
//
//   - [Option]: zero or one value; Monad
//   - [Either]: error or result, right-biased; fail-fast Monad
//   - [Validated]: error-accumulating sibling of Either; Applicative and
//     deliberately NOT a Monad — see the type's documentation
//   - [NEVec]: non-empty vector; Monad with a total Head
//   - slices, map[K]V, [Set]: nondeterminism, keyed values, distinct values
//   - [Pair], [Phantom], [Predicate]: product, type marker, contravariant
//   - [Reader], [Writer], [State]: environment, log, threaded state
//
// # Algebra
//
// [Semigroup] and [Monoid] are first-class dictionaries on plain element
// types, used both directly ([Semigroup.CombineAllOption],
// [Monoid.CombineAll]) and as the error-merging input to Validated's
// accumulating instances.
//
// # Natural Transformations
//
// [FnK] names a container-to-container function at one element type, with
// stock components such as [FirstToOption] and [OptionToEither] and
// composition via [ComposeFnK].
package go2fun
