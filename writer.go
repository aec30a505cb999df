// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Writer is a value paired with an accumulated log. Sequencing merges logs
// through a Semigroup on W; Pure needs the full Monoid for the empty log.
type Writer[W, A any] struct {
	Log   W
	Value A
}

// Tell records a log entry with no interesting value.
func Tell[W any](w W) Writer[W, Unit] {
	return Writer[W, Unit]{Log: w}
}

// MkWriter pairs a log with a value.
func MkWriter[W, A any](w W, a A) Writer[W, A] {
	return Writer[W, A]{Log: w, Value: a}
}

// MapWriter transforms the value, leaving the log alone.
func MapWriter[W, A, B any](wa Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{Log: wa.Log, Value: f(wa.Value)}
}

// WriterFunctor builds the Functor dictionary for Writers over W.
func WriterFunctor[W, A, B any]() Functor[A, B, Writer[W, A], Writer[W, B]] {
	return MakeFunctor(MapWriter[W, A, B])
}

// WriterSemigroupalOf pairs two Writers, merging logs left-to-right.
func WriterSemigroupalOf[A, B, W any](sw Semigroup[W]) Semigroupal[A, B, Writer[W, A], Writer[W, B], Writer[W, Pair[A, B]]] {
	return Semigroupal[A, B, Writer[W, A], Writer[W, B], Writer[W, Pair[A, B]]]{
		Product: func(wa Writer[W, A], wb Writer[W, B]) Writer[W, Pair[A, B]] {
			return Writer[W, Pair[A, B]]{
				Log:   sw.Combine(wa.Log, wb.Log),
				Value: Pair[A, B]{Fst: wa.Value, Snd: wb.Value},
			}
		},
	}
}

// WriterApplyOf builds the Apply dictionary, merging logs function-first.
func WriterApplyOf[A, B, W any](sw Semigroup[W]) Apply[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]] {
	return Apply[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]]{
		Functor:     WriterFunctor[W, A, B](),
		Semigroupal: WriterSemigroupalOf[A, B](sw),
		Ap: func(wf Writer[W, func(A) B], wa Writer[W, A]) Writer[W, B] {
			return Writer[W, B]{
				Log:   sw.Combine(wf.Log, wa.Log),
				Value: wf.Value(wa.Value),
			}
		},
	}
}

// WriterApplicativeOf builds the Applicative dictionary; Pure starts with
// the empty log, which is why a full Monoid is required here.
func WriterApplicativeOf[A, B, W any](mw Monoid[W]) Applicative[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]] {
	return Applicative[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]]{
		Apply: WriterApplyOf[A, B](mw.Semigroup),
		Pure: func(a A) Writer[W, A] {
			return Writer[W, A]{Log: mw.Empty(), Value: a}
		},
	}
}

// WriterFlatMapOf builds the FlatMap dictionary: the continuation's log is
// appended to the current one.
func WriterFlatMapOf[A, B, W any](sw Semigroup[W]) FlatMap[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]] {
	return FlatMap[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]]{
		Apply: WriterApplyOf[A, B](sw),
		FlatMap: func(wa Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
			wb := f(wa.Value)
			return Writer[W, B]{Log: sw.Combine(wa.Log, wb.Log), Value: wb.Value}
		},
	}
}

// WriterMonadOf builds the full Monad dictionary for Writers.
func WriterMonadOf[A, B, W any](mw Monoid[W]) Monad[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]] {
	return Monad[A, B, Writer[W, A], Writer[W, B], Writer[W, func(A) B], Writer[W, Pair[A, B]]]{
		Applicative: WriterApplicativeOf[A, B](mw),
		FlatMap:     WriterFlatMapOf[A, B](mw.Semigroup).FlatMap,
	}
}
