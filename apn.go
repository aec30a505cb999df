// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Arity family over Ap: n-ary function application inside a context. Built
// on AndThen rather than FlatMap so that Applicative-but-not-Monad
// containers (Validated) participate. Capped at arity 4 like the other
// hand-written families.

// Ap2 applies a contextual binary function to two contextual arguments.
func Ap2[A, B, Z, FA, FB, FAB, FF, FZ any](
	at AndThen[func(A, B) Z, Z, FF, FZ],
	s Semigroupal[A, B, FA, FB, FAB],
	f Functor[Pair[A, B], Z, FAB, FZ],
	ff FF, fa FA, fb FB,
) FZ {
	p := s.Product(fa, fb)
	return at(ff, func(fn func(A, B) Z) FZ {
		return f.Map(p, func(q Pair[A, B]) Z {
			return fn(q.Fst, q.Snd)
		})
	})
}

// Ap3 applies a contextual ternary function to three contextual arguments.
func Ap3[A, B, C, Z, FA, FB, FC, FAB, FABC, FF, FZ any](
	at AndThen[func(A, B, C) Z, Z, FF, FZ],
	s1 Semigroupal[A, B, FA, FB, FAB],
	s2 Semigroupal[Pair[A, B], C, FAB, FC, FABC],
	f Functor[Pair[Pair[A, B], C], Z, FABC, FZ],
	ff FF, fa FA, fb FB, fc FC,
) FZ {
	p := s2.Product(s1.Product(fa, fb), fc)
	return at(ff, func(fn func(A, B, C) Z) FZ {
		return f.Map(p, func(q Pair[Pair[A, B], C]) Z {
			return fn(q.Fst.Fst, q.Fst.Snd, q.Snd)
		})
	})
}

// Ap4 applies a contextual 4-ary function to four contextual arguments.
func Ap4[A, B, C, D, Z, FA, FB, FC, FD, FAB, FABC, FABCD, FF, FZ any](
	at AndThen[func(A, B, C, D) Z, Z, FF, FZ],
	s1 Semigroupal[A, B, FA, FB, FAB],
	s2 Semigroupal[Pair[A, B], C, FAB, FC, FABC],
	s3 Semigroupal[Pair[Pair[A, B], C], D, FABC, FD, FABCD],
	f Functor[Pair[Pair[Pair[A, B], C], D], Z, FABCD, FZ],
	ff FF, fa FA, fb FB, fc FC, fd FD,
) FZ {
	p := s3.Product(s2.Product(s1.Product(fa, fb), fc), fd)
	return at(ff, func(fn func(A, B, C, D) Z) FZ {
		return f.Map(p, func(q Pair[Pair[Pair[A, B], C], D]) Z {
			return fn(q.Fst.Fst.Fst, q.Fst.Fst.Snd, q.Fst.Snd, q.Snd)
		})
	})
}
