// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun

// Arity family over Map2: each MapN is left-nested Products followed by a
// single Map, so the MapN laws follow from the Semigroupal and Functor laws
// by induction on arity. Written out by hand — Go has no macro facility —
// and capped at arity 5; higher arities follow the same shape.

// Map3 combines three effectful values with a ternary function.
func Map3[A, B, C, D, FA, FB, FC, FAB, FABC, FD any](
	s1 Semigroupal[A, B, FA, FB, FAB],
	s2 Semigroupal[Pair[A, B], C, FAB, FC, FABC],
	f Functor[Pair[Pair[A, B], C], D, FABC, FD],
	fa FA, fb FB, fc FC, fn func(A, B, C) D,
) FD {
	p := s2.Product(s1.Product(fa, fb), fc)
	return f.Map(p, func(q Pair[Pair[A, B], C]) D {
		return fn(q.Fst.Fst, q.Fst.Snd, q.Snd)
	})
}

// Map4 combines four effectful values with a 4-ary function.
func Map4[A, B, C, D, E, FA, FB, FC, FD, FAB, FABC, FABCD, FE any](
	s1 Semigroupal[A, B, FA, FB, FAB],
	s2 Semigroupal[Pair[A, B], C, FAB, FC, FABC],
	s3 Semigroupal[Pair[Pair[A, B], C], D, FABC, FD, FABCD],
	f Functor[Pair[Pair[Pair[A, B], C], D], E, FABCD, FE],
	fa FA, fb FB, fc FC, fd FD, fn func(A, B, C, D) E,
) FE {
	p := s3.Product(s2.Product(s1.Product(fa, fb), fc), fd)
	return f.Map(p, func(q Pair[Pair[Pair[A, B], C], D]) E {
		return fn(q.Fst.Fst.Fst, q.Fst.Fst.Snd, q.Fst.Snd, q.Snd)
	})
}

// Map5 combines five effectful values with a 5-ary function.
func Map5[A, B, C, D, E, Z, FA, FB, FC, FD, FE, FAB, FABC, FABCD, FABCDE, FZ any](
	s1 Semigroupal[A, B, FA, FB, FAB],
	s2 Semigroupal[Pair[A, B], C, FAB, FC, FABC],
	s3 Semigroupal[Pair[Pair[A, B], C], D, FABC, FD, FABCD],
	s4 Semigroupal[Pair[Pair[Pair[A, B], C], D], E, FABCD, FE, FABCDE],
	f Functor[Pair[Pair[Pair[Pair[A, B], C], D], E], Z, FABCDE, FZ],
	fa FA, fb FB, fc FC, fd FD, fe FE, fn func(A, B, C, D, E) Z,
) FZ {
	p := s4.Product(s3.Product(s2.Product(s1.Product(fa, fb), fc), fd), fe)
	return f.Map(p, func(q Pair[Pair[Pair[Pair[A, B], C], D], E]) Z {
		return fn(q.Fst.Fst.Fst.Fst, q.Fst.Fst.Fst.Snd, q.Fst.Fst.Snd, q.Fst.Snd, q.Snd)
	})
}
