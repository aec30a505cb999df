// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/chapiteau-team/go2fun"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randString returns a random ASCII string of length [0, 8].
func randString(rng *rand.Rand) string {
	n := rng.IntN(9)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(95) + 32) // printable ASCII
	}
	return string(b)
}

// randOption returns None one time in four.
func randOption(rng *rand.Rand) go2fun.Option[int] {
	if rng.IntN(4) == 0 {
		return go2fun.None[int]()
	}
	return go2fun.Some(randInt(rng))
}

// randSlice returns a random int slice of length [0, 5].
func randSlice(rng *rand.Rand) []int {
	n := rng.IntN(6)
	out := make([]int, n)
	for i := range out {
		out[i] = randInt(rng)
	}
	return out
}

func slicesEqual[A comparable](xs, ys []A) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

// --- Group 1: Functor Laws ---

// TestPropertyOptionFunctorIdentity: Map(fa, id) ≡ fa
func TestPropertyOptionFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := go2fun.OptionFunctor[int, int]()
	for range propertyN {
		fa := randOption(rng)
		if got := f.Map(fa, go2fun.Id[int]); got != fa {
			t.Fatalf("functor identity: %v != %v", got, fa)
		}
	}
}

// TestPropertyOptionFunctorComposition: Map(Map(fa, f), g) ≡ Map(fa, g∘f)
func TestPropertyOptionFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	fis := go2fun.OptionFunctor[int, string]()
	fsi := go2fun.OptionFunctor[string, int]()
	fii := go2fun.OptionFunctor[int, int]()
	f := strconv.Itoa
	g := func(s string) int { return len(s) }
	for range propertyN {
		fa := randOption(rng)
		left := fsi.Map(fis.Map(fa, f), g)
		right := fii.Map(fa, go2fun.Compose(g, f))
		if left != right {
			t.Fatalf("functor composition: %v != %v (fa=%v)", left, right, fa)
		}
	}
}

// TestPropertySliceFunctorComposition: Map(Map(xs, f), g) ≡ Map(xs, g∘f)
func TestPropertySliceFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 2 }
	g := func(x int) int { return x + 7 }
	for range propertyN {
		xs := randSlice(rng)
		left := go2fun.MapSlice(go2fun.MapSlice(xs, f), g)
		right := go2fun.MapSlice(xs, go2fun.Compose(g, f))
		if !slicesEqual(left, right) {
			t.Fatalf("functor composition: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// TestPropertyInvariantAgreesWithMap: a Functor's derived IMap ignores the
// backward function and agrees with Map.
func TestPropertyInvariantAgreesWithMap(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := go2fun.OptionFunctor[int, int]()
	fwd := func(x int) int { return x + 1 }
	bwd := func(x int) int { return x * 1000 } // must be ignored
	for range propertyN {
		fa := randOption(rng)
		if got, want := f.IMap(fa, fwd, bwd), f.Map(fa, fwd); got != want {
			t.Fatalf("invariant/map agreement: %v != %v", got, want)
		}
	}
}

// --- Group 2: Contravariant Laws ---

// TestPropertyPredicateContramapComposition:
// Contramap(Contramap(p, f), g) ≡ Contramap(p, f∘g)
func TestPropertyPredicateContramapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	even := go2fun.Predicate[int](func(x int) bool { return x%2 == 0 })
	f := func(s string) int { return len(s) }
	g := func(x int) string { return string(make([]byte, x%7)) }
	for range propertyN {
		a := rng.IntN(1000)
		left := go2fun.ContramapPredicate(go2fun.ContramapPredicate(even, f), g)
		right := go2fun.ContramapPredicate(even, go2fun.Compose(f, g))
		if left(a) != right(a) {
			t.Fatalf("contramap composition: mismatch at %d", a)
		}
	}
}

// --- Group 3: Semigroupal Laws ---

// TestPropertyOptionProductAssociative: reassociating the nested Product
// with AssocL yields the other nesting.
func TestPropertyOptionProductAssociative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sAB := go2fun.OptionSemigroupal[int, int]()
	sABc := go2fun.OptionSemigroupal[go2fun.Pair[int, int], int]()
	sBC := go2fun.OptionSemigroupal[int, int]()
	saBC := go2fun.OptionSemigroupal[int, go2fun.Pair[int, int]]()
	reassoc := go2fun.OptionFunctor[go2fun.Pair[int, go2fun.Pair[int, int]], go2fun.Pair[go2fun.Pair[int, int], int]]()
	for range propertyN {
		fa, fb, fc := randOption(rng), randOption(rng), randOption(rng)
		left := sABc.Product(sAB.Product(fa, fb), fc)
		right := reassoc.Map(saBC.Product(fa, sBC.Product(fb, fc)), go2fun.AssocL[int, int, int])
		if left != right {
			t.Fatalf("product associativity: %v != %v", left, right)
		}
	}
}

// --- Group 4: Apply / Applicative Laws ---

// TestPropertyOptionApConsistent: Ap(ff, fa) ≡ Map(Product(ff, fa), apply)
func TestPropertyOptionApConsistent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ap := go2fun.OptionApply[int, int]()
	s := go2fun.OptionSemigroupal[func(int) int, int]()
	f := go2fun.OptionFunctor[go2fun.Pair[func(int) int, int], int]()
	for range propertyN {
		k := randInt(rng)
		ff := go2fun.SomeIf(rng.IntN(4) != 0, func(x int) int { return x + k })
		fa := randOption(rng)
		left := ap.Ap(ff, fa)
		right := f.Map(s.Product(ff, fa), func(p go2fun.Pair[func(int) int, int]) int {
			return p.Fst(p.Snd)
		})
		if left != right {
			t.Fatalf("ap/product consistency: %v != %v", left, right)
		}
	}
}

// TestPropertyOptionApplicativeIdentity: Ap(Pure(id), fa) ≡ fa
func TestPropertyOptionApplicativeIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ap := go2fun.OptionApplicative[int, int]()
	for range propertyN {
		fa := randOption(rng)
		got := ap.Ap(go2fun.Some(go2fun.Id[int]), fa)
		if got != fa {
			t.Fatalf("applicative identity: %v != %v", got, fa)
		}
	}
}

// TestPropertyOptionApplicativeHomomorphism: Ap(Pure(f), Pure(x)) ≡ Pure(f(x))
func TestPropertyOptionApplicativeHomomorphism(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ap := go2fun.OptionApplicative[int, int]()
	f := func(x int) int { return x*x - 3 }
	for range propertyN {
		x := randInt(rng)
		left := ap.Ap(go2fun.Some(f), ap.Pure(x))
		right := go2fun.Some(f(x))
		if left != right {
			t.Fatalf("homomorphism: %v != %v (x=%d)", left, right, x)
		}
	}
}

// TestPropertyOptionMapCoherence: Map(fa, f) ≡ Ap(Pure(f), fa)
func TestPropertyOptionMapCoherence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ap := go2fun.OptionApplicative[int, int]()
	f := func(x int) int { return x - 17 }
	for range propertyN {
		fa := randOption(rng)
		if left, right := ap.Map(fa, f), ap.Ap(go2fun.Some(f), fa); left != right {
			t.Fatalf("map coherence: %v != %v", left, right)
		}
	}
}

// --- Group 5: Monad Laws ---

// TestPropertyOptionMonadLeftIdentity: FlatMap(Pure(a), f) ≡ f(a)
func TestPropertyOptionMonadLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	m := go2fun.OptionMonad[int, int]()
	f := func(x int) go2fun.Option[int] { return go2fun.SomeIf(x%2 == 0, x*3) }
	for range propertyN {
		a := randInt(rng)
		if left, right := m.FlatMap(m.Pure(a), f), f(a); left != right {
			t.Fatalf("left identity: %v != %v (a=%d)", left, right, a)
		}
	}
}

// TestPropertyOptionMonadRightIdentity: FlatMap(m, Pure) ≡ m
func TestPropertyOptionMonadRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	m := go2fun.OptionMonad[int, int]()
	for range propertyN {
		fa := randOption(rng)
		if got := m.FlatMap(fa, m.Pure); got != fa {
			t.Fatalf("right identity: %v != %v", got, fa)
		}
	}
}

// TestPropertyOptionMonadAssociativity:
// FlatMap(FlatMap(m, f), g) ≡ FlatMap(m, λx. FlatMap(f(x), g))
func TestPropertyOptionMonadAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	m := go2fun.OptionMonad[int, int]()
	f := func(x int) go2fun.Option[int] { return go2fun.SomeIf(x >= 0, x+1) }
	g := func(x int) go2fun.Option[int] { return go2fun.SomeIf(x%3 != 0, x*2) }
	for range propertyN {
		fa := randOption(rng)
		left := m.FlatMap(m.FlatMap(fa, f), g)
		right := m.FlatMap(fa, func(x int) go2fun.Option[int] {
			return m.FlatMap(f(x), g)
		})
		if left != right {
			t.Fatalf("associativity: %v != %v (fa=%v)", left, right, fa)
		}
	}
}

// TestPropertySliceMonadAssociativity on the nondeterminism container.
func TestPropertySliceMonadAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) []int { return []int{x, x + 1} }
	g := func(x int) []int {
		if x%2 == 0 {
			return nil
		}
		return []int{x * 2}
	}
	for range propertyN {
		xs := randSlice(rng)
		left := go2fun.FlatMapSlice(go2fun.FlatMapSlice(xs, f), g)
		right := go2fun.FlatMapSlice(xs, func(x int) []int {
			return go2fun.FlatMapSlice(f(x), g)
		})
		if !slicesEqual(left, right) {
			t.Fatalf("associativity: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// TestPropertyOptionFlatMapMapCoherence:
// FlatMap(m, λa. Pure(f(a))) ≡ Map(m, f)
func TestPropertyOptionFlatMapMapCoherence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	m := go2fun.OptionMonad[int, int]()
	f := func(x int) int { return x << 1 }
	for range propertyN {
		fa := randOption(rng)
		left := m.FlatMap(fa, func(a int) go2fun.Option[int] { return m.Pure(f(a)) })
		right := m.Map(fa, f)
		if left != right {
			t.Fatalf("flatmap/map coherence: %v != %v", left, right)
		}
	}
}

// --- Group 6: Semigroup / Monoid Laws ---

// TestPropertySemigroupAssociativity on int sum and string concatenation.
func TestPropertySemigroupAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sum := go2fun.SumSemigroup[int]()
	str := go2fun.StringSemigroup()
	for range propertyN {
		a, b, c := randInt(rng), randInt(rng), randInt(rng)
		if sum.Combine(sum.Combine(a, b), c) != sum.Combine(a, sum.Combine(b, c)) {
			t.Fatalf("sum associativity: %d %d %d", a, b, c)
		}
		x, y, z := randString(rng), randString(rng), randString(rng)
		if str.Combine(str.Combine(x, y), z) != str.Combine(x, str.Combine(y, z)) {
			t.Fatalf("string associativity: %q %q %q", x, y, z)
		}
	}
}

// TestPropertyMonoidIdentity: Combine(Empty, x) ≡ x ≡ Combine(x, Empty)
func TestPropertyMonoidIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	m := go2fun.SumMonoid[int]()
	for range propertyN {
		x := randInt(rng)
		if m.Combine(m.Empty(), x) != x || m.Combine(x, m.Empty()) != x {
			t.Fatalf("monoid identity violated at %d", x)
		}
	}
}

// TestPropertyCombineNRepetition: CombineN(a, n) under sum equals a*(n+1),
// and CombineN(a, 0) is a itself.
func TestPropertyCombineNRepetition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sum := go2fun.SumSemigroup[int]()
	for range propertyN {
		a := randInt(rng)
		n := rng.IntN(10)
		if got := sum.CombineN(a, 0); got != a {
			t.Fatalf("CombineN(a, 0): %d != %d", got, a)
		}
		if got, want := sum.CombineN(a, n), a*(n+1); got != want {
			t.Fatalf("CombineN(%d, %d): %d != %d", a, n, got, want)
		}
	}
}

// --- Group 7: Validated Accumulation ---

// TestPropertyValidatedAccumulates: Product of two Invalids holds both
// errors in operand order; Either's Product keeps only the first.
func TestPropertyValidatedAccumulates(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s := go2fun.ValidatedSemigroupalOf[int, int](go2fun.NEVecSemigroup[string]())
	for range propertyN {
		e1, e2 := randString(rng), randString(rng)
		va := go2fun.InvalidNev[int](e1)
		vb := go2fun.InvalidNev[int](e2)
		errs, ok := s.Product(va, vb).GetInvalid()
		if !ok {
			t.Fatal("product of two invalids must be invalid")
		}
		if !slicesEqual(errs.ToSlice(), []string{e1, e2}) {
			t.Fatalf("accumulated errors out of order: %v", errs.ToSlice())
		}
	}
}

// TestPropertyValidatedAgreesWithEitherWhenAtMostOneError: with at most
// one failing operand there is nothing to accumulate, so Validated and
// Either must produce the same outcome.
func TestPropertyValidatedAgreesWithEitherWhenAtMostOneError(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	vs := go2fun.ValidatedSemigroupalOf[int, int](go2fun.FirstSemigroup[string]())
	es := go2fun.EitherSemigroupal[string, int, int]()
	for range propertyN {
		a, b := randInt(rng), randInt(rng)
		var ea go2fun.Either[string, int]
		if rng.IntN(2) == 0 {
			ea = go2fun.Left[string, int]("bad a")
		} else {
			ea = go2fun.Right[string](a)
		}
		eb := go2fun.Right[string](b)
		va, vb := go2fun.ValidatedFromEither(ea), go2fun.ValidatedFromEither(eb)
		if got, want := vs.Product(va, vb).ToEither(), es.Product(ea, eb); got != want {
			t.Fatalf("validated/either disagreement: %v != %v", got, want)
		}
	}
}

// --- Group 8: Arity Families ---

// TestPropertyMap3AgreesWithNestedMap2: Map3 is Map2 applied twice.
func TestPropertyMap3AgreesWithNestedMap2(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s1 := go2fun.OptionSemigroupal[int, int]()
	s2 := go2fun.OptionSemigroupal[go2fun.Pair[int, int], int]()
	f3 := go2fun.OptionFunctor[go2fun.Pair[go2fun.Pair[int, int], int], int]()
	for range propertyN {
		fa, fb, fc := randOption(rng), randOption(rng), randOption(rng)
		left := go2fun.Map3(s1, s2, f3, fa, fb, fc, func(a, b, c int) int {
			return a*100 + b*10 + c
		})
		right := go2fun.Map2(s2, f3, s1.Product(fa, fb), fc,
			func(p go2fun.Pair[int, int], c int) int {
				return p.Fst*100 + p.Snd*10 + c
			})
		if left != right {
			t.Fatalf("map3/map2 disagreement: %v != %v", left, right)
		}
	}
}

// TestPropertyAp2AgreesWithCurriedAp: Ap2 equals two curried Ap steps.
func TestPropertyAp2AgreesWithCurriedAp(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	at := go2fun.OptionMonad[func(int, int) int, int]().ToAndThen()
	s := go2fun.OptionSemigroupal[int, int]()
	f := go2fun.OptionFunctor[go2fun.Pair[int, int], int]()
	apOuter := go2fun.OptionApply[int, func(int) int]()
	apInner := go2fun.OptionApply[int, int]()
	add := func(a, b int) int { return a - b }
	for range propertyN {
		ff := go2fun.SomeIf(rng.IntN(4) != 0, add)
		fa, fb := randOption(rng), randOption(rng)
		left := go2fun.Ap2(at, s, f, ff, fa, fb)
		curried := go2fun.MapOption(ff, go2fun.Curry2[int, int, int])
		right := apInner.Ap(apOuter.Ap(curried, fa), fb)
		if left != right {
			t.Fatalf("ap2/curried disagreement: %v != %v", left, right)
		}
	}
}

// --- Group 9: Natural Transformations ---

// TestPropertyFirstToOptionNatural: taking the head commutes with Map.
func TestPropertyFirstToOptionNatural(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	head := go2fun.FirstToOption[int]()
	headStr := go2fun.FirstToOption[string]()
	f := strconv.Itoa
	for range propertyN {
		xs := randSlice(rng)
		left := go2fun.MapOption(head(xs), f)
		right := headStr(go2fun.MapSlice(xs, f))
		if left != right {
			t.Fatalf("naturality: %v != %v (xs=%v)", left, right, xs)
		}
	}
}

// --- Group 10: Effect Containers ---

// TestPropertyStateMonadLeftIdentity on the threaded-state container.
func TestPropertyStateMonadLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	m := go2fun.StateMonad[int, int, int]()
	f := func(x int) go2fun.State[int, int] {
		return func(s int) (int, int) { return x + s, s + 1 }
	}
	for range propertyN {
		a, s0 := randInt(rng), randInt(rng)
		lv, ls := m.FlatMap(m.Pure(a), f)(s0)
		rv, rs := f(a)(s0)
		if lv != rv || ls != rs {
			t.Fatalf("left identity: (%d,%d) != (%d,%d)", lv, ls, rv, rs)
		}
	}
}

// TestPropertyWriterFlatMapAppendsLogs: logs concatenate left-to-right.
func TestPropertyWriterFlatMapAppendsLogs(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	m := go2fun.WriterMonadOf[int, int](go2fun.StringMonoid())
	for range propertyN {
		l1, l2 := randString(rng), randString(rng)
		a := randInt(rng)
		w := m.FlatMap(go2fun.MkWriter(l1, a), func(x int) go2fun.Writer[string, int] {
			return go2fun.MkWriter(l2, x*2)
		})
		if w.Log != l1+l2 || w.Value != a*2 {
			t.Fatalf("writer bind: log=%q value=%d", w.Log, w.Value)
		}
	}
}

// TestPropertyReaderSharesEnvironment: Product runs both readers against
// the same environment.
func TestPropertyReaderSharesEnvironment(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s := go2fun.ReaderSemigroupal[int, int, int]()
	for range propertyN {
		r := randInt(rng)
		p := s.Product(
			func(env int) int { return env + 1 },
			func(env int) int { return env * 2 },
		)(r)
		if p.Fst != r+1 || p.Snd != r*2 {
			t.Fatalf("reader product: %v (env=%d)", p, r)
		}
	}
}
