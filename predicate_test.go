// ©Chapiteau Team 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package go2fun_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chapiteau-team/go2fun"
)

func TestPredicateConnectives(t *testing.T) {
	even := go2fun.Predicate[int](func(x int) bool { return x%2 == 0 })
	positive := go2fun.Predicate[int](func(x int) bool { return x > 0 })

	require.True(t, even.And(positive)(4))
	require.False(t, even.And(positive)(-4))
	require.True(t, even.Or(positive)(3))
	require.False(t, even.Or(positive)(-3))
	require.True(t, even.Not()(3))
}

func TestPredicateAndShortCircuits(t *testing.T) {
	called := false
	never := go2fun.Predicate[int](func(int) bool { called = true; return true })
	isFalse := go2fun.Predicate[int](func(int) bool { return false })
	require.False(t, isFalse.And(never)(0))
	require.False(t, called)
}

func TestPredicateContramap(t *testing.T) {
	type user struct{ age int }
	adult := go2fun.Predicate[int](func(x int) bool { return x >= 18 })
	adultUser := go2fun.ContramapPredicate(adult, func(u user) int { return u.age })
	require.True(t, adultUser(user{age: 30}))
	require.False(t, adultUser(user{age: 12}))

	c := go2fun.PredicateContravariant[int, user]()
	require.True(t, c.Contramap(adult, func(u user) int { return u.age })(user{age: 21}))
}

func TestPredicateMonoids(t *testing.T) {
	even := go2fun.Predicate[int](func(x int) bool { return x%2 == 0 })
	positive := go2fun.Predicate[int](func(x int) bool { return x > 0 })
	small := go2fun.Predicate[int](func(x int) bool { return x < 100 })

	all := go2fun.PredicateAndMonoid[int]()
	conj := all.CombineAll([]go2fun.Predicate[int]{even, positive, small})
	require.True(t, conj(42))
	require.False(t, conj(142))
	require.True(t, all.Empty()(-999))

	anyOf := go2fun.PredicateOrMonoid[int]()
	disj := anyOf.CombineAll([]go2fun.Predicate[int]{even, positive})
	require.True(t, disj(-4))
	require.False(t, disj(-3))
	require.False(t, anyOf.Empty()(0))
}
