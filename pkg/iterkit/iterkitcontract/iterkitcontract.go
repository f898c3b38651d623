// Package iterkitcontract contains the behavioral expectations towards sequences.
package iterkitcontract

import (
	"iter"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/fizzbuzz/port/contract"
)

// Iterator verifies the baseline expectations towards a reusable finite sequence.
func Iterator[T any](mk func(testing.TB) iter.Seq[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iter.Seq[T] {
		return mk(t)
	})

	s.Then("values can be collected from the iterator", func(t *testcase.T) {
		var vs []T
		for v := range subject.Get(t) {
			vs = append(vs, v)
		}
		assert.NotEmpty(t, vs)
	})

	s.Then("the iterator is finite", func(t *testcase.T) {
		var total int
		for range subject.Get(t) {
			total++
		}
		assert.True(t, 0 < total)
	})

	s.Then("iteration can be repeated and yields the same values", func(t *testcase.T) {
		var collect = func() []T {
			var vs []T
			for v := range subject.Get(t) {
				vs = append(vs, v)
			}
			return vs
		}
		assert.Equal(t, collect(), collect())
	})

	s.Then("iteration can be abandoned early", func(t *testcase.T) {
		var got int
		for range subject.Get(t) {
			got++
			break
		}
		assert.Equal(t, 1, got)
	})

	return s.AsSuite("Iterator")
}
