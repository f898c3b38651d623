// Package fizzbuzzcontract contains the behavioral expectations towards the game's building blocks.
package fizzbuzzcontract

import (
	"strconv"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"

	"go.llib.dev/fizzbuzz"
	"go.llib.dev/fizzbuzz/port/contract"
)

// DivisibilityPredicate verifies the laws of a divisibility predicate factory.
func DivisibilityPredicate(mk func(tb testing.TB, divisor int) func(int) bool) contract.Contract {
	s := testcase.NewSpec(nil)

	divisor := let.IntB(s, 2, 128)

	subject := testcase.Let(s, func(t *testcase.T) func(int) bool {
		return mk(t, divisor.Get(t))
	})

	s.Then("the divisor divides itself", func(t *testcase.T) {
		t.Must.True(subject.Get(t)(divisor.Get(t)))
	})

	s.Then("multiples of the divisor are accepted", func(t *testcase.T) {
		t.Must.True(subject.Get(t)(divisor.Get(t) * t.Random.IntB(1, 100)))
	})

	s.Then("values between the multiples are rejected", func(t *testcase.T) {
		d := divisor.Get(t)
		multiple := d * t.Random.IntB(1, 100)
		t.Must.False(subject.Get(t)(multiple + t.Random.IntB(1, d-1)))
	})

	s.Then("one is divisible only when the divisor is one", func(t *testcase.T) {
		t.Must.False(subject.Get(t)(1))
		t.Must.True(mk(t, 1)(1))
	})

	s.Then("the predicate is pure", func(t *testcase.T) {
		p := subject.Get(t)
		n := t.Random.IntB(1, 10_000)
		t.Must.Equal(p(n), p(n))
	})

	s.Then("separately made predicates keep their own divisor", func(t *testcase.T) {
		var (
			d = divisor.Get(t)
			a = mk(t, d)
			b = mk(t, d+1)
		)
		t.Must.True(a(d))
		t.Must.True(b(d + 1))
		t.Must.True(a(d * (d + 2)))
		t.Must.False(b(d * (d + 2)))
	})

	return s.AsSuite("DivisibilityPredicate")
}

// Classifier verifies the ordered first-match-wins behavior of the game's classification.
func Classifier(mk func(tb testing.TB) func(n int) string) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) func(n int) string {
		return mk(t)
	})

	s.Then("numbers divisible by both three and five take the combined word", func(t *testcase.T) {
		t.Must.Equal(fizzbuzz.WordFizzBuzz, subject.Get(t)(15*t.Random.IntB(1, 6)))
	})

	s.Then("numbers divisible by three alone take fizz", func(t *testcase.T) {
		n := random.Pick(t.Random, 3, 6, 9, 12, 18, 21, 99)
		t.Must.Equal(fizzbuzz.WordFizz, subject.Get(t)(n))
	})

	s.Then("numbers divisible by five alone take buzz", func(t *testcase.T) {
		n := random.Pick(t.Random, 5, 10, 20, 25, 35, 100)
		t.Must.Equal(fizzbuzz.WordBuzz, subject.Get(t)(n))
	})

	s.Then("any other number keeps its decimal form", func(t *testcase.T) {
		n := random.Pick(t.Random, 1, 2, 4, 7, 8, 11, 13, 98)
		t.Must.Equal(strconv.Itoa(n), subject.Get(t)(n))
	})

	return s.AsSuite("Classifier")
}
