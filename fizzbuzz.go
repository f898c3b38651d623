// Package fizzbuzz implements the classic counting game,
// where numbers divisible by three become "Fizz", numbers divisible by five
// become "Buzz", and numbers divisible by both become "FizzBuzz".
package fizzbuzz

import (
	"iter"
	"strconv"

	"go.llib.dev/fizzbuzz/pkg/iterkit"
	"go.llib.dev/fizzbuzz/pkg/mathkit"
)

// The words a number can be replaced with during classification.
const (
	WordFizz     = "Fizz"
	WordBuzz     = "Buzz"
	WordFizzBuzz = "FizzBuzz"
)

// The game counts from Begin to End, both inclusive.
const (
	Begin = 1
	End   = 100
)

// Predicate reports whether a rule applies to a given number.
type Predicate func(n int) bool

// Rule pairs a predicate with the word that replaces the numbers it matches.
type Rule struct {
	// Name identifies the rule in the ruleset description.
	Name string
	// Cond decides whether the rule applies to a number.
	Cond Predicate
	// Word replaces the number when the rule applies.
	Word string
}

// Ruleset is an ordered list of rules.
// Classification evaluates the rules front to back, and the first match wins.
type Ruleset []Rule

// Classify returns the word of the first matching rule,
// or the decimal form of n when no rule matches.
func (rs Ruleset) Classify(n int) string {
	for _, r := range rs {
		if r.Cond(n) {
			return r.Word
		}
	}
	return strconv.Itoa(n)
}

// Default returns the classic ruleset of the game.
//
// The divisibility predicates are constructed once per ruleset
// and shared between the rules, so every classified value
// is tested with the same closures.
func Default() Ruleset {
	var (
		byThree = mathkit.DivisibleBy(3)
		byFive  = mathkit.DivisibleBy(5)
	)
	return Ruleset{
		{
			Name: "fizzbuzz",
			Cond: func(n int) bool { return byThree(n) && byFive(n) },
			Word: WordFizzBuzz,
		},
		{
			Name: "fizz",
			Cond: byThree,
			Word: WordFizz,
		},
		{
			Name: "buzz",
			Cond: byFive,
			Word: WordBuzz,
		},
	}
}

// Sequence returns the numbers of the game in playing order.
func Sequence() iter.Seq[int] {
	return iterkit.IntRange(Begin, End)
}
