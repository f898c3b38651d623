// Package contract contains the role interface of the behavioral testing suites of the module.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioral specification, also known as "contract".
//
// The goal of a contract is to express the expectations a consumer has towards its supplier
// at a behavioral level, so the expectations are not bound to a concrete implementation,
// and any supplier can be verified against them.
type Contract interface {
	testcase.Suite
	// Test is the function that asserts expected behavioral requirements from a supplier implementation.
	Test(*testing.T)
	// Benchmark will help with what to measure.
	Benchmark(*testing.B)
}
