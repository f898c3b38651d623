package errorkit_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"go.llib.dev/fizzbuzz/pkg/errorkit"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleError() {
	const ErrSomething errorkit.Error = "something is an error"

	_ = ErrSomething
}

func TestError_Error_smoke(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	assert.Equal(t, ErrExample.Error(), string(ErrExample))
}

type ErrAsStub struct {
	V string
}

func (err ErrAsStub) Error() string {
	return fmt.Sprintf("ErrAsStub: %s", err.V)
}

func TestError_Wrap_smoke(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	t.Run("happy", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.Wrap(exp)
		assert.ErrorIs(t, got, exp)
		assert.ErrorIs(t, got, ErrExample)
		assert.Contain(t, got.Error(), fmt.Sprintf("[%s] %s", ErrExample, exp.Error()))

		t.Run("Is", func(t *testing.T) {
			assert.True(t, errors.Is(got, ErrExample))
			assert.True(t, errors.Is(got, exp))
		})

		t.Run("As", func(t *testing.T) {
			exp := ErrAsStub{V: rnd.String()}
			got := ErrExample.Wrap(exp)
			assert.ErrorIs(t, got, exp)
			assert.ErrorIs(t, got, ErrExample)

			var expected ErrAsStub
			assert.True(t, errors.As(got, &expected))
			assert.Equal(t, exp, expected)
		})
	})
	t.Run("nil", func(t *testing.T) {
		got := ErrExample.Wrap(nil)
		assert.ErrorIs(t, got, ErrExample)
		assert.Equal[error](t, got, ErrExample)
	})
}

func TestError_F_smoke(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	t.Run("sprintf", func(t *testing.T) {
		got := ErrExample.F("foo - bar - %s", "baz")
		assert.ErrorIs(t, got, ErrExample)
		assert.Contain(t, got.Error(), "foo - bar - baz")
	})
	t.Run("errorf", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.F("%w", exp)
		assert.ErrorIs(t, got, ErrExample)
		assert.ErrorIs(t, got, exp)
		assert.Contain(t, got.Error(), ErrExample.Error())
	})
}

func TestMerge(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.NoError(t, errorkit.Merge())
		assert.NoError(t, errorkit.Merge(nil))
		assert.NoError(t, errorkit.Merge(nil, nil))
	})
	t.Run("single error", func(t *testing.T) {
		exp := rnd.Error()
		got := errorkit.Merge(nil, exp, nil)
		assert.Equal(t, exp, got)
	})
	t.Run("multiple errors", func(t *testing.T) {
		err1 := rnd.Error()
		err2 := rnd.Error()
		got := errorkit.Merge(err1, err2)
		assert.ErrorIs(t, got, err1)
		assert.ErrorIs(t, got, err2)
		assert.Contain(t, got.Error(), err1.Error())
		assert.Contain(t, got.Error(), err2.Error())
	})
	t.Run("As traverses all merged errors", func(t *testing.T) {
		exp := ErrAsStub{V: rnd.String()}
		got := errorkit.Merge(rnd.Error(), exp)

		var target ErrAsStub
		assert.True(t, errors.As(got, &target))
		assert.Equal(t, exp, target)
	})
}

func ExampleFinish() {
	myExampleFunction := func() (rErr error) {
		out, err := os.CreateTemp("", "example")
		if err != nil {
			return err
		}
		defer errorkit.Finish(&rErr, out.Close)

		_, err = out.WriteString("example")
		return err
	}

	if err := myExampleFunction(); err != nil {
		panic(err.Error())
	}
}

func TestFinish(t *testing.T) {
	t.Run("errors are merged from all source", func(t *testing.T) {
		err1 := rnd.Error()
		err2 := rnd.Error()

		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return err1
			})

			return err2
		}()

		assert.ErrorIs(t, err1, got)
		assert.ErrorIs(t, err2, got)
	})

	t.Run("Finish error is returned", func(t *testing.T) {
		exp := rnd.Error()
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return exp
			})

			return nil
		}()

		assert.ErrorIs(t, exp, got)
	})

	t.Run("func return value returned", func(t *testing.T) {
		exp := rnd.Error()
		got := func() (rErr error) {
			defer errorkit.Finish(&rErr, func() error {
				return nil
			})

			return exp
		}()

		assert.ErrorIs(t, exp, got)
	})
}
