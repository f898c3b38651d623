package fizzbuzz_test

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/fizzbuzz"
)

func ExampleRun() {
	ctx := context.Background()
	if err := fizzbuzz.Run(ctx); err != nil {
		panic(err)
	}
}

func TestRun(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		output = testcase.Let[io.Writer](s, func(t *testcase.T) io.Writer {
			return &bytes.Buffer{}
		})
	)
	act := func(t *testcase.T) error {
		return fizzbuzz.Run(context.Background(), fizzbuzz.WithOutput(output.Get(t)))
	}
	outputLines := func(t *testcase.T) []string {
		buf, ok := output.Get(t).(*bytes.Buffer)
		t.Must.True(ok)
		out := buf.String()
		t.Must.True(strings.HasSuffix(out, "\n"))
		return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	}

	s.Then("a line is written for every number of the game", func(t *testcase.T) {
		t.Must.NoError(act(t))
		t.Must.Equal(fizzbuzz.End-fizzbuzz.Begin+1, len(outputLines(t)))
	})

	s.Then("every line holds the classification of its position", func(t *testcase.T) {
		t.Must.NoError(act(t))
		for i, line := range outputLines(t) {
			n := i + 1
			switch {
			case n%15 == 0:
				t.Must.Equal(fizzbuzz.WordFizzBuzz, line)
			case n%3 == 0:
				t.Must.Equal(fizzbuzz.WordFizz, line)
			case n%5 == 0:
				t.Must.Equal(fizzbuzz.WordBuzz, line)
			default:
				t.Must.Equal(strconv.Itoa(n), line)
			}
		}
	})

	s.Then("the classic scenarios appear at their positions", func(t *testcase.T) {
		t.Must.NoError(act(t))
		lines := outputLines(t)
		t.Must.Equal("1", lines[0])
		t.Must.Equal("Fizz", lines[2])
		t.Must.Equal("Buzz", lines[4])
		t.Must.Equal("FizzBuzz", lines[14])
		t.Must.Equal("Fizz", lines[98])
		t.Must.Equal("Buzz", lines[99])
	})

	s.Then("repeated runs produce the same output", func(t *testcase.T) {
		t.Must.NoError(act(t))
		var oth bytes.Buffer
		t.Must.NoError(fizzbuzz.Run(context.Background(), fizzbuzz.WithOutput(&oth)))
		buf, ok := output.Get(t).(*bytes.Buffer)
		t.Must.True(ok)
		t.Must.Equal(buf.String(), oth.String())
	})

	s.Then("the config itself is accepted as an option", func(t *testcase.T) {
		t.Must.NoError(act(t))
		var oth bytes.Buffer
		t.Must.NoError(fizzbuzz.Run(context.Background(), &fizzbuzz.Config{Out: &oth}))
		buf, ok := output.Get(t).(*bytes.Buffer)
		t.Must.True(ok)
		t.Must.Equal(buf.String(), oth.String())
	})

	s.When("the output stream fails", func(s *testcase.Spec) {
		expectedErr := testcase.Let(s, func(t *testcase.T) error {
			return t.Random.Error()
		})
		output.Let(s, func(t *testcase.T) io.Writer {
			return stubWriter{WriteErr: expectedErr.Get(t)}
		})

		s.Then("the run aborts with the write failure", func(t *testcase.T) {
			err := act(t)
			t.Must.ErrorIs(expectedErr.Get(t), err)
			t.Must.ErrorIs(fizzbuzz.ErrWriteOutput, err)
		})
	})
}

type stubWriter struct {
	WriteErr error
}

func (w stubWriter) Write(p []byte) (int, error) {
	if w.WriteErr != nil {
		return 0, w.WriteErr
	}
	return len(p), nil
}

func TestEmitter_Emit(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		output = testcase.Let(s, func(t *testcase.T) *bytes.Buffer {
			return &bytes.Buffer{}
		})
		emitter = testcase.Let(s, func(t *testcase.T) fizzbuzz.Emitter {
			return fizzbuzz.Emitter{
				Ruleset: fizzbuzz.Default(),
				Out:     output.Get(t),
			}
		})
	)

	s.Test("the classified value is written as a single terminated line", func(t *testcase.T) {
		n := t.Random.IntB(1, 100)
		t.Must.NoError(emitter.Get(t).Emit(n))
		t.Must.Equal(fizzbuzz.Default().Classify(n)+"\n", output.Get(t).String())
	})

	s.Test("subsequent emits append to the output", func(t *testcase.T) {
		t.Must.NoError(emitter.Get(t).Emit(3))
		t.Must.NoError(emitter.Get(t).Emit(4))
		t.Must.Equal("Fizz\n4\n", output.Get(t).String())
	})

	s.Test("a write failure is wrapped and surfaced", func(t *testcase.T) {
		expectedErr := t.Random.Error()
		emitter.Set(t, fizzbuzz.Emitter{
			Ruleset: fizzbuzz.Default(),
			Out:     stubWriter{WriteErr: expectedErr},
		})
		err := emitter.Get(t).Emit(42)
		t.Must.ErrorIs(expectedErr, err)
		t.Must.ErrorIs(fizzbuzz.ErrWriteOutput, err)
	})
}
