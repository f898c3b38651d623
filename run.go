package fizzbuzz

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.llib.dev/fizzbuzz/pkg/errorkit"
	"go.llib.dev/fizzbuzz/pkg/logger"
	"go.llib.dev/fizzbuzz/pkg/logging"
	"go.llib.dev/fizzbuzz/pkg/zerokit"
	"go.llib.dev/fizzbuzz/port/option"
)

// ErrWriteOutput is returned when a classified line can't be written to the output.
const ErrWriteOutput errorkit.Error = "ErrWriteOutput"

// Emitter writes classified numbers to an output stream, one line per number.
type Emitter struct {
	// Ruleset is used to classify the numbers.
	Ruleset Ruleset
	// Out is the target of the emitted lines.
	// The default Out is the standard output stream.
	Out io.Writer
}

// Emit classifies n and writes the result as a single newline terminated line.
func (e Emitter) Emit(n int) error {
	if _, err := fmt.Fprintf(e.writer(), "%s\n", e.Ruleset.Classify(n)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}
	return nil
}

func (e Emitter) writer() io.Writer {
	return zerokit.Coalesce[io.Writer](e.Out, os.Stdout)
}

type Option interface {
	option.Option[Config]
}

type Config struct {
	// Out is the target of the game output.
	// The default Out is the standard output stream.
	Out io.Writer
}

func (c *Config) Configure(oth *Config) {
	oth.Out = zerokit.Coalesce(oth.Out, c.Out)
}

// WithOutput redirects the game output, primarily for embedding and testing.
// The words, the divisors and the counting range of the game are not configurable.
func WithOutput(w io.Writer) Option {
	return option.Func[Config](func(c *Config) {
		c.Out = w
	})
}

// Run plays the game: it classifies every number from Begin to End in order
// and writes one line per number to the configured output.
// It returns the first write failure it encounters;
// on a nil error the output received one line for every number of the game.
func Run(ctx context.Context, opts ...Option) error {
	conf := option.ToConfig[Config](opts)
	emitter := Emitter{
		Ruleset: Default(),
		Out:     conf.Out,
	}
	logger.Debug(ctx, "playing the game", logging.Fields{
		"begin": Begin,
		"end":   End,
	})
	for n := range Sequence() {
		if err := emitter.Emit(n); err != nil {
			return err
		}
	}
	logger.Debug(ctx, "the game is finished")
	return nil
}
