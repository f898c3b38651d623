package main

import (
	"context"
	"os"

	"go.llib.dev/fizzbuzz"
	"go.llib.dev/fizzbuzz/pkg/env"
	"go.llib.dev/fizzbuzz/pkg/logger"
	"go.llib.dev/fizzbuzz/pkg/logging"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logger.Field("app", "fizzbuzz"))
	if err := Main(ctx); err != nil {
		logger.Fatal(ctx, "error in main", logging.ErrField(err))
		os.Exit(1)
	}
}

// Main configures the ambient surfaces from the environment and plays the game.
// The game output goes to the standard output, everything else to the standard error.
func Main(ctx context.Context) error {
	level, _, err := env.Lookup[logging.Level]("FIZZBUZZ_LOG_LEVEL",
		env.DefaultValue(string(logging.LevelInfo)),
		env.ParseWith(logging.ParseLevel))
	if err != nil {
		return err
	}
	logger.Default.Level = level

	describeRules, _, err := env.Lookup[bool]("FIZZBUZZ_DESCRIBE_RULES",
		env.DefaultValue("false"))
	if err != nil {
		return err
	}
	if describeRules {
		logger.Debug(ctx, "the decision rules of the game", logging.LazyDetail(func() logging.Detail {
			return logging.Field("rules", fizzbuzz.Describe(fizzbuzz.Default(), fizzbuzz.PlainText()))
		}))
	}

	return fizzbuzz.Run(ctx)
}
