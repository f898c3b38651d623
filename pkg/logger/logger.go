// Package logger provides package-level shorthands to a shared default Logger.
package logger

import (
	"context"

	"go.llib.dev/fizzbuzz/pkg/logging"
)

// Default is the logger used by the package-level logging functions.
var Default = &logging.Logger{}

func Debug(ctx context.Context, msg string, ds ...logging.Detail) {
	Default.Debug(ctx, msg, ds...)
}

func Info(ctx context.Context, msg string, ds ...logging.Detail) {
	Default.Info(ctx, msg, ds...)
}

func Warn(ctx context.Context, msg string, ds ...logging.Detail) {
	Default.Warn(ctx, msg, ds...)
}

func Error(ctx context.Context, msg string, ds ...logging.Detail) {
	Default.Error(ctx, msg, ds...)
}

func Fatal(ctx context.Context, msg string, ds ...logging.Detail) {
	Default.Fatal(ctx, msg, ds...)
}

func Field(key string, value any) logging.Detail {
	return logging.Field(key, value)
}

func ErrField(err error) logging.Detail {
	return logging.ErrField(err)
}
