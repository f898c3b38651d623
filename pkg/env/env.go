// Package env provides typed access to the operating system's environment variables.
package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.llib.dev/fizzbuzz/pkg/errorkit"
)

// ErrUnsupportedType is returned when Lookup is used with a type
// that has no built-in parser and no ParseWith option was supplied.
const ErrUnsupportedType errorkit.Error = "ErrUnsupportedType"

// Lookup returns the value of the given environment variable, parsed as T.
// The second return value reports whether the variable was present
// or a DefaultValue option stood in for it.
func Lookup[T any](key string, opts ...LookupOption) (T, bool, error) {
	var conf lookupEnvOptions
	for _, opt := range opts {
		opt.configure(&conf)
	}
	val, ok := os.LookupEnv(key)
	if !ok && conf.DefaultValue != nil {
		ok = true
		val = *conf.DefaultValue
	}
	if !ok {
		var err error
		if conf.IsRequired {
			err = errMissingEnvironmentVariable(key)
		}
		return *new(T), false, err
	}
	out, err := parse[T](val, conf)
	if err != nil {
		return *new(T), false, errParsingEnvValue(key, err)
	}
	return out, true, nil
}

type LookupOption interface{ configure(*lookupEnvOptions) }

type funcLookupOption func(*lookupEnvOptions)

func (fn funcLookupOption) configure(options *lookupEnvOptions) { fn(options) }

// DefaultValue supplies the raw value to use when the environment variable is not set.
// The default value goes through the same parsing as a present environment variable.
func DefaultValue(val string) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.DefaultValue = &val
	})
}

// Required makes Lookup return an error when the environment variable is missing.
func Required() LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.IsRequired = true
	})
}

type ParserFunc[T any] func(envValue string) (T, error)

// ParseWith registers a custom parser for the Lookup call.
func ParseWith[T any](parser ParserFunc[T]) LookupOption {
	return funcLookupOption(func(options *lookupEnvOptions) {
		options.Parser = func(ev string) (any, error) {
			return parser(ev)
		}
	})
}

type lookupEnvOptions struct {
	DefaultValue *string
	IsRequired   bool
	Parser       func(string) (any, error)
}

func parse[T any](val string, opts lookupEnvOptions) (T, error) {
	if opts.Parser != nil {
		v, err := opts.Parser(val)
		if err != nil {
			return *new(T), err
		}
		out, ok := v.(T)
		if !ok {
			return *new(T), fmt.Errorf("%w: %T value from parser, expected %T",
				ErrUnsupportedType, v, *new(T))
		}
		return out, nil
	}
	var (
		out T
		err error
	)
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = val
	case *bool:
		*ptr, err = strconv.ParseBool(val)
	case *int:
		*ptr, err = strconv.Atoi(val)
	case *float64:
		*ptr, err = strconv.ParseFloat(val, 64)
	case *time.Duration:
		*ptr, err = time.ParseDuration(val)
	default:
		err = fmt.Errorf("%w: %T", ErrUnsupportedType, out)
	}
	return out, err
}

func errMissingEnvironmentVariable(key string) error {
	return fmt.Errorf("missing environment variable: %s", key)
}

func errParsingEnvValue(key string, err error) error {
	return fmt.Errorf("error parsing the value of %s: %w", key, err)
}
