package logging

import (
	"strings"

	"go.llib.dev/fizzbuzz/pkg/errorkit"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

type Level string

func (ll Level) String() string { return string(ll) }

var defaultLevel Level = LevelInfo

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,

	*new(Level): 1, // zero Level value is considered as LevelInfo
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}

const ErrParseLevel errorkit.Error = "ErrParseLevel"

// ParseLevel maps the raw name of a logging level to its Level value.
func ParseLevel(raw string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(raw)))
	if len(level) == 0 {
		return *new(Level), ErrParseLevel.F("empty logging level value")
	}
	if _, ok := levelPriorityMapping[level]; !ok {
		return *new(Level), ErrParseLevel.F("unknown logging level: %q", raw)
	}
	return level, nil
}
