// Package zerokit helps with zero value related use-cases such as initialisation.
package zerokit

import (
	"fmt"
	"sync"
)

// Coalesce will return the first non-zero value from the provided values.
func Coalesce[T any](vs ...T) T {
	var zero T
	for _, v := range vs {
		if any(v) != any(zero) {
			return v
		}
	}
	return zero
}

// Init will initialise a zero value through its pointer (*T),
// if it's not set, it assigns a value to it based on the supplied initialiser.
// Init is safe to use concurrently.
// An initialiser must not call Init itself, the calls share a single lock.
func Init[T any, I initialiser[T]](ptr *T, init I) T {
	if ptr == nil {
		panic(fmt.Sprintf("nil pointer exception with zerokit.Init for %T", *new(T)))
	}
	if v, ok := lookup(ptr); ok {
		return v
	}
	initLock.Lock()
	defer initLock.Unlock()
	if v, ok := peek(ptr); ok {
		return v
	}
	*ptr = initialise[T, I](init)
	return *ptr
}

var initLock sync.RWMutex

type initialiser[T any] interface {
	func() T | *T
}

func initialise[T any, I initialiser[T]](init I) T {
	switch dv := any(init).(type) {
	case func() T:
		return dv()
	case *T:
		return *dv
	default:
		var zero T
		return zero
	}
}

func lookup[T any](ptr *T) (T, bool) {
	initLock.RLock()
	defer initLock.RUnlock()
	return peek(ptr)
}

func peek[T any](ptr *T) (T, bool) {
	var zero T
	v := *ptr
	return v, any(v) != any(zero)
}
