package configs

import (
	"errors"
	"iter"
)

func First[T any](loader Loader, path string) (value T) {
	err := loader.AssignFirst(path, &value)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return value
}

func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				break
			}
		}
	}
}
