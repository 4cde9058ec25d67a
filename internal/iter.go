package internal

import (
	"iter"
)

// IterErrConcat concatenates iterators of values paired with errors into a
// single iterator sequence. The sequence ends after the first non-nil error,
// so later iterators are never started.
func IterErrConcat[T any](seqs ...iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, seq := range seqs {
			for val, err := range seq {
				if !yield(val, err) || err != nil {
					return // Stop if the consumer stops, or on error
				}
			}
		}
	}
}
