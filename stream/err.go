package stream

import (
	"errors"
	"strconv"

	"github.com/ezrec/mipsu/translate"
)

var f = translate.From

var (
	ErrUsage       = errors.New(f("bad usage"))
	ErrPartialWord = errors.New(f("partial word"))
)

// ErrUnit indicates the location of a unit that failed to convert.
type ErrUnit struct {
	Source string
	LineNo int
	Text   string
	Err    error
}

func (err *ErrUnit) Error() string {
	return f("%v:%v '%v' %v", err.Source, strconv.Itoa(err.LineNo), err.Text, err.Err)
}

func (err *ErrUnit) Unwrap() error {
	return err.Err
}

// ErrSkipped is the result of a non-strict stream where units were skipped.
type ErrSkipped int

func (err ErrSkipped) Error() string {
	return f("%v skipped", strconv.Itoa(int(err)))
}
