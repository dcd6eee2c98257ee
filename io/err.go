package io

import (
	"github.com/ezrec/wvm/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageTooLarge = translate.NewError("image too large")
)

// ErrImage reports the image file that could not be read or written.
type ErrImage struct {
	Name string
	Err  error
}

func (err *ErrImage) Error() string {
	return f("image %v: %v", err.Name, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
