package core

import "fmt"

// ReadError is returned when the bookmarks export cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not open bookmarks from file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is returned when the resulting file cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not create resulting file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
