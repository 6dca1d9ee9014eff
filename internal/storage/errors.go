package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNotInitialized = errors.New("storage not initialized, run 'habitual init' first")
)

// OpError records the storage operation and record a failure belongs to.
type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// WrapHabitErr wraps err for the habit resource; nil stays nil.
func WrapHabitErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "habit", ID: id, Err: err}
}

// WrapCompletionErr wraps err for the completion resource; nil stays nil.
func WrapCompletionErr(op string, habitID int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "completion for habit", ID: habitID, Err: err}
}
