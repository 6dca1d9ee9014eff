package storage

import (
	"errors"
	"testing"
)

func TestOpError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "with id", err: WrapHabitErr("get", 5, ErrNotFound), want: "get habit 5: not found"},
		{name: "without id", err: WrapHabitErr("list", 0, errors.New("disk I/O error")), want: "list habit: disk I/O error"},
		{name: "completion", err: WrapCompletionErr("record", 3, errors.New("locked")), want: "record completion for habit 3: locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	err := WrapHabitErr("get", 9, ErrNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false")
	}

	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatal("errors.As(err, *OpError) = false")
	}
	if opErr.ID != 9 || opErr.Op != "get" {
		t.Errorf("OpError = %+v", opErr)
	}
}

func TestWrapNil(t *testing.T) {
	if WrapHabitErr("get", 1, nil) != nil {
		t.Error("WrapHabitErr(nil) != nil")
	}
	if WrapCompletionErr("record", 1, nil) != nil {
		t.Error("WrapCompletionErr(nil) != nil")
	}
}
