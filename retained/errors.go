package retained

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNoMemory is returned when the allocator refuses a request.
	ErrNoMemory = errors.New("out of widget memory")

	// ErrChildrenNotAllowed is returned when the parent's type does not
	// accept children.
	ErrChildrenNotAllowed = errors.New("parent does not allow children")

	// ErrDesktopExists is returned when a second desktop is requested.
	ErrDesktopExists = errors.New("desktop already exists")

	// ErrNoDesktop is returned when a widget without parent is created
	// before the desktop.
	ErrNoDesktop = errors.New("no desktop to attach to")

	// ErrWrongType is returned when a type-specific operation gets an
	// instance of another type.
	ErrWrongType = errors.New("widget has wrong type")

	// ErrInvalidRole is returned for a color role outside the type's table.
	ErrInvalidRole = errors.New("invalid color role")

	// ErrNotFound is returned when a widget is not part of the tree.
	ErrNotFound = errors.New("widget not found")
)

// CheckType verifies that w is an instance of desc. A mismatch is a
// programming error: it panics in guidebug builds and otherwise logs and
// returns ErrWrongType so the caller can bail out before mutating anything.
func CheckType(w *Widget, desc *Descriptor) error {
	if w != nil && w.desc == desc {
		return nil
	}

	got := "<nil>"
	if w != nil {
		got = w.desc.Name
	}
	err := fmt.Errorf("%w: got %s, want %s", ErrWrongType, got, desc.Name)
	if debugAsserts {
		panic(err)
	}
	if w != nil {
		w.gui.log.Warn("type mismatch", slog.String("want", desc.Name), slog.String("got", got))
	}
	return err
}

// checkFlags verifies that w's type carries the descriptor flags.
func checkFlags(w *Widget, flags DescFlags, op string) error {
	if w != nil && w.desc.Flags&flags == flags {
		return nil
	}

	got := "<nil>"
	if w != nil {
		got = w.desc.Name
	}
	err := fmt.Errorf("%s: %w: %s", op, ErrWrongType, got)
	if debugAsserts {
		panic(err)
	}
	if w != nil {
		w.gui.log.Warn("type mismatch", slog.String("op", op), slog.String("got", got))
	}
	return err
}
