package retained

import (
	"errors"
	"testing"
)

func TestColorResolution(t *testing.T) {
	budget := NewBudget(1 << 10)
	f := newFixture(Options{
		Allocator: budget,
		Theme:     map[string][]Color{"TestLeaf": {ColorBlue}},
	})
	other := f.mustCreate(f.leaf, 10, 0, 0, 5, 5, f.w2, 0)

	// Theme replaces the default; roles past the theme table fall back
	if got := f.leaf1.Color(0); got != ColorBlue {
		t.Errorf("themed role 0 = %v, want %v", got, ColorBlue)
	}
	if got := f.leaf1.Color(1); got != ColorGreen {
		t.Errorf("role 1 = %v, want default %v", got, ColorGreen)
	}
	if got := f.w1.Color(0); got != ColorWinLightGray {
		t.Errorf("unthemed type = %v, want %v", got, ColorWinLightGray)
	}
	if got := f.leaf1.Color(5); got != ColorNone {
		t.Errorf("unknown role = %v, want ColorNone", got)
	}

	used := budget.Used()
	var err error
	f.g.Do(func() { err = f.leaf1.SetColor(1, ColorYellow) })
	if err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if budget.Used() != used+8 {
		t.Errorf("color table charged %d bytes, want 8", budget.Used()-used)
	}

	// The override table starts from the resolved colors
	if f.leaf1.Color(0) != ColorBlue || f.leaf1.Color(1) != ColorYellow {
		t.Errorf("override colors = %v, %v", f.leaf1.Color(0), f.leaf1.Color(1))
	}
	if other.Color(1) != ColorGreen || other.HasColorOverrides() {
		t.Error("override leaked to another instance")
	}

	f.g.Do(func() { err = f.leaf1.SetColor(2, ColorYellow) })
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}

	if err := f.g.Remove(f.leaf1); err != nil {
		t.Fatal(err)
	}
	if budget.Used() != used-4 {
		t.Errorf("used = %d after remove, want %d", budget.Used(), used-4)
	}
}

func TestSetColorOutOfMemory(t *testing.T) {
	f := newFixture(Options{Allocator: NewBudget(16 + 16 + 4 + 16)})

	var err error
	f.g.Do(func() { err = f.leaf1.SetColor(0, ColorBlack) })
	if !errors.Is(err, ErrNoMemory) {
		t.Fatalf("err = %v, want ErrNoMemory", err)
	}
	if f.leaf1.HasColorOverrides() || f.leaf1.Color(0) != ColorRed {
		t.Error("failed SetColor changed the widget")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"#80123456", Color(0x80123456), false},
		{"red", ColorRed, false},
		{" Black ", ColorBlack, false},
		{"#12345", 0, true},
		{"#GGGGGG", 0, true},
		{"chartreuse", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0x80FF0000).RGBA()
	if a != 0x8080 || r != 0x8080 || g != 0 || b != 0 {
		t.Errorf("RGBA = %x %x %x %x, want premultiplied half red", r, g, b, a)
	}
	if s := ColorRed.String(); s != "#FFFF0000" {
		t.Errorf("String = %q", s)
	}
}
