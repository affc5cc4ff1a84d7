package retained

import (
	"slices"
	"testing"
)

func TestAbsolutePosition(t *testing.T) {
	f := newFixture(Options{})

	tests := []struct {
		name   string
		widget *Widget
		wantX  int
		wantY  int
	}{
		{"desktop", f.desktop, 0, 0},
		{"window", f.w1, 10, 10},
		{"leaf in window", f.leaf1, 15, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.g.AbsoluteX(tt.widget); got != tt.wantX {
				t.Errorf("AbsoluteX = %d, want %d", got, tt.wantX)
			}
			if got := f.g.AbsoluteY(tt.widget); got != tt.wantY {
				t.Errorf("AbsoluteY = %d, want %d", got, tt.wantY)
			}
		})
	}

	// Moving an ancestor moves the whole subtree
	f.g.Do(func() { f.w1.SetXY(30, 40) })
	if x, y := f.g.AbsoluteX(f.leaf1), f.g.AbsoluteY(f.leaf1); x != 35 || y != 70 {
		t.Errorf("leaf after move = (%d,%d), want (35,70)", x, y)
	}
}

func TestMoveToTop(t *testing.T) {
	f := newFixture(Options{})

	if got := ids(f.desktop.Children()); !slices.Equal(got, []WidgetID{2, 4}) {
		t.Fatalf("children = %v, want [2 4]", got)
	}

	f.g.MoveToTop(f.w1)
	if got := ids(f.desktop.Children()); !slices.Equal(got, []WidgetID{4, 2}) {
		t.Errorf("after MoveToTop children = %v, want [4 2]", got)
	}

	// Idempotent
	f.g.MoveToTop(f.w1)
	if got := ids(f.desktop.Children()); !slices.Equal(got, []WidgetID{4, 2}) {
		t.Errorf("after second MoveToTop children = %v, want [4 2]", got)
	}

	// Subtree untouched
	if f.leaf1.Parent() != f.w1 || f.w1.ChildCount() != 1 {
		t.Error("MoveToTop changed the moved widget's subtree")
	}

	// Root has no siblings
	f.g.MoveToTop(f.desktop)
	if f.desktop.Parent() != nil {
		t.Error("desktop gained a parent")
	}
}

func TestDrawAndHitOrder(t *testing.T) {
	f := newFixture(Options{})
	f.mustCreate(f.leaf, 5, 0, 0, 10, 10, nil, 0)

	draw := ids(DrawOrder(f.desktop))
	hit := ids(HitOrder(f.desktop))
	reversed := slices.Clone(draw)
	slices.Reverse(reversed)

	if !slices.Equal(draw, []WidgetID{2, 4, 5}) {
		t.Errorf("DrawOrder = %v, want [2 4 5]", draw)
	}
	if !slices.Equal(hit, reversed) {
		t.Errorf("HitOrder = %v, want reverse of %v", hit, draw)
	}
}

func TestNavigation(t *testing.T) {
	f := newFixture(Options{})

	if f.desktop.FirstChild() != f.w1 {
		t.Errorf("FirstChild = %v, want %v", f.desktop.FirstChild(), f.w1)
	}
	if f.w1.NextSibling() != f.w2 {
		t.Errorf("NextSibling = %v, want %v", f.w1.NextSibling(), f.w2)
	}
	if f.w2.NextSibling() != nil {
		t.Error("frontmost widget has a next sibling")
	}
	if f.leaf1.FirstChild() != nil {
		t.Error("leaf has children")
	}
	if !f.desktop.IsAncestorOf(f.leaf1) || !f.w1.IsAncestorOf(f.leaf1) {
		t.Error("IsAncestorOf missed an ancestor")
	}
	if f.w2.IsAncestorOf(f.leaf1) || f.leaf1.IsAncestorOf(f.leaf1) {
		t.Error("IsAncestorOf reported a non-ancestor")
	}
}

func TestFindAndWalk(t *testing.T) {
	f := newFixture(Options{})

	if got := f.g.Find(3); got != f.leaf1 {
		t.Errorf("Find(3) = %v, want %v", got, f.leaf1)
	}
	if got := f.g.Find(99); got != nil {
		t.Errorf("Find(99) = %v, want nil", got)
	}

	var visited []WidgetID
	f.g.Walk(func(w *Widget) bool {
		visited = append(visited, w.ID())
		return true
	})
	if !slices.Equal(visited, []WidgetID{1, 2, 3, 4}) {
		t.Errorf("Walk visited %v, want [1 2 3 4]", visited)
	}

	visited = visited[:0]
	f.g.Walk(func(w *Widget) bool {
		visited = append(visited, w.ID())
		return w.ID() != 2
	})
	if !slices.Equal(visited, []WidgetID{1, 2}) {
		t.Errorf("stopped Walk visited %v, want [1 2]", visited)
	}
}
