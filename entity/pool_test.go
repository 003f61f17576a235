package entity

import "testing"

type testSlot struct {
	id   int
	live bool
}

func newTestPool(capacity int) *Pool[testSlot] {
	return NewPool(capacity, func(s *testSlot) *bool { return &s.live })
}

func TestPoolNeverExceedsCapacity(t *testing.T) {
	p := newTestPool(4)
	for i := 0; i < 10; i++ {
		p.Alloc()
		if p.Count() > p.Cap() {
			t.Fatalf("Occupied count %d exceeds capacity %d", p.Count(), p.Cap())
		}
	}
	if p.Count() != 4 {
		t.Errorf("Expected saturated pool count 4, got %d", p.Count())
	}
}

func TestPoolRoundRobinOverwritesOldest(t *testing.T) {
	p := newTestPool(3)
	for i := 0; i < 3; i++ {
		p.Alloc().id = i
	}
	// The 4th allocation wraps the cursor back onto the 1st slot
	p.Alloc().id = 99
	if got := p.At(0).id; got != 99 {
		t.Errorf("Expected slot 0 overwritten with id 99, got %d", got)
	}
	if got := p.At(1).id; got != 1 {
		t.Errorf("Expected slot 1 untouched with id 1, got %d", got)
	}
}

func TestPoolReleaseAll(t *testing.T) {
	p := newTestPool(8)
	for i := 0; i < 5; i++ {
		p.Alloc()
	}
	p.ReleaseAll()
	if p.Count() != 0 {
		t.Errorf("Expected empty pool after ReleaseAll, got count %d", p.Count())
	}
	visited := 0
	p.ForEach(func(*testSlot) { visited++ })
	if visited != 0 {
		t.Errorf("Expected ForEach to skip freed slots, visited %d", visited)
	}
	// Cursor keeps advancing from where it was
	p.Alloc()
	if !p.At(5).live {
		t.Error("Expected allocation after ReleaseAll to continue at cursor position 5")
	}
}

func TestPoolForEachIndexOrder(t *testing.T) {
	p := newTestPool(5)
	for i := 0; i < 4; i++ {
		p.Alloc().id = i
	}
	p.At(1).live = false

	var order []int
	p.ForEach(func(s *testSlot) { order = append(order, s.id) })

	want := []int{0, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("Expected %d visits, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Visit %d: expected id %d, got %d", i, want[i], order[i])
		}
	}
}

func TestAlienAndBulletPoolCapacities(t *testing.T) {
	if got := NewAlienPool().Cap(); got != 128 {
		t.Errorf("Expected alien pool capacity 128, got %d", got)
	}
	if got := NewBulletPool().Cap(); got != 256 {
		t.Errorf("Expected bullet pool capacity 256, got %d", got)
	}
}

func TestBulletRadiusByKind(t *testing.T) {
	b := Bullet{FromPlayer: true}
	if b.Radius() != 2.0 {
		t.Errorf("Expected player bullet radius 2, got %v", b.Radius())
	}
	b.FromPlayer = false
	if b.Radius() != 1.0 {
		t.Errorf("Expected alien bullet radius 1, got %v", b.Radius())
	}
}
