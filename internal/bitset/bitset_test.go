package bitset

import "testing"

func TestSetUnset(t *testing.T) {
	var b Bitmask
	b = b.Set(3)
	if !b.IsSet(3) {
		t.Error("expected bit 3 to be set")
	}
	b = b.Unset(3)
	if b.IsSet(3) {
		t.Error("expected bit 3 to be unset")
	}
}

func TestCardinality(t *testing.T) {
	var b Bitmask
	b = b.Set(0).Set(5).Set(10)
	if got := b.Cardinality(); got != 3 {
		t.Error("expected cardinality 3, got:", got)
	}
}

func TestUnionIntersection(t *testing.T) {
	var a, b Bitmask
	a = a.Set(0).Set(1)
	b = b.Set(1).Set(2)

	if u := a.Union(b); u.Cardinality() != 3 {
		t.Error("expected union cardinality 3, got:", u.Cardinality())
	}
	if i := a.Intersection(b); !i.Equal(Bitmask(0).Set(1)) {
		t.Error("expected intersection to be just bit 1")
	}
}
