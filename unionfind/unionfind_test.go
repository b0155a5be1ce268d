package unionfind

import "testing"

func TestNewStartsWithSingletons(t *testing.T) {
	uf := New(5)
	if uf.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", uf.Len())
	}
	if uf.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", uf.Count())
	}
	for i := 0; i < 5; i++ {
		if root := uf.Find(i); root != i {
			t.Errorf("Find(%d) = %d, want %d", i, root, i)
		}
	}
}

func TestUnionConnectsElements(t *testing.T) {
	uf := New(6)
	uf.Union(0, 1)
	uf.Union(2, 3)
	uf.Union(1, 2)

	if !uf.Connected(0, 3) {
		t.Error("expected 0 and 3 connected after chained unions")
	}
	if uf.Connected(0, 4) {
		t.Error("expected 0 and 4 disconnected")
	}
	if uf.Count() != 3 {
		t.Errorf("Count() = %d, want 3", uf.Count())
	}
}

func TestUnionSameSetIsNoop(t *testing.T) {
	uf := New(3)
	uf.Union(0, 1)
	before := uf.Count()
	uf.Union(1, 0)
	uf.Union(0, 0)
	if uf.Count() != before {
		t.Errorf("Count() = %d after redundant unions, want %d", uf.Count(), before)
	}
}

func TestFindSharesRootAcrossSet(t *testing.T) {
	uf := New(8)
	for i := 0; i < 7; i++ {
		uf.Union(i, i+1)
	}
	root := uf.Find(0)
	for i := 1; i < 8; i++ {
		if uf.Find(i) != root {
			t.Errorf("Find(%d) = %d, want shared root %d", i, uf.Find(i), root)
		}
	}
	if uf.Count() != 1 {
		t.Errorf("Count() = %d, want 1", uf.Count())
	}
}
