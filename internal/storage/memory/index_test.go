package memory

import (
	"sync"
	"testing"
)

func TestTaskList_OrderAndDedup(t *testing.T) {
	list := NewTaskList()
	list.Add(3)
	list.Add(1)
	list.Add(2)
	list.Add(1) // duplicate, ignored

	items := list.Items()
	want := []int64{3, 1, 2}
	if len(items) != len(want) {
		t.Fatalf("Items() = %v, want %v", items, want)
	}
	for i, id := range items {
		if id != want[i] {
			t.Fatalf("Items()[%d] = %d, want %d", i, id, want[i])
		}
	}

	list.Remove(1)
	if list.Contains(1) {
		t.Fatal("Contains(1) after Remove = true")
	}
	if got := list.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestOwnerIndex(t *testing.T) {
	idx := NewOwnerIndex()
	idx.Add(1, 10)
	idx.Add(1, 11)
	idx.Add(2, 12)

	if got := idx.Count(1); got != 2 {
		t.Fatalf("Count(1) = %d, want 2", got)
	}
	if got := idx.Get(2); len(got) != 1 || got[0] != 12 {
		t.Fatalf("Get(2) = %v, want [12]", got)
	}

	idx.Remove(1, 10)
	idx.Remove(1, 11)
	if got := idx.Count(1); got != 0 {
		t.Fatalf("Count(1) after removals = %d, want 0", got)
	}
	if got := idx.Get(3); got != nil {
		t.Fatalf("Get(unknown) = %v, want nil", got)
	}
}

func TestOwnerIndex_Concurrent(t *testing.T) {
	idx := NewOwnerIndex()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				idx.Add(int64(g%2), int64(g*1000+i))
			}
		}(g)
	}
	wg.Wait()

	if got := idx.Count(0) + idx.Count(1); got != 800 {
		t.Fatalf("total indexed = %d, want 800", got)
	}
}
