package ecs

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/twinstick/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
		alive   int
	}{
		{"single", 1, []int{0}, 0},
		{"destroy_middle", 3, []int{1}, 2},
		{"destroy_none", 2, nil, 2},
		{"destroy_twice", 2, []int{0, 0}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			destroyed := map[int]bool{}
			for _, idx := range c.destroy {
				got := DestroyEntity(w, ents[idx])
				if got == destroyed[idx] {
					t.Fatalf("DestroyEntity(%v) = %v on second call %v", ents[idx], got, destroyed[idx])
				}
				destroyed[idx] = true
			}
			if n := len(Entities(w)); n != c.alive {
				t.Fatalf("expected %d live entities, got %d", c.alive, n)
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %v after %v", fresh, old)
	}
	if fresh == old {
		t.Fatalf("reused handle must differ in generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("fresh entity inherited a component")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	} else if !strings.Contains(err.Error(), "add int") {
		t.Fatalf("expected the kind name in %q", err)
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e := CreateEntity(w)

	if err := Add(w, e, kind, nil); err == nil {
		t.Fatalf("expected error for nil component")
	}
	if err := Add(w, e, kind, intPtr(10)); err != nil {
		t.Fatal(err)
	}
	v, ok := Get(w, e, kind)
	if !ok || *v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}
	*v = 11
	if v2, _ := Get(w, e, kind); *v2 != 11 {
		t.Fatalf("Get should return the stored pointer")
	}
	if !Remove(w, e, kind) {
		t.Fatalf("remove failed")
	}
	if Remove(w, e, kind) {
		t.Fatalf("second remove should report false")
	}
}

func TestQuerySortedByID(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()

	var ents []Entity
	for i := 0; i < 5; i++ {
		ents = append(ents, CreateEntity(w))
	}
	for i := len(ents) - 1; i >= 0; i-- {
		if err := Add(w, ents[i], ka, intPtr(i)); err != nil {
			t.Fatal(err)
		}
		if i%2 == 0 {
			if err := Add(w, ents[i], kb, intPtr(i)); err != nil {
				t.Fatal(err)
			}
		}
	}

	got := w.Query(ka, kb)
	want := []Entity{ents[0], ents[2], ents[4]}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	first, ok := w.First(kb)
	if !ok || first != ents[0] {
		t.Fatalf("First = %v, %v", first, ok)
	}
}

func TestForEachSkipsDead(t *testing.T) {
	tests := []struct {
		name  string
		kinds int
	}{
		{"one", 1},
		{"two", 2},
		{"three", 3},
		{"four", 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			kinds := []component.ComponentKind[int]{
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
				component.NewComponentKind[int](),
			}
			keep := CreateEntity(w)
			gone := CreateEntity(w)
			partial := CreateEntity(w)
			for i := 0; i < tc.kinds; i++ {
				for _, e := range []Entity{keep, gone} {
					if err := Add(w, e, kinds[i], intPtr(i)); err != nil {
						t.Fatal(err)
					}
				}
			}
			if err := Add(w, partial, kinds[0], intPtr(0)); err != nil {
				t.Fatal(err)
			}
			DestroyEntity(w, gone)

			var res []Entity
			visit := func(e Entity) { res = append(res, e) }
			switch tc.kinds {
			case 1:
				ForEach(w, kinds[0], func(e Entity, _ *int) { visit(e) })
			case 2:
				ForEach2(w, kinds[0], kinds[1], func(e Entity, _, _ *int) { visit(e) })
			case 3:
				ForEach3(w, kinds[0], kinds[1], kinds[2], func(e Entity, _, _, _ *int) { visit(e) })
			case 4:
				ForEach4(w, kinds[0], kinds[1], kinds[2], kinds[3], func(e Entity, _, _, _, _ *int) { visit(e) })
			}

			want := 1
			if tc.kinds == 1 {
				want = 2
			}
			if len(res) != want || res[0] != keep {
				t.Fatalf("expected %d entities starting with %v, got %v", want, keep, res)
			}
		})
	}
}
