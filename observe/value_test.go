package observe

import "testing"

func TestValueGetSet(t *testing.T) {
	v := NewValue(3.0)
	if v.Get() != 3.0 {
		t.Errorf("Get = %v, want 3.0", v.Get())
	}
	v.Set(4.5)
	if v.Get() != 4.5 {
		t.Errorf("Get after Set = %v, want 4.5", v.Get())
	}
}

func TestValueNotifiesOnChange(t *testing.T) {
	v := NewValue(0)
	var seen []int
	v.Subscribe(func(x int) { seen = append(seen, x) })

	v.Set(1)
	v.Set(1) // unchanged, no notification
	v.Set(2)

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("notifications = %v, want [1 2]", seen)
	}
}

func TestValueSynchronousPush(t *testing.T) {
	v := NewValue(0)
	observed := -1
	v.Subscribe(func(x int) { observed = v.Get() })

	v.Set(7)
	if observed != 7 {
		t.Errorf("subscriber saw %v during Set, want 7", observed)
	}
}

func TestValueMultipleSubscribersInOrder(t *testing.T) {
	v := NewValue("")
	var order []string
	v.Subscribe(func(string) { order = append(order, "a") })
	v.Subscribe(func(string) { order = append(order, "b") })

	v.Set("x")
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, want [a b]", order)
	}
}
