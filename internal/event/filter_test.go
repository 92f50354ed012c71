package event

import "testing"

func TestFilterEmptyPassesAll(t *testing.T) {
	var f filterSet

	if !f.passes("anything") {
		t.Error("empty filter set should pass every type")
	}
}

func TestFilterAllowList(t *testing.T) {
	var f filterSet
	f.add("A")
	f.add("B")
	f.add("A") // duplicate, ignored

	if !f.passes("A") || !f.passes("B") {
		t.Error("listed types should pass")
	}
	if f.passes("C") {
		t.Error("unlisted type should not pass while list is non-empty")
	}
}

func TestFilterRemove(t *testing.T) {
	var f filterSet
	f.add("A")
	f.add("B")

	if !f.remove("A") {
		t.Error("remove of listed type should return true")
	}
	if f.remove("A") {
		t.Error("remove of missing type should return false")
	}
	if f.passes("A") {
		t.Error("removed type should no longer pass")
	}
	if !f.passes("B") {
		t.Error("remaining type should still pass")
	}
}

func TestFilterClear(t *testing.T) {
	var f filterSet
	f.add("A")
	f.clear()

	if !f.passes("C") {
		t.Error("cleared filter set should pass every type")
	}
}
