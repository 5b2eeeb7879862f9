package util

import (
	"reflect"
	"testing"
)

func TestDedupeNonEmptyStrings(t *testing.T) {
	got := DedupeNonEmptyStrings([]string{" a", "", "b", "a", "  ", "c", "b "})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := DedupeNonEmptyStrings(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"b": 1, "a": 2, "c": 3})
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := SortedKeys(map[string]struct{}{}); len(got) != 0 {
		t.Fatalf("expected no keys, got %v", got)
	}
}
