package assets

import (
	"reflect"
	"testing"
)

func TestMergeOnCreate_AdoptsUploadOrder(t *testing.T) {
	got := MergeOnCreate([]string{"u1", "u2", "u3"})
	want := []string{"u1", "u2", "u3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMergeOnCreate_Empty(t *testing.T) {
	got := MergeOnCreate(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

// Stored [A,B,C], kept [A,C], uploads [D,E] -> [A,C,D,E]; B is gone.
func TestMergeOnUpdate_KeptThenUploaded(t *testing.T) {
	got := MergeOnUpdate([]string{"A", "C"}, []string{"D", "E"})
	want := []string{"A", "C", "D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMergeOnUpdate_CallerOrderWins(t *testing.T) {
	got := MergeOnUpdate([]string{"C", "A"}, nil)
	want := []string{"C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMergeOnUpdate_NoDeduplication(t *testing.T) {
	got := MergeOnUpdate([]string{"A", "A"}, []string{"A"})
	want := []string{"A", "A", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("duplicates must survive: got %v want %v", got, want)
	}
}

func TestMergeOnUpdate_DoesNotAliasInputs(t *testing.T) {
	kept := []string{"A", "B"}
	got := MergeOnUpdate(kept, []string{"C"})
	got[0] = "mutated"
	if kept[0] != "A" {
		t.Fatalf("merge result must not alias the kept slice")
	}
}
