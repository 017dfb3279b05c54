//    TweetTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"reflect"
	"testing"
)

func TestFlattenSlices(t *testing.T) {
	got := FlattenSlices([][]int{{1, 2}, {3}})
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("FlattenSlices() = %v, want [1 2 3]", got)
	}

	dupes := FlattenSlices([][]string{{"a", "b"}, {}, {"a"}})
	if !reflect.DeepEqual(dupes, []string{"a", "b", "a"}) {
		t.Errorf("FlattenSlices() should neither dedupe nor reorder: %v", dupes)
	}

	if got := FlattenSlices([][]int{}); len(got) != 0 {
		t.Errorf("FlattenSlices() of nothing = %v", got)
	}
}

func TestJoinStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"two", []string{"a", "b"}, "a b"},
		{"one", []string{"solo"}, "solo"},
		{"none", []string{}, ""},
		{"keeps inner spacing", []string{"a ", " b"}, "a   b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := JoinStrings(tc.in); got != tc.want {
				t.Errorf("JoinStrings(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSortedSetKeys(t *testing.T) {
	got := SortedSetKeys(ToSet([]string{"the", "a", "of", "a"}))
	if !reflect.DeepEqual(got, []string{"a", "of", "the"}) {
		t.Errorf("SortedSetKeys() = %v", got)
	}
	if got = StringMapKeysIntoSlice(map[string]int{}); len(got) != 0 {
		t.Errorf("StringMapKeysIntoSlice() of nothing = %v", got)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"a", "a", "b", "a", "c"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Unique() = %v", got)
	}
}

func TestChunkSlice(t *testing.T) {
	got := ChunkSlice([]int{1, 2, 3, 4, 5}, 2)
	if len(got) != 3 || len(got[2]) != 1 {
		t.Errorf("ChunkSlice() = %v", got)
	}
}

func TestPurgechars(t *testing.T) {
	if got := Purgechars("!?", "what?! no!"); got != "what no" {
		t.Errorf("Purgechars() = %q", got)
	}
	if got := Purgechars("xyz", "untouched"); got != "untouched" {
		t.Errorf("Purgechars() = %q", got)
	}
}

func TestReduceLengthening(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"waaaaaaay", "waaay"},
		{"yes", "yes"},
		{"!!!!!!", "!!!"},
		{"cooool", "coool"},
		{"ééééé", "ééé"},
	}
	for _, tc := range tests {
		if got := ReduceLengthening(tc.in, 3); got != tc.want {
			t.Errorf("ReduceLengthening(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
