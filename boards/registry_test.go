package boards

import (
	"reflect"
	"testing"
)

func TestLookup(t *testing.T) {
	got, ok := Lookup("V3")
	if !ok {
		t.Fatal("V3 not found")
	}
	if got.Name != "V3" || got.StatusLED.Count != 6 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if _, ok := Lookup("v3"); ok {
		t.Fatal("lookup must be case sensitive")
	}
	if _, ok := Lookup("V9"); ok {
		t.Fatal("unknown board resolved")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	got, _ := Lookup("V3")
	got.StatusLED.Count = 99
	got.Platform.Touch[0] = "TX"

	again, _ := Lookup("V3")
	if again.StatusLED.Count != 6 || again.Platform.Touch[0] != "T1" {
		t.Fatal("mutating a looked-up record leaked into the variant table")
	}
	if V3.Platform.Touch[0] != "T1" {
		t.Fatal("V3 platform touch list modified")
	}
}

func TestNames(t *testing.T) {
	if got, want := Names(), []string{"V3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
