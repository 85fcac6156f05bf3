package sqltemplate

import "testing"

func TestAccepts(t *testing.T) {
	all := []Kind{KindNull, KindBool, KindInt, KindFloat, KindString, KindList, KindAssoc, KindOmit}
	accepted := map[Placeholder][]Kind{
		Generic:    {KindNull, KindBool, KindInt, KindFloat, KindString, KindOmit},
		Integer:    {KindNull, KindBool, KindInt, KindOmit},
		FloatKind:  {KindNull, KindFloat},
		Array:      {KindList, KindAssoc},
		Identifier: all,
	}

	for p, kinds := range accepted {
		ok := make(map[Kind]bool, len(kinds))
		for _, k := range kinds {
			ok[k] = true
		}
		for _, k := range all {
			if got := Accepts(p, k); got != ok[k] {
				t.Errorf("Accepts(%s, %s) = %v, want %v", p, k, got, ok[k])
			}
		}
	}
}

func TestAcceptsOutOfRange(t *testing.T) {
	if Accepts(Placeholder(42), KindInt) || Accepts(Generic, Kind(42)) {
		t.Fatalf("expected unknown placeholder or kind to be rejected")
	}
}

func TestPlaceholderString(t *testing.T) {
	want := map[Placeholder]string{Generic: "?", Integer: "?d", FloatKind: "?f", Array: "?a", Identifier: "?#"}
	for p, s := range want {
		if p.String() != s {
			t.Fatalf("%d.String() = %q, want %q", p, p.String(), s)
		}
	}
}
