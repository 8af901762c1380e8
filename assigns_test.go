package livelists

import (
	"encoding/json"
	"testing"
)

func TestUpdated_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		updated Updated
		want    string
	}{
		{"Noop", Updated{Kind: UpdatedNoop}, `"noop"`},
		{"Delete", Updated{Kind: UpdatedDelete}, `"delete"`},
		{"Sort", Updated{Kind: UpdatedSort, Anchor: "todo-a", Version: 36}, `{"sort":"todo-a:10"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.updated)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUpdated_SortAttr(t *testing.T) {
	u := Updated{Kind: UpdatedSort, Anchor: "item-42", Version: 71}
	if got := u.SortAttr(); got != "item-42:1z" {
		t.Errorf("SortAttr = %q, want item-42:1z", got)
	}
}

func TestVersion_Base36RoundTrip(t *testing.T) {
	for _, v := range []Version{0, 1, 35, 36, 1295, 1 << 40} {
		parsed, err := ParseVersion(v.Base36())
		if err != nil {
			t.Fatalf("ParseVersion(%q) failed: %v", v.Base36(), err)
		}
		if parsed != v {
			t.Errorf("round trip %d -> %q -> %d", v, v.Base36(), parsed)
		}
	}

	if _, err := ParseVersion("not a version"); err == nil {
		t.Error("expected an error for garbage input")
	}
}

func TestUpdateMode_MarshalJSON(t *testing.T) {
	for mode, want := range map[UpdateMode]string{
		UpdatePartial: `"partial"`,
		UpdateFull:    `"full"`,
	} {
		got, err := json.Marshal(mode)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(got) != want {
			t.Errorf("mode %v marshaled to %s, want %s", mode, got, want)
		}
	}
}

func TestDeriveName(t *testing.T) {
	tests := []struct {
		name   string
		source any
		want   string
	}{
		{"Value", todoSource{}, "todo_source"},
		{"Pointer", &todoSource{}, "todo_source"},
		{"Anonymous", struct{}{}, "list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveName(tt.source); got != tt.want {
				t.Errorf("deriveName = %q, want %q", got, tt.want)
			}
		})
	}
}
