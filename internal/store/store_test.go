package store

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "planner.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLoad_MissingKeyFailsSoft(t *testing.T) {
	st := testStore(t)

	got := []string{"sentinel"}
	if st.Load("nope", &got) {
		t.Fatal("Load of a missing key reported success")
	}
	if len(got) != 1 || got[0] != "sentinel" {
		t.Fatalf("Load touched the output on failure: %v", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	st := testStore(t)

	type record struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Count float64 `json:"count"`
	}
	in := []record{{ID: "r1", Name: "alpha", Count: 2.5}, {ID: "r2", Name: "beta", Count: 7}}

	if err := st.Save(KeyEvents, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out []record
	if !st.Load(KeyEvents, &out) {
		t.Fatal("Load after Save failed")
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("round trip = %v, want %v", out, in)
	}
}

func TestSave_OverwritesPreviousValue(t *testing.T) {
	st := testStore(t)

	if err := st.Save(KeyStreaks, []string{"2026-03-01"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := st.Save(KeyStreaks, []string{"2026-03-01", "2026-03-02"}); err != nil {
		t.Fatalf("Save (second): %v", err)
	}

	var out []string
	if !st.Load(KeyStreaks, &out) {
		t.Fatal("Load failed")
	}
	if len(out) != 2 {
		t.Fatalf("after overwrite = %d entries, want 2", len(out))
	}
}

func TestLoad_CorruptDocumentFailsSoft(t *testing.T) {
	st := testStore(t)

	if err := st.Save(KeyBudget, map[string]string{"k": "v"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Wrong target shape: object into a slice.
	var out []int
	if st.Load(KeyBudget, &out) {
		t.Fatal("Load into a mismatched shape reported success")
	}
}
