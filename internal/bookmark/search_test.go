package bookmark

import "testing"

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Rust", "rust"},
		{"  Web-Dev  ", "web-dev"},
		{"ALLCAPS", "allcaps"},
		{"   ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTagSetMatches(t *testing.T) {
	tags := []string{"rust", "web-framework", "Backend"}

	tests := []struct {
		filters []string
		want    bool
	}{
		{nil, true},
		{[]string{"rust"}, true},
		{[]string{"web"}, true},     // substring of web-framework
		{[]string{"RUST"}, true},    // case-insensitive
		{[]string{"backend"}, true}, // matches despite stored casing
		{[]string{"rust", "web"}, true},
		{[]string{"rust", "python"}, false}, // every filter required
		{[]string{"python"}, false},
		{[]string{"frame", "frame"}, true}, // duplicates allowed, both satisfied
	}
	for _, tt := range tests {
		if got := tagSetMatches(tags, tt.filters); got != tt.want {
			t.Errorf("tagSetMatches(%v, %v) = %v, want %v", tags, tt.filters, got, tt.want)
		}
	}
}

func TestFilterByTags(t *testing.T) {
	// filterByTags reuses the input slice, so build a fresh one per case
	fresh := func() []Result {
		return []Result{
			{Tags: []string{"rust", "cli"}},
			{Tags: []string{"web-dev", "rust"}},
			{Tags: []string{"python"}},
			{Tags: nil},
		}
	}

	kept := filterByTags(fresh(), []string{"rust"})
	if len(kept) != 2 {
		t.Fatalf("kept %d results, want 2", len(kept))
	}

	kept = filterByTags(fresh(), []string{"rust", "web"})
	if len(kept) != 1 {
		t.Fatalf("kept %d results, want 1", len(kept))
	}
	if kept[0].Tags[0] != "web-dev" {
		t.Errorf("kept wrong result: %v", kept[0].Tags)
	}

	if kept = filterByTags(fresh(), []string{"missing"}); len(kept) != 0 {
		t.Errorf("kept %d results, want 0", len(kept))
	}
}
