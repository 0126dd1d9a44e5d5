package lang

import "testing"

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Language
		ok   bool
	}{
		{"app.js", JS, true},
		{"mod.MJS", JS, true},
		{"legacy.cjs", JS, true},
		{"style.css", CSS, true},
		{"dir/style.CSS", CSS, true},
		{"readme.md", JS, false},
		{"noext", JS, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FromPath(tt.path)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("lang: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if l, err := Parse("JavaScript"); err != nil || l != JS {
		t.Errorf("Parse(JavaScript): %v, %v", l, err)
	}
	if l, err := Parse(" css "); err != nil || l != CSS {
		t.Errorf("Parse(css): %v, %v", l, err)
	}
	if _, err := Parse("scss"); err == nil {
		t.Error("expected error for scss")
	}
}
