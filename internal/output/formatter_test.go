package output

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want any
	}{
		{"text", &TextFormatter{}},
		{"json", &JSONFormatter{}},
		{"yaml", &YAMLFormatter{}},
	}
	for _, tt := range tests {
		f, err := New(tt.name, false)
		if err != nil {
			t.Fatalf("New(%q): unexpected error: %v", tt.name, err)
		}
		switch tt.want.(type) {
		case *TextFormatter:
			if _, ok := f.(*TextFormatter); !ok {
				t.Errorf("New(%q) = %T", tt.name, f)
			}
		case *JSONFormatter:
			if _, ok := f.(*JSONFormatter); !ok {
				t.Errorf("New(%q) = %T", tt.name, f)
			}
		case *YAMLFormatter:
			if _, ok := f.(*YAMLFormatter); !ok {
				t.Errorf("New(%q) = %T", tt.name, f)
			}
		}
	}
}

func TestNew_TextColor(t *testing.T) {
	f, err := New("text", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tf := f.(*TextFormatter); !tf.Color {
		t.Error("expected Color to be passed through")
	}
}

func TestNew_Unknown(t *testing.T) {
	if _, err := New("xml", false); err == nil {
		t.Error("expected error for unknown format")
	}
}
