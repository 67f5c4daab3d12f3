package input

import "testing"

func TestWithArgCopies(t *testing.T) {
	base := New(ActionInsertText).WithArg("text", "hi")
	derived := base.WithArg("text", "bye").WithArg("break", true)

	if got := base.StringArg("text"); got != "hi" {
		t.Errorf("expected base arg unchanged, got %q", got)
	}
	if got := derived.StringArg("text"); got != "bye" {
		t.Errorf("expected derived text %q, got %q", "bye", got)
	}
	if !derived.BoolArg("break") {
		t.Errorf("expected break arg true")
	}
}

func TestArgAccessorsDefaults(t *testing.T) {
	a := New(ActionNewline)
	if got := a.StringArg("missing"); got != "" {
		t.Errorf("expected empty string for missing arg, got %q", got)
	}
	if a.BoolArg("missing") {
		t.Errorf("expected false for missing arg")
	}

	a = a.WithArg("n", 3)
	if got := a.StringArg("n"); got != "" {
		t.Errorf("expected empty string for non-string arg, got %q", got)
	}
	if a.BoolArg("n") {
		t.Errorf("expected false for non-bool arg")
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{SourceKeyboard, "keyboard"},
		{SourceScript, "script"},
		{SourceAPI, "api"},
		{Source(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
