package markdown

import "testing"

func TestDelimiterPairs(t *testing.T) {
	tests := []struct {
		opener, closer rune
	}{
		{'"', '"'},
		{'\'', '\''},
		{'(', ')'},
		{'[', ']'},
		{'{', '}'},
		{'*', '*'},
		{'_', '_'},
		{'`', '`'},
		{'<', '>'},
	}

	for _, tt := range tests {
		closer, ok := CloserFor(tt.opener)
		if !ok {
			t.Errorf("CloserFor(%q) not found", tt.opener)
			continue
		}
		if closer != tt.closer {
			t.Errorf("CloserFor(%q) = %q, want %q", tt.opener, closer, tt.closer)
		}

		opener, ok := OpenerFor(tt.closer)
		if !ok {
			t.Errorf("OpenerFor(%q) not found", tt.closer)
			continue
		}
		if opener != tt.opener {
			t.Errorf("OpenerFor(%q) = %q, want %q", tt.closer, opener, tt.opener)
		}
	}
}

func TestDelimiterMembership(t *testing.T) {
	if !IsOpener('(') || IsOpener(')') {
		t.Error("parenthesis openness misreported")
	}
	if !IsCloser(')') || IsCloser('(') {
		t.Error("parenthesis closeness misreported")
	}
	if !IsOpener('*') || !IsCloser('*') {
		t.Error("symmetric delimiter must be both opener and closer")
	}
	if IsOpener('a') || IsCloser('a') {
		t.Error("letter must not be a delimiter")
	}
}

func TestOpenersCoversTable(t *testing.T) {
	openers := Openers()
	if len(openers) != len(openToClose) {
		t.Fatalf("Openers() returned %d entries, table has %d", len(openers), len(openToClose))
	}
	for _, r := range openers {
		if !IsOpener(r) {
			t.Errorf("Openers() lists unregistered %q", r)
		}
	}
}
