package markdown

// CycleMarker rotates a bullet marker forward: '*' → '-' → '+' → '*'.
// Applied when indenting an empty bullet item so nested lists get a
// distinct marker.
func CycleMarker(m rune) rune {
	switch m {
	case '*':
		return '-'
	case '-':
		return '+'
	default:
		return '*'
	}
}

// CycleMarkerReverse rotates a bullet marker backward: '*' → '+',
// '-' → '*', '+' → '-'. Applied when outdenting, undoing one forward
// rotation.
func CycleMarkerReverse(m rune) rune {
	switch m {
	case '*':
		return '+'
	case '-':
		return '*'
	default:
		return '-'
	}
}
