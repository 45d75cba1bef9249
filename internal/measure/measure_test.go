package measure

import "testing"

func TestExtent_Grows(t *testing.T) {
	short, h1, err := Extent("ab", 12)
	if err != nil {
		t.Fatal(err)
	}
	long, h2, err := Extent("abcdef", 12)
	if err != nil {
		t.Fatal(err)
	}
	if long <= short {
		t.Errorf("length(abcdef) = %d, want > length(ab) = %d", long, short)
	}
	if h1 != h2 {
		t.Errorf("height depends on the string: %d vs %d", h1, h2)
	}
}

func TestExtent_Scale(t *testing.T) {
	l12, h12, err := Extent("scale", 12)
	if err != nil {
		t.Fatal(err)
	}
	l24, h24, err := Extent("scale", 24)
	if err != nil {
		t.Fatal(err)
	}
	if d := l24 - 2*l12; d < -2 || d > 2 {
		t.Errorf("length at 24pt = %d, want about twice %d", l24, l12)
	}
	if d := h24 - 2*h12; d < -2 || d > 2 {
		t.Errorf("height at 24pt = %d, want about twice %d", h24, h12)
	}
}

func TestExtent_Height(t *testing.T) {
	// A 12pt face is 200 Fig units per em; the ascent is a large part of it.
	_, h, err := Extent("x", 12)
	if err != nil {
		t.Fatal(err)
	}
	if h < 100 || h > 250 {
		t.Errorf("height = %d, want within [100, 250]", h)
	}
}

func TestExtent_Empty(t *testing.T) {
	l, _, err := Extent("", 12)
	if err != nil {
		t.Fatal(err)
	}
	if l != 0 {
		t.Errorf("length of empty string = %d, want 0", l)
	}
}

func TestExtent_InvalidSize(t *testing.T) {
	for _, size := range []float64{0, -4} {
		if _, _, err := Extent("x", size); err == nil {
			t.Errorf("Extent(size=%g) should fail", size)
		}
	}
}
