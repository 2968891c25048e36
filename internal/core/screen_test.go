package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '█', ColorGreen)
	cell := s.GetCell(3, 2)
	if cell.Rune != '█' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3,2) = %+v, expected colored block", cell)
	}

	// Out-of-bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get(-1,0) = %q, expected space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("Get(10,0) = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, 'o', ColorCyan)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1,1) = %+v, expected blank default", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 1, '#')

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 8x6", s.Width(), s.Height())
	}
	if got := s.Get(2, 1); got != '#' {
		t.Errorf("Get(2,1) after grow = %q, expected '#'", got)
	}

	s.Resize(3, 2)
	if got := s.Get(2, 1); got != '#' {
		t.Errorf("Get(2,1) after shrink = %q, expected '#'", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "hello") // clips at the right edge
	if got := s.Row(0); got != "       hel" {
		t.Errorf("Row(0) = %q, expected %q", got, "       hel")
	}

	s.DrawTextCentered(1, "ab")
	if got := s.Row(1); got != "    ab    " {
		t.Errorf("Row(1) = %q, expected %q", got, "    ab    ")
	}
}
