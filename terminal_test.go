package ssd1327

import (
	"fmt"
	"testing"
)

func TestTerminalSize(t *testing.T) {
	term := New(new(fakeConn), Size128x128, NoRotation).Terminal()
	if cols, rows := term.Size(); cols != 16 || rows != 8 {
		t.Errorf("expected a 16x8 terminal, got %dx%d", cols, rows)
	}
}

func TestTerminalWriteGlyph(t *testing.T) {
	c := new(fakeConn)
	term := New(c, Size128x128, NoRotation).Terminal()
	if err := term.WriteString("A"); err != nil {
		t.Fatal(err)
	}

	// Address window for the cell followed by its two pages.
	if len(c.records) != 4 {
		t.Fatalf("expected 4 writes, got %d", len(c.records))
	}
	assertRecords(t, &fakeConn{records: c.records[:2]}, []record{
		{cmd: 0x15, args: []byte{0x00, 0x07}},
		{cmd: 0x75, args: []byte{0x00, 0x0F}},
	})
	var lit bool
	for _, r := range c.records[2:] {
		if len(r.data) != 8 {
			t.Errorf("expected 8 data bytes per page, got %d", len(r.data))
		}
		for _, b := range r.data {
			if b != 0 {
				lit = true
			}
		}
	}
	if !lit {
		t.Error("expected at least one lit pixel for 'A'")
	}

	if col, row := term.Position(); col != 1 || row != 0 {
		t.Errorf("expected the cursor at (1, 0), got (%d, %d)", col, row)
	}
}

func TestTerminalCellAddressing(t *testing.T) {
	c := new(fakeConn)
	term := New(c, Size128x128, NoRotation).Terminal()
	term.SetPosition(3, 2)
	if err := term.WriteString("x"); err != nil {
		t.Fatal(err)
	}
	assertRecords(t, &fakeConn{records: c.records[:2]}, []record{
		{cmd: 0x15, args: []byte{0x18, 0x1F}},
		{cmd: 0x75, args: []byte{0x20, 0x2F}},
	})
}

func TestTerminalWrap(t *testing.T) {
	c := new(fakeConn)
	term := New(c, Size128x128, NoRotation).Terminal()

	term.SetPosition(15, 0)
	if err := term.WriteString("ab"); err != nil {
		t.Fatal(err)
	}
	if col, row := term.Position(); col != 1 || row != 1 {
		t.Errorf("expected the cursor to wrap to (1, 1), got (%d, %d)", col, row)
	}

	// Writing on the last row wraps back to the top.
	term.SetPosition(15, 7)
	if err := term.WriteString("c"); err != nil {
		t.Fatal(err)
	}
	if col, row := term.Position(); col != 0 || row != 0 {
		t.Errorf("expected the cursor to wrap to (0, 0), got (%d, %d)", col, row)
	}
}

func TestTerminalControlCharacters(t *testing.T) {
	term := New(new(fakeConn), Size128x128, NoRotation).Terminal()

	if err := term.WriteString("ab\ncd"); err != nil {
		t.Fatal(err)
	}
	if col, row := term.Position(); col != 2 || row != 1 {
		t.Errorf("expected the cursor at (2, 1), got (%d, %d)", col, row)
	}

	if err := term.WriteString("\r"); err != nil {
		t.Fatal(err)
	}
	if col, row := term.Position(); col != 0 || row != 1 {
		t.Errorf("expected carriage return to home the column, got (%d, %d)", col, row)
	}
}

func TestTerminalSetPositionClamps(t *testing.T) {
	term := New(new(fakeConn), Size128x128, NoRotation).Terminal()

	term.SetPosition(-3, 100)
	if col, row := term.Position(); col != 0 || row != 7 {
		t.Errorf("expected the cursor clamped to (0, 7), got (%d, %d)", col, row)
	}
	term.SetPosition(100, -3)
	if col, row := term.Position(); col != 15 || row != 0 {
		t.Errorf("expected the cursor clamped to (15, 0), got (%d, %d)", col, row)
	}
}

func TestTerminalClear(t *testing.T) {
	c := new(fakeConn)
	term := New(c, Size128x128, NoRotation).Terminal()
	term.SetPosition(4, 4)
	if err := term.Clear(); err != nil {
		t.Fatal(err)
	}

	if len(c.records) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(c.records))
	}
	assertRecords(t, &fakeConn{records: c.records[:2]}, []record{
		{cmd: 0x15, args: []byte{0x00, 0x7F}},
		{cmd: 0x75, args: []byte{0x00, 0x7F}},
	})
	if len(c.records[2].data) != 2048 {
		t.Errorf("expected 2048 data bytes, got %d", len(c.records[2].data))
	}
	if col, row := term.Position(); col != 0 || row != 0 {
		t.Errorf("expected the cursor homed, got (%d, %d)", col, row)
	}
}

func TestTerminalWriter(t *testing.T) {
	c := new(fakeConn)
	term := New(c, Size128x128, NoRotation).Terminal()
	n, err := fmt.Fprintf(term, "hi %d", 42)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}
	if col, row := term.Position(); col != 5 || row != 0 {
		t.Errorf("expected the cursor at (5, 0), got (%d, %d)", col, row)
	}
}

func TestTerminalWriteAbortsOnTransportError(t *testing.T) {
	c := &fakeConn{failAt: 5}
	term := New(c, Size128x128, NoRotation).Terminal()
	if err := term.WriteString("ab"); err == nil {
		t.Fatal("expected a transport error")
	}
	if col, row := term.Position(); col != 1 || row != 0 {
		t.Errorf("expected the cursor to stop at the failed glyph, got (%d, %d)", col, row)
	}
}
