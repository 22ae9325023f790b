package calclex

import (
	"strings"
	"testing"
)

func TestSliceCharStream(t *testing.T) {
	stream := NewSliceCharStream(NewSource("test", "ab"))

	if stream.AtEnd() {
		t.Fatal("should not be at end")
	}
	if c := stream.Current(); c != 'a' {
		t.Fatalf("got %q", c)
	}
	if c := stream.Peek(); c != 'b' {
		t.Fatalf("got %q", c)
	}

	stream.Advance()
	if c := stream.Current(); c != 'b' {
		t.Fatalf("got %q", c)
	}
	if c := stream.Peek(); c != 0 {
		t.Fatalf("got %q", c)
	}
	if stream.AtEnd() {
		t.Fatal("should not be at end")
	}

	stream.Advance()
	if !stream.AtEnd() {
		t.Fatal("should be at end")
	}
	if c := stream.Current(); c != 0 {
		t.Fatalf("got %q", c)
	}
	if c := stream.Peek(); c != 0 {
		t.Fatalf("got %q", c)
	}

	// advancing past the end has no effect
	offset := stream.Pos().Offset
	stream.Advance()
	if !stream.AtEnd() {
		t.Fatal("should be at end")
	}
	if stream.Pos().Offset != offset {
		t.Fatalf("got %d", stream.Pos().Offset)
	}

	if err := stream.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestSliceCharStreamEmpty(t *testing.T) {
	stream := NewSliceCharStream(NewSource("test", ""))
	if !stream.AtEnd() {
		t.Fatal("should be at end")
	}
	if c := stream.Current(); c != 0 {
		t.Fatalf("got %q", c)
	}
	if c := stream.Peek(); c != 0 {
		t.Fatalf("got %q", c)
	}
}

func TestConsumeWhile(t *testing.T) {
	stream := NewSliceCharStream(NewSource("test", "123ab"))

	run := stream.ConsumeWhile(isDigit)
	if string(run) != "123" {
		t.Fatalf("got %q", run)
	}
	if c := stream.Current(); c != 'a' {
		t.Fatalf("got %q", c)
	}

	// no match, no movement
	run = stream.ConsumeWhile(isDigit)
	if len(run) != 0 {
		t.Fatalf("got %q", run)
	}
	if c := stream.Current(); c != 'a' {
		t.Fatalf("got %q", c)
	}

	// run to the end
	run = stream.ConsumeWhile(isAlpha)
	if string(run) != "ab" {
		t.Fatalf("got %q", run)
	}
	if !stream.AtEnd() {
		t.Fatal("should be at end")
	}

	// at end, never calls the predicate
	run = stream.ConsumeWhile(func(byte) bool { return true })
	if len(run) != 0 {
		t.Fatalf("got %q", run)
	}
}

func TestSkipWhitespace(t *testing.T) {
	stream := NewSliceCharStream(NewSource("test", " \t\n\f\r1 "))

	if !stream.SkipWhitespace() {
		t.Fatal("should skip")
	}
	if c := stream.Current(); c != '1' {
		t.Fatalf("got %q", c)
	}

	if stream.SkipWhitespace() {
		t.Fatal("should not skip")
	}

	stream.Advance()
	if !stream.SkipWhitespace() {
		t.Fatal("should skip")
	}
	if !stream.AtEnd() {
		t.Fatal("should be at end")
	}

	if stream.SkipWhitespace() {
		t.Fatal("should not skip")
	}
}

func TestSliceCharStreamPos(t *testing.T) {
	src := NewSource("test", "a\nbc\nd")
	stream := NewSliceCharStream(src)

	expected := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 2, 1},
		{3, 2, 2},
		{4, 2, 3},
		{5, 3, 1},
		{6, 3, 2},
	}

	for i, e := range expected {
		pos := stream.Pos()
		if pos.Source != src {
			t.Fatalf("step %d: bad source", i)
		}
		if pos.Offset != e.offset || pos.Line != e.line || pos.Column != e.column {
			t.Fatalf("step %d: got %d %d:%d", i, pos.Offset, pos.Line, pos.Column)
		}
		stream.Advance()
	}
}

func TestConsumeWhileAllocs(t *testing.T) {
	src := NewSource("test", strings.Repeat("12345678 ", 200))
	stream := NewSliceCharStream(src)
	allocs := testing.AllocsPerRun(100, func() {
		stream.ConsumeWhile(isDigit)
		stream.SkipWhitespace()
	})
	if allocs != 0 {
		t.Fatalf("got %v allocs", allocs)
	}
}
