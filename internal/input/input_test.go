package input

import "testing"

// testStream builds a stream with the given bytes already buffered, so
// ReadInput drains them without any reader goroutine involved.
func testStream(bytes ...byte) *Stream {
	s := &Stream{
		ch:    make(chan byte, len(bytes)+1),
		state: keyState{numberVal: -1},
	}
	for _, b := range bytes {
		s.ch <- b
	}
	return s
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		check func(Input) bool
	}{
		{"quit", []byte("q"), func(in Input) bool { return in.Quit }},
		{"left wasd", []byte("a"), func(in Input) bool { return in.Left }},
		{"left vim", []byte("h"), func(in Input) bool { return in.Left }},
		{"right upper", []byte("D"), func(in Input) bool { return in.Right }},
		{"up", []byte("w"), func(in Input) bool { return in.Up }},
		{"down", []byte("j"), func(in Input) bool { return in.Down }},
		{"spawn", []byte(" "), func(in Input) bool { return in.Spawn }},
		{"next bracket", []byte("]"), func(in Input) bool { return in.Next }},
		{"next tab", []byte("\t"), func(in Input) bool { return in.Next }},
		{"prev", []byte("["), func(in Input) bool { return in.Prev }},
		{"inspect", []byte("x"), func(in Input) bool { return in.Inspect }},
		{"clear", []byte("c"), func(in Input) bool { return in.Clear }},
		{"pause", []byte("p"), func(in Input) bool { return in.Pause }},
		{"enter", []byte("\r"), func(in Input) bool { return in.Enter }},
		{"escape", []byte("\x1b"), func(in Input) bool { return in.Escape }},
		{"combo", []byte("a "), func(in Input) bool { return in.Left && in.Spawn }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ReadInput(testStream(tt.bytes...))
			if !tt.check(in) {
				t.Errorf("ReadInput(%q) = %+v", tt.bytes, in)
			}
		})
	}
}

func TestReadInputArrowSequences(t *testing.T) {
	tests := []struct {
		seq   string
		check func(Input) bool
	}{
		{"\x1b[A", func(in Input) bool { return in.Up && !in.Escape }},
		{"\x1b[B", func(in Input) bool { return in.Down && !in.Escape }},
		{"\x1b[C", func(in Input) bool { return in.Right && !in.Escape }},
		{"\x1b[D", func(in Input) bool { return in.Left && !in.Escape }},
	}
	for _, tt := range tests {
		in := ReadInput(testStream([]byte(tt.seq)...))
		if !tt.check(in) {
			t.Errorf("ReadInput(%q) = %+v", tt.seq, in)
		}
	}
}

func TestReadInputNumber(t *testing.T) {
	in := ReadInput(testStream('7'))
	if in.Number != 7 {
		t.Errorf("Number = %d, want 7", in.Number)
	}

	in = ReadInput(testStream('x'))
	if in.Number != -1 {
		t.Errorf("Number = %d, want -1 with no digit pressed", in.Number)
	}
}

func TestReadInputClosedStreamQuits(t *testing.T) {
	s := testStream()
	close(s.ch)
	if in := ReadInput(s); !in.Quit {
		t.Error("closed stream did not set Quit")
	}
}

func TestResetKeyInput(t *testing.T) {
	s := testStream('a', ' ')
	if in := ReadInput(s); !in.Left || !in.Spawn {
		t.Fatal("setup failed: keys not registered")
	}
	ResetKeyInput(s)
	if in := ReadInput(s); in.Left || in.Spawn {
		t.Error("keys survived ResetKeyInput")
	}
	ResetKeyInput(nil) // must not panic
}
