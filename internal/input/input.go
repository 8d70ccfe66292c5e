// Package input reads raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press, letting held keys register across frames despite terminal repeat.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Spawn   bool // space: drop the selected element at the cursor
	Next    bool // ] or tab: next element
	Prev    bool // [: previous element
	Inspect bool // x: inspect the particle under the cursor
	Clear   bool // c: remove all particles
	Pause   bool // p: toggle pause
	Enter   bool
	Escape  bool
	Number  int // -1 when no digit pressed
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	up        time.Time
	down      time.Time
	spawn     time.Time
	next      time.Time
	prev      time.Time
	inspect   time.Time
	clear     time.Time
	pause     time.Time
	enter     time.Time
	escape    time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state so key
// combinations survive frame boundaries.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking),
// parses escape sequences for arrow keys, and builds the frame input from
// the recent key state.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.state.quit = now
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> for arrow keys.
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	input := Input{
		Quit:    now.Sub(s.state.quit) < keyHoldDuration,
		Left:    now.Sub(s.state.left) < keyHoldDuration,
		Right:   now.Sub(s.state.right) < keyHoldDuration,
		Up:      now.Sub(s.state.up) < keyHoldDuration,
		Down:    now.Sub(s.state.down) < keyHoldDuration,
		Spawn:   now.Sub(s.state.spawn) < keyHoldDuration,
		Next:    now.Sub(s.state.next) < keyHoldDuration,
		Prev:    now.Sub(s.state.prev) < keyHoldDuration,
		Inspect: now.Sub(s.state.inspect) < keyHoldDuration,
		Clear:   now.Sub(s.state.clear) < keyHoldDuration,
		Pause:   now.Sub(s.state.pause) < keyHoldDuration,
		Enter:   now.Sub(s.state.enter) < keyHoldDuration,
		Escape:  now.Sub(s.state.escape) < keyHoldDuration,
		Number:  -1,
	}
	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}
	return input
}

// applyByteToState updates the key state timestamps for a single byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ':
		state.spawn = now
	case ']', '\t':
		state.next = now
	case '[':
		state.prev = now
	case 'x', 'X':
		state.inspect = now
	case 'c', 'C':
		state.clear = now
	case 'p', 'P':
		state.pause = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}

// ResetKeyInput clears the recent key state, e.g. when switching screens so
// a held key does not leak into the next one.
func ResetKeyInput(s *Stream) {
	if s != nil {
		s.state = keyState{numberVal: -1}
	}
}
