package chord

import (
	"strings"
)

// Width is the number of buttons on the device, and so the number of
// bits in a chord.
const Width = 12

// Finger identifies one of the four button columns.
type Finger int

const (
	Index Finger = iota
	Middle
	Ring
	Pinky
)

// NumFingers is the number of fingers on the device.
const NumFingers = 4

var fingerNames = [NumFingers]string{"index", "middle", "ring", "pinky"}

func (f Finger) String() string {
	if f < 0 || int(f) >= NumFingers {
		return "unknown"
	}
	return fingerNames[f]
}

// Button identifies one of the three buttons under each finger.
type Button int

const (
	Left Button = iota
	Center
	Right
)

// NumButtons is the number of buttons under each finger.
const NumButtons = 3

var buttonLetters = [NumButtons]byte{'L', 'M', 'R'}

// Bit returns the bit index of button b under finger f. The index
// finger's Left button is the most significant bit.
func Bit(f Finger, b Button) int {
	return Width - 1 - NumButtons*int(f) - int(b)
}

// Chord is a concrete 12-bit button pattern. The zero Chord is the null
// assignment.
type Chord uint16

// Null is the reserved chord of grams typed as separate keystrokes.
const Null Chord = 0

// Of returns the chord with a single button pressed.
func Of(f Finger, b Button) Chord {
	return 1 << uint(Bit(f, b))
}

// FingerMask returns the chord with all three buttons of f pressed.
func FingerMask(f Finger) Chord {
	return Of(f, Left) | Of(f, Center) | Of(f, Right)
}

// Has reports whether button b of finger f is pressed.
func (c Chord) Has(f Finger, b Button) bool {
	return c&Of(f, b) != 0
}

// Uses reports whether any button of f is pressed.
func (c Chord) Uses(f Finger) bool {
	return c&FingerMask(f) != 0
}

// Fingers returns the finger usage pattern of c: the three bits of every
// finger c presses are set, all other bits are clear.
func (c Chord) Fingers() Chord {
	var u Chord
	for f := Index; f <= Pinky; f++ {
		if c.Uses(f) {
			u |= FingerMask(f)
		}
	}
	return u
}

// Legal reports whether c fits in Width bits and no finger presses its
// Left and Right buttons together.
func (c Chord) Legal() bool {
	if c>>Width != 0 {
		return false
	}
	for f := Index; f <= Pinky; f++ {
		if c.Has(f, Left) && c.Has(f, Right) {
			return false
		}
	}
	return true
}

// String renders c finger by finger, e.g. "LM0.000.00R.000".
func (c Chord) String() string {
	var sb strings.Builder
	for f := Index; f <= Pinky; f++ {
		if f > Index {
			sb.WriteByte('.')
		}
		for b := Left; b <= Right; b++ {
			if c.Has(f, b) {
				sb.WriteByte(buttonLetters[b])
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// Compose returns the bitwise union of chords.
func Compose(chords ...Chord) Chord {
	var u Chord
	for _, c := range chords {
		u |= c
	}
	return u
}
