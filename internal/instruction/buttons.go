package instruction

import (
	"errors"
	"fmt"
	"strings"
)

// Buttons is a set of key flags as used by the wait for button code type.
type Buttons uint32

// Known key flags.
const (
	ButtonA         Buttons = 0x0001
	ButtonB         Buttons = 0x0002
	ButtonSelect    Buttons = 0x0004
	ButtonStart     Buttons = 0x0008
	ButtonRight     Buttons = 0x0010
	ButtonLeft      Buttons = 0x0020
	ButtonUp        Buttons = 0x0040
	ButtonDown      Buttons = 0x0080
	ButtonR         Buttons = 0x0100
	ButtonL         Buttons = 0x0200
	ButtonX         Buttons = 0x0400
	ButtonY         Buttons = 0x0800
	ButtonDebug     Buttons = 0x2000
	ButtonNotFolded Buttons = 0x8000
)

// buttonNames is sorted by ascending flag value.
var buttonNames = []struct {
	flag Buttons
	name string
}{
	{ButtonA, "A"},
	{ButtonB, "B"},
	{ButtonSelect, "SELECT"},
	{ButtonStart, "START"},
	{ButtonRight, "RIGHT"},
	{ButtonLeft, "LEFT"},
	{ButtonUp, "UP"},
	{ButtonDown, "DOWN"},
	{ButtonR, "R"},
	{ButtonL, "L"},
	{ButtonX, "X"},
	{ButtonY, "Y"},
	{ButtonDebug, "DEBUG"},
	{ButtonNotFolded, "NOT-FOLDED"},
}

// ErrNoButtons is returned for an empty key set.
var ErrNoButtons = errors.New("no buttons set")

// UnrecognizedButtonBitsError is returned when a key set contains bits that do not
// belong to a known key flag.
type UnrecognizedButtonBitsError struct {
	Value    uint32
	Residual uint32
}

func (e *UnrecognizedButtonBitsError) Error() string {
	return fmt.Sprintf("unrecognized button bits %08X in %08X", e.Residual, e.Value)
}

// DecodeButtons converts a key mask into a button set. Every set bit has to map to
// a known key flag.
func DecodeButtons(value uint32) (Buttons, error) {
	if value == 0 {
		return 0, ErrNoButtons
	}

	residual := value
	for _, b := range buttonNames {
		residual &^= uint32(b.flag)
	}
	if residual != 0 {
		return 0, &UnrecognizedButtonBitsError{Value: value, Residual: residual}
	}
	return Buttons(value), nil
}

// Names returns the names of all set flags in ascending flag order.
func (b Buttons) Names() []string {
	var names []string
	for _, btn := range buttonNames {
		if b&btn.flag != 0 {
			names = append(names, btn.name)
		}
	}
	return names
}

// Has returns whether all given flags are set.
func (b Buttons) Has(flags Buttons) bool {
	return b&flags == flags
}

// String returns the flag names joined by plus signs.
func (b Buttons) String() string {
	return strings.Join(b.Names(), " + ")
}

func (b Buttons) cExpression() string {
	names := b.Names()
	for i, name := range names {
		names[i] = "KEY_" + strings.ReplaceAll(name, "-", "_")
	}
	return strings.Join(names, " | ")
}
