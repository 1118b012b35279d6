package shape

import (
	"fmt"
	"strings"

	"github.com/AnkushinDaniil/waveguide/waveguide"
)

type Shape uint8

const (
	Rectangular Shape = iota
	Circular
)

func UnmarshalText(text string) (Shape, error) {
	switch strings.ToLower(text) {
	case "r", "rect", "rectangular":
		return Rectangular, nil
	case "c", "circ", "circular":
		return Circular, nil
	default:
		return 0, fmt.Errorf("invalid shape: %q", text)
	}
}

func (s Shape) String() string {
	if s == Circular {
		return "circular"
	}
	return "rectangular"
}

// Waveguide maps s onto the discriminator of waveguide.Spec.
func (s Shape) Waveguide() waveguide.Shape {
	if s == Circular {
		return waveguide.Circular
	}
	return waveguide.Rectangular
}
