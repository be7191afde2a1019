package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Ускорения, выбираемые на старте
const (
	GravityEarth = -15.0 // селектор 1
	GravityMoon  = -5.0  // любое другое значение

	DragLow    = -1.0
	DragMedium = -4.0
	DragHigh   = -8.0
)

// Difficulty is the pair of accelerations chosen at startup.
type Difficulty struct {
	GravitySelector float64
	AirSelector     float64
	Gravity         float64 // ay
	Drag            float64 // ax
}

// GravityFor maps the gravity selector. Only an exact 1 picks the strong
// branch; every other number, in range or not, falls through to the moon value.
func GravityFor(selector float64) float64 {
	if selector == 1 {
		return GravityEarth
	}
	return GravityMoon
}

// DragFor maps the air-resistance selector; anything but 1 or 2 is high drag.
func DragFor(selector float64) float64 {
	switch selector {
	case 1:
		return DragLow
	case 2:
		return DragMedium
	default:
		return DragHigh
	}
}

// InRange reports whether both selectors were among the offered choices.
func (d Difficulty) InRange() bool {
	gravityOK := d.GravitySelector == 1 || d.GravitySelector == 2
	airOK := d.AirSelector == 1 || d.AirSelector == 2 || d.AirSelector == 3
	return gravityOK && airOK
}

// NewDifficulty builds a Difficulty from raw selectors.
func NewDifficulty(gravitySelector, airSelector float64) Difficulty {
	return Difficulty{
		GravitySelector: gravitySelector,
		AirSelector:     airSelector,
		Gravity:         GravityFor(gravitySelector),
		Drag:            DragFor(airSelector),
	}
}

// ParseDifficulty parses selector strings such as the CANNON_GRAVITY and
// CANNON_AIR variables.
func ParseDifficulty(gravity, air string) (Difficulty, error) {
	g, err := parseSelector(gravity)
	if err != nil {
		return Difficulty{}, err
	}
	a, err := parseSelector(air)
	if err != nil {
		return Difficulty{}, err
	}
	return NewDifficulty(g, a), nil
}

// ReadDifficulty prints the startup prompt to w and reads the two selectors
// from r, one per whitespace-separated token.
func ReadDifficulty(r io.Reader, w io.Writer) (Difficulty, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	fmt.Fprintln(w, "**********")
	fmt.Fprintln(w, "About the game: Shoot the cannon ball to destroy the building avoiding the obstacles.")
	fmt.Fprintln(w, "**********")
	fmt.Fprintln(w, "|Where would you like to play the game?|")
	fmt.Fprintln(w, "|Input 1 for EARTH and 2 for MOON.|")
	gravity, err := scanSelector(scanner, "gravity")
	if err != nil {
		return Difficulty{}, err
	}

	fmt.Fprintln(w, "|What do you want the air-resistance to be?|")
	fmt.Fprintln(w, "|Input 1 for LOW, 2 for MEDIUM and 3 for HIGH|")
	air, err := scanSelector(scanner, "air-resistance")
	if err != nil {
		return Difficulty{}, err
	}

	return NewDifficulty(gravity, air), nil
}

func scanSelector(scanner *bufio.Scanner, name string) (float64, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read %s selector: %w", name, err)
		}
		return 0, fmt.Errorf("%w: missing %s selector", ErrInvalidConfiguration, name)
	}
	return parseSelector(scanner.Text())
}

func parseSelector(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: selector %q is not a number", ErrInvalidConfiguration, raw)
	}
	return value, nil
}
