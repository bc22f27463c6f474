package geohash

import (
	"fmt"
	"strings"
)

// Direction identifies one of the eight grid-adjacent cells. The numeric
// values are part of the public contract and must not be reordered.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [...]string{
	North:     "north",
	NorthEast: "northeast",
	East:      "east",
	SouthEast: "southeast",
	South:     "south",
	SouthWest: "southwest",
	West:      "west",
	NorthWest: "northwest",
}

// ParseDirection converts an integer direction selector (0..7) into a
// Direction, failing with ErrInvalidDirection for anything else.
func ParseDirection(v int) (Direction, error) {
	d := Direction(v)
	if !d.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDirection, v)
	}
	return d, nil
}

func (d Direction) valid() bool {
	return d >= North && d <= NorthWest
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction pointing the other way. It is only defined
// for valid directions.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Cardinal axis steps used by the lookup tables. Diagonal directions are not
// tabulated; they compose two of these.
const (
	cardNorth = iota
	cardEast
	cardSouth
	cardWest
)

// neighborTables maps (cardinal step, symbol-count parity) to the 32-entry
// replacement alphabet for a hash's final symbol, and borderTables marks the
// symbols whose edge in that direction is also their parent cell's edge,
// forcing a carry into the prefix. Parity index 0 is an even number of
// symbols: the parity decides whether the hash's trailing bit belongs to the
// latitude or the longitude axis, which mirrors the tables across the
// diagonal. These constants come from the reference geohash-js
// implementation and are shipped verbatim by every interoperable port.
var neighborTables = [4][2]string{
	cardNorth: {"p0r21436x8zb9dcf5h7kjnmqesgutwvy", "bc01fg45238967deuvhjyznpkmstqrwx"},
	cardEast:  {"bc01fg45238967deuvhjyznpkmstqrwx", "p0r21436x8zb9dcf5h7kjnmqesgutwvy"},
	cardSouth: {"14365h7k9dcfesgujnmqp0r2twvyx8zb", "238967debc01fg45kmstqrwxuvhjyznp"},
	cardWest:  {"238967debc01fg45kmstqrwxuvhjyznp", "14365h7k9dcfesgujnmqp0r2twvyx8zb"},
}

var borderTables = [4][2]string{
	cardNorth: {"prxz", "bcfguvyz"},
	cardEast:  {"bcfguvyz", "prxz"},
	cardSouth: {"028b", "0145hjnp"},
	cardWest:  {"0145hjnp", "028b"},
}

// cardinalNeighbor computes the geohash one cardinal step away. A border
// symbol carries into the prefix the way addition carries between digits;
// a carry that exhausts the prefix has walked off the top-level cell row,
// which wraps for east/west (the antimeridian) and fails for north/south
// (the poles). Recursion depth is bounded by the hash length.
func cardinalNeighbor(hash string, card int) (string, error) {
	if hash == "" {
		if card == cardEast || card == cardWest {
			return "", nil
		}
		return "", ErrPoleCrossing
	}

	last := hash[len(hash)-1]
	parity := len(hash) % 2
	prefix := hash[:len(hash)-1]

	if strings.IndexByte(borderTables[card][parity], last) >= 0 {
		carried, err := cardinalNeighbor(prefix, card)
		if err != nil {
			return "", err
		}
		prefix = carried
	}
	return prefix + string(alphabet[strings.IndexByte(neighborTables[card][parity], last)]), nil
}

// diagonalNeighbor composes two cardinal steps. The order is irrelevant on a
// regular grid since the axis updates are independent.
func diagonalNeighbor(hash string, latStep, lngStep int) (string, error) {
	h, err := cardinalNeighbor(hash, latStep)
	if err != nil {
		return "", err
	}
	return cardinalNeighbor(h, lngStep)
}

// Neighbor returns the geohash of the cell adjacent to hash in direction d.
// The result is lowercase and has the same length as hash. Crossing the
// antimeridian wraps; crossing a pole fails with ErrPoleCrossing.
func Neighbor(hash string, d Direction) (string, error) {
	if !d.valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	if err := Validate(hash); err != nil {
		return "", fmt.Errorf("neighbor: %w", err)
	}

	h := strings.ToLower(hash)
	switch d {
	case North:
		return cardinalNeighbor(h, cardNorth)
	case East:
		return cardinalNeighbor(h, cardEast)
	case South:
		return cardinalNeighbor(h, cardSouth)
	case West:
		return cardinalNeighbor(h, cardWest)
	case NorthEast:
		return diagonalNeighbor(h, cardNorth, cardEast)
	case SouthEast:
		return diagonalNeighbor(h, cardSouth, cardEast)
	case SouthWest:
		return diagonalNeighbor(h, cardSouth, cardWest)
	default:
		return diagonalNeighbor(h, cardNorth, cardWest)
	}
}

// Neighbors returns the eight adjacent geohashes in the fixed order
// [N, NE, E, SE, S, SW, W, NW]. Every entry is computed from hash itself,
// not from the preceding entry.
func Neighbors(hash string) ([]string, error) {
	out := make([]string, 0, 8)
	for d := North; d <= NorthWest; d++ {
		n, err := Neighbor(hash, d)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
