package geohash

import "errors"

// Error kinds reported by the codec and the neighbor engine. Every failure is
// detected before any partial computation, so a failed call has no output at
// all. Call sites wrap these with the offending value; match with errors.Is.
var (
	// ErrInvalidCoordinate means a latitude or longitude is non-finite or
	// outside [-90, 90] / [-180, 180].
	ErrInvalidCoordinate = errors.New("coordinate outside valid domain")

	// ErrInvalidPrecision means an encode precision outside [1, 12].
	ErrInvalidPrecision = errors.New("precision outside [1, 12]")

	// ErrInvalidCharacter means a character outside the 32-symbol alphabet,
	// in either case. The letters a, i, l and o are never valid.
	ErrInvalidCharacter = errors.New("character outside geohash alphabet")

	// ErrEmptyGeohash means a zero-length string was passed to a decode or
	// neighbor operation.
	ErrEmptyGeohash = errors.New("empty geohash")

	// ErrInvalidDirection means a direction value outside North..NorthWest.
	ErrInvalidDirection = errors.New("direction outside 0..7")

	// ErrPoleCrossing means a north/south neighbor request whose border
	// carry walked past ±90° latitude. The grid does not wrap over the
	// poles, so no such cell exists.
	ErrPoleCrossing = errors.New("neighbor would cross a pole")
)
