// Package geohash encodes geographic coordinates into the standard Base32
// geohash strings and back, and computes the eight grid-adjacent geohashes
// of a cell.
//
// All operations are pure functions over value types: nothing is shared,
// nothing outlives a call, and every function is safe for concurrent use.
// The encoding is bit-exact with the established public geohash definition;
// the cross-validation tests hold it to agreement with two independent
// implementations.
package geohash

import (
	"fmt"
	"math"
)

const (
	// MaxPrecision is the longest supported geohash: 12 symbols, 60 bits.
	MaxPrecision = 12

	// DefaultPrecision is the precision used by Encode.
	DefaultPrecision = 12

	bitsPerSymbol = 5
)

// Point is a geographic coordinate pair in degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Box is the rectangular cell a geohash denotes.
type Box struct {
	Latitude  Range
	Longitude Range
}

// Center returns the midpoint of the cell. This is the point Decode reports.
func (b Box) Center() Point {
	return Point{
		Latitude:  b.Latitude.Mid(),
		Longitude: b.Longitude.Mid(),
	}
}

// LatitudeError returns the maximum latitude error of the cell's center.
func (b Box) LatitudeError() float64 {
	return b.Latitude.HalfWidth()
}

// LongitudeError returns the maximum longitude error of the cell's center.
func (b Box) LongitudeError() float64 {
	return b.Longitude.HalfWidth()
}

// Contains reports whether p lies within the cell.
func (b Box) Contains(p Point) bool {
	return b.Latitude.Contains(p.Latitude) && b.Longitude.Contains(p.Longitude)
}

func validatePrecision(precision int) error {
	if precision < 1 || precision > MaxPrecision {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	return nil
}

func validatePoint(p Point) error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinate, p.Latitude)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinate, p.Longitude)
	}
	return nil
}

// Validate reports whether hash is a well-formed geohash: non-empty and drawn
// entirely from the 32-symbol alphabet, in either case. It does not bound the
// length; precision is implicit in the string.
func Validate(hash string) error {
	if hash == "" {
		return ErrEmptyGeohash
	}
	for i := 0; i < len(hash); i++ {
		if _, err := valueOf(hash[i]); err != nil {
			return err
		}
	}
	return nil
}

// Encode returns the geohash of p at the default precision of 12 symbols.
func Encode(p Point) (string, error) {
	return EncodeWithPrecision(p, DefaultPrecision)
}

// EncodeWithPrecision returns the geohash of p with the given number of
// symbols, 1 through 12. The result is deterministic: the same point and
// precision always produce the same string.
func EncodeWithPrecision(p Point, precision int) (string, error) {
	if err := validatePoint(p); err != nil {
		return "", err
	}
	if err := validatePrecision(precision); err != nil {
		return "", err
	}

	t := newTracker()
	out := make([]byte, precision)
	for i := range out {
		v := 0
		for j := 0; j < bitsPerSymbol; j++ {
			v = v<<1 | t.encodeBit(p)
		}
		out[i] = mustSymbol(v)
	}
	return string(out), nil
}

// Decode returns the center of the cell hash denotes. The center is within
// DecodeBoundingBox(hash).LatitudeError() / .LongitudeError() of any point
// that encodes to hash.
func Decode(hash string) (Point, error) {
	box, err := DecodeBoundingBox(hash)
	if err != nil {
		return Point{}, err
	}
	return box.Center(), nil
}

// DecodeBoundingBox returns the full cell hash denotes. Input is
// case-insensitive.
func DecodeBoundingBox(hash string) (Box, error) {
	if err := Validate(hash); err != nil {
		return Box{}, fmt.Errorf("decode: %w", err)
	}

	t := newTracker()
	for i := 0; i < len(hash); i++ {
		v, _ := valueOf(hash[i])
		for j := bitsPerSymbol - 1; j >= 0; j-- {
			t.decodeBit(v >> uint(j) & 1)
		}
	}
	return Box{Latitude: t.lat, Longitude: t.lng}, nil
}
