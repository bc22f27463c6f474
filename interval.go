package geohash

// Range is a closed interval over a single coordinate axis, in degrees.
type Range struct {
	Min float64
	Max float64
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// HalfWidth returns half the width of the range. For a decoded cell this is
// the maximum error of the midpoint on that axis.
func (r Range) HalfWidth() float64 {
	return (r.Max - r.Min) / 2
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// tracker is the binary-subdivision engine shared by encode and decode. It
// holds a shrinking interval per axis and a counter of bits emitted or
// consumed so far. Bit 0 belongs to longitude and the axis alternates
// strictly by bit parity from there. Each bit halves its axis interval, so
// an axis interval halves once per two bits of total hash length.
type tracker struct {
	lat  Range
	lng  Range
	bits int
}

func newTracker() tracker {
	return tracker{
		lat: Range{Min: -90, Max: 90},
		lng: Range{Min: -180, Max: 180},
	}
}

// axis returns the interval the next bit subdivides.
func (t *tracker) axis() *Range {
	if t.bits%2 == 0 {
		return &t.lng
	}
	return &t.lat
}

// encodeBit subdivides the current axis around the target coordinate, keeps
// the half containing it and returns the resulting bit: 1 for the upper half
// (coordinate at or above the midpoint), 0 for the lower.
func (t *tracker) encodeBit(p Point) int {
	r := t.axis()
	c := p.Longitude
	if t.bits%2 == 1 {
		c = p.Latitude
	}
	t.bits++

	mid := r.Mid()
	if c >= mid {
		r.Min = mid
		return 1
	}
	r.Max = mid
	return 0
}

// decodeBit folds a bit already known from the symbol stream back into the
// current axis interval: the same subdivision as encodeBit, driven by the
// bit value instead of a coordinate comparison.
func (t *tracker) decodeBit(bit int) {
	r := t.axis()
	t.bits++

	mid := r.Mid()
	if bit != 0 {
		r.Min = mid
	} else {
		r.Max = mid
	}
}
