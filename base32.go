package geohash

import "fmt"

// alphabet is the standard 32-symbol geohash alphabet: the digits and the
// lowercase letters excluding a, i, l and o. A symbol's position is its 5-bit
// value, so interoperability with other implementations depends on this exact
// ordering.
const alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// symbolValues maps a byte to its 5-bit alphabet value, or -1 when the byte
// is not a geohash symbol. Uppercase letters share the value of their
// lowercase form, making lookups case-insensitive.
var symbolValues = buildSymbolValues()

func buildSymbolValues() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for v := 0; v < len(alphabet); v++ {
		c := alphabet[v]
		t[c] = int8(v)
		if c >= 'a' && c <= 'z' {
			t[c-'a'+'A'] = int8(v)
		}
	}
	return t
}

// valueOf returns the 5-bit value of a geohash symbol, accepting either case.
func valueOf(c byte) (int, error) {
	v := symbolValues[c]
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, rune(c))
	}
	return int(v), nil
}

// mustSymbol returns the symbol for a 5-bit value. A value outside 0..31 can
// only be produced by a bug inside this package, so it panics rather than
// returning an error.
func mustSymbol(v int) byte {
	if v < 0 || v >= len(alphabet) {
		panic(fmt.Sprintf("geohash: bit value %d outside 0..31", v))
	}
	return alphabet[v]
}
