package brandgen

// Seed derives a deterministic positive seed from an arbitrary string using a
// polynomial rolling hash (h = h*31 + c over the UTF-16 code units, truncated
// to 32 bits). The same string always yields the same seed, which is what
// makes "the same business always gets the same logo" hold.
func Seed(s string) uint32 {
	var hash int32
	for _, r := range s {
		for _, unit := range utf16Units(r) {
			hash = (hash << 5) - hash + int32(unit)
		}
	}
	if hash < 0 {
		return uint32(-hash)
	}
	return uint32(hash)
}

// utf16Units expands a rune into its UTF-16 code units so multi-byte input
// hashes identically across platforms.
func utf16Units(r rune) []uint16 {
	if r < 0x10000 {
		return []uint16{uint16(r)}
	}
	r -= 0x10000
	return []uint16{uint16(0xD800 + (r >> 10)), uint16(0xDC00 + (r & 0x3FF))}
}

const lcgModulus = 2147483647 // 2^31 - 1, Park-Miller

// Rand is a Park-Miller linear congruential generator. Two generators built
// from the same seed produce bit-identical sequences.
type Rand struct {
	state int64
}

// NewRand constructs a generator for the given seed. A zero seed (hash of the
// empty string) is mapped to 1 so the stream stays inside [0, 1).
func NewRand(seed uint32) *Rand {
	state := int64(seed) % lcgModulus
	if state == 0 {
		state = 1
	}
	return &Rand{state: state}
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = r.state * 16807 % lcgModulus
	return float64(r.state-1) / float64(lcgModulus-1)
}

// Intn returns an integer in [0, n) drawn from the stream.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// SubRand yields an independent generator for one visual feature of a
// business, so different elements vary independently while staying
// reproducible per name.
func SubRand(businessName, featureTag string) *Rand {
	return NewRand(Seed(businessName + featureTag))
}
