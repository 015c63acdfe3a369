package inputgen

// DefaultSeed seeds the Random mode generator on every call.
const DefaultSeed uint32 = 1

const (
	minstdMultiplier = 16807
	minstdModulus    = 1<<31 - 1
)

// minstd is the Park-Miller "minimal standard" Lehmer generator with multiplier 16807.
// It is trivial to reproduce in any language, which keeps random inputs comparable
// across reimplementations of the harness.
type minstd struct {
	state uint64
}

func newMinstd(seed uint32) *minstd {
	s := uint64(seed) % minstdModulus
	if s == 0 {
		s = 1
	}
	return &minstd{state: s}
}

// next advances the generator and returns a value in [1, 2^31-2].
func (g *minstd) next() uint32 {
	g.state = g.state * minstdMultiplier % minstdModulus
	return uint32(g.state)
}

// nextByte takes the top 8 of the 31 state bits; the low bits of a Lehmer generator are weak.
func (g *minstd) nextByte() byte {
	return byte(g.next() >> 23)
}
