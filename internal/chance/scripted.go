package chance

import "fmt"

// Scripted replays fixed draws in order. Ints and Floats are consumed
// independently. It panics when a queue runs dry or a queued int is out of
// range for the requested n, so a test that miscounts its draws fails loudly.
type Scripted struct {
	Ints   []int
	Floats []float64
}

// NewScripted returns a Scripted source over the given draws.
func NewScripted(ints []int, floats []float64) *Scripted {
	return &Scripted{Ints: ints, Floats: floats}
}

func (s *Scripted) Intn(n int) int {
	if n <= 0 {
		panic("chance: Intn called with n <= 0")
	}
	if len(s.Ints) == 0 {
		panic(fmt.Sprintf("chance: scripted Intn(%d) with no ints left", n))
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("chance: scripted int %d out of range [0, %d)", v, n))
	}
	return v
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		panic("chance: scripted Float64 with no floats left")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Drained reports whether every scripted draw was consumed.
func (s *Scripted) Drained() bool {
	return len(s.Ints) == 0 && len(s.Floats) == 0
}
