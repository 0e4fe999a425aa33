package krx

import (
	"math/rand"
	"testing"
)

// TestLoadNeverPanics feeds structurally adversarial byte strings into
// LoadReader and requires that every one returns an error rather than
// panicking, matching the fuzz-verified safety property spec'd for the
// .krx loader.
func TestLoadNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := [][]byte{
		nil,
		{},
		{0x00},
		append([]byte(nil), Magic[:]...),
		make([]byte, headerSize),
		make([]byte, headerSize+1),
	}

	for i := 0; i < 2000; i++ {
		n := rng.Intn(300)
		buf := make([]byte, n)
		rng.Read(buf)
		cases = append(cases, buf)
	}

	for i, data := range cases {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("case %d: LoadReader panicked: %v", i, r)
				}
			}()
			_, _ = Load(data)
		}()
	}
}
