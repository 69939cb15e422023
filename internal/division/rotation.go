package division

import (
	"fmt"
	"math/rand"
)

const (
	// RotationLength is the number of performer slots drawn per lyric line
	RotationLength = 20
	// MaxRepeats is the longest run of one performer allowed in a rotation
	MaxRepeats = 2
)

// NewRotation draws a sequence of performer indices in [0, performerCount)
// where no index appears more than MaxRepeats times in a row.
func NewRotation(rng *rand.Rand, performerCount int) ([]int, error) {
	if performerCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrDegenerateRotation, performerCount)
	}

	rotation := make([]int, 0, RotationLength)
	for len(rotation) < RotationLength {
		candidate := rng.Intn(performerCount)
		if wouldExceedRun(rotation, candidate) {
			continue
		}
		rotation = append(rotation, candidate)
	}

	return rotation, nil
}

func wouldExceedRun(rotation []int, candidate int) bool {
	if len(rotation) < MaxRepeats {
		return false
	}
	for _, prev := range rotation[len(rotation)-MaxRepeats:] {
		if prev != candidate {
			return false
		}
	}
	return true
}
