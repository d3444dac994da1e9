package classifying

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

var (
	ErrInsufficientSamples = errors.New("insufficient samples for train/test split")
	ErrInvalidTestSize     = errors.New("test size must be between 0 and 1")
)

// TrainTestSplit embaralha os índices 0..n-1 com a semente informada e separa
// ceil(testSize*n) deles para teste. O restante vai para treino.
func TrainTestSplit(n int, testSize float64, seed uint64) (train, test []int, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidTestSize, testSize)
	}

	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTest <= 0 || nTrain <= 0 {
		return nil, nil, fmt.Errorf("%w: %d amostras, %d treino, %d teste", ErrInsufficientSamples, n, nTrain, nTest)
	}

	perm := newRand(seed).Perm(n)
	return perm[nTest:], perm[:nTest], nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
