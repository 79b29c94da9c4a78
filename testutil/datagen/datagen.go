package datagen

import (
	"math/rand"
	"testing"
	"time"

	"cosmossdk.io/math"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	newHeaderBytes := make([]byte, length)
	r.Read(newHeaderBytes)
	return newHeaderBytes
}

func OneInN(r *rand.Rand, n int) bool {
	return RandomInt(r, n) == 0
}

func RandomInt(r *rand.Rand, rng int) uint64 {
	return uint64(r.Intn(rng))
}

// RandomPositiveMathInt returns a random integer in [1, rng].
func RandomPositiveMathInt(r *rand.Rand, rng int) math.Int {
	return math.NewIntFromUint64(RandomInt(r, rng) + 1)
}

// AddRandomSeedsToFuzzer seeds f with n random int64 values.
func AddRandomSeedsToFuzzer(f *testing.F, n uint) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := uint(0); i < n; i++ {
		f.Add(r.Int63())
	}
}
