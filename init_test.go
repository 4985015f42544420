package mppp

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = 2000
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	flag.IntVar(&fuzzIterations, "mppp.fuzziter", fuzzIterations, "Number of iterations for randomised op tests")
	flag.Int64Var(&fuzzSeed, "mppp.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("iterations:", fuzzIterations)
	log.Println("limb bits :", limbBits)

	code := m.Run()
	os.Exit(code)
}

var big1 = new(big.Int).SetInt64(1)

func bigs(s string) *big.Int {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("mppp: test string %q invalid", s))
	}
	return b
}

func intOf(s string) *Int {
	return new(Int).SetBig(bigs(s))
}

// maxStaticBig is the widest magnitude that still fits inline storage.
func maxStaticBig() *big.Int {
	v := new(big.Int).Lsh(big1, staticLimbs*limbBits)
	return v.Sub(v, big1)
}

// overStaticBig is the narrowest magnitude too wide for inline storage.
func overStaticBig() *big.Int {
	return new(big.Int).Lsh(big1, staticLimbs*limbBits)
}

// randBigIntN returns a random signed integer of up to nlimbs limbs.
func randBigIntN(rng *rand.Rand, nlimbs int) *big.Int {
	nbits := rng.Intn(nlimbs*limbBits + 1)
	v := new(big.Int)
	if nbits == 0 {
		return v
	}
	v.Rand(rng, new(big.Int).Lsh(big1, uint(nbits)))
	if rng.Intn(2) == 1 {
		v.Neg(v)
	}
	return v
}
