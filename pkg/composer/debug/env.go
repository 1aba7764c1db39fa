package debug

import (
	"os"
	"strconv"
)

const (
	DebugShowSetupKey  = "DEBUG_SHOW_SETUP"
	DebugRandomSeedKey = "DEBUG_RANDOM_SEED"
)

func isDebugShowSetupSet() bool {
	return os.Getenv(DebugShowSetupKey) == "true"
}

func debugRandomSeed() (uint64, bool) {
	value, ok := os.LookupEnv(DebugRandomSeedKey)
	if !ok {
		return 0, false
	}

	seed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, false
	}

	return seed, true
}
