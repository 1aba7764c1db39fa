package debug

const (
	Debug = true
)

func IsDebugShowSetup() bool {
	return Debug && isDebugShowSetupSet()
}

// RandomSeed reports the fixed phrasebook seed, if one is configured.
func RandomSeed() (uint64, bool) {
	if !Debug {
		return 0, false
	}
	return debugRandomSeed()
}
