package ledger

// DefaultSeed is the starting balance table used when no seed file is configured.
func DefaultSeed() map[int32]int64 {
	return map[int32]int64{
		1: 100,
		2: 200,
		3: 300,
		4: 400,
		5: 500,
	}
}
