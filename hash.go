package dispatch

// triggerHash is a djb2-style XOR hash over the name's bytes. Bucket
// placement is deterministic across runs.
func triggerHash(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) ^ uint32(s[i])
	}
	return h
}

// bucketIndex maps a trigger name onto one of n buckets. All registrations
// for an exact name land in the same bucket, so trigger-scoped operations
// scan a single chain.
func bucketIndex(name string, n int) int {
	return int(triggerHash(name) % uint32(n))
}
