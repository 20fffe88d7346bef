package dispatch

// Bridges for tests that need deterministic bucket placement.
var (
	TriggerHash = triggerHash
	BucketIndex = bucketIndex
)
