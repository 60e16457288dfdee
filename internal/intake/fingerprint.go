package intake

import "hash/fnv"

// Fingerprint hashes an utterance for dedupe. The agent keeps a set of
// fingerprints per session so a transcript delivered twice saves once.
func Fingerprint(text string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(text))
	return h.Sum64()
}
