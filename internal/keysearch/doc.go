// Package keysearch recovers the numeric key of a keyed-hash puzzle by brute
// force. The key space is split across a fixed pool of workers, each hashing
// every key in its range against a small set of anchor words; the first
// worker to hit a corpus digest wins and the rest are cancelled.
package keysearch
