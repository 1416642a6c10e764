// Package engine runs the keyhunt pipeline: it loads a corpus, recovers the
// key, decodes the digests through a dictionary lookup and repairs what is
// left with typo search. This package is internal; external consumers should
// use the stable facade in pkg/core.
package engine
