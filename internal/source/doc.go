// Package source builds the candidate list a session filters over.
//
// Two modes exist. Scan mode walks every directory named by the search path
// and collects entry base names; the result is sorted and deduplicated so an
// unchanged filesystem always yields the same sequence. Piped mode splits a
// caller-supplied stream into lines and keeps them exactly as given, since
// the producer may already have ordered them deliberately.
package source
