// Package source reads workflow source files off disk, retrying the one
// transient failure mode a local filesystem read can have: EMFILE/ENFILE
// exhaustion under many concurrent CLI invocations sharing a descriptor
// table. It never retries anything about the parse or walk themselves —
// those are pure CPU-bound transforms over bytes already read.
package source
