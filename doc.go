// Package vecbool provides a bit-packed boolean vector with push/pop
// semantics, usable like a []bool at 1/8th the memory.
//
// Layout:
//   - one bit per element, 8 elements per uint8 chunk
//   - chunks grow one at a time on push and are released one at a time
//     when a pop lands the length on a chunk boundary
//   - bits at positions >= Len() are unspecified and never observable
//     through the checked API
//
// Intended for:
//   - visited/tombstone flags over dense integer id spaces
//   - presence masks inside larger storage or indexing structures
//
// VecBool is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
package vecbool
