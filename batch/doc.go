// Package batch keeps a large repertoire-analysis workload inside a hard
// wall-clock budget. The external inference service accepts one
// bounded-size request at a time, so the orchestrator splits the candidate
// set into ordered chunks, calls the service once per chunk with a timeout
// strictly smaller than the caller's deadline, tolerates partial chunk
// failure and merges the surviving results in original order. A single
// non-chunked attempt that times out degrades to the chunked path exactly
// once. Chunk calls run sequentially by design: the service has a shared
// rate limit and the inter-chunk pause is only meaningful under sequential
// execution.
package batch
