// Package store defines the ministry catalogs (songs, schedules, members)
// consumed by the specialized responders, along with volatile in-memory
// implementations suitable for tests and single-process deployments. The
// interfaces are intentionally small so durable backends can be swapped in
// without touching the orchestration core.
package store
