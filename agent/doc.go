// Package agent contains the specialized responders and the dispatcher
// that routes a classified query to them. Each responder owns its own data
// retrieval against the store catalogs; the dispatcher owns the hybrid
// sequencing rules, result concatenation, attachment merging and the
// conversion of responder failures into failed results that never
// propagate to the caller.
package agent
