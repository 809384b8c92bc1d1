// Package classify turns a free-text user query into a ClassifiedQuery
// decision. Classification is deterministic rule and keyword scoring, not a
// learned model: it composes mention/command extraction, weighted category
// scoring with priority override patterns, and a fixed-precedence decision
// ladder (command > priority pattern > history pattern > greeting > help >
// hybrid > max score). The same input always yields the same decision.
package classify
