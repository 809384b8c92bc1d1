// Package model defines the seam to the external natural-language inference
// service. The orchestration core treats the service as opaque: it sends a
// system prompt, a bounded conversation window and a user prompt, and gets
// back text plus token usage. Provider adapters live in the subpackages
// (model/openai, model/anthropic); MockInference supports deterministic
// tests without network access.
package model
