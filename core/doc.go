// Package core provides the foundational domain types shared by the
// classification and dispatch layers of the assistant. It defines:
//
//   - ClassifiedQuery (the immutable outcome of intent classification)
//   - ConversationTurn plus the bounded history trimming rules
//   - AgentResult and the closed attachment union returned by responders
//   - Usage (token accounting accumulated across inference calls)
//   - The Responder contract implemented by every specialized agent
//
// The package intentionally keeps implementation concerns (scoring rules,
// concrete responders, inference providers) out of scope, exposing small
// types so the surrounding packages stay decoupled.
package core
