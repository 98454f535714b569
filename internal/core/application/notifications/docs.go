// Package notifications dispatches in-app notifications triggered by parcel
// lifecycle events.
//
// The dispatcher resolves the interested recipient by walking the ownership
// chain parcel -> delivery note -> order -> requester, and fans problem
// alerts out to every administrator. Dispatch is best effort: it runs after
// the lifecycle transaction has committed, and a failed notification is
// logged, never propagated back into the lifecycle operation.
package notifications
