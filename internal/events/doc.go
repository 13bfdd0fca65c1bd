// Package events lets the task engine announce committed audit entries
// without knowing who listens.
//
// The primary components are:
// - ActivityEvent: one audit entry that was appended to a task
// - EventHandler: interface for components that react to events
// - EventEmitter: interface for components that publish events
//
// Delivery is synchronous and best effort: the engine has already committed
// the change when an event is emitted, so handler failures are reported to
// the emitter's caller but never roll anything back.
package events
