// Package memory provides the process-lifetime implementations of the
// store interfaces. State lives in maps owned by each store instance and is
// lost on restart; tests get isolation by building fresh stores.
//
// Concurrency model: a store-wide RWMutex guards only the map itself, while
// every task record carries its own mutex. Two different tasks can be
// mutated in parallel, and appends to one task's comments and activity
// trail are serialized.
package memory
