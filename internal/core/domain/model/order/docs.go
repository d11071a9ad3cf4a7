// Package order contains the order aggregate: the Order root, its owned
// OrderItem collection, the Status state machine, and the outbound event
// payloads derived from the aggregate.
//
// The aggregate is the single consistency boundary of the service. All
// mutations go through Order methods; each status-changing method applies
// the transition table in status.go, so illegal or out-of-order updates
// (including duplicated or reordered queue messages) fail their guard
// instead of corrupting state.
package order
