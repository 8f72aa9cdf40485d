// Package order implements the trade order aggregate and its lifecycle.
//
// The aggregate root is Order, which owns its commercial lines (Item), its
// typed transition history (Event), and the open negotiation proposal
// (CounterOffer). Message is a child entity of an order's communication
// thread, persisted and loaded independently of the aggregate root.
//
// The lifecycle state machine lives in Status, which is the single place
// legal transitions are defined. Aggregate methods delegate every status
// change to Status and append exactly one history event per transition, so
// an order's observed statuses always form a walk on the legal graph.
package order
