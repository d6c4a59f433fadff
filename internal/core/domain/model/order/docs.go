// Package order implements the order aggregate: a customer's tab for one
// table visit, holding line items, a paid flag, and a status that moves
// through a one-directional lifecycle toward a terminal state.
//
// The aggregate is the single authority for all state-changing operations on
// an order and its items. It enforces the core invariants:
//   - terminal orders (Completed, Cancelled) accept no further mutation of
//     items or status
//   - every genuine status change appends exactly one history entry;
//     setting the current status again appends nothing
//   - removing the last remaining item cancels the whole order atomically
//   - the paid flag is orthogonal to status and never touches history
//
// Persistence reconstructs aggregates through RestoreOrder; all other
// construction goes through NewOrder, which records the initial Pending
// status in the history.
package order
