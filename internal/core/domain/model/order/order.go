package order

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents one table visit's tab. It is the aggregate root that manages
// the order lifecycle from creation through item mutation to completion or
// cancellation, and it owns the line items and the status history ledger.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, its restaurant and its table
//   - Status transitions are one-directional toward a terminal state; once
//     Completed or Cancelled is reached neither items nor status may change
//   - Every genuine status change appends exactly one history entry
//   - Removing the last remaining item cancels the whole order
//   - The paid flag is independent of status and never appends history
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// restaurantID scopes the order to one restaurant
	restaurantID kernel.UUID

	// tableID is the table this tab belongs to
	tableID kernel.UUID

	// customerID is the customer who opened the tab (nil for anonymous walk-ups)
	customerID *kernel.UUID

	// employeeID is the employee who placed or serves the order (nil if none)
	employeeID *kernel.UUID

	// placedAt is the creation time, used for "latest order per table" resolution
	placedAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// paid records whether the tab has been settled
	paid bool

	// items are the current line items
	items []*Item

	// history is the full append-only status ledger, ascending by append order
	history []HistoryEntry

	// uncommitted are history entries appended since construction/restore,
	// pending persistence
	uncommitted []HistoryEntry

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in the Pending status with an empty item list
// and records the initial status in the history ledger.
//
// customerID and employeeID may be nil; all other identifiers must be valid.
// Line items are attached afterwards via ReplaceItems.
func NewOrder(
	id, restaurantID, tableID kernel.UUID,
	customerID, employeeID *kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		placedAt:      now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setTableID(tableID),
		o.setCustomerID(customerID),
		o.setEmployeeID(employeeID),
	); err != nil {
		return nil, err
	}

	o.appendHistory(Pending, now)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation side effects: no history entry is appended and the restored
// ledger is taken as already committed.
func RestoreOrder(
	id, restaurantID, tableID kernel.UUID,
	customerID, employeeID *kernel.UUID,
	placedAt time.Time,
	status Status,
	paid bool,
	items []*Item,
	history []HistoryEntry,
) (*Order, error) {
	o := &Order{
		placedAt:      placedAt,
		paid:          paid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setTableID(tableID),
		o.setCustomerID(customerID),
		o.setEmployeeID(employeeID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	o.history = history

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the owning restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// TableID returns the table's identifier.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// CustomerID returns the customer's identifier, or nil.
func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

// EmployeeID returns the serving employee's identifier, or nil.
func (o *Order) EmployeeID() *kernel.UUID {
	return o.employeeID
}

// PlacedAt returns the order's creation time.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Paid reports whether the tab has been settled.
func (o *Order) Paid() bool {
	return o.paid
}

// Items returns the current line items.
func (o *Order) Items() []*Item {
	return o.items
}

// History returns the full status ledger in append order, ascending.
func (o *Order) History() []HistoryEntry {
	return o.history
}

// UncommittedHistory returns ledger entries appended since the aggregate was
// constructed or restored. Persistence inserts exactly these on save.
func (o *Order) UncommittedHistory() []HistoryEntry {
	return o.uncommitted
}

// SetEmployee reassigns the serving employee. This is a plain field merge
// used by full-order updates; nil clears the assignment.
func (o *Order) SetEmployee(employeeID *kernel.UUID) error {
	return o.setEmployeeID(employeeID)
}

// SetCustomer reassigns the customer reference; nil clears it.
func (o *Order) SetCustomer(customerID *kernel.UUID) error {
	return o.setCustomerID(customerID)
}

// ReplaceItems atomically discards all current items and installs the
// replacement set. It never touches status or history, and it is rejected
// on a terminal order.
func (o *Order) ReplaceItems(items []*Item) error {
	if err := o.guardNotTerminal(); err != nil {
		return err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}

// ChangeStatus moves the order to next.
//
// Setting the current status again is a no-op that appends nothing.
// A genuine change appends exactly one history entry. Any change out of a
// terminal status fails with an InvalidStateError and mutates nothing.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if next == o.status {
		return nil
	}

	newStatus, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendHistory(newStatus, now)
	return nil
}

// SetPaid flips the paid flag. Paid is orthogonal to status: no history
// entry is appended, and a settled tab may even be in a terminal status.
func (o *Order) SetPaid(paid bool) {
	o.paid = paid
}

// Cancel moves the order to Cancelled and appends a history entry.
// Cancelling an order that is already Completed or Cancelled fails with an
// InvalidStateError; re-cancelling is rejected, not silently accepted.
func (o *Order) Cancel(now time.Time) error {
	if err := o.guardNotTerminal(); err != nil {
		return err
	}
	return o.ChangeStatus(Cancelled, now)
}

// RemoveItem deletes one line item. Removing the last remaining item is the
// sole automatic-cancellation trigger: the order then cancels itself, with a
// history entry, atomically with the removal. Removing a non-last item only
// deletes it.
//
// Returns whether the whole order was cancelled as a side effect, so the
// caller can report the cascade distinctly. Fails with an InvalidStateError
// on a terminal order and with an ObjectNotFoundError when the item does not
// belong to this order.
func (o *Order) RemoveItem(itemID kernel.UUID, now time.Time) (bool, error) {
	if err := o.guardNotTerminal(); err != nil {
		return false, err
	}

	idx := -1
	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, errs.NewObjectNotFoundError("orderItemId", itemID.String())
	}

	o.items = append(o.items[:idx], o.items[idx+1:]...)

	if len(o.items) == 0 {
		if err := o.Cancel(now); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// TotalCost computes the order's total as the sum of quantity times menu item
// price over the current items. The total is never stored; it is recomputed
// on demand from the supplied price table to avoid staleness. An order with
// no items totals zero. An item whose menu item is missing from the price
// table fails the computation with an ObjectNotFoundError rather than
// under-reporting the total.
func (o *Order) TotalCost(prices map[kernel.UUID]kernel.Money) (kernel.Money, error) {
	total := kernel.Zero()
	for _, item := range o.items {
		price, ok := prices[item.MenuItemID()]
		if !ok {
			return kernel.Zero(), errs.NewObjectNotFoundError("menuItemId", item.MenuItemID().String())
		}
		total = total.Add(price.MultiplyBy(item.Quantity()))
	}
	return total, nil
}

func (o *Order) guardNotTerminal() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("order", o.status.String())
	}
	return nil
}

func (o *Order) appendHistory(status Status, now time.Time) {
	entry := newHistoryEntry(status, now)
	o.history = append(o.history, entry)
	o.uncommitted = append(o.uncommitted, entry)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setEmployeeID(employeeID *kernel.UUID) error {
	if employeeID != nil {
		if err := employeeID.Validate(); err != nil {
			return err
		}
	}
	o.employeeID = employeeID
	return nil
}
