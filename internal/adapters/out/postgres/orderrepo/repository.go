package orderrepo

import (
	"context"
	"errors"
	"time"

	"tableside/internal/adapters/out/postgres/pgerr"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order aggregate: the order row, its line items, and the
// initial history entries.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.WrapTransient("add order", err)
	}

	if err := r.insertItems(ctx, aggregate); err != nil {
		return err
	}

	return r.appendHistory(ctx, aggregate)
}

// Update saves an existing order aggregate. The order row is updated in
// place, line items are rewritten wholesale, and uncommitted history entries
// are appended. Committed history rows are never touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("RestaurantID", "TableID", "CustomerID", "EmployeeID", "PlacedAt", "Status", "Paid").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.WrapTransient("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return pgerr.WrapTransient("delete order items", err)
	}
	if err := r.insertItems(ctx, aggregate); err != nil {
		return err
	}

	return r.appendHistory(ctx, aggregate)
}

// Get retrieves a complete order aggregate scoped to a restaurant.
func (r *GormOrderRepository) Get(ctx context.Context, restaurantID, id kernel.UUID) (*order.Order, error) {
	return r.getOne(ctx, false, restaurantID, id)
}

// GetForUpdate retrieves an order aggregate holding a row lock on the order
// for the rest of the transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, restaurantID, id kernel.UUID) (*order.Order, error) {
	return r.getOne(ctx, true, restaurantID, id)
}

// GetByItem resolves the locked order aggregate owning the given line item.
func (r *GormOrderRepository) GetByItem(ctx context.Context, restaurantID, itemID kernel.UUID) (*order.Order, error) {
	var item OrderItemDTO
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderItemId", itemID)
		}
		return nil, pgerr.WrapTransient("get order item", err)
	}

	orderID, err := kernel.UUIDFromBytes(item.OrderID[:])
	if err != nil {
		return nil, err
	}

	aggregate, err := r.getOne(ctx, true, restaurantID, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("orderItemId", itemID)
		}
		return nil, err
	}
	return aggregate, nil
}

// GetLatestForTable retrieves the most recent order of a table. Placement
// time decides; equal timestamps fall back to the greater identifier so the
// result is deterministic.
func (r *GormOrderRepository) GetLatestForTable(
	ctx context.Context, restaurantID, tableID kernel.UUID,
) (*order.Order, error) {
	return r.getLatestForTable(ctx, false, restaurantID, tableID)
}

// GetLatestForTableForUpdate is GetLatestForTable with a row lock.
func (r *GormOrderRepository) GetLatestForTableForUpdate(
	ctx context.Context, restaurantID, tableID kernel.UUID,
) (*order.Order, error) {
	return r.getLatestForTable(ctx, true, restaurantID, tableID)
}

// GetAllForRestaurant retrieves all orders of a restaurant, newest first.
func (r *GormOrderRepository) GetAllForRestaurant(
	ctx context.Context, restaurantID kernel.UUID,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("placed_at DESC, id DESC").
		Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error; err != nil {
		return nil, pgerr.WrapTransient("get orders", err)
	}

	return r.loadAggregates(ctx, dtos)
}

// GetUnpaidPendingBefore retrieves unpaid orders still in the initial status
// placed before the cutoff, locked for the sweep transaction.
func (r *GormOrderRepository) GetUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "status = ? AND paid = ? AND placed_at < ?",
			order.Pending.String(), false, cutoff).Error; err != nil {
		return nil, pgerr.WrapTransient("get stale orders", err)
	}

	return r.loadAggregates(ctx, dtos)
}

func (r *GormOrderRepository) getOne(
	ctx context.Context, lock bool, restaurantID, id kernel.UUID,
) (*order.Order, error) {
	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := db.First(&dto, "restaurant_id = ? AND id = ?", restaurantID.Bytes(), id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, pgerr.WrapTransient("get order", err)
	}

	return r.loadAggregate(ctx, dto)
}

func (r *GormOrderRepository) getLatestForTable(
	ctx context.Context, lock bool, restaurantID, tableID kernel.UUID,
) (*order.Order, error) {
	db := r.db.WithContext(ctx)
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	err := db.
		Where("restaurant_id = ? AND table_id = ?", restaurantID.Bytes(), tableID.Bytes()).
		Order("placed_at DESC, id DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tableId", tableID)
		}
		return nil, pgerr.WrapTransient("get latest table order", err)
	}

	return r.loadAggregate(ctx, dto)
}

func (r *GormOrderRepository) loadAggregate(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&itemDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, pgerr.WrapTransient("get order items", err)
	}

	var historyDTOs []OrderStatusHistoryDTO
	if err := r.db.WithContext(ctx).
		Order("sequence").
		Find(&historyDTOs, "order_id = ?", dto.ID).Error; err != nil {
		return nil, pgerr.WrapTransient("get order history", err)
	}

	return toDomain(dto, itemDTOs, historyDTOs)
}

func (r *GormOrderRepository) loadAggregates(ctx context.Context, dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := r.loadAggregate(ctx, dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func (r *GormOrderRepository) insertItems(ctx context.Context, aggregate *order.Order) error {
	items := aggregate.Items()
	if len(items) == 0 {
		return nil
	}

	dtos := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemFromDomain(aggregate.ID(), item))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return pgerr.WrapTransient("add order items", err)
	}
	return nil
}

func (r *GormOrderRepository) appendHistory(ctx context.Context, aggregate *order.Order) error {
	uncommitted := aggregate.UncommittedHistory()
	if len(uncommitted) == 0 {
		return nil
	}

	// Uncommitted entries are the tail of the full ledger, so their positions
	// continue the sequence of the rows already persisted.
	first := len(aggregate.History()) - len(uncommitted)

	dtos := make([]OrderStatusHistoryDTO, 0, len(uncommitted))
	for i, entry := range uncommitted {
		dtos = append(dtos, historyFromDomain(aggregate.ID(), entry, first+i))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return pgerr.WrapTransient("append order history", err)
	}
	return nil
}
