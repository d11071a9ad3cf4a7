package queries

import (
	"context"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the database.
// Returns summaries without line-item detail; GetOrderByIDQueryHandler
// serves the full view.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	pending, _ := NewGetOrdersQueryWithStatus(order.Pending)
//
//	summaries, err := handler.Handle(ctx, pending)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders pending payment\n", len(summaries))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.customer_name,
			o.status,
			COUNT(i.id),
			o.total_amount,
			o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
	`
	args := make([]any, 0, 1)
	if status := query.Status(); status != nil {
		sql += " WHERE o.status = ?"
		args = append(args, status.String())
	}
	sql += `
		GROUP BY o.id, o.customer_name, o.status, o.total_amount, o.created_at
		ORDER BY o.created_at DESC
	`

	summaries := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&summary.CustomerName,
			&summary.Status,
			&summary.ItemCount,
			&summary.TotalAmount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
