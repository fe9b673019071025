package queries

import (
	"context"

	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves all non-terminal orders from the
// database, oldest first.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open orders.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			batch_id,
			buyer,
			seller,
			amount,
			status,
			problem_reported,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, int(order.Confirmed), int(order.Cancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOpenOrdersQueryResponse
		var id, batchID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&batchID,
			&response.Buyer,
			&response.Seller,
			&response.Amount,
			&status,
			&response.ProblemReported,
			&response.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		orderBatchID, idErr := kernel.UUIDFromBytes(batchID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.BatchID = orderBatchID

		response.Status = order.Status(status).String()
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
