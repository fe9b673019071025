package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

// GetAccountBalanceQueryHandler retrieves a wallet balance from the database.
type GetAccountBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountBalanceQueryHandler creates a handler for balance queries.
// Requires a GORM database connection for query execution.
func NewGetAccountBalanceQueryHandler(db *gorm.DB) GetAccountBalanceQueryHandler {
	return GetAccountBalanceQueryHandler{db: db}
}

// Handle executes the query to retrieve one wallet balance.
// A participant without a wallet reads as zero rather than an error.
func (h GetAccountBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetAccountBalanceQuery,
) (GetAccountBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountBalanceQueryResponse{}, err
	}

	response := GetAccountBalanceQueryResponse{Owner: query.Owner().String()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT balance
		FROM accounts
		WHERE owner = ?
	`, query.Owner().String()).Row()

	err := row.Scan(&response.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetAccountBalanceQueryResponse{}, err
	}

	return response, nil
}
