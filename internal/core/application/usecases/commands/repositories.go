// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"provenance/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each command declares the narrowest unit of work it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// BatchUoW manages transactions for batch-only operations: origination,
	// traceability logging, flagging, and flag resolution.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WalletUoW manages transactions for wallet-only operations.
	WalletUoW interface {
		TxManager
		AccountRepoFactory
	}

	// WalletUoWFactory creates new wallet unit of work instances.
	WalletUoWFactory interface {
		Create() WalletUoW
	}

	// CustodyUoW manages transactions spanning a batch and its open order,
	// used for custody transfer locking, shipment, and problem resolution.
	CustodyUoW interface {
		TxManager
		BatchRepoFactory
		OrderRepoFactory
	}

	// CustodyUoWFactory creates new custody unit of work instances.
	CustodyUoWFactory interface {
		Create() CustodyUoW
	}

	// MarketUoW manages transactions for putting a batch on the market:
	// the batch, its listings, and any open order must be checked together.
	MarketUoW interface {
		TxManager
		BatchRepoFactory
		ListingRepoFactory
		OrderRepoFactory
	}

	// MarketUoWFactory creates new market unit of work instances.
	MarketUoWFactory interface {
		Create() MarketUoW
	}

	// SettlementUoW manages transactions that settle an order against a
	// wallet: cancellation refunds and escrow payouts.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// DeliveryUoW manages transactions for delivery confirmation, which moves
	// the order, the batch, and the seller's wallet in one step.
	DeliveryUoW interface {
		TxManager
		BatchRepoFactory
		OrderRepoFactory
		AccountRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// TradeUoW manages transactions for order placement, which touches every
	// aggregate: the listing is consumed, the batch checked, the order opened,
	// and the buyer's wallet debited.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   listingRepo := uow.ListingRepository()
	//   batchRepo := uow.BatchRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	TradeUoW interface {
		TxManager
		BatchRepoFactory
		ListingRepoFactory
		OrderRepoFactory
		AccountRepoFactory
	}

	// TradeUoWFactory creates new trade unit of work instances.
	TradeUoWFactory interface {
		Create() TradeUoW
	}
)
