package commands_test

import (
	"testing"
	"time"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/core/domain/model/listing"
	"provenance/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type fixtures struct {
	originator kernel.Identity
	seller     kernel.Identity
	buyer      kernel.Identity
	price      kernel.Money
}

func newFixtures(t *testing.T) fixtures {
	t.Helper()

	originator, err := kernel.NewIdentity("farmer-frida")
	require.NoError(t, err)
	seller, err := kernel.NewIdentity("trader-tom")
	require.NoError(t, err)
	buyer, err := kernel.NewIdentity("buyer-bella")
	require.NoError(t, err)
	price, err := kernel.NewMoney(250)
	require.NoError(t, err)

	return fixtures{originator: originator, seller: seller, buyer: buyer, price: price}
}

// sellableBatch returns a batch whose custody has passed to the seller.
func (f fixtures) sellableBatch(t *testing.T) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(kernel.NewUUID(), f.originator, "orchard-7", fixtureTime)
	require.NoError(t, err)
	require.NoError(t, b.TransferCustody(f.originator, f.seller, "market-hall", fixtureTime))
	return b
}

func (f fixtures) activeListing(t *testing.T, batchID kernel.UUID) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(kernel.NewUUID(), batchID, f.seller, f.price,
		"20kg crate of heritage apples", "", fixtureTime)
	require.NoError(t, err)
	return l
}

func (f fixtures) openOrder(t *testing.T, batchID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), batchID,
		f.buyer, f.seller, f.price, f.price, "pickup-7731", fixtureTime)
	require.NoError(t, err)
	return o
}
