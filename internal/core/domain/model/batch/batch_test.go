package batch_test

import (
	"testing"
	"time"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/domain/model/kernel"
	"provenance/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestBatch(t *testing.T) (*batch.Batch, kernel.Identity) {
	t.Helper()
	originator, err := kernel.NewIdentity("farmer-frida")
	require.NoError(t, err)
	b, err := batch.NewBatch(kernel.NewUUID(), originator, "Field 7", testTime)
	require.NoError(t, err)
	return b, originator
}

func TestNewBatch(t *testing.T) {
	t.Run("should create batch in Harvested stage with Created event", func(t *testing.T) {
		b, originator := newTestBatch(t)

		require.NoError(t, b.Validate())
		assert.Equal(t, batch.Harvested, b.Stage())
		assert.True(t, b.Custodian().IsEqual(originator))
		assert.True(t, b.Originator().IsEqual(originator))
		assert.Equal(t, "Field 7", b.Location())
		assert.False(t, b.Tampered())
		assert.Empty(t, b.Flags())
		assert.Equal(t, testTime, b.CreatedAt())

		history := b.History()
		require.Len(t, history, 1)
		assert.Equal(t, batch.EventCreated, history[0].Kind())
		assert.True(t, history[0].Actor().IsEqual(originator))
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		originator, _ := kernel.NewIdentity("farmer-frida")

		_, err := batch.NewBatch(kernel.UUID{}, originator, "Field 7", testTime)

		require.Error(t, err)
	})

	t.Run("should fail with empty location", func(t *testing.T) {
		originator, _ := kernel.NewIdentity("farmer-frida")

		_, err := batch.NewBatch(kernel.NewUUID(), originator, "", testTime)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location")
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		originator, _ := kernel.NewIdentity("farmer-frida")

		_, err := batch.NewBatch(kernel.NewUUID(), originator, "Field 7", time.Time{})

		require.Error(t, err)
	})

	t.Run("should fail validation for nil batch", func(t *testing.T) {
		var b *batch.Batch
		assert.Equal(t, batch.ErrBatchIsNotConstructed, b.Validate())
	})
}

func TestBatch_TransferCustody(t *testing.T) {
	trucker, _ := kernel.NewIdentity("trucker-tom")

	t.Run("custodian transfers custody and stage moves to InTransit", func(t *testing.T) {
		b, originator := newTestBatch(t)

		err := b.TransferCustody(originator, trucker, "Warehouse", testTime.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, b.Custodian().IsEqual(trucker))
		assert.Equal(t, "Warehouse", b.Location())
		assert.Equal(t, batch.InTransit, b.Stage())
		assert.Len(t, b.History(), 2)
		assert.Equal(t, batch.EventTransferred, b.History()[1].Kind())
	})

	t.Run("non-custodian is rejected", func(t *testing.T) {
		b, _ := newTestBatch(t)
		stranger, _ := kernel.NewIdentity("stranger-steve")

		err := b.TransferCustody(stranger, trucker, "Warehouse", testTime)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, batch.Harvested, b.Stage())
		assert.Len(t, b.History(), 1)
	})

	t.Run("tampered batch cannot change custody", func(t *testing.T) {
		b, originator := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		err := b.TransferCustody(originator, trucker, "Warehouse", testTime)

		require.ErrorIs(t, err, batch.ErrAlreadyTampered)
	})

	t.Run("sold batch cannot change custody", func(t *testing.T) {
		b, originator := newTestBatch(t)
		require.NoError(t, b.MarkSold(originator, testTime))

		err := b.TransferCustody(originator, trucker, "Warehouse", testTime)

		require.ErrorIs(t, err, batch.ErrAlreadySold)
	})

	t.Run("empty new location is rejected", func(t *testing.T) {
		b, originator := newTestBatch(t)

		err := b.TransferCustody(originator, trucker, "", testTime)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBatch_LogProcessingAndInspection(t *testing.T) {
	t.Run("custodian logs processing", func(t *testing.T) {
		b, originator := newTestBatch(t)

		err := b.LogProcessing(originator, "washed and sorted", testTime)

		require.NoError(t, err)
		assert.Equal(t, batch.Processed, b.Stage())
		assert.Equal(t, batch.EventProcessed, b.History()[1].Kind())
		assert.Equal(t, "washed and sorted", b.History()[1].Details())
	})

	t.Run("custodian logs inspection", func(t *testing.T) {
		b, originator := newTestBatch(t)

		err := b.LogInspection(originator, "grade A", testTime)

		require.NoError(t, err)
		assert.Equal(t, batch.Inspected, b.Stage())
		assert.Equal(t, batch.EventInspected, b.History()[1].Kind())
	})

	t.Run("non-custodian fails Unauthorized and batch is unchanged", func(t *testing.T) {
		b, _ := newTestBatch(t)
		stranger, _ := kernel.NewIdentity("stranger-steve")

		err := b.LogProcessing(stranger, "tried anyway", testTime)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, batch.Harvested, b.Stage())
		assert.Len(t, b.History(), 1)
	})

	t.Run("empty details are rejected", func(t *testing.T) {
		b, originator := newTestBatch(t)

		require.ErrorIs(t, b.LogProcessing(originator, "", testTime), errs.ErrValueIsRequired)
		require.ErrorIs(t, b.LogInspection(originator, "", testTime), errs.ErrValueIsRequired)
	})

	t.Run("tampered batch rejects processing", func(t *testing.T) {
		b, originator := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		err := b.LogProcessing(originator, "washed", testTime)

		require.ErrorIs(t, err, batch.ErrAlreadyTampered)
	})
}

func TestBatch_LogDamage(t *testing.T) {
	t.Run("custodian damage report flags batch and sets Tampered stage", func(t *testing.T) {
		b, originator := newTestBatch(t)

		err := b.LogDamage(originator, "crate dropped", testTime)

		require.NoError(t, err)
		assert.True(t, b.Tampered())
		assert.Equal(t, batch.Tampered, b.Stage())
		assert.Equal(t, "crate dropped", b.Flags()[originator])
		assert.Equal(t, batch.EventDamaged, b.History()[1].Kind())
	})

	t.Run("damage on already tampered batch is permitted", func(t *testing.T) {
		b, originator := newTestBatch(t)
		require.NoError(t, b.LogDamage(originator, "crate dropped", testTime))

		err := b.LogDamage(originator, "crate dropped twice", testTime)

		require.NoError(t, err)
		assert.Equal(t, "crate dropped twice", b.Flags()[originator])
		assert.Equal(t, 1, b.FlagCount())
	})

	t.Run("damage on sold batch fails AlreadySold", func(t *testing.T) {
		b, originator := newTestBatch(t)
		require.NoError(t, b.MarkSold(originator, testTime))

		err := b.LogDamage(originator, "crate dropped", testTime)

		require.ErrorIs(t, err, batch.ErrAlreadySold)
	})

	t.Run("non-custodian cannot report damage", func(t *testing.T) {
		b, _ := newTestBatch(t)
		stranger, _ := kernel.NewIdentity("stranger-steve")

		err := b.LogDamage(stranger, "crate dropped", testTime)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestBatch_FlagAndResolve(t *testing.T) {
	t.Run("any identity may flag once", func(t *testing.T) {
		b, _ := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")

		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		assert.True(t, b.Tampered())
		assert.Equal(t, batch.Tampered, b.Stage())
		assert.Equal(t, map[kernel.Identity]string{reporter: "discoloration"}, b.Flags())

		err := b.Flag(reporter, "again", testTime)
		require.ErrorIs(t, err, batch.ErrAlreadyFlaggedBySender)
	})

	t.Run("flag on sold batch fails AlreadySold", func(t *testing.T) {
		b, originator := newTestBatch(t)
		require.NoError(t, b.MarkSold(originator, testTime))
		reporter, _ := kernel.NewIdentity("consumer-carla")

		err := b.Flag(reporter, "discoloration", testTime)

		require.ErrorIs(t, err, batch.ErrAlreadySold)
	})

	t.Run("originator resolves flag, stage remains Tampered", func(t *testing.T) {
		b, originator := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		err := b.ResolveFlag(originator, reporter, "verified as natural variation", testTime)

		require.NoError(t, err)
		assert.False(t, b.Tampered())
		assert.Empty(t, b.Flags())
		assert.Equal(t, batch.Tampered, b.Stage(),
			"resolving a flag does not silently restore a stage")
		assert.Equal(t, batch.EventFlagResolved, b.History()[2].Kind())
	})

	t.Run("only originator may resolve", func(t *testing.T) {
		b, _ := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		err := b.ResolveFlag(reporter, reporter, "self-service", testTime)

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.True(t, b.Tampered())
	})

	t.Run("resolving on a clean batch fails NotTampered", func(t *testing.T) {
		b, originator := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")

		err := b.ResolveFlag(originator, reporter, "nothing to resolve", testTime)

		require.ErrorIs(t, err, batch.ErrNotTampered)
	})

	t.Run("resolving an unknown reporter fails NotFlagged", func(t *testing.T) {
		b, originator := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		other, _ := kernel.NewIdentity("inspector-ivan")
		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		err := b.ResolveFlag(originator, other, "wrong reporter", testTime)

		require.ErrorIs(t, err, batch.ErrNotFlagged)
	})

	t.Run("tamper holds while any flag remains", func(t *testing.T) {
		b, originator := newTestBatch(t)
		carla, _ := kernel.NewIdentity("consumer-carla")
		ivan, _ := kernel.NewIdentity("inspector-ivan")
		require.NoError(t, b.Flag(carla, "discoloration", testTime))
		require.NoError(t, b.Flag(ivan, "broken seal", testTime))

		require.NoError(t, b.ResolveFlag(originator, carla, "checked", testTime))
		assert.True(t, b.Tampered(), "partial resolution leaves tamper set")

		require.NoError(t, b.ResolveFlag(originator, ivan, "resealed", testTime))
		assert.False(t, b.Tampered())
	})
}

func TestBatch_MarkSold(t *testing.T) {
	t.Run("custodian sells batch, stage terminal", func(t *testing.T) {
		b, originator := newTestBatch(t)

		require.NoError(t, b.MarkSold(originator, testTime))

		assert.Equal(t, batch.Sold, b.Stage())
		assert.Equal(t, batch.EventSold, b.History()[1].Kind())

		err := b.MarkSold(originator, testTime)
		require.ErrorIs(t, err, batch.ErrAlreadySold)
	})

	t.Run("tampered batch cannot be sold", func(t *testing.T) {
		b, originator := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		err := b.MarkSold(originator, testTime)

		require.ErrorIs(t, err, batch.ErrAlreadyTampered)
	})
}

func TestBatch_MarkInTransit(t *testing.T) {
	t.Run("custodian ships batch without custody change", func(t *testing.T) {
		b, originator := newTestBatch(t)

		err := b.MarkInTransit(originator, "Highway 9", testTime)

		require.NoError(t, err)
		assert.Equal(t, batch.InTransit, b.Stage())
		assert.Equal(t, "Highway 9", b.Location())
		assert.True(t, b.Custodian().IsEqual(originator))
	})

	t.Run("tampered batch cannot ship", func(t *testing.T) {
		b, originator := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		require.NoError(t, b.Flag(reporter, "discoloration", testTime))

		require.ErrorIs(t, b.MarkInTransit(originator, "Highway 9", testTime), batch.ErrAlreadyTampered)
	})
}

func TestBatch_ConfirmDelivery(t *testing.T) {
	t.Run("delivery moves custody to buyer and appends two events", func(t *testing.T) {
		b, _ := newTestBatch(t)
		buyer, _ := kernel.NewIdentity("buyer-bella")

		err := b.ConfirmDelivery(buyer, testTime)

		require.NoError(t, err)
		assert.True(t, b.Custodian().IsEqual(buyer))
		assert.Equal(t, batch.Delivered, b.Stage())

		history := b.History()
		require.Len(t, history, 3)
		assert.Equal(t, batch.EventDeliveryConfirmed, history[1].Kind())
		assert.Equal(t, batch.EventSold, history[2].Kind())
	})

	t.Run("sold batch rejects delivery confirmation", func(t *testing.T) {
		b, originator := newTestBatch(t)
		require.NoError(t, b.MarkSold(originator, testTime))
		buyer, _ := kernel.NewIdentity("buyer-bella")

		require.ErrorIs(t, b.ConfirmDelivery(buyer, testTime), batch.ErrAlreadySold)
	})
}

func TestBatch_TamperInvariant(t *testing.T) {
	// tamper == (flags non-empty) after every flag/resolve operation.
	b, originator := newTestBatch(t)
	carla, _ := kernel.NewIdentity("consumer-carla")
	ivan, _ := kernel.NewIdentity("inspector-ivan")

	checkInvariant := func() {
		assert.Equal(t, len(b.Flags()) > 0, b.Tampered())
	}

	checkInvariant()
	require.NoError(t, b.Flag(carla, "discoloration", testTime))
	checkInvariant()
	require.NoError(t, b.Flag(ivan, "broken seal", testTime))
	checkInvariant()
	require.NoError(t, b.ResolveFlag(originator, ivan, "resealed", testTime))
	checkInvariant()
	require.NoError(t, b.ResolveFlag(originator, carla, "checked", testTime))
	checkInvariant()
	assert.False(t, b.Tampered())
}

func TestRestoreBatch(t *testing.T) {
	t.Run("should restore persisted batch and re-derive tamper", func(t *testing.T) {
		original, _ := newTestBatch(t)
		reporter, _ := kernel.NewIdentity("consumer-carla")
		require.NoError(t, original.Flag(reporter, "discoloration", testTime))

		restored, err := batch.RestoreBatch(
			original.ID(),
			original.Originator(),
			original.Custodian(),
			original.Location(),
			original.Stage(),
			original.Flags(),
			original.History(),
			original.CreatedAt(),
		)

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(original))
		assert.True(t, restored.Tampered())
		assert.Equal(t, batch.Tampered, restored.Stage())
		assert.Len(t, restored.History(), 2)
	})

	t.Run("should reject empty history", func(t *testing.T) {
		originator, _ := kernel.NewIdentity("farmer-frida")

		_, err := batch.RestoreBatch(kernel.NewUUID(), originator, originator,
			"Field 7", batch.Harvested, nil, nil, testTime)

		require.Error(t, err)
	})

	t.Run("should reject invalid stage", func(t *testing.T) {
		originator, _ := kernel.NewIdentity("farmer-frida")

		_, err := batch.RestoreBatch(kernel.NewUUID(), originator, originator,
			"Field 7", batch.Unknown, nil, nil, testTime)

		require.Error(t, err)
	})
}
