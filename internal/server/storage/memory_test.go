package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/currency"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ReturnedRecordsAreCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Owners().Set(ctx, &models.Owner{Account: "laion.testnet", Name: "Juan Carlos", CarAvailable: true, Price: 3}))

	o, err := s.Owners().Get(ctx, "laion.testnet")
	require.NoError(t, err)
	o.CarAvailable = false

	again, err := s.Owners().Get(ctx, "laion.testnet")
	require.NoError(t, err)
	assert.True(t, again.CarAvailable)
}

func TestMemoryStore_RejectsCheapOwner(t *testing.T) {
	s := NewMemoryStore()
	err := s.Owners().Set(context.Background(), &models.Owner{Account: "x", Name: "Cheap", Price: 1})
	assert.Error(t, err)
}

func TestMemoryStore_DuplicateTransfer(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	tr := &models.Transfer{ID: "t1", From: "a", To: "b", Amount: currency.OneToken, CreatedAt: time.Now()}
	require.NoError(t, s.Transfers().Create(ctx, tr))
	assert.Error(t, s.Transfers().Create(ctx, tr))
}

func TestMemoryStore_TransfersNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Transfers().Create(ctx, &models.Transfer{ID: "old", From: "r", To: "o", Amount: currency.OneToken, CreatedAt: base}))
	require.NoError(t, s.Transfers().Create(ctx, &models.Transfer{ID: "new", From: "o", To: "x", Amount: currency.OneToken, CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, s.Transfers().Create(ctx, &models.Transfer{ID: "other", From: "y", To: "z", Amount: currency.OneToken, CreatedAt: base}))

	ts, err := s.Transfers().ListByAccount(ctx, "o")
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, "new", ts[0].ID)
	assert.Equal(t, "old", ts[1].ID)
}

func TestMemoryStore_TransactionsSerialize(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Renters().Set(ctx, &models.Renter{Account: "counter", Name: "0"}))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithTx(ctx, func(ctx context.Context, l Ledger) error {
				rn, err := l.Renters().Get(ctx, "counter")
				if err != nil {
					return err
				}
				rn.Name += "+"
				return l.Renters().Set(ctx, rn)
			})
		}()
	}
	wg.Wait()

	rn, err := s.Renters().Get(ctx, "counter")
	require.NoError(t, err)
	assert.Len(t, rn.Name, 1+n)
}
