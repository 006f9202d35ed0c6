package renters

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/carregistry/internal/common"
	"github.com/dmitrijs2005/carregistry/internal/server/models"
	"github.com/dmitrijs2005/carregistry/internal/server/repositories/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepository(t *testing.T) {
	repo := NewSQLiteRepository(repotest.NewSQLiteDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "allright.testnet")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, repo.Set(ctx, &models.Renter{Account: "allright.testnet", Name: "Allright"}))
	require.NoError(t, repo.Set(ctx, &models.Renter{Account: "zed.testnet", Name: "Zed"}))

	ok, err := repo.Contains(ctx, "allright.testnet")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Set(ctx, &models.Renter{Account: "allright.testnet", Name: "Allright", CarRented: true}))

	got, err := repo.Get(ctx, "allright.testnet")
	require.NoError(t, err)
	assert.True(t, got.CarRented)

	all, err := repo.Values(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "allright.testnet", all[0].Account)
	assert.Equal(t, "zed.testnet", all[1].Account)
}
