package restaurant

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booktable/internal/httperr"
)

func TestUpdateRestaurant(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	r := e.restaurant(t, "mgr-1")
	require.NoError(t, NewApproveRestaurant(e.repo, nil).Execute(ctx, r.ID, true, "admin"))

	uc := NewUpdateRestaurant(e.repo, nil)
	in := UpdateRestaurantInput{
		RestaurantID: r.ID,
		CreateRestaurantInput: CreateRestaurantInput{
			ManagerID:   "mgr-1",
			Name:        " Osteria Nuova ",
			CuisineType: "Milanese",
			Latitude:    45.47,
			Longitude:   9.18,
		},
	}

	got, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Osteria Nuova", got.Name)
	assert.Equal(t, "Europe/Rome", got.Timezone)

	stored, err := e.repo.GetRestaurant(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milanese", stored.CuisineType)
	assert.True(t, stored.Approved)

	t.Run("other manager", func(t *testing.T) {
		bad := in
		bad.ManagerID = "mgr-2"
		_, err := uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, "not_restaurant_manager"))
	})

	t.Run("invalid fields", func(t *testing.T) {
		bad := in
		bad.Name = ""
		_, err := uc.Execute(ctx, bad)
		assert.True(t, httperr.IsBusiness(err, "name_required"))
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		bad := in
		bad.RestaurantID = 999
		_, err := uc.Execute(ctx, bad)
		assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
	})
}

func TestListRestaurants(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	a := e.restaurant(t, "mgr-1")
	b := e.restaurant(t, "mgr-1")
	other := e.restaurant(t, "mgr-2")
	require.NoError(t, NewApproveRestaurant(e.repo, nil).Execute(ctx, a.ID, true, "admin"))

	uc := NewListRestaurants(e.repo)

	mine, err := uc.ByManager(ctx, "mgr-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, a.ID, mine[0].ID)
	assert.True(t, mine[0].Approved)
	assert.False(t, mine[1].Approved)

	_, err = uc.ByManager(ctx, " ")
	assert.True(t, httperr.IsBusiness(err, "manager_required"))

	pending, err := uc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.ElementsMatch(t, []uint{b.ID, other.ID}, []uint{pending[0].ID, pending[1].ID})
}

func TestRemoveRestaurant(t *testing.T) {
	e := openEnv(t)
	ctx := context.Background()
	r := e.restaurant(t, "mgr-1")
	inv := &countingInvalidator{err: errors.New("redis down")}

	uc := NewRemoveRestaurant(e.repo, inv, nil, zerolog.Nop())
	require.NoError(t, uc.Execute(ctx, r.ID, "admin"))
	assert.Equal(t, []uint{r.ID}, inv.ids)

	_, err := e.repo.GetRestaurant(ctx, r.ID)
	assert.True(t, httperr.IsBusiness(err, "restaurant_not_found"))

	err = uc.Execute(ctx, r.ID, "admin")
	assert.True(t, httperr.IsBusiness(err, "restaurant_not_found"))
	assert.Len(t, inv.ids, 1)

	mine, err := NewListRestaurants(e.repo).ByManager(ctx, "mgr-1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}
