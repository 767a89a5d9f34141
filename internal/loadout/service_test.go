package loadout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcPlanner_Go/internal/catalog"
	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

func testCatalog() *catalog.Store {
	return catalog.NewStaticStore([]domain.Item{
		{ID: "metal_parts", Type: "Basic Material"},
		{ID: "anvil_i", Type: "Hand Cannon", IsWeaponFlag: true, Value: 100, WeightKg: 5,
			Recipe: domain.Components{{ItemID: "metal_parts", Quantity: 4}}},
		{ID: "medkit_standard", Type: "Consumable", Value: 10, WeightKg: 1,
			Recipe: domain.Components{{ItemID: "fabric", Quantity: 2}}},
		*armor,
	})
}

func newTestService() (Service, *Store) {
	cat := testCatalog()
	store := NewStore(16, time.Hour)
	return NewService(store, cat, crafting.NewService(cat, 0)), store
}

func TestService_Lifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	l, err := svc.Create(ctx)
	require.NoError(t, err)

	l, err = svc.Equip(ctx, l.ID, domain.SlotWeapon1, "anvil_i")
	require.NoError(t, err)
	require.NotNil(t, l.Weapon1)

	l, err = svc.Equip(ctx, l.ID, domain.SlotBackpack, "medkit_standard")
	require.NoError(t, err)
	l, err = svc.AdjustQuantity(ctx, l.ID, l.Backpack[0].InstanceID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Backpack[0].Quantity)

	plan, err := svc.Plan(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, plan.Roots, 2)
	byID := map[string]int{}
	for _, r := range plan.Requirements {
		byID[r.ItemID] = r.Quantity
	}
	assert.Equal(t, map[string]int{"metal_parts": 4, "fabric": 6}, byID)
	assert.InDelta(t, 130.0, plan.Totals.Value, 0.001)

	l, err = svc.Remove(ctx, l.ID, domain.SlotWeapon1, l.Weapon1.InstanceID)
	require.NoError(t, err)
	assert.Nil(t, l.Weapon1)

	require.NoError(t, svc.Delete(ctx, l.ID))
	_, err = svc.Get(ctx, l.ID)
	assert.ErrorIs(t, err, domain.ErrLoadoutNotFound)
}

func TestService_Errors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	l, _ := svc.Create(ctx)

	_, err := svc.Equip(ctx, l.ID, domain.SlotWeapon1, "ghost")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = svc.Equip(ctx, l.ID, domain.SlotWeapon1, "medkit_standard")
	assert.ErrorIs(t, err, domain.ErrSlotMismatch)

	_, err = svc.Equip(ctx, "missing", domain.SlotWeapon1, "anvil_i")
	assert.ErrorIs(t, err, domain.ErrLoadoutNotFound)

	_, err = svc.EquipMod(ctx, l.ID, 1, 0, "anvil_i")
	assert.ErrorIs(t, err, domain.ErrSlotMismatch)

	assert.ErrorIs(t, svc.Delete(ctx, "missing"), domain.ErrLoadoutNotFound)

	_, err = svc.Plan(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrLoadoutNotFound)
}

func TestService_EmptyLoadoutPlan(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	l, _ := svc.Create(ctx)

	plan, err := svc.Plan(ctx, l.ID)

	require.NoError(t, err)
	assert.Empty(t, plan.Roots)
	assert.Empty(t, plan.Requirements)
}

func TestStore_FailedUpdateLeavesLoadoutUnchanged(t *testing.T) {
	store := NewStore(4, time.Hour)
	l := store.Create()

	_, err := store.Update(l.ID, func(l *Loadout) error {
		_, _ = l.Equip(domain.SlotShield, armor)
		return errors.New("abort")
	})
	require.Error(t, err)

	got, err := store.Get(l.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Shield)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore(4, time.Hour)
	l := store.Create()
	l.Backpack = append(l.Backpack, Entry{ItemID: "sneaky"})

	got, err := store.Get(l.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Backpack)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store := NewStore(2, time.Hour)
	a := store.Create()
	store.Create()
	store.Create()

	_, err := store.Get(a.ID)
	assert.ErrorIs(t, err, domain.ErrLoadoutNotFound)
	assert.Equal(t, 2, store.Len())
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(4, 20*time.Millisecond)
	l := store.Create()

	time.Sleep(60 * time.Millisecond)

	_, err := store.Get(l.ID)
	assert.ErrorIs(t, err, domain.ErrLoadoutNotFound)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := NewStore(4, time.Hour)
	l := store.Create()
	_, err := store.Update(l.ID, func(l *Loadout) error {
		_, err := l.Equip(domain.SlotBackpack, medkit)
		return err
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(l.ID, func(l *Loadout) error {
				_, err := l.Equip(domain.SlotBackpack, medkit)
				return err
			})
		}()
	}
	wg.Wait()

	got, err := store.Get(l.ID)
	require.NoError(t, err)
	assert.Equal(t, 51, got.Backpack[0].Quantity)
}
