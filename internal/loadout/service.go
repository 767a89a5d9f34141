package loadout

import (
	"context"
	"fmt"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
	"github.com/osse101/ArcPlanner_Go/internal/logger"
)

// Service defines the loadout operations exposed over the API
type Service interface {
	Create(ctx context.Context) (*Loadout, error)
	Get(ctx context.Context, id string) (*Loadout, error)
	Delete(ctx context.Context, id string) error
	Equip(ctx context.Context, id string, slot domain.SlotType, itemID string) (*Loadout, error)
	EquipMod(ctx context.Context, id string, weapon, index int, itemID string) (*Loadout, error)
	Remove(ctx context.Context, id string, slot domain.SlotType, instanceID string) (*Loadout, error)
	RemoveMod(ctx context.Context, id string, weapon, index int) (*Loadout, error)
	AdjustQuantity(ctx context.Context, id, instanceID string, delta int) (*Loadout, error)
	Plan(ctx context.Context, id string) (*crafting.Plan, error)
}

type service struct {
	store   *Store
	catalog crafting.Catalog
	planner crafting.Service
}

// NewService creates a new loadout service
func NewService(store *Store, catalog crafting.Catalog, planner crafting.Service) Service {
	return &service{
		store:   store,
		catalog: catalog,
		planner: planner,
	}
}

func (s *service) Create(ctx context.Context) (*Loadout, error) {
	l := s.store.Create()
	logger.FromContext(ctx).Info(LogMsgLoadoutCreated, logger.AttrKeyLoadoutID, l.ID)
	return l, nil
}

func (s *service) Get(ctx context.Context, id string) (*Loadout, error) {
	return s.store.Get(id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.store.Delete(id) {
		return fmt.Errorf(ErrFmtLoadoutMissing, domain.ErrLoadoutNotFound, id)
	}
	return nil
}

func (s *service) Equip(ctx context.Context, id string, slot domain.SlotType, itemID string) (*Loadout, error) {
	item, err := s.resolve(itemID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, id, "equip", func(l *Loadout) error {
		_, err := l.Equip(slot, item)
		return err
	})
}

func (s *service) EquipMod(ctx context.Context, id string, weapon, index int, itemID string) (*Loadout, error) {
	item, err := s.resolve(itemID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, id, "equip_mod", func(l *Loadout) error {
		_, err := l.EquipMod(weapon, index, item)
		return err
	})
}

func (s *service) Remove(ctx context.Context, id string, slot domain.SlotType, instanceID string) (*Loadout, error) {
	return s.update(ctx, id, "remove", func(l *Loadout) error {
		return l.Remove(slot, instanceID)
	})
}

func (s *service) RemoveMod(ctx context.Context, id string, weapon, index int) (*Loadout, error) {
	return s.update(ctx, id, "remove_mod", func(l *Loadout) error {
		return l.RemoveMod(weapon, index)
	})
}

func (s *service) AdjustQuantity(ctx context.Context, id, instanceID string, delta int) (*Loadout, error) {
	return s.update(ctx, id, "adjust_quantity", func(l *Loadout) error {
		_, err := l.AdjustQuantity(instanceID, delta)
		return err
	})
}

// Plan computes crafting costs for everything currently equipped
func (s *service) Plan(ctx context.Context, id string) (*crafting.Plan, error) {
	l, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.planner.Plan(ctx, l.Demands())
}

func (s *service) update(ctx context.Context, id, op string, fn func(*Loadout) error) (*Loadout, error) {
	l, err := s.store.Update(id, fn)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug(LogMsgLoadoutUpdated, logger.AttrKeyLoadoutID, id, "op", op)
	return l, nil
}

func (s *service) resolve(itemID string) (*domain.Item, error) {
	snap, err := s.catalog.Snapshot()
	if err != nil {
		return nil, err
	}
	item, ok := snap.Index.Get(itemID)
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownItem, domain.ErrItemNotFound, itemID)
	}
	return item, nil
}
