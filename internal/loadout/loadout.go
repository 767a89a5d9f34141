package loadout

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ArcPlanner_Go/internal/crafting"
	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// Entry is one item placed in a slot
type Entry struct {
	InstanceID string `json:"instance_id"`
	ItemID     string `json:"item_id"`
	Quantity   int    `json:"quantity"`
}

// Mods are the modification slots of one weapon
type Mods [domain.ModSlotsPerWeapon]*Entry

// Loadout is the slot assignment record for one planning session
type Loadout struct {
	ID          string    `json:"id"`
	Weapon1     *Entry    `json:"weapon1"`
	Weapon1Mods Mods      `json:"weapon1_mods"`
	Weapon2     *Entry    `json:"weapon2"`
	Weapon2Mods Mods      `json:"weapon2_mods"`
	Shield      *Entry    `json:"shield"`
	Augment     *Entry    `json:"augment"`
	Backpack    []Entry   `json:"backpack"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New creates an empty loadout with a fresh id
func New() *Loadout {
	return &Loadout{
		ID:        uuid.NewString(),
		Backpack:  []Entry{},
		UpdatedAt: time.Now(),
	}
}

func newEntry(item *domain.Item) *Entry {
	return &Entry{InstanceID: uuid.NewString(), ItemID: item.ID, Quantity: 1}
}

// Equip places item in slot, replacing any previous occupant. The backpack
// instead stacks: an item already carried gains one unit.
func (l *Loadout) Equip(slot domain.SlotType, item *domain.Item) (*Entry, error) {
	if slot == domain.SlotWeaponMod {
		return nil, fmt.Errorf(ErrFmtUseModSlot, domain.ErrInvalidSlot)
	}
	if !slot.Accepts(item) {
		return nil, fmt.Errorf(ErrFmtSlotMismatch, domain.ErrSlotMismatch, slot, item.ID, item.Type)
	}

	var placed *Entry
	switch slot {
	case domain.SlotWeapon1:
		l.Weapon1 = newEntry(item)
		placed = l.Weapon1
	case domain.SlotWeapon2:
		l.Weapon2 = newEntry(item)
		placed = l.Weapon2
	case domain.SlotShield:
		l.Shield = newEntry(item)
		placed = l.Shield
	case domain.SlotAugment:
		l.Augment = newEntry(item)
		placed = l.Augment
	case domain.SlotBackpack:
		for i := range l.Backpack {
			if l.Backpack[i].ItemID == item.ID {
				l.Backpack[i].Quantity++
				l.touch()
				e := l.Backpack[i]
				return &e, nil
			}
		}
		e := newEntry(item)
		l.Backpack = append(l.Backpack, *e)
		placed = e
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}

	l.touch()
	out := *placed
	return &out, nil
}

// EquipMod places a modification on weapon (1 or 2) at index
func (l *Loadout) EquipMod(weapon, index int, item *domain.Item) (*Entry, error) {
	mods, err := l.mods(weapon, index)
	if err != nil {
		return nil, err
	}
	if !domain.SlotWeaponMod.Accepts(item) {
		return nil, fmt.Errorf(ErrFmtSlotMismatch, domain.ErrSlotMismatch, domain.SlotWeaponMod, item.ID, item.Type)
	}

	mods[index] = newEntry(item)
	l.touch()
	out := *mods[index]
	return &out, nil
}

// Remove clears the entry with instanceID from slot
func (l *Loadout) Remove(slot domain.SlotType, instanceID string) error {
	matches := func(e *Entry) bool { return e != nil && e.InstanceID == instanceID }

	switch slot {
	case domain.SlotWeapon1:
		if matches(l.Weapon1) {
			l.Weapon1 = nil
			l.touch()
			return nil
		}
	case domain.SlotWeapon2:
		if matches(l.Weapon2) {
			l.Weapon2 = nil
			l.touch()
			return nil
		}
	case domain.SlotShield:
		if matches(l.Shield) {
			l.Shield = nil
			l.touch()
			return nil
		}
	case domain.SlotAugment:
		if matches(l.Augment) {
			l.Augment = nil
			l.touch()
			return nil
		}
	case domain.SlotBackpack:
		for i := range l.Backpack {
			if l.Backpack[i].InstanceID == instanceID {
				l.Backpack = append(l.Backpack[:i], l.Backpack[i+1:]...)
				l.touch()
				return nil
			}
		}
	case domain.SlotWeaponMod:
		return fmt.Errorf(ErrFmtUseModSlot, domain.ErrInvalidSlot)
	default:
		return fmt.Errorf("%w: %s", domain.ErrInvalidSlot, slot)
	}
	return fmt.Errorf(ErrFmtEntryNotFound, domain.ErrEntryNotFound, instanceID, slot)
}

// RemoveMod clears the modification slot. Clearing an empty slot is a no-op.
func (l *Loadout) RemoveMod(weapon, index int) error {
	mods, err := l.mods(weapon, index)
	if err != nil {
		return err
	}
	mods[index] = nil
	l.touch()
	return nil
}

// AdjustQuantity changes the count of a backpack entry by delta, never below one
func (l *Loadout) AdjustQuantity(instanceID string, delta int) (*Entry, error) {
	for i := range l.Backpack {
		if l.Backpack[i].InstanceID != instanceID {
			continue
		}
		q := l.Backpack[i].Quantity + delta
		if q < MinBackpackQuantity {
			q = MinBackpackQuantity
		}
		l.Backpack[i].Quantity = q
		l.touch()
		e := l.Backpack[i]
		return &e, nil
	}
	return nil, fmt.Errorf(ErrFmtEntryNotFound, domain.ErrEntryNotFound, instanceID, domain.SlotBackpack)
}

// Demands lists every occupied slot as a planning demand in slot order:
// weapon 1 and its mods, weapon 2 and its mods, shield, augment, backpack.
func (l *Loadout) Demands() []crafting.Demand {
	demands := []crafting.Demand{}
	add := func(e *Entry) {
		if e == nil {
			return
		}
		q := e.Quantity
		if q <= 0 {
			q = 1
		}
		demands = append(demands, crafting.Demand{ItemID: e.ItemID, Quantity: q})
	}

	add(l.Weapon1)
	for _, m := range l.Weapon1Mods {
		add(m)
	}
	add(l.Weapon2)
	for _, m := range l.Weapon2Mods {
		add(m)
	}
	add(l.Shield)
	add(l.Augment)
	for i := range l.Backpack {
		add(&l.Backpack[i])
	}
	return demands
}

// Clone returns a deep copy
func (l *Loadout) Clone() *Loadout {
	c := *l
	c.Weapon1 = cloneEntry(l.Weapon1)
	c.Weapon2 = cloneEntry(l.Weapon2)
	c.Shield = cloneEntry(l.Shield)
	c.Augment = cloneEntry(l.Augment)
	for i := range l.Weapon1Mods {
		c.Weapon1Mods[i] = cloneEntry(l.Weapon1Mods[i])
		c.Weapon2Mods[i] = cloneEntry(l.Weapon2Mods[i])
	}
	c.Backpack = append([]Entry{}, l.Backpack...)
	return &c
}

func cloneEntry(e *Entry) *Entry {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

func (l *Loadout) mods(weapon, index int) (*Mods, error) {
	if index < 0 || index >= domain.ModSlotsPerWeapon {
		return nil, fmt.Errorf(ErrFmtModIndex, domain.ErrInvalidSlot, index)
	}
	switch weapon {
	case WeaponPrimary:
		return &l.Weapon1Mods, nil
	case WeaponSecondary:
		return &l.Weapon2Mods, nil
	}
	return nil, fmt.Errorf(ErrFmtWeaponPosition, domain.ErrInvalidSlot, weapon)
}

func (l *Loadout) touch() {
	l.UpdatedAt = time.Now()
}
