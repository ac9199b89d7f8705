package systems

import (
	"testing"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

func TestInventoryAddStacksThenEmptySlots(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[3] = domain.NewItem(potion, 8)

	if !InventoryAdd(p, potion, 5) {
		t.Fatal("Expected add to succeed")
	}
	// Сперва доливка стака до 10, остаток в новый слот.
	if p.Inventory[3].Amount != 10 {
		t.Errorf("Expected existing stack topped to 10, got %d", p.Inventory[3].Amount)
	}
	if domain.CountItems(p.Inventory, "Зелье") != 13 {
		t.Errorf("Expected 13 potions total, got %d", domain.CountItems(p.Inventory, "Зелье"))
	}
}

func TestInventoryAddAtomicOnOverflow(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	relic, _ := ctx.Catalog.Item("Реликвия")
	for i := range p.Inventory {
		p.Inventory[i] = domain.NewItem(relic, 1)
	}
	p.Inventory[0].Clear()

	potion, _ := ctx.Catalog.Item("Зелье")
	// Влезает максимум 10 (один пустой слот), просим 11.
	if InventoryAdd(p, potion, 11) {
		t.Fatal("Expected oversized add to be rejected")
	}
	if domain.CountItems(p.Inventory, "Зелье") != 0 {
		t.Error("Expected rejected add to leave inventory untouched")
	}
}

func TestInventoryRemoveAtomic(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	fang, _ := ctx.Catalog.Item("Клык")
	p.Inventory[0] = domain.NewItem(fang, 5)
	p.Inventory[4] = domain.NewItem(fang, 3)

	if InventoryRemove(p, "Клык", 9) {
		t.Error("Expected removal of 9 from 8 to be rejected")
	}
	if domain.CountItems(p.Inventory, "Клык") != 8 {
		t.Error("Expected rejected removal to change nothing")
	}

	if !InventoryRemove(p, "Клык", 6) {
		t.Fatal("Expected removal of 6 to succeed")
	}
	if domain.CountItems(p.Inventory, "Клык") != 2 {
		t.Errorf("Expected 2 left, got %d", domain.CountItems(p.Inventory, "Клык"))
	}
}

func TestSplitStackFloorCeil(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[0] = domain.NewItem(potion, 7)

	if !SplitStack(p, 0, 1) {
		t.Fatal("Expected split to succeed")
	}
	// 7 -> 3 (floor) + 4 (ceil).
	if p.Inventory[0].Amount != 3 || p.Inventory[1].Amount != 4 {
		t.Errorf("Expected 3/4 split, got %d/%d", p.Inventory[0].Amount, p.Inventory[1].Amount)
	}

	// Стак из одного предмета не делится.
	p.Inventory[2] = domain.NewItem(potion, 1)
	if SplitStack(p, 2, 3) {
		t.Error("Expected single-item stack to refuse split")
	}
}

func TestSplitThenMergeRestoresStack(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[0] = domain.NewItem(potion, 9)

	if !SplitStack(p, 0, 1) {
		t.Fatal("split failed")
	}
	if !MergeStacks(p, 1, 0) {
		t.Fatal("merge failed")
	}
	if p.Inventory[0].Amount != 9 {
		t.Errorf("Expected split+merge to restore 9, got %d", p.Inventory[0].Amount)
	}
	if p.Inventory[1].Valid {
		t.Error("Expected source slot empty after merge")
	}
}

func TestMergeStacksRespectsCapacity(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[0] = domain.NewItem(potion, 7)
	p.Inventory[1] = domain.NewItem(potion, 6)

	if !MergeStacks(p, 0, 1) {
		t.Fatal("Expected merge to succeed")
	}
	// В цель влезает 4, остаток 3 остается в источнике.
	if p.Inventory[1].Amount != 10 || p.Inventory[0].Amount != 3 {
		t.Errorf("Expected 3/10 after merge, got %d/%d", p.Inventory[0].Amount, p.Inventory[1].Amount)
	}

	// Разные шаблоны не сливаются.
	fang, _ := ctx.Catalog.Item("Клык")
	p.Inventory[2] = domain.NewItem(fang, 1)
	if MergeStacks(p, 2, 1) {
		t.Error("Expected merge of different templates to be rejected")
	}
}

func TestUseItemConsumesOne(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[0] = domain.NewItem(potion, 2)
	p.Health = 50

	if !UseItem(ctx, p, 0) {
		t.Fatal("Expected potion use to succeed")
	}
	if p.Health != 70 {
		t.Errorf("Expected health 70 after potion, got %d", p.Health)
	}
	if p.Inventory[0].Amount != 1 {
		t.Errorf("Expected 1 potion left, got %d", p.Inventory[0].Amount)
	}

	if !UseItem(ctx, p, 0) {
		t.Fatal("Expected last potion use to succeed")
	}
	if p.Inventory[0].Valid {
		t.Error("Expected slot cleared after last potion")
	}
}

func TestEquipSwapsSlots(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	sword, _ := ctx.Catalog.Item("Меч")
	p.Inventory[0] = domain.NewItem(sword, 1)

	// В слоте оружия уже лежит меч из фикстуры: обмен местами.
	if !EquipItem(p, 0, 0) {
		t.Fatal("Expected equip to succeed")
	}
	if !p.Equipment[0].Valid || !p.Inventory[0].Valid {
		t.Error("Expected both slots occupied after swap")
	}

	// Зелье в слот оружия не лезет.
	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[1] = domain.NewItem(potion, 1)
	if EquipItem(p, 1, 0) {
		t.Error("Expected potion to be rejected by weapon slot")
	}
}

func TestUnequipNeedsEmptySlot(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[0] = domain.NewItem(potion, 1)

	if UnequipItem(p, 0, 0) {
		t.Error("Expected unequip into occupied slot to be rejected")
	}
	if !UnequipItem(p, 0, 1) {
		t.Fatal("Expected unequip into empty slot to succeed")
	}
	if p.Equipment[0].Valid {
		t.Error("Expected weapon slot empty after unequip")
	}
	if p.Inventory[1].Name != "Меч" {
		t.Errorf("Expected sword in inventory, got %q", p.Inventory[1].Name)
	}
}

func TestDeadPlayerCannotUseOrEquipItems(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[0] = domain.NewItem(potion, 3)
	sword, _ := ctx.Catalog.Item("Меч")
	p.Inventory[1] = domain.NewItem(sword, 1)

	domain.SetHealth(p, 0)
	p.State = enums.StateDead

	if UseItem(ctx, p, 0) {
		t.Error("Expected use while dead to be rejected")
	}
	if p.Health != 0 {
		t.Errorf("Expected dead player to stay at 0 health, got %d", p.Health)
	}
	if p.Inventory[0].Amount != 3 {
		t.Errorf("Expected potion stack untouched, got %d", p.Inventory[0].Amount)
	}
	if EquipItem(p, 1, 0) {
		t.Error("Expected equip while dead to be rejected")
	}
	if UnequipItem(p, 0, 2) {
		t.Error("Expected unequip while dead to be rejected")
	}

	// После возрождения все снова доступно.
	domain.SetHealth(p, p.HealthMax()/2)
	p.State = enums.StateIdle
	if !UseItem(ctx, p, 0) {
		t.Fatal("Expected use after respawn to succeed")
	}
}

func TestDropItemRespectsDestroyable(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)
	p := spawnPlayer(ctx, clock, "p1", "Герой")

	relic, _ := ctx.Catalog.Item("Реликвия")
	p.Inventory[0] = domain.NewItem(relic, 1)
	if DropItem(p, 0) {
		t.Error("Expected indestructible item to refuse drop")
	}

	potion, _ := ctx.Catalog.Item("Зелье")
	p.Inventory[1] = domain.NewItem(potion, 3)
	if !DropItem(p, 1) {
		t.Fatal("Expected drop to succeed")
	}
	if p.Inventory[1].Valid {
		t.Error("Expected slot cleared after drop")
	}
}
