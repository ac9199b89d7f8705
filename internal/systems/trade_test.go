package systems

import (
	"testing"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

func setupTradingPair(t *testing.T) (*domain.TickContext, *domain.ManualClock, *domain.Player, *domain.Player) {
	t.Helper()
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	a := spawnPlayer(ctx, clock, "p1", "Алиса")
	b := spawnPlayer(ctx, clock, "p2", "Борис")

	a.State = enums.StateTrading
	a.Target = b
	b.State = enums.StateTrading
	b.Target = a
	return ctx, clock, a, b
}

func TestTradeStartRequiresMutualInvites(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	a := spawnPlayer(ctx, clock, "p1", "Алиса")
	b := spawnPlayer(ctx, clock, "p2", "Борис")
	a.Target = b

	if !TradeRequestSend(ctx, a) {
		t.Fatal("Expected trade request to be sent")
	}
	if b.TradeRequestFrom != "Алиса" {
		t.Errorf("Expected invite recorded, got %q", b.TradeRequestFrom)
	}

	// Одностороннее приглашение трейд не начинает.
	UpdatePlayer(ctx, a)
	if a.State == enums.StateTrading {
		t.Fatal("Expected no trade on one-sided invite")
	}

	if !TradeRequestAccept(ctx, b) {
		t.Fatal("Expected accept to succeed")
	}
	UpdatePlayer(ctx, a)
	UpdatePlayer(ctx, b)
	if a.State != enums.StateTrading || b.State != enums.StateTrading {
		t.Errorf("Expected both trading, got %s / %s", a.State.String(), b.State.String())
	}
}

func TestTradeOfferGoldClamped(t *testing.T) {
	_, _, a, _ := setupTradingPair(t)
	a.Gold = 100

	if !TradeOfferGold(a, 500) {
		t.Fatal("Expected offer to succeed")
	}
	if a.Trade.Gold != 100 {
		t.Errorf("Expected gold clamped to 100, got %d", a.Trade.Gold)
	}
	if !TradeOfferGold(a, -5) {
		t.Fatal("Expected offer to succeed")
	}
	if a.Trade.Gold != 0 {
		t.Errorf("Expected negative gold clamped to 0, got %d", a.Trade.Gold)
	}
}

func TestTradeOfferItemRules(t *testing.T) {
	ctx, _, a, _ := setupTradingPair(t)

	potion, _ := ctx.Catalog.Item("Зелье")
	relic, _ := ctx.Catalog.Item("Реликвия")
	a.Inventory[0] = domain.NewItem(potion, 3)
	a.Inventory[1] = domain.NewItem(relic, 1)

	if !TradeOfferItem(a, 0, 0) {
		t.Fatal("Expected tradable item to be offered")
	}
	// Один слот инвентаря нельзя предложить дважды.
	if TradeOfferItem(a, 0, 1) {
		t.Error("Expected duplicate inventory slot to be rejected")
	}
	// Непередаваемый предмет не предлагается.
	if TradeOfferItem(a, 1, 1) {
		t.Error("Expected untradable item to be rejected")
	}
	// Заблокированное предложение не меняется.
	a.Trade.Locked = true
	if TradeOfferGold(a, 1) {
		t.Error("Expected locked offer to refuse changes")
	}
}

func TestTradeAcceptRequiresBothLocks(t *testing.T) {
	ctx, _, a, b := setupTradingPair(t)

	if TradeOfferAccept(ctx, a) {
		t.Error("Expected accept to fail before locks")
	}
	TradeOfferLock(a)
	if TradeOfferAccept(ctx, a) {
		t.Error("Expected accept to fail while partner unlocked")
	}
	TradeOfferLock(b)
	if !TradeOfferAccept(ctx, a) {
		t.Fatal("Expected first accept to succeed")
	}
	if !a.Trade.Accepted {
		t.Error("Expected first accept to be recorded, not executed")
	}
	if a.Gold != 0 && b.Gold != 0 {
		t.Error("Expected no exchange after single accept")
	}
}

func TestTradeExchange(t *testing.T) {
	ctx, _, a, b := setupTradingPair(t)

	potion, _ := ctx.Catalog.Item("Зелье")
	fang, _ := ctx.Catalog.Item("Клык")
	a.Gold = 100
	a.Inventory[2] = domain.NewItem(potion, 4)
	b.Gold = 30
	b.Inventory[5] = domain.NewItem(fang, 7)

	TradeOfferGold(a, 60)
	TradeOfferItem(a, 2, 0)
	TradeOfferGold(b, 30)
	TradeOfferItem(b, 5, 0)

	TradeOfferLock(a)
	TradeOfferLock(b)
	TradeOfferAccept(ctx, a)
	if !TradeOfferAccept(ctx, b) {
		t.Fatal("Expected second accept to execute the exchange")
	}

	if a.Gold != 70 {
		t.Errorf("Expected Алиса gold 100-60+30=70, got %d", a.Gold)
	}
	if b.Gold != 60 {
		t.Errorf("Expected Борис gold 30-30+60=60, got %d", b.Gold)
	}
	if domain.CountItems(a.Inventory, "Клык") != 7 {
		t.Error("Expected fangs delivered to Алиса")
	}
	if domain.CountItems(a.Inventory, "Зелье") != 0 {
		t.Error("Expected potions gone from Алиса")
	}
	if domain.CountItems(b.Inventory, "Зелье") != 4 {
		t.Error("Expected potions delivered to Борис")
	}

	// Обмен завершает трейд: предложения сброшены, события взведены.
	if a.Trade.Locked || a.Trade.Accepted || a.Trade.Gold != 0 {
		t.Error("Expected offer reset after exchange")
	}
	UpdatePlayer(ctx, a)
	UpdatePlayer(ctx, b)
	if a.State != enums.StateIdle || b.State != enums.StateIdle {
		t.Errorf("Expected both idle after trade, got %s / %s", a.State.String(), b.State.String())
	}
}

// fillInventory забивает все пустые слоты полными стаками шаблона.
func fillInventory(t *testing.T, ctx *domain.TickContext, p *domain.Player, name string) {
	t.Helper()
	tmpl, ok := ctx.Catalog.Item(name)
	if !ok {
		t.Fatalf("no item template %q", name)
	}
	for i := range p.Inventory {
		if !p.Inventory[i].Valid {
			p.Inventory[i] = domain.NewItem(tmpl, tmpl.MaxStack)
		}
	}
}

func TestTradeExchangeWithFullInventories(t *testing.T) {
	ctx, _, a, b := setupTradingPair(t)

	sword, _ := ctx.Catalog.Item("Меч")
	fang, _ := ctx.Catalog.Item("Клык")
	a.Inventory[0] = domain.NewItem(sword, 1)
	b.Inventory[0] = domain.NewItem(fang, 5)
	fillInventory(t, ctx, a, "Зелье")
	fillInventory(t, ctx, b, "Зелье")

	if domain.FreeSlots(a.Inventory) != 0 || domain.FreeSlots(b.Inventory) != 0 {
		t.Fatal("Expected both inventories full before the exchange")
	}

	if !TradeOfferItem(a, 0, 0) || !TradeOfferItem(b, 0, 0) {
		t.Fatal("Expected both offers placed")
	}
	TradeOfferLock(a)
	TradeOfferLock(b)
	TradeOfferAccept(ctx, a)
	if !TradeOfferAccept(ctx, b) {
		t.Fatal("Expected exchange between full inventories to execute")
	}

	// Входящие предметы ложатся в слоты, освобожденные исходящими.
	if domain.CountItems(a.Inventory, "Клык") != 5 || domain.CountItems(a.Inventory, "Меч") != 0 {
		t.Error("Expected Алиса to hold fangs instead of the sword")
	}
	if domain.CountItems(b.Inventory, "Меч") != 1 || domain.CountItems(b.Inventory, "Клык") != 0 {
		t.Error("Expected Борис to hold the sword instead of fangs")
	}
	if domain.FreeSlots(a.Inventory) != 0 || domain.FreeSlots(b.Inventory) != 0 {
		t.Error("Expected no items lost: both inventories stay full")
	}
}

func TestTradeRefusedWhenRecipientInventoryFull(t *testing.T) {
	ctx, _, a, b := setupTradingPair(t)

	sword, _ := ctx.Catalog.Item("Меч")
	fang, _ := ctx.Catalog.Item("Клык")
	a.Inventory[0] = domain.NewItem(sword, 1)
	a.Inventory[1] = domain.NewItem(fang, 5)
	fillInventory(t, ctx, a, "Зелье")
	fillInventory(t, ctx, b, "Зелье")

	// Два входящих против нуля исходящих: Борису нужен лишний слот.
	if !TradeOfferItem(a, 0, 0) || !TradeOfferItem(a, 1, 1) {
		t.Fatal("Expected offers placed")
	}
	TradeOfferLock(a)
	TradeOfferLock(b)
	TradeOfferAccept(ctx, a)
	TradeOfferAccept(ctx, b)

	if domain.CountItems(a.Inventory, "Меч") != 1 || domain.CountItems(a.Inventory, "Клык") != 5 {
		t.Error("Expected refused exchange to leave Алиса's items in place")
	}
	if domain.CountItems(b.Inventory, "Меч") != 0 || domain.CountItems(b.Inventory, "Клык") != 0 {
		t.Error("Expected nothing delivered to Борис")
	}
	if a.Trade.Accepted || b.Trade.Accepted {
		t.Error("Expected accept flags reset after refused exchange")
	}
	if a.State != enums.StateTrading {
		t.Error("Expected trade to continue after refused exchange")
	}
}

func TestTradeExchangeRefusedWhenOfferStale(t *testing.T) {
	ctx, _, a, b := setupTradingPair(t)

	potion, _ := ctx.Catalog.Item("Зелье")
	a.Gold = 50
	a.Inventory[0] = domain.NewItem(potion, 2)

	TradeOfferGold(a, 50)
	TradeOfferItem(a, 0, 0)
	TradeOfferLock(a)
	TradeOfferLock(b)

	// Золото утекло после блокировки: предложение протухло.
	a.Gold = 10

	TradeOfferAccept(ctx, a)
	TradeOfferAccept(ctx, b)

	if a.Gold != 10 || b.Gold != 0 {
		t.Error("Expected stale trade to move no gold")
	}
	if domain.CountItems(a.Inventory, "Зелье") != 2 {
		t.Error("Expected stale trade to move no items")
	}
	if a.Trade.Accepted || b.Trade.Accepted {
		t.Error("Expected accept flags reset after failed exchange")
	}
	if a.State != enums.StateTrading {
		t.Error("Expected trade to continue after failed exchange")
	}
}

func TestTradeCancelResetsBothSides(t *testing.T) {
	ctx, _, a, b := setupTradingPair(t)
	a.Gold = 10
	TradeOfferGold(a, 10)

	TradeCancel(a)
	if a.Trade.Gold != 0 || b.Trade.Locked {
		t.Error("Expected both offers reset")
	}
	UpdatePlayer(ctx, a)
	UpdatePlayer(ctx, b)
	if a.State != enums.StateIdle || b.State != enums.StateIdle {
		t.Errorf("Expected both idle after cancel, got %s / %s", a.State.String(), b.State.String())
	}
}

func TestTradeCancelledWhenPartnerDies(t *testing.T) {
	ctx, _, a, b := setupTradingPair(t)

	b.Health = 0
	UpdatePlayer(ctx, b)
	if b.State != enums.StateDead {
		t.Fatalf("Expected dead partner, got %s", b.State.String())
	}
	UpdatePlayer(ctx, a)
	if a.State != enums.StateIdle {
		t.Errorf("Expected survivor back to idle, got %s", a.State.String())
	}
}
