package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// Трейд-протокол. Старт требует ВЗАИМНЫХ приглашений: A шлет запрос B,
// B принимает - и только когда у обоих записаны приглашения друг от друга,
// FSM обоих переходит в TRADING. Дальше каждая сторона наполняет свое
// предложение, блокирует его и принимает; второе принятие исполняет обмен.

// TradeRequestSend отправляет приглашение цели. Цель должна быть живым
// игроком в радиусе взаимодействия.
func TradeRequestSend(ctx *domain.TickContext, p *domain.Player) bool {
	target, ok := p.Target.(*domain.Player)
	if !ok || !domain.IsAlive(target) || !domain.IsAlive(p) {
		return false
	}
	if domain.SurfaceDistance(&p.Entity, &target.Entity) > domain.InteractionRange {
		return false
	}
	target.TradeRequestFrom = p.Name
	ctx.World.EmitInfo(target.ID, p.Name+" предлагает обмен.")
	return true
}

// TradeRequestAccept отвечает встречным приглашением. Сам переход в TRADING
// происходит в FSM, когда обе стороны видят приглашения друг от друга.
func TradeRequestAccept(ctx *domain.TickContext, p *domain.Player) bool {
	requester := ctx.World.PlayerByName(p.TradeRequestFrom)
	if requester == nil || !domain.IsAlive(requester) {
		p.TradeRequestFrom = ""
		return false
	}
	requester.TradeRequestFrom = p.Name
	return true
}

// TradeRequestDecline сбрасывает входящее приглашение.
func TradeRequestDecline(p *domain.Player) {
	p.TradeRequestFrom = ""
}

// TradeOfferGold выставляет золото в предложение. Клампится в [0, Gold].
// Заблокированное предложение менять нельзя.
func TradeOfferGold(p *domain.Player, amount int64) bool {
	other := p.InTradeWith()
	if other == nil || p.Trade.Locked {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	if amount > p.Gold {
		amount = p.Gold
	}
	p.Trade.Gold = amount
	unaccept(p, other)
	return true
}

// TradeOfferItem кладет слот инвентаря в слот предложения. Предмет должен
// быть передаваемым, слот инвентаря - не предложенным ранее.
func TradeOfferItem(p *domain.Player, inventorySlot, offerSlot int) bool {
	other := p.InTradeWith()
	if other == nil || p.Trade.Locked {
		return false
	}
	if offerSlot < 0 || offerSlot >= domain.TradeOfferSlots || !validSlot(p, inventorySlot) {
		return false
	}
	it := &p.Inventory[inventorySlot]
	if !it.Valid || !it.Template.Tradable {
		return false
	}
	if p.Trade.OffersSlot(inventorySlot) {
		return false
	}
	p.Trade.ItemSlots[offerSlot] = inventorySlot
	unaccept(p, other)
	return true
}

// TradeOfferClearSlot убирает слот предложения.
func TradeOfferClearSlot(p *domain.Player, offerSlot int) bool {
	other := p.InTradeWith()
	if other == nil || p.Trade.Locked {
		return false
	}
	if offerSlot < 0 || offerSlot >= domain.TradeOfferSlots {
		return false
	}
	p.Trade.ItemSlots[offerSlot] = -1
	unaccept(p, other)
	return true
}

// Любое изменение предложения снимает обе галочки принятия: партнер должен
// заново увидеть, на что соглашается.
func unaccept(p, other *domain.Player) {
	p.Trade.Accepted = false
	other.Trade.Accepted = false
}

// TradeOfferLock фиксирует предложение. После блокировки менять его нельзя.
func TradeOfferLock(p *domain.Player) bool {
	if p.InTradeWith() == nil || p.Trade.Locked {
		return false
	}
	p.Trade.Locked = true
	return true
}

// TradeOfferAccept принимает сделку. Разрешено только после блокировки
// ОБОИХ предложений. Второе принятие исполняет обмен.
func TradeOfferAccept(ctx *domain.TickContext, p *domain.Player) bool {
	other := p.InTradeWith()
	if other == nil || !p.Trade.Locked || !other.Trade.Locked {
		return false
	}
	p.Trade.Accepted = true
	if !other.Trade.Accepted {
		return true
	}
	executeTrade(ctx, p, other)
	return true
}

// TradeCancel прерывает трейд с любой стороны. Предложения сбрасываются,
// FSM обеих сторон получает событие отмены.
func TradeCancel(p *domain.Player) {
	other := p.InTradeWith()
	resetTrade(p)
	p.Cmd.Raise(domain.CmdTradeCancel)
	if other != nil {
		resetTrade(other)
		other.Cmd.Raise(domain.CmdTradeCancel)
	}
}

func resetTrade(p *domain.Player) {
	p.Trade.Reset()
	p.TradeRequestFrom = ""
}

// IsTradeOfferStillValid - предложение исполнимо прямо сейчас: золота
// хватает, каждый предложенный слот держит передаваемый предмет.
func IsTradeOfferStillValid(p *domain.Player) bool {
	if p.Trade.Gold > p.Gold {
		return false
	}
	for _, slot := range p.Trade.ItemSlots {
		if slot == -1 {
			continue
		}
		if !validSlot(p, slot) {
			return false
		}
		it := &p.Inventory[slot]
		if !it.Valid || !it.Template.Tradable {
			return false
		}
	}
	return true
}

// InventorySlotsNeededForTrade - сколько дополнительных свободных слотов
// нужно игроку для входящих предметов с учетом освобождающихся своих.
func InventorySlotsNeededForTrade(p, other *domain.Player) int {
	incoming := offeredCount(other)
	outgoing := offeredCount(p)
	return incoming - outgoing
}

func offeredCount(p *domain.Player) int {
	n := 0
	for _, slot := range p.Trade.ItemSlots {
		if slot != -1 {
			n++
		}
	}
	return n
}

// executeTrade исполняет обмен в две фазы: сперва ОБА предложения
// извлекаются во временные очереди (золото списано, слоты очищены), затем
// очереди раскладываются в инвентари получателей. Между фазами инварианты
// предложений уже проверены, поэтому ничего не теряется; непустая очередь
// после фазы раскладки - внутренняя ошибка, она логируется.
func executeTrade(ctx *domain.TickContext, a, b *domain.Player) {
	if !IsTradeOfferStillValid(a) || !IsTradeOfferStillValid(b) ||
		domain.FreeSlots(a.Inventory) < InventorySlotsNeededForTrade(a, b) ||
		domain.FreeSlots(b.Inventory) < InventorySlotsNeededForTrade(b, a) {
		// Сделка неисполнима: снимаем принятия, трейд продолжается.
		a.Trade.Accepted = false
		b.Trade.Accepted = false
		ctx.World.EmitInfo(a.ID, "Обмен сейчас неисполним.")
		ctx.World.EmitInfo(b.ID, "Обмен сейчас неисполним.")
		return
	}

	// Фаза 1: извлечение.
	goldA, itemsA := extractOffer(a)
	goldB, itemsB := extractOffer(b)

	// Фаза 2: зачисление.
	a.Gold += goldB
	b.Gold += goldA
	leftoverA := refill(b, itemsA)
	leftoverB := refill(a, itemsB)

	if leftoverA > 0 || leftoverB > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component":  "trade",
			"player_a":   a.Name,
			"player_b":   b.Name,
			"leftover_a": leftoverA,
			"leftover_b": leftoverB,
		}).Error("Trade refill left items undelivered")
	}

	resetTrade(a)
	resetTrade(b)
	a.Cmd.Raise(domain.CmdTradeDone)
	b.Cmd.Raise(domain.CmdTradeDone)

	logger.Log.WithFields(logrus.Fields{
		"component": "trade",
		"player_a":  a.Name,
		"player_b":  b.Name,
		"gold_a":    goldA,
		"gold_b":    goldB,
		"items_a":   len(itemsA),
		"items_b":   len(itemsB),
	}).Info("Trade executed")
}

func extractOffer(p *domain.Player) (int64, []domain.Item) {
	gold := p.Trade.Gold
	p.Gold -= gold

	var items []domain.Item
	for _, slot := range p.Trade.ItemSlots {
		if slot == -1 {
			continue
		}
		items = append(items, p.Inventory[slot])
		p.Inventory[slot].Clear()
	}
	return gold, items
}

func refill(recipient *domain.Player, items []domain.Item) int {
	leftover := 0
	for _, it := range items {
		if !InventoryAdd(recipient, it.Template, it.Amount) {
			leftover++
		}
	}
	return leftover
}
