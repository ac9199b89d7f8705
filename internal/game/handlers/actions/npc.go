package actions

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/systems"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

// HandleNpcBuy покупает предмет у торговца.
func HandleNpcBuy(ctx handlers.Context, p api.VendorBuyPayload) (handlers.Result, error) {
	npc := findNpc(ctx, p.NpcID)
	if npc == nil {
		return handlers.Reject("Торговец не найден."), nil
	}
	if !systems.NpcBuyItem(ctx.Tick, ctx.Actor, npc, p.Item, p.Amount) {
		return handlers.Reject("Покупка не удалась."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleNpcSell продает предмет из слота инвентаря торговцу.
func HandleNpcSell(ctx handlers.Context, p api.VendorSellPayload) (handlers.Result, error) {
	npc := findNpc(ctx, p.NpcID)
	if npc == nil {
		return handlers.Reject("Торговец не найден."), nil
	}
	if !systems.NpcSellItem(ctx.Tick, ctx.Actor, npc, p.Slot, p.Amount) {
		return handlers.Reject("Продажа не удалась."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleNpcTeleport переносит игрока через NPC-телепорт.
func HandleNpcTeleport(ctx handlers.Context, p api.NpcPayload) (handlers.Result, error) {
	npc := findNpc(ctx, p.NpcID)
	if npc == nil {
		return handlers.Reject("NPC не найден."), nil
	}
	if !systems.NpcTeleport(ctx.Actor, npc) {
		return handlers.Reject("Телепорт недоступен."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleLoot забирает золото или предмет с трупа монстра.
func HandleLoot(ctx handlers.Context, p api.LootPayload) (handlers.Result, error) {
	m := findMonster(ctx, p.MonsterID)
	if m == nil {
		return handlers.Reject("Труп не найден."), nil
	}

	if p.Index < 0 {
		if !systems.LootGold(ctx.Actor, m) {
			return handlers.Reject("Золота на трупе нет."), nil
		}
		return handlers.EmptyResult(), nil
	}

	if !systems.LootItem(ctx.Actor, m, p.Index) {
		return handlers.Reject("Не удалось забрать предмет."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleCraft собирает предмет из ингредиентов в указанных слотах.
func HandleCraft(ctx handlers.Context, p api.CraftPayload) (handlers.Result, error) {
	if !systems.Craft(ctx.Tick, ctx.Actor, p.Slots) {
		return handlers.Reject("Из этого ничего не получается."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleMallUnlock покупает предмет за коины.
func HandleMallUnlock(ctx handlers.Context, p api.MallPayload) (handlers.Result, error) {
	if !systems.UnlockMallItem(ctx.Tick, ctx.Actor, p.Item, p.Amount) {
		return handlers.Reject("Недостаточно коинов."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleSpendAttribute тратит очко атрибута.
func HandleSpendAttribute(ctx handlers.Context, p api.AttributePayload) (handlers.Result, error) {
	ok := false
	switch p.Attribute {
	case "STRENGTH":
		ok = systems.SpendAttributeStrength(ctx.Actor)
	case "INTELLIGENCE":
		ok = systems.SpendAttributeIntelligence(ctx.Actor)
	}
	if !ok {
		return handlers.Reject("Нет свободных очков атрибутов."), nil
	}
	return handlers.EmptyResult(), nil
}
