package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

func inInteractionRange(p *domain.Player, other *domain.Entity) bool {
	return domain.IsAlive(p) && domain.SurfaceDistance(&p.Entity, other) <= domain.InteractionRange
}

// --- ТОРГОВЛЯ С NPC ---

// NpcBuyItem покупает amount экземпляров у NPC. Цена списывается целиком,
// товар обязан поместиться в инвентарь.
func NpcBuyItem(ctx *domain.TickContext, p *domain.Player, npc *domain.Npc, itemName string, amount int) bool {
	if amount <= 0 || !inInteractionRange(p, &npc.Entity) || !npc.Sells(itemName) {
		return false
	}
	t, ok := ctx.Catalog.Item(itemName)
	if !ok || p.Level < t.MinLevel {
		return false
	}

	price := t.BuyPrice * int64(amount)
	if p.Gold < price {
		ctx.World.EmitInfo(p.ID, "Недостаточно золота.")
		return false
	}
	if !InventoryAdd(p, t, amount) {
		ctx.World.EmitInfo(p.ID, "Недостаточно места в инвентаре.")
		return false
	}
	p.Gold -= price

	logger.Log.WithFields(logrus.Fields{
		"component": "npc",
		"player":    p.Name,
		"item":      itemName,
		"amount":    amount,
		"price":     price,
	}).Info("Item bought from vendor")
	return true
}

// NpcSellItem продает amount экземпляров из слота инвентаря любому торговцу.
// Предмет должен быть продаваемым.
func NpcSellItem(ctx *domain.TickContext, p *domain.Player, npc *domain.Npc, slot, amount int) bool {
	if amount <= 0 || !inInteractionRange(p, &npc.Entity) || len(npc.SaleItems) == 0 {
		return false
	}
	if !validSlot(p, slot) {
		return false
	}
	it := &p.Inventory[slot]
	if !it.Valid || !it.Template.Sellable || it.Amount < amount {
		return false
	}

	p.Gold += it.Template.SellPrice * int64(amount)
	it.Amount -= amount
	if it.Amount == 0 {
		it.Clear()
	}
	return true
}

// NpcTeleport перемещает игрока к точке назначения телепортера.
func NpcTeleport(p *domain.Player, npc *domain.Npc) bool {
	if !npc.TeleportActive || !inInteractionRange(p, &npc.Entity) {
		return false
	}
	p.Pos = npc.TeleportTo
	p.Mover.ResetPath()
	return true
}

// --- ЛУТ ---

// LootGold забирает золото с трупа монстра.
func LootGold(p *domain.Player, m *domain.Monster) bool {
	if domain.IsAlive(m) || m.LootGold <= 0 || !inInteractionRange(p, &m.Entity) {
		return false
	}
	p.Gold += m.LootGold
	m.LootGold = 0
	return true
}

// LootItem забирает предмет с трупа по индексу в списке лута.
func LootItem(p *domain.Player, m *domain.Monster, index int) bool {
	if domain.IsAlive(m) || !inInteractionRange(p, &m.Entity) {
		return false
	}
	if index < 0 || index >= len(m.LootItems) {
		return false
	}
	it := m.LootItems[index]
	if !InventoryAdd(p, it.Template, it.Amount) {
		return false
	}
	m.LootItems = append(m.LootItems[:index], m.LootItems[index+1:]...)
	return true
}

// --- КРАФТ ---

// Craft собирает предмет из ингредиентов в указанных слотах инвентаря.
// Набор должен точно совпадать с рецептом (порядок не важен); при успехе
// ингредиенты расходуются, результат кладется в инвентарь.
func Craft(ctx *domain.TickContext, p *domain.Player, slots []int) bool {
	if len(slots) == 0 || len(slots) > catalog.RecipeMaxIngredients {
		return false
	}

	names := make([]string, 0, len(slots))
	seen := make(map[int]bool, len(slots))
	for _, s := range slots {
		if !validSlot(p, s) || seen[s] {
			return false
		}
		seen[s] = true
		it := &p.Inventory[s]
		if !it.Valid {
			return false
		}
		names = append(names, it.Name)
	}

	recipe, ok := ctx.Catalog.FindRecipe(names)
	if !ok {
		ctx.World.EmitInfo(p.ID, "Из этого ничего не получается.")
		return false
	}
	result, ok := ctx.Catalog.Item(recipe.Result)
	if !ok {
		return false
	}

	// Сначала расход, потом результат: освободившиеся слоты могут
	// понадобиться под него же.
	for _, s := range slots {
		it := &p.Inventory[s]
		it.Amount--
		if it.Amount == 0 {
			it.Clear()
		}
	}
	if !InventoryAdd(p, result, 1) {
		// Места нет даже после расхода ингредиентов: возвращаем их.
		for i, s := range slots {
			t, _ := ctx.Catalog.Item(names[i])
			if p.Inventory[s].Valid {
				p.Inventory[s].Amount++
			} else {
				p.Inventory[s] = domain.NewItem(t, 1)
			}
		}
		ctx.World.EmitInfo(p.ID, "Недостаточно места в инвентаре.")
		return false
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "craft",
		"player":    p.Name,
		"recipe":    recipe.Name,
		"result":    recipe.Result,
	}).Info("Item crafted")
	return true
}

// --- АТРИБУТЫ И МАГАЗИН ---

// SpendAttributeStrength тратит очко атрибута на силу.
func SpendAttributeStrength(p *domain.Player) bool {
	if p.AttributesSpendable() <= 0 {
		return false
	}
	p.Strength++
	return true
}

// SpendAttributeIntelligence тратит очко атрибута на интеллект.
func SpendAttributeIntelligence(p *domain.Player) bool {
	if p.AttributesSpendable() <= 0 {
		return false
	}
	p.Intelligence++
	return true
}

// UnlockMallItem покупает предмет из магазина за монеты (премиальная валюта).
func UnlockMallItem(ctx *domain.TickContext, p *domain.Player, itemName string, amount int) bool {
	if amount <= 0 {
		return false
	}
	t, ok := ctx.Catalog.Item(itemName)
	if !ok || t.ItemMallPrice <= 0 {
		return false
	}
	price := t.ItemMallPrice * int64(amount)
	if p.Coins < price {
		return false
	}
	if !InventoryAdd(p, t, amount) {
		ctx.World.EmitInfo(p.ID, "Недостаточно места в инвентаре.")
		return false
	}
	p.Coins -= price
	return true
}
