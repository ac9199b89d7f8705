package systems

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

// Инвентарь - слотовый, фиксированного размера. Слот либо пуст
// (Item.Valid == false), либо держит стак 1..MaxStack одного шаблона.

// InventoryCanAdd - поместится ли amount экземпляров шаблона: сначала
// докладываем в существующие стаки, затем в пустые слоты.
func InventoryCanAdd(p *domain.Player, tmpl *catalog.ItemTemplate, amount int) bool {
	for i := range p.Inventory {
		it := &p.Inventory[i]
		if !it.Valid {
			amount -= tmpl.MaxStack
		} else if it.Name == tmpl.Name {
			amount -= it.MaxStack() - it.Amount
		}
		if amount <= 0 {
			return true
		}
	}
	return false
}

// InventoryAdd кладет amount экземпляров шаблона в инвентарь.
// Атомарно: либо помещается все, либо ничего (false).
func InventoryAdd(p *domain.Player, tmpl *catalog.ItemTemplate, amount int) bool {
	if amount <= 0 {
		return true
	}
	if !InventoryCanAdd(p, tmpl, amount) {
		return false
	}

	for i := range p.Inventory {
		it := &p.Inventory[i]
		if it.Valid && it.Name == tmpl.Name && it.Amount < it.MaxStack() {
			free := it.MaxStack() - it.Amount
			if free > amount {
				free = amount
			}
			it.Amount += free
			amount -= free
		}
		if amount == 0 {
			return true
		}
	}

	for i := range p.Inventory {
		it := &p.Inventory[i]
		if !it.Valid {
			put := tmpl.MaxStack
			if put > amount {
				put = amount
			}
			*it = domain.NewItem(tmpl, put)
			amount -= put
		}
		if amount == 0 {
			return true
		}
	}

	// Недостижимо после успешного InventoryCanAdd.
	return amount == 0
}

// InventoryRemove убирает amount экземпляров предмета по имени.
// Атомарно: если столько не набирается, не трогает ничего и возвращает false.
func InventoryRemove(p *domain.Player, itemName string, amount int) bool {
	if domain.CountItems(p.Inventory, itemName) < amount {
		return false
	}
	for i := range p.Inventory {
		it := &p.Inventory[i]
		if !it.Valid || it.Name != itemName {
			continue
		}
		take := it.Amount
		if take > amount {
			take = amount
		}
		it.Amount -= take
		amount -= take
		if it.Amount == 0 {
			it.Clear()
		}
		if amount == 0 {
			return true
		}
	}
	return amount == 0
}

// SplitStack делит стак из from на два: в from остается floor(n/2),
// в пустой to уходит ceil(n/2). Стак из одного предмета не делится.
func SplitStack(p *domain.Player, from, to int) bool {
	if !validSlot(p, from) || !validSlot(p, to) || from == to {
		return false
	}
	src := &p.Inventory[from]
	dst := &p.Inventory[to]
	if !src.Valid || src.Amount < 2 || dst.Valid {
		return false
	}

	half := src.Amount / 2
	moved := src.Amount - half
	*dst = *src
	src.Amount = half
	dst.Amount = moved
	return true
}

// MergeStacks сливает стак from в стак to того же шаблона, до вместимости
// to. Остаток остается в from.
func MergeStacks(p *domain.Player, from, to int) bool {
	if !validSlot(p, from) || !validSlot(p, to) || from == to {
		return false
	}
	src := &p.Inventory[from]
	dst := &p.Inventory[to]
	if !src.Valid || !dst.Valid || src.Name != dst.Name {
		return false
	}

	free := dst.MaxStack() - dst.Amount
	if free <= 0 {
		return false
	}
	move := src.Amount
	if move > free {
		move = free
	}
	dst.Amount += move
	src.Amount -= move
	if src.Amount == 0 {
		src.Clear()
	}
	return true
}

// SwapInventorySlots меняет местами содержимое двух слотов.
func SwapInventorySlots(p *domain.Player, a, b int) bool {
	if !validSlot(p, a) || !validSlot(p, b) || a == b {
		return false
	}
	p.Inventory[a], p.Inventory[b] = p.Inventory[b], p.Inventory[a]
	return true
}

func validSlot(p *domain.Player, idx int) bool {
	return idx >= 0 && idx < len(p.Inventory)
}

// UseItem применяет расходник из слота: лечение, мана, опыт.
// Один вызов расходует ровно один экземпляр. Мертвым недоступно:
// зелье не поднимает из состояния смерти.
func UseItem(ctx *domain.TickContext, p *domain.Player, slot int) bool {
	if !domain.IsAlive(p) || !validSlot(p, slot) {
		return false
	}
	it := &p.Inventory[slot]
	if !it.Valid {
		return false
	}
	t := it.Template
	if t.UsageHealth == 0 && t.UsageMana == 0 && t.UsageExperience == 0 {
		return false
	}
	if p.Level < t.MinLevel {
		return false
	}

	domain.AddHealth(p, t.UsageHealth)
	domain.AddMana(p, t.UsageMana)
	p.AddExperience(t.UsageExperience)

	it.Amount--
	if it.Amount == 0 {
		it.Clear()
	}
	return true
}

// DropItem уничтожает стак из слота (мир без наземных предметов:
// выброшенное пропадает). Неуничтожаемые предметы остаются на месте.
func DropItem(p *domain.Player, slot int) bool {
	if !validSlot(p, slot) {
		return false
	}
	it := &p.Inventory[slot]
	if !it.Valid || !it.Template.Destroyable {
		return false
	}
	it.Clear()
	return true
}

// --- ЭКИПИРОВКА ---

// CanEquip - предмет из inventorySlot подходит в слот экипировки equipSlot
// по категории и уровню.
func CanEquip(p *domain.Player, inventorySlot, equipSlot int) bool {
	if !validSlot(p, inventorySlot) || equipSlot < 0 || equipSlot >= len(p.Equipment) {
		return false
	}
	it := &p.Inventory[inventorySlot]
	if !it.Valid || p.Level < it.Template.MinLevel {
		return false
	}
	return it.Template.Category.FitsSlot(domain.PlayerEquipSlots[equipSlot])
}

// EquipItem меняет местами слот инвентаря и слот экипировки.
// Снятое (если было) оказывается в освободившемся слоте инвентаря.
func EquipItem(p *domain.Player, inventorySlot, equipSlot int) bool {
	if !domain.IsAlive(p) || !CanEquip(p, inventorySlot, equipSlot) {
		return false
	}
	p.Inventory[inventorySlot], p.Equipment[equipSlot] = p.Equipment[equipSlot], p.Inventory[inventorySlot]

	// Максимумы могли упасть (сняли шмотку с +hp): зажимаем ресурсы.
	domain.SetHealth(p, p.Health)
	domain.SetMana(p, p.Mana)
	return true
}

// UnequipItem снимает предмет из слота экипировки в пустой слот инвентаря.
func UnequipItem(p *domain.Player, equipSlot, inventorySlot int) bool {
	if !domain.IsAlive(p) {
		return false
	}
	if equipSlot < 0 || equipSlot >= len(p.Equipment) || !validSlot(p, inventorySlot) {
		return false
	}
	if !p.Equipment[equipSlot].Valid || p.Inventory[inventorySlot].Valid {
		return false
	}
	p.Inventory[inventorySlot] = p.Equipment[equipSlot]
	p.Equipment[equipSlot].Clear()

	domain.SetHealth(p, p.Health)
	domain.SetMana(p, p.Mana)
	return true
}
