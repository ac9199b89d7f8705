package domain

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
)

// Item - слот инвентаря/экипировки. Слоты лежат в массивах фиксированного
// размера и должны оставаться адресуемыми по индексу, поэтому "пусто" - это
// явный флаг Valid, а не nil.
//
// Инвариант занятого слота: Amount >= 1 и Amount <= Template.MaxStack.
type Item struct {
	Valid    bool
	Name     string
	Amount   int
	Template *catalog.ItemTemplate
}

// NewItem создает занятый слот.
func NewItem(t *catalog.ItemTemplate, amount int) Item {
	return Item{
		Valid:    true,
		Name:     t.Name,
		Amount:   amount,
		Template: t,
	}
}

// Clear освобождает слот.
func (it *Item) Clear() {
	*it = Item{}
}

// MaxStack - предел стака (1 для пустого слота, чтобы не делить на ноль).
func (it *Item) MaxStack() int {
	if !it.Valid || it.Template == nil {
		return 1
	}
	return it.Template.MaxStack
}

// ItemDropChance - строка таблицы дропа монстра.
type ItemDropChance struct {
	ItemName string
	Chance   float64 // [0..1]
}

// CountItems считает суммарное количество предмета name в слотах.
func CountItems(slots []Item, name string) int {
	total := 0
	for i := range slots {
		if slots[i].Valid && slots[i].Name == name {
			total += slots[i].Amount
		}
	}
	return total
}

// FreeSlots считает пустые слоты.
func FreeSlots(slots []Item) int {
	n := 0
	for i := range slots {
		if !slots[i].Valid {
			n++
		}
	}
	return n
}
