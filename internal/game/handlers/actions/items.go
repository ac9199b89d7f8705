package actions

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/systems"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

// HandleUseItem применяет предмет из слота инвентаря (зелья, еда).
func HandleUseItem(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	if !systems.UseItem(ctx.Tick, ctx.Actor, p.Slot) {
		return handlers.Reject("Этот предмет нельзя использовать."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleDropItem уничтожает стак из слота инвентаря.
func HandleDropItem(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	if !systems.DropItem(ctx.Actor, p.Slot) {
		return handlers.Reject("Этот предмет нельзя выбросить."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleSplitStack делит стак пополам в пустой слот.
func HandleSplitStack(ctx handlers.Context, p api.TwoSlotsPayload) (handlers.Result, error) {
	if !systems.SplitStack(ctx.Actor, p.From, p.To) {
		return handlers.Reject("Стак не делится."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleMergeStacks сливает два стака одного предмета.
func HandleMergeStacks(ctx handlers.Context, p api.TwoSlotsPayload) (handlers.Result, error) {
	if !systems.MergeStacks(ctx.Actor, p.From, p.To) {
		return handlers.Reject("Стаки не сливаются."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleSwapSlots меняет местами два слота инвентаря.
func HandleSwapSlots(ctx handlers.Context, p api.TwoSlotsPayload) (handlers.Result, error) {
	if !systems.SwapInventorySlots(ctx.Actor, p.From, p.To) {
		return handlers.Reject("Неверные слоты."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleEquip надевает предмет из инвентаря в слот экипировки.
func HandleEquip(ctx handlers.Context, p api.EquipPayload) (handlers.Result, error) {
	if !systems.EquipItem(ctx.Actor, p.InventorySlot, p.EquipSlot) {
		return handlers.Reject("Этот предмет сюда не надевается."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleUnequip снимает экипировку в пустой слот инвентаря.
func HandleUnequip(ctx handlers.Context, p api.EquipPayload) (handlers.Result, error) {
	if !systems.UnequipItem(ctx.Actor, p.EquipSlot, p.InventorySlot) {
		return handlers.Reject("Не удалось снять предмет."), nil
	}
	return handlers.EmptyResult(), nil
}
