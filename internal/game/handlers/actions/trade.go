package actions

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/systems"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

// HandleTradeRequest шлет приглашение к обмену текущей цели.
func HandleTradeRequest(ctx handlers.Context) (handlers.Result, error) {
	if !systems.TradeRequestSend(ctx.Tick, ctx.Actor) {
		return handlers.Reject("С этой целью нельзя торговать."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleTradeAcceptRequest принимает входящее приглашение. Обмен начнется
// на следующем тике, когда FSM увидит взаимные приглашения.
func HandleTradeAcceptRequest(ctx handlers.Context) (handlers.Result, error) {
	if !systems.TradeRequestAccept(ctx.Tick, ctx.Actor) {
		return handlers.Reject("Приглашение уже недействительно."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleTradeDeclineRequest отклоняет входящее приглашение.
func HandleTradeDeclineRequest(ctx handlers.Context) (handlers.Result, error) {
	systems.TradeRequestDecline(ctx.Actor)
	return handlers.EmptyResult(), nil
}

// HandleTradeOfferGold выставляет золото в предложение.
func HandleTradeOfferGold(ctx handlers.Context, p api.GoldPayload) (handlers.Result, error) {
	if !systems.TradeOfferGold(ctx.Actor, p.Gold) {
		return handlers.Reject("Предложение заблокировано."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleTradeOfferItem добавляет предмет из инвентаря в предложение.
func HandleTradeOfferItem(ctx handlers.Context, p api.TradeItemPayload) (handlers.Result, error) {
	if !systems.TradeOfferItem(ctx.Actor, p.InventorySlot, p.OfferSlot) {
		return handlers.Reject("Этот предмет нельзя предложить."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleTradeClearSlot убирает предмет из слота предложения.
func HandleTradeClearSlot(ctx handlers.Context, p api.SlotPayload) (handlers.Result, error) {
	if !systems.TradeOfferClearSlot(ctx.Actor, p.Slot) {
		return handlers.Reject("Предложение заблокировано."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleTradeLock фиксирует предложение. После блокировки менять его нельзя.
func HandleTradeLock(ctx handlers.Context) (handlers.Result, error) {
	if !systems.TradeOfferLock(ctx.Actor) {
		return handlers.Reject("Сейчас нечего блокировать."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleTradeAccept подтверждает обмен. Второе подтверждение исполняет его.
func HandleTradeAccept(ctx handlers.Context) (handlers.Result, error) {
	if !systems.TradeOfferAccept(ctx.Tick, ctx.Actor) {
		return handlers.Reject("Обе стороны должны заблокировать предложение."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleTradeCancel разрывает обмен с любой стороны.
func HandleTradeCancel(ctx handlers.Context) (handlers.Result, error) {
	systems.TradeCancel(ctx.Actor)
	return handlers.EmptyResult(), nil
}
