package actions

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

// Радиус слышимости локального чата, метры.
const localChatRange = 20.0

// HandleChat рассылает сообщение чата. Имя отправителя всегда берется из
// сущности актера: полю payload не место в подписи сообщения.
func HandleChat(ctx handlers.Context, p api.ChatPayload) (handlers.Result, error) {
	actor := ctx.Actor
	world := ctx.Tick.World

	switch enums.ParseChatChannel(p.Channel) {
	case enums.ChatChannelWhisper:
		target := world.PlayerByName(p.To)
		if target == nil {
			return handlers.Reject("Игрок не в сети: " + p.To), nil
		}
		world.EmitChat(target.ID, enums.ChatChannelWhisper, actor.Name, p.Text)
		world.EmitChat(actor.ID, enums.ChatChannelWhisper, actor.Name, p.Text)

	case enums.ChatChannelLocal:
		for _, b := range world.All() {
			other, ok := b.(*domain.Player)
			if !ok {
				continue
			}
			if other.Pos.Sub(actor.Pos).Len() <= localChatRange {
				world.EmitChat(other.ID, enums.ChatChannelLocal, actor.Name, p.Text)
			}
		}

	case enums.ChatChannelGlobal:
		for _, b := range world.All() {
			if other, ok := b.(*domain.Player); ok {
				world.EmitChat(other.ID, enums.ChatChannelGlobal, actor.Name, p.Text)
			}
		}

	default:
		return handlers.Reject("Неизвестный канал чата."), nil
	}

	return handlers.EmptyResult(), nil
}
