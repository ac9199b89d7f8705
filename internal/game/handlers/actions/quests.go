package actions

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/systems"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

func findNpc(ctx handlers.Context, id string) *domain.Npc {
	n, _ := ctx.Tick.World.Get(id).(*domain.Npc)
	return n
}

func findMonster(ctx handlers.Context, id string) *domain.Monster {
	m, _ := ctx.Tick.World.Get(id).(*domain.Monster)
	return m
}

// HandleQuestStart берет квест у NPC.
func HandleQuestStart(ctx handlers.Context, p api.QuestPayload) (handlers.Result, error) {
	npc := findNpc(ctx, p.NpcID)
	if npc == nil {
		return handlers.Reject("NPC не найден."), nil
	}
	if !systems.QuestStart(ctx.Tick, ctx.Actor, npc, p.Quest) {
		return handlers.Reject("Квест сейчас недоступен."), nil
	}
	return handlers.EmptyResult(), nil
}

// HandleQuestComplete сдает выполненный квест.
func HandleQuestComplete(ctx handlers.Context, p api.QuestPayload) (handlers.Result, error) {
	npc := findNpc(ctx, p.NpcID)
	if npc == nil {
		return handlers.Reject("NPC не найден."), nil
	}
	if !systems.QuestComplete(ctx.Tick, ctx.Actor, npc, p.Quest) {
		return handlers.Reject("Квест еще не выполнен."), nil
	}
	return handlers.Info("Квест завершен: " + p.Quest), nil
}
