package actions

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/systems"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

// HandleUseSkill запрашивает каст навыка. Если игрок уже кастует, запрос
// встает в очередь из одного элемента и подхватится после завершения каста.
func HandleUseSkill(ctx handlers.Context, p api.SkillPayload) (handlers.Result, error) {
	actor := ctx.Actor

	if p.Index >= len(actor.Skills) {
		return handlers.Reject("Нет такого навыка."), nil
	}
	s := &actor.Skills[p.Index]
	if s.Template.Category.IsStatus() {
		return handlers.Reject("Этот навык нельзя применить."), nil
	}
	if !s.Learned {
		return handlers.Reject("Навык не изучен."), nil
	}

	if actor.State == enums.StateCasting {
		actor.NextSkill = p.Index
		actor.NextTarget = actor.Target
		return handlers.EmptyResult(), nil
	}

	actor.PendingSkill = p.Index
	return handlers.EmptyResult(), nil
}

// HandleLearnSkill изучает навык за накопленный опыт навыков.
func HandleLearnSkill(ctx handlers.Context, p api.SkillPayload) (handlers.Result, error) {
	if p.Index >= len(ctx.Actor.Skills) {
		return handlers.Reject("Нет такого навыка."), nil
	}
	if !systems.LearnSkill(ctx.Actor, p.Index) {
		return handlers.Reject("Нельзя изучить этот навык."), nil
	}
	return handlers.Info("Навык изучен: " + ctx.Actor.Skills[p.Index].Name), nil
}

// HandleUpgradeSkill поднимает уровень изученного навыка.
func HandleUpgradeSkill(ctx handlers.Context, p api.SkillPayload) (handlers.Result, error) {
	if p.Index >= len(ctx.Actor.Skills) {
		return handlers.Reject("Нет такого навыка."), nil
	}
	if !systems.UpgradeSkill(ctx.Actor, p.Index) {
		return handlers.Reject("Нельзя улучшить этот навык."), nil
	}
	return handlers.Info("Навык улучшен: " + ctx.Actor.Skills[p.Index].Name), nil
}
