package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// Квесты живут в журнале игрока и после сдачи: Completed = true блокирует
// повторное прохождение. Лимит - на НЕЗАВЕРШЕННЫЕ квесты.

func questIndex(p *domain.Player, name string) int {
	for i := range p.Quests {
		if p.Quests[i].Name == name {
			return i
		}
	}
	return -1
}

func activeQuestCount(p *domain.Player) int {
	n := 0
	for i := range p.Quests {
		if !p.Quests[i].Completed {
			n++
		}
	}
	return n
}

// QuestCanStart - можно ли взять квест у этого NPC: он его выдает, уровень
// достаточен, квест не в журнале, предшественник сдан, лимит не выбран.
func QuestCanStart(ctx *domain.TickContext, p *domain.Player, npc *domain.Npc, questName string) bool {
	if !npc.OffersQuest(questName) {
		return false
	}
	if questIndex(p, questName) != -1 {
		return false
	}
	if activeQuestCount(p) >= domain.ActiveQuestLimit {
		return false
	}

	tmpl, ok := ctx.Catalog.Quest(questName)
	if !ok || p.Level < tmpl.RequiredLevel {
		return false
	}
	if tmpl.Predecessor != "" {
		idx := questIndex(p, tmpl.Predecessor)
		if idx == -1 || !p.Quests[idx].Completed {
			return false
		}
	}
	return true
}

// QuestStart берет квест в журнал.
func QuestStart(ctx *domain.TickContext, p *domain.Player, npc *domain.Npc, questName string) bool {
	if !inInteractionRange(p, &npc.Entity) || !QuestCanStart(ctx, p, npc, questName) {
		return false
	}
	tmpl, _ := ctx.Catalog.Quest(questName)
	p.Quests = append(p.Quests, domain.NewQuest(tmpl))

	ctx.World.EmitInfo(p.ID, "Квест принят: "+questName)
	logger.Log.WithFields(logrus.Fields{
		"component": "quests",
		"player":    p.Name,
		"quest":     questName,
	}).Info("Quest started")
	return true
}

// QuestCanComplete - квест в журнале, не сдан и все условия выполнены
// (убийства набраны, собираемый предмет в инвентаре в нужном количестве).
func QuestCanComplete(p *domain.Player, questName string) bool {
	idx := questIndex(p, questName)
	if idx == -1 {
		return false
	}
	q := &p.Quests[idx]
	if q.Completed {
		return false
	}
	gathered := 0
	if q.Template.GatherItem != "" {
		gathered = domain.CountItems(p.Inventory, q.Template.GatherItem)
	}
	return q.IsFulfilled(gathered)
}

// QuestComplete сдает квест у NPC: изымает собранное, начисляет награды.
// Предмет-награда обязан поместиться в инвентарь, иначе сдача откладывается.
func QuestComplete(ctx *domain.TickContext, p *domain.Player, npc *domain.Npc, questName string) bool {
	if !inInteractionRange(p, &npc.Entity) || !npc.OffersQuest(questName) {
		return false
	}
	if !QuestCanComplete(p, questName) {
		return false
	}

	idx := questIndex(p, questName)
	q := &p.Quests[idx]
	tmpl := q.Template

	var rewardItem = tmpl.RewardItem
	if rewardItem != "" {
		t, ok := ctx.Catalog.Item(rewardItem)
		if !ok || !InventoryCanAdd(p, t, 1) {
			ctx.World.EmitInfo(p.ID, "Освободите место в инвентаре для награды.")
			return false
		}
	}

	if tmpl.GatherItem != "" {
		if !InventoryRemove(p, tmpl.GatherItem, tmpl.GatherAmount) {
			return false
		}
	}

	p.Gold += tmpl.RewardGold
	p.AddExperience(tmpl.RewardExperience)
	if rewardItem != "" {
		t, _ := ctx.Catalog.Item(rewardItem)
		InventoryAdd(p, t, 1)
	}
	q.Completed = true

	ctx.World.EmitInfo(p.ID, "Квест завершен: "+questName)
	logger.Log.WithFields(logrus.Fields{
		"component": "quests",
		"player":    p.Name,
		"quest":     questName,
	}).Info("Quest completed")
	return true
}
