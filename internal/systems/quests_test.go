package systems

import (
	"testing"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

func spawnQuestGiver(ctx *domain.TickContext, clock *domain.ManualClock) *domain.Npc {
	npc := domain.NewNpc("npc1", "Старейшина", clock)
	npc.QuestNames = []string{"Охота", "Сбор"}
	ctx.World.Register(npc)
	return npc
}

func TestQuestStartAndLimit(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	npc := spawnQuestGiver(ctx, clock)

	if !QuestStart(ctx, p, npc, "Охота") {
		t.Fatal("Expected quest start to succeed")
	}
	if QuestStart(ctx, p, npc, "Охота") {
		t.Error("Expected duplicate quest start to be rejected")
	}
	if QuestStart(ctx, p, npc, "Неизвестный") {
		t.Error("Expected unknown quest to be rejected")
	}
	if len(p.Quests) != 1 {
		t.Errorf("Expected 1 quest in log, got %d", len(p.Quests))
	}
}

func TestQuestStartOutOfRange(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	npc := spawnQuestGiver(ctx, clock)
	npc.Pos = at(50, 0, 0)

	if QuestStart(ctx, p, npc, "Охота") {
		t.Error("Expected quest start out of interaction range to be rejected")
	}
}

func TestQuestCompleteKill(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	npc := spawnQuestGiver(ctx, clock)
	QuestStart(ctx, p, npc, "Охота")

	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	RewardKill(ctx, p, m)
	if QuestCanComplete(p, "Охота") {
		t.Error("Expected quest incomplete after 1 of 2 kills")
	}
	RewardKill(ctx, p, m)
	if !QuestCanComplete(p, "Охота") {
		t.Fatal("Expected quest complete after 2 kills")
	}

	goldBefore := p.Gold
	if !QuestComplete(ctx, p, npc, "Охота") {
		t.Fatal("Expected quest turn-in to succeed")
	}
	if p.Gold != goldBefore+50 {
		t.Errorf("Expected +50 gold reward, got %d", p.Gold-goldBefore)
	}
	if !p.Quests[0].Completed {
		t.Error("Expected quest marked completed")
	}
	if QuestComplete(ctx, p, npc, "Охота") {
		t.Error("Expected completed quest to refuse second turn-in")
	}
}

func TestQuestCompleteGatherConsumesItems(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	npc := spawnQuestGiver(ctx, clock)
	QuestStart(ctx, p, npc, "Сбор")

	fang, _ := ctx.Catalog.Item("Клык")
	p.Inventory[0] = domain.NewItem(fang, 2)
	if QuestCanComplete(p, "Сбор") {
		t.Error("Expected quest incomplete with 2 of 3 items")
	}

	p.Inventory[1] = domain.NewItem(fang, 1)
	if !QuestComplete(ctx, p, npc, "Сбор") {
		t.Fatal("Expected gather quest turn-in to succeed")
	}
	if domain.CountItems(p.Inventory, "Клык") != 0 {
		t.Errorf("Expected gathered items consumed, %d left", domain.CountItems(p.Inventory, "Клык"))
	}
}
