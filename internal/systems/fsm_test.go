package systems

import (
	"testing"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

func TestPlayerDeathDeadlinesAndRespawn(t *testing.T) {
	clock := &domain.ManualClock{T: 5}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	p.Anchor = at(1, 0, 2)
	p.Pos = at(10, 0, 10)
	p.Health = 0

	UpdatePlayer(ctx, p)
	if p.State != enums.StateDead {
		t.Fatalf("Expected dead state, got %s", p.State.String())
	}
	// Оба дедлайна считаются жадно в момент смерти.
	if p.DeathTimeEnd != 35 {
		t.Errorf("Expected death deadline 35, got %f", p.DeathTimeEnd)
	}
	if p.RespawnTimeEnd != 45 {
		t.Errorf("Expected respawn deadline 45, got %f", p.RespawnTimeEnd)
	}

	clock.T = 44.9
	syncNow(ctx, clock)
	UpdatePlayer(ctx, p)
	if p.State != enums.StateDead {
		t.Error("Expected still dead just before respawn deadline")
	}

	clock.T = 45
	syncNow(ctx, clock)
	UpdatePlayer(ctx, p)
	if p.State != enums.StateIdle {
		t.Fatalf("Expected respawn at deadline, got %s", p.State.String())
	}
	if p.Pos != p.Anchor {
		t.Error("Expected respawn at anchor point")
	}
	if p.Health != p.HealthMax()/2 {
		t.Errorf("Expected respawn at half health %d, got %d", p.HealthMax()/2, p.Health)
	}
}

func TestPlayerDeathCancelsEverything(t *testing.T) {
	clock := &domain.ManualClock{T: 10}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	p.Target = m
	p.State = enums.StateCasting
	p.CurrentSkill = p.SkillIndex("Удар")
	p.PendingSkill = p.SkillIndex("Взрыв")
	buffIdx := p.SkillIndex("Клич")
	p.Skills[buffIdx].BuffTimeEnd = clock.T + 100

	p.Health = 0
	UpdatePlayer(ctx, p)

	if p.State != enums.StateDead {
		t.Fatalf("Expected dead, got %s", p.State.String())
	}
	if p.CurrentSkill != -1 || p.PendingSkill != -1 {
		t.Error("Expected casts cancelled on death")
	}
	if p.Target != nil {
		t.Error("Expected target cleared on death")
	}
	if p.Skills[buffIdx].BuffActive(clock.T) {
		t.Error("Expected buffs stopped on death")
	}
}

func TestPlayerDeathExperiencePenalty(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	p.Experience = 80
	p.Health = 0

	UpdatePlayer(ctx, p)
	// Штраф: 5% от требуемого на уровень (100 на 1-м уровне) = 5.
	if p.Experience != 75 {
		t.Errorf("Expected experience 75 after death penalty, got %d", p.Experience)
	}
}

func TestPlayerFSMTotality(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	p.State = enums.EntityState(99)
	UpdatePlayer(ctx, p)
	if p.State != enums.StateIdle {
		t.Errorf("Expected invalid state to recover to idle, got %s", p.State.String())
	}

	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	m.State = enums.EntityState(99)
	UpdateMonster(ctx, m)
	if m.State != enums.StateIdle {
		t.Errorf("Expected invalid monster state to recover to idle, got %s", m.State.String())
	}
}

func TestPlayerCastFlow(t *testing.T) {
	clock := &domain.ManualClock{T: 1}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	m.Pos = at(3, 0, 0)

	idx := p.SkillIndex("Удар")
	p.Target = m
	p.PendingSkill = idx

	UpdatePlayer(ctx, p)
	if p.State != enums.StateCasting {
		t.Fatalf("Expected casting, got %s", p.State.String())
	}
	if p.Skills[idx].CastTimeEnd != clock.T+1 {
		t.Errorf("Expected cast deadline %f, got %f", clock.T+1, p.Skills[idx].CastTimeEnd)
	}

	// Середина каста: ничего не происходит.
	clock.Advance(0.5)
	syncNow(ctx, clock)
	UpdatePlayer(ctx, p)
	if p.State != enums.StateCasting || m.Health != 50 {
		t.Fatal("Expected cast still in progress")
	}

	clock.Advance(0.5)
	syncNow(ctx, clock)
	UpdatePlayer(ctx, p)
	if p.State != enums.StateIdle {
		t.Fatalf("Expected idle after cast, got %s", p.State.String())
	}
	// Урон: (1 + 5 + 9) - 3 = 12.
	if m.Health != 38 {
		t.Errorf("Expected target health 38, got %d", m.Health)
	}
	// Автоатака перезапрашивает себя.
	if p.PendingSkill != idx {
		t.Errorf("Expected auto-repeat of default attack, pending %d", p.PendingSkill)
	}
}

func TestPlayerAutoApproachesCastRange(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	m.Pos = at(20, 0, 0)

	idx := p.SkillIndex("Удар")
	p.Target = m
	p.PendingSkill = idx

	UpdatePlayer(ctx, p)
	if p.State != enums.StateMoving {
		t.Fatalf("Expected approach to out-of-range target, got %s", p.State.String())
	}
	if p.PendingSkill != idx {
		t.Error("Expected skill request kept while approaching")
	}

	// Дошли до дальности каста: следующий тик начинает каст.
	p.Pos = at(16, 0, 0)
	UpdatePlayer(ctx, p)
	if p.State != enums.StateCasting {
		t.Errorf("Expected cast once in range, got %s", p.State.String())
	}
}

func TestCommandsLiveOneTick(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	// Возрождение живого игрока бессмысленно: событие должно сгореть, а не
	// сработать после будущей смерти.
	p.Cmd.Raise(domain.CmdRespawn)
	UpdatePlayer(ctx, p)

	if len(p.Cmd) != 0 {
		t.Error("Expected unconsumed commands dropped at end of tick")
	}

	p.Health = 0
	UpdatePlayer(ctx, p)
	if p.State != enums.StateDead {
		t.Error("Expected stale respawn command not to revive")
	}
}

func TestPlayerNavigate(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	p := spawnPlayer(ctx, clock, "p1", "Герой")
	p.NavigateDest = at(10, 0, 0)
	p.NavigateStopping = 0
	p.Cmd.Raise(domain.CmdNavigateTo)

	UpdatePlayer(ctx, p)
	if p.State != enums.StateMoving {
		t.Fatalf("Expected moving, got %s", p.State.String())
	}

	// Прибытие опрашивается, а не приходит событием.
	p.Pos = at(10, 0, 0)
	UpdatePlayer(ctx, p)
	if p.State != enums.StateIdle {
		t.Errorf("Expected idle on arrival, got %s", p.State.String())
	}
}

func TestMonsterAggroAndAttack(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	p := spawnPlayer(ctx, clock, "p1", "Герой")
	p.Pos = at(3, 0, 0)

	UpdateMonster(ctx, m)
	if m.Target != domain.Behaviour(p) {
		t.Fatal("Expected monster to aggro player in radius")
	}
	if m.State != enums.StateIdle {
		t.Fatalf("Expected idle after aggro scan, got %s", m.State.String())
	}

	UpdateMonster(ctx, m)
	if m.State != enums.StateCasting {
		t.Fatalf("Expected attack cast on target in range, got %s", m.State.String())
	}

	clock.Advance(1)
	syncNow(ctx, clock)
	UpdateMonster(ctx, m)
	if m.State != enums.StateIdle {
		t.Fatalf("Expected idle after cast, got %s", m.State.String())
	}
	// Урон монстра: 10 + навык 9 - защита игрока (1 база) = 18.
	if p.Health >= p.HealthMax() {
		t.Error("Expected player damaged by monster attack")
	}
}

func TestMonsterLeash(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	m.Anchor = at(0, 0, 0)
	p := spawnPlayer(ctx, clock, "p1", "Герой")
	p.Pos = at(25, 0, 0) // дальше FollowDistance 20 от якоря
	m.Target = p

	UpdateMonster(ctx, m)
	if m.Target != nil {
		t.Error("Expected leash to drop the target")
	}
	if m.State != enums.StateMoving {
		t.Errorf("Expected return to anchor, got %s", m.State.String())
	}
}

func TestMonsterDeathLootAndRespawn(t *testing.T) {
	clock := &domain.ManualClock{T: 100}
	ctx := testContext(t, clock)

	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	m.Anchor = at(2, 0, 2)
	m.Health = 0

	UpdateMonster(ctx, m)
	if m.State != enums.StateDead {
		t.Fatalf("Expected dead, got %s", m.State.String())
	}
	// Лут бросается ровно один раз, в момент смерти.
	if m.LootGold != 5 {
		t.Errorf("Expected 5 loot gold, got %d", m.LootGold)
	}
	if m.DeathTimeEnd != 130 || m.RespawnTimeEnd != 140 {
		t.Errorf("Expected deadlines 130/140, got %f/%f", m.DeathTimeEnd, m.RespawnTimeEnd)
	}

	// Труп истек: прячется вместе с лутом.
	clock.T = 131
	syncNow(ctx, clock)
	UpdateMonster(ctx, m)
	if !m.Hidden {
		t.Error("Expected corpse hidden after death time")
	}
	if m.HasLoot() {
		t.Error("Expected loot gone with the corpse")
	}

	clock.T = 140
	syncNow(ctx, clock)
	UpdateMonster(ctx, m)
	if m.State != enums.StateIdle {
		t.Fatalf("Expected respawn, got %s", m.State.String())
	}
	if m.Hidden {
		t.Error("Expected respawned monster visible")
	}
	if m.Health != m.HealthMax() {
		t.Errorf("Expected full health on respawn, got %d", m.Health)
	}
	if m.Pos != m.Anchor {
		t.Error("Expected respawn at anchor")
	}
}

func TestMonsterAggroHysteresis(t *testing.T) {
	clock := &domain.ManualClock{}
	ctx := testContext(t, clock)

	m := spawnMonster(ctx, clock, "m1", zombieSpec())
	current := spawnPlayer(ctx, clock, "p1", "Первый")
	current.Pos = at(11, 0, 0) // дистанция поверхностей 10
	m.Target = current

	rival := spawnPlayer(ctx, clock, "p2", "Второй")

	// На 10% ближе: недостаточно для переключения (порог 0.8).
	rival.Pos = at(10, 0, 0)
	m.OnAggro(rival)
	if m.Target != domain.Behaviour(current) {
		t.Error("Expected slightly closer attacker not to steal aggro")
	}

	// На 30% ближе: переключаемся.
	rival.Pos = at(8, 0, 0)
	m.OnAggro(rival)
	if m.Target != domain.Behaviour(rival) {
		t.Error("Expected clearly closer attacker to steal aggro")
	}
}
