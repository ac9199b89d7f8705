package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// Hit - результат применения урона к одной сущности.
type Hit struct {
	Target domain.Behaviour
	Amount int
	Kind   enums.PopupKind
	Killed bool
}

// DealDamageAt наносит урон основной цели и всем в радиусе AoE вокруг нее.
//
// Правила сбора задетых: основная цель включается ВСЕГДА (aoeRadius 0 =
// ровно она одна); остальные - живые, атакуемые и не сам атакующий,
// по дистанции между поверхностями ограничивающих сфер.
func DealDamageAt(ctx *domain.TickContext, attacker, primary domain.Behaviour, amount int, aoeRadius float64) []Hit {
	affected := collectAffected(ctx.World, attacker, primary, aoeRadius)

	hits := make([]Hit, 0, len(affected))
	for _, target := range affected {
		hits = append(hits, applyDamage(ctx, attacker, target, amount))

		// Аггро переключается даже при блоке и неуязвимости: дальнобойный
		// атакующий не должен оставаться вне ответного таргетинга.
		target.OnAggro(attacker)
	}
	return hits
}

func collectAffected(w *domain.World, attacker, primary domain.Behaviour, aoeRadius float64) []domain.Behaviour {
	affected := []domain.Behaviour{primary}
	if aoeRadius <= 0 {
		return affected
	}

	center := primary.E()
	for _, b := range w.InRadius(center.Pos, aoeRadius+center.Radius) {
		if b == primary || b == attacker {
			continue
		}
		if !domain.IsAlive(b) {
			continue
		}
		if !attacker.CanAttack(b) {
			continue
		}
		if domain.SurfaceDistance(center, b.E()) > aoeRadius {
			continue
		}
		affected = append(affected, b)
	}
	return affected
}

func applyDamage(ctx *domain.TickContext, attacker, target domain.Behaviour, amount int) Hit {
	hit := Hit{Target: target, Kind: enums.PopupNormal}

	// Мертвых не добиваем: основная цель могла умереть между запросом и кастом.
	if !domain.IsAlive(target) {
		return hit
	}

	if !target.E().Invincible {
		if ctx.Rng.Float64() < target.BlockChance() {
			hit.Kind = enums.PopupBlock
		} else {
			dealt := amount - target.Defense()
			if dealt < 1 {
				// Минимум единица, любая защита пробивается.
				dealt = 1
			}
			if ctx.Rng.Float64() < attacker.CritChance() {
				dealt *= 2
				hit.Kind = enums.PopupCrit
			}

			domain.AddHealth(target, -dealt)
			hit.Amount = dealt
			hit.Killed = target.E().Health == 0
		}
	}

	ctx.World.EmitPopup(hit.Kind, hit.Amount, target.E().TopOfBounds())

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.E().Name,
		"target":    target.E().Name,
		"amount":    hit.Amount,
		"kind":      hit.Kind.String(),
		"killed":    hit.Killed,
	}).Debug("Damage applied")

	return hit
}

// BalanceExpReward масштабирует награду опыта по разнице уровней
// (уровень жертвы минус уровень атакующего), зажатой в [-10, +10]:
// каждый уровень разницы дает +-10% награды. Фарм серых целей обнуляется,
// рискованное убийство дает до двойного опыта. Дробная часть отбрасывается.
func BalanceExpReward(reward int64, attackerLevel, victimLevel int) int64 {
	diff := victimLevel - attackerLevel
	if diff < -10 {
		diff = -10
	}
	if diff > 10 {
		diff = 10
	}
	return int64(float64(reward) * (1 + float64(diff)*0.1))
}

// NoteAggression фиксирует PvP-агрессию: удар по невиновному игроку вешает
// на атакующего статус нарушителя.
func NoteAggression(attacker *domain.Player, target domain.Behaviour) {
	if victim, ok := target.(*domain.Player); ok && victim.IsInnocent() {
		attacker.MakeOffender()
	}
}

// RewardKill начисляет игроку награды за убийство и двигает счетчики
// активных квестов. Убийство невиновного игрока делает атакующего убийцей.
func RewardKill(ctx *domain.TickContext, attacker *domain.Player, victim domain.Behaviour) {
	switch v := victim.(type) {
	case *domain.Monster:
		attacker.AddExperience(BalanceExpReward(v.Spec.ExpReward, attacker.Level, v.Level))
		attacker.SkillExperience += BalanceExpReward(v.Spec.SkillExpReward, attacker.Level, v.Level)

		for i := range attacker.Quests {
			q := &attacker.Quests[i]
			if !q.Completed && q.Template.KillTarget == v.Name {
				q.RegisterKill()
			}
		}

	case *domain.Player:
		if v.IsInnocent() {
			attacker.MakeMurderer()
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.Name,
		"victim":    victim.E().Name,
	}).Info("Kill registered")
}
