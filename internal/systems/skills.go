package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/utils"
)

// Проверки каста разбиты на три независимых шага: сам кастер, цель,
// дистанция. FSM комбинирует их по-разному (запрос, докрутка цели,
// добегание до дальности каста).

// CastCheckSelf - может ли сущность в принципе кастовать навык:
// выучен, кастер жив, хватает маны, есть оружие, и (опционально)
// откат уже прошел. Откат игнорируется при перепроверке в момент
// завершения каста, иначе навык блокировал бы сам себя.
func CastCheckSelf(caster domain.Behaviour, s *domain.Skill, checkCooldown bool, now float64) bool {
	if !s.Learned || !domain.IsAlive(caster) {
		return false
	}
	if caster.E().Mana < s.Data().ManaCosts {
		return false
	}
	if !caster.HasCastWeapon() {
		return false
	}
	return !checkCooldown || s.IsReady(now)
}

// CorrectedCastTarget вычисляет фактическую цель навыка по его категории:
// атака бьет по текущей цели; лечение перенаправляется на себя, если цель
// отсутствует, мертва или другого вида; бафф всегда кастуется на себя.
func CorrectedCastTarget(caster domain.Behaviour, s *domain.Skill) domain.Behaviour {
	target := caster.E().Target

	switch s.Template.Category {
	case enums.SkillCategoryAttack:
		return target

	case enums.SkillCategoryHeal:
		if target != nil && domain.IsAlive(target) && target.E().Kind == caster.E().Kind {
			return target
		}
		return caster

	case enums.SkillCategoryBuff:
		return caster
	}
	return nil
}

// CastCheckTarget проверяет валидность цели и ЗАПИСЫВАЕТ скорректированную
// цель обратно в сущность. Это единственное место, где докрутка цели
// становится видимой остальному коду.
func CastCheckTarget(caster domain.Behaviour, s *domain.Skill) bool {
	target := CorrectedCastTarget(caster, s)

	switch s.Template.Category {
	case enums.SkillCategoryAttack:
		if target == nil || !domain.IsAlive(target) || !caster.CanAttack(target) {
			return false
		}
		caster.E().Target = target
		return true

	case enums.SkillCategoryHeal, enums.SkillCategoryBuff:
		caster.E().Target = target
		return true
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "skills",
		"caster":    caster.E().Name,
		"skill":     s.Name,
		"category":  s.Template.Category.String(),
	}).Error("Cast check for unknown skill category")
	return false
}

// CastCheckDistance - цель в пределах дальности навыка (по поверхностям сфер).
func CastCheckDistance(caster domain.Behaviour, s *domain.Skill) bool {
	target := caster.E().Target
	if target == nil {
		return false
	}
	return domain.SurfaceDistance(caster.E(), target.E()) <= s.Data().CastRange
}

// StartCast запускает каст: выставляет дедлайн завершения.
func StartCast(s *domain.Skill, now float64) {
	s.CastTimeEnd = now + s.Data().CastTime
}

// FinishCast применяет эффект навыка после завершения каста.
//
// Перед применением условия перепроверяются (без отката): за время каста
// цель могла умереть, мана могла утечь. При провале навык тихо отменяется
// без расхода ресурсов и без отката.
//
// Возвращает true, если эффект применен.
func FinishCast(ctx *domain.TickContext, caster domain.Behaviour, s *domain.Skill) bool {
	if !CastCheckSelf(caster, s, false, ctx.Now) || !CastCheckTarget(caster, s) {
		logger.Log.WithFields(logrus.Fields{
			"component": "skills",
			"caster":    caster.E().Name,
			"skill":     s.Name,
		}).Debug("Cast fizzled on finish recheck")
		return false
	}

	data := s.Data()
	domain.AddMana(caster, -data.ManaCosts)

	switch s.Template.Category {
	case enums.SkillCategoryAttack:
		target := caster.E().Target
		if s.Template.Projectile {
			launchProjectile(ctx, caster, target, s)
		} else {
			resolveHits(ctx, caster, DealDamageAt(ctx, caster, target, caster.Damage()+data.Damage, data.AoERadius))
		}

	case enums.SkillCategoryHeal:
		target := caster.E().Target
		domain.AddHealth(target, data.HealsHealth)
		domain.AddMana(target, data.HealsMana)
		ctx.World.EmitPopup(enums.PopupNormal, data.HealsHealth, target.E().TopOfBounds())

	case enums.SkillCategoryBuff:
		s.BuffTimeEnd = ctx.Now + data.BuffTime
	}

	s.CooldownEnd = ctx.Now + data.Cooldown
	return true
}

func launchProjectile(ctx *domain.TickContext, caster, target domain.Behaviour, s *domain.Skill) {
	data := s.Data()
	proj := domain.NewProjectile(
		utils.GenerateID(),
		caster,
		target,
		caster.Damage()+data.Damage,
		data.AoERadius,
		s.Template.ProjectileSpeed,
		caster.E().Clock,
	)
	ctx.World.Register(proj)
}

// ResolveProjectile применяет урон прибывшего снаряда. Вызывается движком.
// Цель могла выйти из мира, пока снаряд летел: такой снаряд гаснет впустую.
func ResolveProjectile(ctx *domain.TickContext, p *domain.Projectile) {
	p.Resolved = true
	if p.Target == nil || p.Caster == nil {
		return
	}
	if ctx.World.Get(p.Target.E().ID) == nil {
		return
	}
	resolveHits(ctx, p.Caster, DealDamageAt(ctx, p.Caster, p.Target, p.DamageAmount, p.AoERadius))
}

// resolveHits доводит результаты урона до PvP-статусов и наград за убийства.
func resolveHits(ctx *domain.TickContext, attacker domain.Behaviour, hits []Hit) {
	player, isPlayer := attacker.(*domain.Player)
	if !isPlayer {
		return
	}
	for _, hit := range hits {
		NoteAggression(player, hit.Target)
		if hit.Killed {
			RewardKill(ctx, player, hit.Target)
		}
	}
}

// StopBuffs гасит все активные баффы (включая PvP-статусы). Вызывается при
// смерти: дедлайны сдвигаются в прошлое.
func StopBuffs(b domain.Behaviour, now float64) {
	e := b.E()
	for i := range e.Skills {
		s := &e.Skills[i]
		if s.Template.Category.IsBuffLike() || s.Template.Category.IsStatus() {
			s.BuffTimeEnd = now
		}
	}
}

// --- ИЗУЧЕНИЕ И ПРОКАЧКА ---

// LearnSkill изучает навык за опыт навыков. Требования берутся из данных
// первого уровня.
func LearnSkill(p *domain.Player, skillIndex int) bool {
	if skillIndex < 0 || skillIndex >= len(p.Skills) {
		return false
	}
	s := &p.Skills[skillIndex]
	if s.Learned || s.Template.Category.IsStatus() {
		return false
	}

	data := s.Template.Level(1)
	if p.Level < data.RequiredLevel || p.SkillExperience < data.RequiredSkillExperience {
		return false
	}

	p.SkillExperience -= data.RequiredSkillExperience
	s.Learned = true
	s.Level = 1
	return true
}

// UpgradeSkill повышает уровень изученного навыка.
func UpgradeSkill(p *domain.Player, skillIndex int) bool {
	if skillIndex < 0 || skillIndex >= len(p.Skills) {
		return false
	}
	s := &p.Skills[skillIndex]
	if !s.CanUpgrade() {
		return false
	}

	data := s.Template.Level(s.Level + 1)
	if p.Level < data.RequiredLevel || p.SkillExperience < data.RequiredSkillExperience {
		return false
	}

	p.SkillExperience -= data.RequiredSkillExperience
	s.Level++
	return true
}
