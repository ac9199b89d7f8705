package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/infrastructure/storage"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/utils"
)

// recordFromPlayer переводит живого игрока в сохраняемую запись.
// Дедлайны навыков пишутся ОСТАТКАМИ: абсолютное серверное время между
// рестартами не переживает.
func recordFromPlayer(p *domain.Player, now float64) *storage.CharacterRecord {
	rec := &storage.CharacterRecord{
		Name:            p.Name,
		Account:         p.Account,
		ClassName:       p.ClassName,
		Level:           p.Level,
		Health:          p.Health,
		Mana:            p.Mana,
		Strength:        p.Strength,
		Intelligence:    p.Intelligence,
		Experience:      p.Experience,
		SkillExperience: p.SkillExperience,
		Gold:            p.Gold,
		Coins:           p.Coins,
		Pos:             [3]float64{p.Pos[0], p.Pos[1], p.Pos[2]},
	}

	for i := range p.Skills {
		sk := &p.Skills[i]
		rec.Skills = append(rec.Skills, storage.SkillRecord{
			Name:              sk.Name,
			Learned:           sk.Learned,
			Level:             sk.Level,
			CooldownRemaining: sk.CooldownRemaining(now),
			BuffRemaining:     sk.BuffTimeRemaining(now),
		})
	}

	rec.Inventory = itemRecords(p.Inventory)
	rec.Equipment = itemRecords(p.Equipment)

	for i := range p.Quests {
		q := &p.Quests[i]
		rec.Quests = append(rec.Quests, storage.QuestRecord{
			Name:      q.Name,
			Killed:    q.Killed,
			Completed: q.Completed,
		})
	}

	return rec
}

func itemRecords(slots []domain.Item) []storage.ItemRecord {
	var out []storage.ItemRecord
	for i := range slots {
		if !slots[i].Valid {
			continue
		}
		out = append(out, storage.ItemRecord{
			Slot:   i,
			Name:   slots[i].Name,
			Amount: slots[i].Amount,
		})
	}
	return out
}

// playerFromRecord восстанавливает игрока из записи. Шаблоны, которых
// больше нет в каталоге, молча выпадают из сохранения (с записью в лог):
// контент мог измениться между рестартами.
func (s *GameService) playerFromRecord(rec *storage.CharacterRecord) *domain.Player {
	now := s.Clock.Now()

	p := domain.NewPlayer(utils.GenerateID(), rec.Name, rec.Account, rec.ClassName, s.Clock, s.Catalog)
	p.Level = rec.Level
	p.Strength = rec.Strength
	p.Intelligence = rec.Intelligence
	p.Experience = rec.Experience
	p.SkillExperience = rec.SkillExperience
	p.Gold = rec.Gold
	p.Coins = rec.Coins

	p.Pos = mgl64.Vec3{rec.Pos[0], rec.Pos[1], rec.Pos[2]}
	p.Anchor = ZoneSpawnPoint
	p.LastRecovery = now

	for _, sr := range rec.Skills {
		idx := p.SkillIndex(sr.Name)
		if idx < 0 {
			logger.Log.WithFields(logrus.Fields{
				"character": rec.Name,
				"skill":     sr.Name,
			}).Warn("Saved skill missing from catalog, dropped")
			continue
		}
		sk := &p.Skills[idx]
		sk.Learned = sr.Learned
		if sr.Level > 0 {
			sk.Level = sr.Level
		}
		if sr.CooldownRemaining > 0 {
			sk.CooldownEnd = now + sr.CooldownRemaining
		}
		if sr.BuffRemaining > 0 {
			sk.BuffTimeEnd = now + sr.BuffRemaining
		}
	}

	s.restoreItems(p.Inventory, rec.Inventory, rec.Name)
	s.restoreItems(p.Equipment, rec.Equipment, rec.Name)

	for _, qr := range rec.Quests {
		t, ok := s.Catalog.Quest(qr.Name)
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"character": rec.Name,
				"quest":     qr.Name,
			}).Warn("Saved quest missing from catalog, dropped")
			continue
		}
		q := domain.NewQuest(t)
		q.Killed = qr.Killed
		q.Completed = qr.Completed
		p.Quests = append(p.Quests, q)
	}

	// Ресурсы зажимаются уже ПОСЛЕ экипировки: максимумы зависят от нее.
	health := rec.Health
	if health <= 0 {
		// Персонаж сохранился мертвым. Поднимаем на половине здоровья,
		// штраф за ту смерть уже заплачен.
		health = p.HealthMax() / 2
	}
	domain.SetHealth(p, health)
	domain.SetMana(p, rec.Mana)

	return p
}

func (s *GameService) restoreItems(slots []domain.Item, recs []storage.ItemRecord, character string) {
	for _, ir := range recs {
		if ir.Slot < 0 || ir.Slot >= len(slots) {
			logger.Log.WithFields(logrus.Fields{
				"character": character,
				"item":      ir.Name,
				"slot":      ir.Slot,
			}).Warn("Saved item slot out of range, dropped")
			continue
		}
		t, ok := s.Catalog.Item(ir.Name)
		if !ok {
			logger.Log.WithFields(logrus.Fields{
				"character": character,
				"item":      ir.Name,
			}).Warn("Saved item missing from catalog, dropped")
			continue
		}
		amount := ir.Amount
		if amount > t.MaxStack {
			amount = t.MaxStack
		}
		slots[ir.Slot] = domain.NewItem(t, amount)
	}
}
