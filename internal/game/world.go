package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/utils"
)

// ZoneSpawnPoint - точка появления и возрождения игроков.
var ZoneSpawnPoint = mgl64.Vec3{0, 0, 0}

// graveyardTeleport - куда везет телепортер у спавна.
var graveyardTeleport = mgl64.Vec3{40, 0, 5}

// BuildZone населяет мир стартовой зоной: NPC у точки спавна, кладбище
// с зомби и пещера с пауками. Вызывается один раз до старта цикла.
func (s *GameService) BuildZone() {
	elder := domain.NewNpc(utils.GenerateID(), "Старейшина", s.Clock)
	elder.Pos = mgl64.Vec3{3, 0, 2}
	elder.QuestNames = []string{"Зачистка кладбища", "Паучьи клыки", "Золотая лихорадка"}
	s.World.Register(elder)

	vendor := domain.NewNpc(utils.GenerateID(), "Торговец", s.Clock)
	vendor.Pos = mgl64.Vec3{-3, 0, 2}
	vendor.SaleItems = []string{
		"Бронзовый меч",
		"Охотничий лук",
		"Деревянный щит",
		"Кожаный шлем",
		"Кожаный доспех",
		"Кожаные поножи",
		"Малое зелье здоровья",
		"Малое зелье маны",
	}
	s.World.Register(vendor)

	teleporter := domain.NewNpc(utils.GenerateID(), "Телепортер", s.Clock)
	teleporter.Pos = mgl64.Vec3{0, 0, -4}
	teleporter.TeleportActive = true
	teleporter.TeleportTo = graveyardTeleport
	s.World.Register(teleporter)

	zombie := domain.MonsterSpec{
		Name:            "Зомби",
		Level:           2,
		HealthMax:       90,
		ManaMax:         10,
		Damage:          8,
		Defense:         2,
		Speed:           3,
		ExpReward:       40,
		SkillExpReward:  2,
		MoveProbability: 0.1,
		MoveDistance:    4,
		FollowDistance:  20,
		AggroRadius:     6,
		DeathTime:       30,
		RespawnTime:     10,
		LootGoldMin:     5,
		LootGoldMax:     20,
		DropChances: []domain.ItemDropChance{
			{ItemName: "Шкура зомби", Chance: 0.5},
			{ItemName: "Малое зелье здоровья", Chance: 0.1},
		},
		Skills: []string{"Обычная атака"},
	}
	s.spawnPack(zombie, []mgl64.Vec3{
		{42, 0, 8}, {45, 0, 12}, {48, 0, 6}, {44, 0, 16}, {50, 0, 10},
	})

	spider := domain.MonsterSpec{
		Name:            "Пещерный паук",
		Level:           4,
		HealthMax:       140,
		ManaMax:         40,
		Damage:          14,
		Defense:         4,
		CritChance:      0.05,
		Speed:           4,
		ExpReward:       90,
		SkillExpReward:  4,
		MoveProbability: 0.15,
		MoveDistance:    6,
		FollowDistance:  25,
		AggroRadius:     8,
		DeathTime:       30,
		RespawnTime:     15,
		LootGoldMin:     15,
		LootGoldMax:     40,
		DropChances: []domain.ItemDropChance{
			{ItemName: "Клык паука", Chance: 0.6},
			{ItemName: "Золотая руда", Chance: 0.25},
		},
		Skills: []string{"Обычная атака", "Мощный удар"},
	}
	s.spawnPack(spider, []mgl64.Vec3{
		{-30, 0, 25}, {-34, 0, 28}, {-28, 0, 32},
	})

	logger.Log.WithField("entities", len(s.World.All())).Info("Zone built")
}

func (s *GameService) spawnPack(spec domain.MonsterSpec, anchors []mgl64.Vec3) {
	for i, anchor := range anchors {
		m := domain.NewMonster(
			fmt.Sprintf("%s-%d-%s", spec.Name, i+1, utils.GenerateID()),
			spec, s.Clock, s.Config.AggroHysteresis,
		)
		m.Pos = anchor
		m.Anchor = anchor

		for _, name := range spec.Skills {
			if idx := m.SkillIndex(name); idx >= 0 {
				m.Skills[idx].Learned = true
				continue
			}
			if t, ok := s.Catalog.Skill(name); ok {
				sk := domain.NewSkill(t)
				sk.Learned = true
				m.Skills = append(m.Skills, sk)
			} else {
				logger.Log.WithField("skill", name).Warn("Monster skill missing from catalog")
			}
		}

		s.World.Register(m)
	}
}
