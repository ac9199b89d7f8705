package systems

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	items := []catalog.ItemTemplate{
		{
			Name: "Меч", Category: enums.ItemCategoryWeaponSword, MaxStack: 1,
			BuyPrice: 100, SellPrice: 25,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDamage: 5,
		},
		{
			Name: "Зелье", Category: enums.ItemCategoryPotion, MaxStack: 10,
			BuyPrice: 10, SellPrice: 2,
			Sellable: true, Tradable: true, Destroyable: true,
			UsageHealth: 20,
		},
		{
			Name: "Клык", Category: enums.ItemCategoryMaterial, MaxStack: 20,
			BuyPrice: 5, SellPrice: 1,
			Sellable: true, Tradable: true, Destroyable: true,
		},
		{
			Name: "Реликвия", Category: enums.ItemCategoryMisc, MaxStack: 1,
			BuyPrice: 0, SellPrice: 0,
		},
	}

	skills := []catalog.SkillTemplate{
		{
			Name: "Удар", Category: enums.SkillCategoryAttack,
			FollowupDefaultAttack: true,
			Levels: []catalog.SkillLevelData{
				{Damage: 9, CastTime: 1, Cooldown: 2, CastRange: 5},
			},
		},
		{
			Name: "Взрыв", Category: enums.SkillCategoryAttack,
			Levels: []catalog.SkillLevelData{
				{Damage: 9, CastTime: 1, Cooldown: 3, CastRange: 10, AoERadius: 3, ManaCosts: 5},
			},
		},
		{
			Name: "Лечение", Category: enums.SkillCategoryHeal,
			Levels: []catalog.SkillLevelData{
				{CastTime: 1, Cooldown: 2, CastRange: 5, ManaCosts: 5, HealsHealth: 30},
			},
		},
		{
			Name: "Клич", Category: enums.SkillCategoryBuff,
			Levels: []catalog.SkillLevelData{
				{CastTime: 0.5, Cooldown: 30, BuffTime: 10, BuffsDamage: 5, ManaCosts: 5},
			},
		},
		{
			Name: "Нарушитель", Category: enums.SkillCategoryStatusOffender,
			Levels: []catalog.SkillLevelData{{BuffTime: 120}},
		},
		{
			Name: "Убийца", Category: enums.SkillCategoryStatusMurderer,
			Levels: []catalog.SkillLevelData{{BuffTime: 600}},
		},
	}

	quests := []catalog.QuestTemplate{
		{
			Name: "Охота", KillTarget: "Зомби", KillAmount: 2,
			RewardGold: 50, RewardExperience: 10,
		},
		{
			Name: "Сбор", GatherItem: "Клык", GatherAmount: 3,
			RewardGold: 10,
		},
	}

	recipes := []catalog.RecipeTemplate{
		{Name: "Зелье из клыков", Ingredients: []string{"Клык", "Клык"}, Result: "Зелье"},
	}

	cat, err := catalog.New(items, skills, quests, recipes)
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return cat
}

func testContext(t *testing.T, clock *domain.ManualClock) *domain.TickContext {
	t.Helper()
	return &domain.TickContext{
		World:   domain.NewWorld(),
		Catalog: testCatalog(t),
		Now:     clock.T,
		DT:      0.05,
		Rng:     rand.New(rand.NewSource(1)),
	}
}

// syncNow подтягивает время контекста к ручным часам.
func syncNow(ctx *domain.TickContext, clock *domain.ManualClock) {
	ctx.Now = clock.T
}

func spawnPlayer(ctx *domain.TickContext, clock *domain.ManualClock, id, name string) *domain.Player {
	p := domain.NewPlayer(id, name, "acc-"+id, "Воин", clock, ctx.Catalog)

	// Все навыки выучены, в руке меч: боеготовность по умолчанию.
	for i := range p.Skills {
		if !p.Skills[i].Template.Category.IsStatus() {
			p.Skills[i].Learned = true
		}
	}
	if sword, ok := ctx.Catalog.Item("Меч"); ok {
		p.Equipment[0] = domain.NewItem(sword, 1)
	}
	domain.SetHealth(p, p.HealthMax())

	ctx.World.Register(p)
	return p
}

func spawnMonster(ctx *domain.TickContext, clock *domain.ManualClock, id string, spec domain.MonsterSpec) *domain.Monster {
	m := domain.NewMonster(id, spec, clock, 0.8)
	for _, name := range spec.Skills {
		if tmpl, ok := ctx.Catalog.Skill(name); ok {
			s := domain.NewSkill(tmpl)
			s.Learned = true
			m.Skills = append(m.Skills, s)
		}
	}
	ctx.World.Register(m)
	return m
}

func zombieSpec() domain.MonsterSpec {
	return domain.MonsterSpec{
		Name: "Зомби", Level: 1,
		HealthMax: 50, ManaMax: 10,
		Damage: 10, Defense: 3,
		Speed:          3,
		ExpReward:      40,
		SkillExpReward: 2,
		FollowDistance: 20, AggroRadius: 8,
		MoveProbability: 0, MoveDistance: 5,
		DeathTime: 30, RespawnTime: 10,
		LootGoldMin: 5, LootGoldMax: 5,
		Skills: []string{"Удар"},
	}
}

func at(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }
