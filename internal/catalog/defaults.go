package catalog

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// Default собирает каталог из встроенного набора определений.
// Это контент "из коробки"; поверх него можно наложить JSON-файл (LoadFile).
func Default() (*Catalog, error) {
	return New(defaultItems(), defaultSkills(), defaultQuests(), defaultRecipes())
}

func defaultItems() []ItemTemplate {
	return []ItemTemplate{
		{
			Name: "Бронзовый меч", Category: enums.ItemCategoryWeaponSword, MaxStack: 1,
			BuyPrice: 100, SellPrice: 25, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDamage: 5,
		},
		{
			Name: "Стальной меч", Category: enums.ItemCategoryWeaponSword, MaxStack: 1,
			BuyPrice: 500, SellPrice: 125, MinLevel: 5,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDamage: 12, EquipCritChance: 0.02,
		},
		{
			Name: "Охотничий лук", Category: enums.ItemCategoryWeaponBow, MaxStack: 1,
			BuyPrice: 300, SellPrice: 75, MinLevel: 3,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDamage: 8,
		},
		{
			Name: "Деревянный щит", Category: enums.ItemCategoryShield, MaxStack: 1,
			BuyPrice: 150, SellPrice: 40, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDefense: 3, EquipBlockChance: 0.05,
		},
		{
			Name: "Кожаный шлем", Category: enums.ItemCategoryArmorHead, MaxStack: 1,
			BuyPrice: 80, SellPrice: 20, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDefense: 2,
		},
		{
			Name: "Кожаный доспех", Category: enums.ItemCategoryArmorChest, MaxStack: 1,
			BuyPrice: 200, SellPrice: 50, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDefense: 4, EquipHealthMax: 10,
		},
		{
			Name: "Кожаные поножи", Category: enums.ItemCategoryArmorLegs, MaxStack: 1,
			BuyPrice: 120, SellPrice: 30, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
			EquipDefense: 3,
		},
		{
			Name: "Малое зелье здоровья", Category: enums.ItemCategoryPotion, MaxStack: 50,
			BuyPrice: 15, SellPrice: 3, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
			UsageHealth: 50,
		},
		{
			Name: "Малое зелье маны", Category: enums.ItemCategoryPotion, MaxStack: 50,
			BuyPrice: 15, SellPrice: 3, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
			UsageMana: 50,
		},
		{
			// Премиальный товар: покупается за коины, не передается.
			Name: "Зелье опыта", Category: enums.ItemCategoryPotion, MaxStack: 10,
			BuyPrice: 0, SellPrice: 0, ItemMallPrice: 20, MinLevel: 1,
			Sellable: false, Tradable: false, Destroyable: true,
			UsageExperience: 1000,
		},
		{
			Name: "Шкура зомби", Category: enums.ItemCategoryMaterial, MaxStack: 100,
			BuyPrice: 10, SellPrice: 2, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
		},
		{
			Name: "Клык паука", Category: enums.ItemCategoryMaterial, MaxStack: 100,
			BuyPrice: 12, SellPrice: 3, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
		},
		{
			Name: "Золотая руда", Category: enums.ItemCategoryMaterial, MaxStack: 100,
			BuyPrice: 50, SellPrice: 12, MinLevel: 1,
			Sellable: true, Tradable: true, Destroyable: true,
		},
	}
}

func defaultSkills() []SkillTemplate {
	return []SkillTemplate{
		{
			Name: "Обычная атака", Category: enums.SkillCategoryAttack,
			FollowupDefaultAttack: true,
			Levels: []SkillLevelData{
				{Damage: 10, CastTime: 0.5, Cooldown: 1.0, CastRange: 2.0},
			},
		},
		{
			Name: "Мощный удар", Category: enums.SkillCategoryAttack,
			FollowupDefaultAttack: true,
			Levels: []SkillLevelData{
				{Damage: 20, CastTime: 1.0, Cooldown: 3.0, CastRange: 2.0, ManaCosts: 10, RequiredLevel: 2, RequiredSkillExperience: 10},
				{Damage: 30, CastTime: 1.0, Cooldown: 3.0, CastRange: 2.0, ManaCosts: 14, RequiredLevel: 4, RequiredSkillExperience: 40},
				{Damage: 45, CastTime: 1.0, Cooldown: 3.0, CastRange: 2.0, ManaCosts: 20, RequiredLevel: 8, RequiredSkillExperience: 120},
			},
		},
		{
			Name: "Огненный шар", Category: enums.SkillCategoryAttack,
			Projectile: true, ProjectileSpeed: 15,
			Levels: []SkillLevelData{
				{Damage: 25, CastTime: 1.5, Cooldown: 2.0, CastRange: 20.0, ManaCosts: 20, RequiredLevel: 3, RequiredSkillExperience: 30},
				{Damage: 40, CastTime: 1.5, Cooldown: 2.0, CastRange: 22.0, AoERadius: 2.0, ManaCosts: 30, RequiredLevel: 6, RequiredSkillExperience: 90},
			},
		},
		{
			Name: "Исцеление", Category: enums.SkillCategoryHeal,
			Levels: []SkillLevelData{
				{HealsHealth: 40, CastTime: 1.0, Cooldown: 4.0, CastRange: 10.0, ManaCosts: 25, RequiredLevel: 2, RequiredSkillExperience: 20},
				{HealsHealth: 80, HealsMana: 20, CastTime: 1.0, Cooldown: 4.0, CastRange: 10.0, ManaCosts: 40, RequiredLevel: 5, RequiredSkillExperience: 80},
			},
		},
		{
			Name: "Боевой клич", Category: enums.SkillCategoryBuff,
			Levels: []SkillLevelData{
				{BuffTime: 30, BuffsDamage: 5, BuffsHealthMax: 20, CastTime: 0.5, Cooldown: 60.0, ManaCosts: 30, RequiredLevel: 4, RequiredSkillExperience: 60},
			},
		},
		// Статусы PvP-системы. Изучить/кастовать их нельзя, их навешивает движок.
		{
			Name: "Нарушитель", Category: enums.SkillCategoryStatusOffender,
			Levels: []SkillLevelData{
				{BuffTime: 120},
			},
		},
		{
			Name: "Убийца", Category: enums.SkillCategoryStatusMurderer,
			Levels: []SkillLevelData{
				{BuffTime: 600},
			},
		},
	}
}

func defaultQuests() []QuestTemplate {
	return []QuestTemplate{
		{
			Name: "Зачистка кладбища", RequiredLevel: 1,
			RewardGold: 100, RewardExperience: 200,
			KillTarget: "Зомби", KillAmount: 5,
		},
		{
			Name: "Паучьи клыки", RequiredLevel: 2, Predecessor: "Зачистка кладбища",
			RewardGold: 200, RewardExperience: 400, RewardItem: "Малое зелье здоровья",
			KillTarget: "Пещерный паук", KillAmount: 3,
			GatherItem: "Клык паука", GatherAmount: 3,
		},
		{
			Name: "Золотая лихорадка", RequiredLevel: 3,
			RewardGold: 500, RewardExperience: 600,
			GatherItem: "Золотая руда", GatherAmount: 5,
		},
	}
}

func defaultRecipes() []RecipeTemplate {
	return []RecipeTemplate{
		{
			Name:        "Стальной меч",
			Ingredients: []string{"Бронзовый меч", "Золотая руда", "Золотая руда"},
			Result:      "Стальной меч",
		},
		{
			Name:        "Кожаный доспех",
			Ingredients: []string{"Шкура зомби", "Шкура зомби", "Шкура зомби"},
			Result:      "Кожаный доспех",
		},
	}
}
