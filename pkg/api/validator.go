package api

import (
	"errors"
	"math"
)

// Validator - интерфейс, который могут реализовать DTO.
// Проверяется обвязкой хендлеров до вызова игровой логики.
type Validator interface {
	Validate() error
}

const maxChatLength = 512

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p LoginPayload) Validate() error {
	if p.Account == "" {
		return errors.New("account is required")
	}
	if p.PasswordHash == "" {
		return errors.New("passwordHash is required")
	}
	return nil
}

func (p CharacterPayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (p NavigatePayload) Validate() error {
	if !finite(p.X, p.Y, p.Z, p.Stop) {
		return errors.New("coordinates must be finite")
	}
	if p.Stop < 0 {
		return errors.New("stop distance cannot be negative")
	}
	return nil
}

func (p TargetPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

func (p SkillPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("skill index cannot be negative")
	}
	return nil
}

func (p SlotPayload) Validate() error {
	if p.Slot < 0 {
		return errors.New("slot cannot be negative")
	}
	return nil
}

func (p TwoSlotsPayload) Validate() error {
	if p.From < 0 || p.To < 0 {
		return errors.New("slot cannot be negative")
	}
	if p.From == p.To {
		return errors.New("slots must differ")
	}
	return nil
}

func (p EquipPayload) Validate() error {
	if p.InventorySlot < 0 || p.EquipSlot < 0 {
		return errors.New("slot cannot be negative")
	}
	return nil
}

func (p GoldPayload) Validate() error {
	// Отрицательное золото зажимается игровой логикой, а не отклоняется.
	return nil
}

func (p TradeItemPayload) Validate() error {
	if p.InventorySlot < 0 || p.OfferSlot < 0 {
		return errors.New("slot cannot be negative")
	}
	return nil
}

func (p QuestPayload) Validate() error {
	if p.NpcID == "" {
		return errors.New("npcId is required")
	}
	if p.Quest == "" {
		return errors.New("quest is required")
	}
	return nil
}

func (p NpcPayload) Validate() error {
	if p.NpcID == "" {
		return errors.New("npcId is required")
	}
	return nil
}

func (p VendorBuyPayload) Validate() error {
	if p.NpcID == "" {
		return errors.New("npcId is required")
	}
	if p.Item == "" {
		return errors.New("item is required")
	}
	if p.Amount < 1 {
		return errors.New("amount must be positive")
	}
	return nil
}

func (p VendorSellPayload) Validate() error {
	if p.NpcID == "" {
		return errors.New("npcId is required")
	}
	if p.Slot < 0 {
		return errors.New("slot cannot be negative")
	}
	if p.Amount < 1 {
		return errors.New("amount must be positive")
	}
	return nil
}

func (p LootPayload) Validate() error {
	if p.MonsterID == "" {
		return errors.New("monsterId is required")
	}
	if p.Index < -1 {
		return errors.New("index out of range")
	}
	return nil
}

func (p CraftPayload) Validate() error {
	if len(p.Slots) == 0 {
		return errors.New("slots are required")
	}
	for _, s := range p.Slots {
		if s < 0 {
			return errors.New("slot cannot be negative")
		}
	}
	return nil
}

func (p MallPayload) Validate() error {
	if p.Item == "" {
		return errors.New("item is required")
	}
	if p.Amount < 1 {
		return errors.New("amount must be positive")
	}
	return nil
}

func (p AttributePayload) Validate() error {
	if p.Attribute != "STRENGTH" && p.Attribute != "INTELLIGENCE" {
		return errors.New("unknown attribute")
	}
	return nil
}

func (p ChatPayload) Validate() error {
	if p.Text == "" {
		return errors.New("text is required")
	}
	if len(p.Text) > maxChatLength {
		return errors.New("text too long")
	}
	switch p.Channel {
	case "LOCAL", "GLOBAL":
		return nil
	case "WHISPER":
		if p.To == "" {
			return errors.New("whisper needs a recipient")
		}
		return nil
	default:
		return errors.New("unknown channel")
	}
}
