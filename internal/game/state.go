package game

import (
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

// BuildStateFor собирает снапшот мира глазами одного игрока.
// Закрытые данные (инвентарь, золото, журнал квестов) попадают только в
// собственную сущность наблюдателя: сервер не раздает чужие карманы.
func (s *GameService) BuildStateFor(observer *domain.Player, now float64, popups []domain.Popup, messages []domain.Message) api.ServerResponse {
	resp := api.ServerResponse{
		Type:       api.ResponseUpdate,
		Tick:       s.tick,
		Time:       now,
		MyEntityID: observer.ID,
	}

	for _, b := range s.World.All() {
		e := b.E()
		if e.Hidden {
			continue
		}
		resp.Entities = append(resp.Entities, s.entityView(b, observer, now))
	}

	for _, pop := range popups {
		resp.Popups = append(resp.Popups, api.PopupView{
			Kind:   pop.Kind.String(),
			Amount: pop.Amount,
			Pos:    [3]float64{pop.Pos[0], pop.Pos[1], pop.Pos[2]},
		})
	}

	for _, m := range messages {
		if m.RecipientID != observer.ID {
			continue
		}
		resp.Messages = append(resp.Messages, api.ChatMessage{
			Channel: m.Channel.String(),
			Sender:  m.Sender,
			Text:    m.Text,
		})
	}

	return resp
}

func (s *GameService) entityView(b domain.Behaviour, observer *domain.Player, now float64) api.EntityView {
	e := b.E()

	view := api.EntityView{
		ID:        e.ID,
		Kind:      e.Kind.String(),
		Name:      e.Name,
		State:     e.State.String(),
		Level:     e.Level,
		Pos:       [3]float64{e.Pos[0], e.Pos[1], e.Pos[2]},
		Radius:    e.Radius,
		Health:    e.Health,
		HealthMax: b.HealthMax(),
		Mana:      e.Mana,
		ManaMax:   b.ManaMax(),
	}
	if e.Target != nil {
		view.TargetID = e.Target.E().ID
	}

	switch v := b.(type) {
	case *domain.Player:
		view.Offender = v.IsOffender()
		view.Murderer = v.IsMurderer()
	case *domain.Monster:
		view.HasLoot = e.Health == 0 && v.HasLoot()
	}

	if e.ID == observer.ID {
		s.fillOwnerView(&view, observer, now)
	}
	return view
}

// fillOwnerView дополняет вид сущности закрытой частью владельца.
func (s *GameService) fillOwnerView(view *api.EntityView, p *domain.Player, now float64) {
	view.Stats = &api.PlayerStats{
		Experience:          p.Experience,
		ExperienceMax:       domain.ExperienceMax(p.Level),
		SkillExperience:     p.SkillExperience,
		Gold:                p.Gold,
		Coins:               p.Coins,
		Damage:              p.Damage(),
		Defense:             p.Defense(),
		BlockChance:         p.BlockChance(),
		CritChance:          p.CritChance(),
		Strength:            p.Strength,
		Intelligence:        p.Intelligence,
		AttributesSpendable: p.AttributesSpendable(),
	}

	view.Inventory = itemSlots(p.Inventory)
	view.Equipment = itemSlots(p.Equipment)

	view.Skills = make([]api.SkillView, 0, len(p.Skills))
	for i := range p.Skills {
		sk := &p.Skills[i]
		view.Skills = append(view.Skills, api.SkillView{
			Name:              sk.Name,
			Learned:           sk.Learned,
			Level:             sk.Level,
			CastTimeRemaining: sk.CastTimeRemaining(now),
			CooldownRemaining: sk.CooldownRemaining(now),
			BuffTimeRemaining: sk.BuffTimeRemaining(now),
		})
	}

	view.Quests = make([]api.QuestView, 0, len(p.Quests))
	for i := range p.Quests {
		q := &p.Quests[i]
		view.Quests = append(view.Quests, api.QuestView{
			Name:      q.Name,
			Killed:    q.Killed,
			Completed: q.Completed,
		})
	}

	if partner := p.InTradeWith(); partner != nil {
		view.Trade = tradeView(p, partner)
	}
}

func tradeView(p, partner *domain.Player) *api.TradeView {
	tv := &api.TradeView{
		PartnerName: partner.Name,

		MyGold:     p.Trade.Gold,
		MySlots:    append([]int(nil), p.Trade.ItemSlots[:]...),
		MyLocked:   p.Trade.Locked,
		MyAccepted: p.Trade.Accepted,

		PartnerGold:     partner.Trade.Gold,
		PartnerLocked:   partner.Trade.Locked,
		PartnerAccepted: partner.Trade.Accepted,
	}

	// Чужое предложение показываем предметами, а не индексами слотов:
	// раскладка чужого инвентаря клиенту знать не положено.
	for _, slot := range partner.Trade.ItemSlots {
		var item api.ItemSlot
		if slot >= 0 && slot < len(partner.Inventory) && partner.Inventory[slot].Valid {
			it := &partner.Inventory[slot]
			item = api.ItemSlot{Valid: true, Name: it.Name, Amount: it.Amount}
		}
		tv.PartnerItems = append(tv.PartnerItems, item)
	}
	return tv
}

func itemSlots(slots []domain.Item) []api.ItemSlot {
	out := make([]api.ItemSlot, len(slots))
	for i := range slots {
		if slots[i].Valid {
			out[i] = api.ItemSlot{Valid: true, Name: slots[i].Name, Amount: slots[i].Amount}
		}
	}
	return out
}
