package domain

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/core/types/enums"
)

// Popup - всплывающая цифра урона. Презентационное событие, не состояние игры.
type Popup struct {
	Kind   enums.PopupKind
	Amount int
	Pos    mgl64.Vec3
}

// Message - информационное сообщение конкретному игроку ("неверная цель" и т.п.).
type Message struct {
	RecipientID string
	Channel     enums.ChatChannel
	Sender      string
	Text        string
}

// World - реестр всех сущностей одной игровой зоны плюс буферы событий тика.
// Мутируется только из цикла симуляции, поэтому без блокировок.
type World struct {
	entities map[string]Behaviour
	order    []Behaviour // стабильный порядок обхода

	// Буферы событий, накопленные за тик. Движок рассылает и очищает их
	// в конце каждого тика.
	Popups   []Popup
	Messages []Message
}

func NewWorld() *World {
	return &World{
		entities: make(map[string]Behaviour),
	}
}

// Register добавляет сущность в реестр.
func (w *World) Register(b Behaviour) {
	id := b.E().ID
	if _, dup := w.entities[id]; dup {
		return
	}
	w.entities[id] = b
	w.order = append(w.order, b)
}

// Unregister убирает сущность из реестра.
func (w *World) Unregister(id string) {
	if _, ok := w.entities[id]; !ok {
		return
	}
	delete(w.entities, id)
	for i, b := range w.order {
		if b.E().ID == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Get возвращает сущность по ID (nil, если исчезла).
func (w *World) Get(id string) Behaviour {
	return w.entities[id]
}

// GetPlayer возвращает игрока по ID.
func (w *World) GetPlayer(id string) *Player {
	if p, ok := w.entities[id].(*Player); ok {
		return p
	}
	return nil
}

// PlayerByName ищет игрока по имени персонажа (шепот, трейд-инвайты).
func (w *World) PlayerByName(name string) *Player {
	for _, b := range w.order {
		if p, ok := b.(*Player); ok && p.Name == name {
			return p
		}
	}
	return nil
}

// All возвращает все сущности в стабильном порядке.
func (w *World) All() []Behaviour {
	return w.order
}

// InRadius собирает сущности, чей ЦЕНТР в радиусе radius от center.
// Запрос линейный по числу сущностей зоны; бюджет тика это позволяет.
func (w *World) InRadius(center mgl64.Vec3, radius float64) []Behaviour {
	var out []Behaviour
	for _, b := range w.order {
		if b.E().Pos.Sub(center).Len() <= radius {
			out = append(out, b)
		}
	}
	return out
}

// EmitPopup добавляет попап урона в буфер тика.
func (w *World) EmitPopup(kind enums.PopupKind, amount int, pos mgl64.Vec3) {
	w.Popups = append(w.Popups, Popup{Kind: kind, Amount: amount, Pos: pos})
}

// EmitInfo шлет игроку служебное сообщение.
func (w *World) EmitInfo(recipientID, text string) {
	w.Messages = append(w.Messages, Message{
		RecipientID: recipientID,
		Channel:     enums.ChatChannelInfo,
		Text:        text,
	})
}

// EmitChat шлет сообщение чата от имени sender.
func (w *World) EmitChat(recipientID string, channel enums.ChatChannel, sender, text string) {
	w.Messages = append(w.Messages, Message{
		RecipientID: recipientID,
		Channel:     channel,
		Sender:      sender,
		Text:        text,
	})
}

// DrainEvents отдает накопленные буферы и очищает их.
func (w *World) DrainEvents() ([]Popup, []Message) {
	popups, messages := w.Popups, w.Messages
	w.Popups = nil
	w.Messages = nil
	return popups, messages
}
