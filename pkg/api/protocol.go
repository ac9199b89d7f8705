package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы сообщений сервера.
const (
	ResponseUpdate     = "UPDATE"     // снапшот мира
	ResponseCharacters = "CHARACTERS" // лобби: список персонажей аккаунта
	ResponseError      = "ERROR"      // отказ (после него сервер может закрыть сокет)
)

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Для Type=UPDATE он представляет собой полный "снимок" мира, видимый
// конкретным клиентом. Сервер авторитарен: клиент только рендерит снапшот
// и шлет команды, ни одно поле обратно не принимается на веру.
type ServerResponse struct {
	Type string `json:"type"`

	// Tick порядковый номер тика симуляции.
	Tick int64 `json:"tick,omitempty"`

	// Time серверное время в секундах. Все дедлайны в снапшоте даны
	// ОСТАТКАМИ (секунд до события), чтобы клиент не зависел от сверки часов.
	Time float64 `json:"time,omitempty"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Entities срез всех видимых сущностей зоны.
	Entities []EntityView `json:"entities,omitempty"`

	// Popups всплывающие цифры урона, возникшие за тик.
	Popups []PopupView `json:"popups,omitempty"`

	// Messages сообщения чата и служебные уведомления для этого клиента.
	Messages []ChatMessage `json:"messages,omitempty"`

	// Characters список персонажей аккаунта (только Type=CHARACTERS).
	Characters []CharacterInfo `json:"characters,omitempty"`

	// Error причина отказа (только Type=ERROR).
	Error string `json:"error,omitempty"`
}

// CharacterInfo - строка лобби выбора персонажа.
type CharacterInfo struct {
	Name      string `json:"name"`
	ClassName string `json:"className"`
	Level     int    `json:"level"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"` // PLAYER, MONSTER, NPC, PROJECTILE
	Name  string `json:"name"`
	State string `json:"state"`

	Level  int        `json:"level"`
	Pos    [3]float64 `json:"pos"`
	Radius float64    `json:"radius"`

	Health    int `json:"health"`
	HealthMax int `json:"healthMax"`
	Mana      int `json:"mana,omitempty"`
	ManaMax   int `json:"manaMax,omitempty"`

	TargetID string `json:"targetId,omitempty"`

	// PvP-статусы (только игроки).
	Offender bool `json:"offender,omitempty"`
	Murderer bool `json:"murderer,omitempty"`

	// HasLoot - на трупе монстра что-то лежит.
	HasLoot bool `json:"hasLoot,omitempty"`

	// Закрытая часть: заполняется только для сущности самого клиента.
	Stats     *PlayerStats `json:"stats,omitempty"`
	Inventory []ItemSlot   `json:"inventory,omitempty"`
	Equipment []ItemSlot   `json:"equipment,omitempty"`
	Skills    []SkillView  `json:"skills,omitempty"`
	Quests    []QuestView  `json:"quests,omitempty"`
	Trade     *TradeView   `json:"trade,omitempty"`
}

// PlayerStats - закрытые характеристики собственного персонажа.
type PlayerStats struct {
	Experience      int64 `json:"experience"`
	ExperienceMax   int64 `json:"experienceMax"`
	SkillExperience int64 `json:"skillExperience"`
	Gold            int64 `json:"gold"`
	Coins           int64 `json:"coins"`

	Damage      int     `json:"damage"`
	Defense     int     `json:"defense"`
	BlockChance float64 `json:"blockChance"`
	CritChance  float64 `json:"critChance"`

	Strength            int `json:"strength"`
	Intelligence        int `json:"intelligence"`
	AttributesSpendable int `json:"attributesSpendable"`
}

// ItemSlot - слот инвентаря/экипировки. Пустой слот отдается с Valid=false,
// чтобы индексы на клиенте совпадали с серверными.
type ItemSlot struct {
	Valid  bool   `json:"valid"`
	Name   string `json:"name,omitempty"`
	Amount int    `json:"amount,omitempty"`
}

// SkillView - навык собственного персонажа. Таймеры даны остатками.
type SkillView struct {
	Name    string `json:"name"`
	Learned bool   `json:"learned"`
	Level   int    `json:"level"`

	CastTimeRemaining float64 `json:"castTimeRemaining,omitempty"`
	CooldownRemaining float64 `json:"cooldownRemaining,omitempty"`
	BuffTimeRemaining float64 `json:"buffTimeRemaining,omitempty"`
}

// QuestView - запись журнала квестов.
type QuestView struct {
	Name      string `json:"name"`
	Killed    int    `json:"killed"`
	Completed bool   `json:"completed"`
}

// TradeView - состояние активного трейда глазами одной стороны.
type TradeView struct {
	PartnerName string `json:"partnerName"`

	MyGold     int64 `json:"myGold"`
	MySlots    []int `json:"mySlots"` // индексы слотов инвентаря, -1 = пусто
	MyLocked   bool  `json:"myLocked"`
	MyAccepted bool  `json:"myAccepted"`

	PartnerGold     int64      `json:"partnerGold"`
	PartnerItems    []ItemSlot `json:"partnerItems"`
	PartnerLocked   bool       `json:"partnerLocked"`
	PartnerAccepted bool       `json:"partnerAccepted"`
}

// PopupView - всплывающая цифра урона.
type PopupView struct {
	Kind   string     `json:"kind"` // NORMAL, BLOCK, CRIT
	Amount int        `json:"amount"`
	Pos    [3]float64 `json:"pos"`
}

// ChatMessage - одно сообщение чата или служебное уведомление.
type ChatMessage struct {
	Channel string `json:"channel"` // LOCAL, WHISPER, GLOBAL, INFO
	Sender  string `json:"sender,omitempty"`
	Text    string `json:"text"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token токен сессии, выданный при логине. В самом LOGIN пуст.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Действия рукопожатия. Обрабатываются до входа в мир.
const (
	ActionLogin           = "LOGIN"
	ActionCharacterSelect = "CHARACTER_SELECT"
	ActionCharacterCreate = "CHARACTER_CREATE"
	ActionCharacterDelete = "CHARACTER_DELETE"
)

// --- Payloads ---

// LoginPayload - первое сообщение соединения.
type LoginPayload struct {
	Account string `json:"account"`
	// PasswordHash - хеш пароля, посчитанный клиентом. Сырой пароль по
	// проводу не ходит.
	PasswordHash string `json:"passwordHash"`
}

// CharacterPayload - выбор/создание/удаление персонажа в лобби.
type CharacterPayload struct {
	Name      string `json:"name"`
	ClassName string `json:"className,omitempty"` // только для CHARACTER_CREATE
}

// NavigatePayload - движение к точке мира.
type NavigatePayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// Stop - дистанция остановки до точки (0 = вплотную).
	Stop float64 `json:"stop,omitempty"`
}

// TargetPayload - смена цели.
type TargetPayload struct {
	TargetID string `json:"targetId"`
}

// SkillPayload - запрос каста/изучения/прокачки навыка по индексу.
type SkillPayload struct {
	Index int `json:"index"`
}

// SlotPayload - действие над одним слотом инвентаря или экипировки.
type SlotPayload struct {
	Slot int `json:"slot"`
}

// TwoSlotsPayload - действие над парой слотов (split, merge, swap).
type TwoSlotsPayload struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// EquipPayload - надевание/снятие экипировки.
type EquipPayload struct {
	InventorySlot int `json:"inventorySlot"`
	EquipSlot     int `json:"equipSlot"`
}

// GoldPayload - золото в предложение трейда.
type GoldPayload struct {
	Gold int64 `json:"gold"`
}

// TradeItemPayload - предмет в предложение трейда.
type TradeItemPayload struct {
	InventorySlot int `json:"inventorySlot"`
	OfferSlot     int `json:"offerSlot"`
}

// QuestPayload - взятие/сдача квеста у NPC.
type QuestPayload struct {
	NpcID string `json:"npcId"`
	Quest string `json:"quest"`
}

// NpcPayload - взаимодействие с NPC без параметров (телепорт).
type NpcPayload struct {
	NpcID string `json:"npcId"`
}

// VendorBuyPayload - покупка у торговца.
type VendorBuyPayload struct {
	NpcID  string `json:"npcId"`
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

// VendorSellPayload - продажа торговцу из слота инвентаря.
type VendorSellPayload struct {
	NpcID  string `json:"npcId"`
	Slot   int    `json:"slot"`
	Amount int    `json:"amount"`
}

// LootPayload - сбор золота или предмета с трупа.
type LootPayload struct {
	MonsterID string `json:"monsterId"`
	// Index - индекс предмета в луте. -1 = забрать золото.
	Index int `json:"index"`
}

// CraftPayload - слоты инвентаря с ингредиентами (порядок не важен).
type CraftPayload struct {
	Slots []int `json:"slots"`
}

// MallPayload - покупка за коины.
type MallPayload struct {
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

// AttributePayload - трата очка атрибута.
type AttributePayload struct {
	Attribute string `json:"attribute"` // STRENGTH или INTELLIGENCE
}

// ChatPayload - сообщение чата.
type ChatPayload struct {
	Channel string `json:"channel"` // LOCAL, WHISPER, GLOBAL
	To      string `json:"to,omitempty"`
	Text    string `json:"text"`
}
