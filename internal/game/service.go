package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/catalog"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/game/handlers/actions"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/infrastructure/storage"
	"github.com/BanaanaaHammock/uMMORPG-2/internal/network"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/utils"
)

// queuedCommand - команда клиента, привязанная к сущности после
// аутентификации. В тело игрового цикла попадает только она.
type queuedCommand struct {
	EntityID string
	Action   string
	Payload  json.RawMessage
}

// session - залогиненное соединение. До выбора персонажа EntityID пуст.
type session struct {
	Account   string
	Character string
	EntityID  string
}

// leaveRequest - уведомление о разрыве соединения. Токен нужен, чтобы
// отличить живую сессию от вытесненной при переподключении: Leave старой
// сессии не должен снять сущность, которую уже забрала новая.
type leaveRequest struct {
	Token    string
	EntityID string
}

// GameService - ядро сервера: один мир, один цикл симуляции.
// Мир мутируется ТОЛЬКО из горутины цикла; снаружи в него ведут каналы.
type GameService struct {
	Config  Config
	World   *domain.World
	Catalog *catalog.Catalog
	Clock   domain.Clock
	Store   storage.Gateway
	Hub     *network.Broadcaster

	CommandChan chan queuedCommand
	JoinChan    chan *domain.Player
	LeaveChan   chan leaveRequest

	handlers map[string]handlers.HandlerFunc
	rng      *rand.Rand

	mu       sync.Mutex
	sessions map[string]*session // токен -> сессия
	online   map[string]string   // имя персонажа -> ID сущности
	owners   map[string]string   // ID сущности -> токен владеющей сессии

	tick     int64
	lastSave float64
	stop     chan struct{}
	done     chan struct{}
}

func NewService(cfg Config, cat *catalog.Catalog, store storage.Gateway) *GameService {
	s := &GameService{
		Config:      cfg,
		World:       domain.NewWorld(),
		Catalog:     cat,
		Clock:       domain.NewGameClock(),
		Store:       store,
		Hub:         network.NewBroadcaster(),
		CommandChan: make(chan queuedCommand, 1024),
		JoinChan:    make(chan *domain.Player, 16),
		LeaveChan:   make(chan leaveRequest, 16),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions:    make(map[string]*session),
		online:      make(map[string]string),
		owners:      make(map[string]string),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	s.registerHandlers()
	return s
}

// registerHandlers связывает имена действий протокола с хендлерами.
func (s *GameService) registerHandlers() {
	s.handlers = map[string]handlers.HandlerFunc{
		"NAVIGATE": handlers.WithPayload(actions.HandleNavigate),
		"CANCEL":   handlers.WithEmptyPayload(actions.HandleCancel),
		"RESPAWN":  handlers.WithEmptyPayload(actions.HandleRespawn),
		"TARGET":   handlers.WithPayload(actions.HandleTarget),

		"USE_SKILL":     handlers.WithPayload(actions.HandleUseSkill),
		"LEARN_SKILL":   handlers.WithPayload(actions.HandleLearnSkill),
		"UPGRADE_SKILL": handlers.WithPayload(actions.HandleUpgradeSkill),

		"USE_ITEM":     handlers.WithPayload(actions.HandleUseItem),
		"DROP_ITEM":    handlers.WithPayload(actions.HandleDropItem),
		"SPLIT_STACK":  handlers.WithPayload(actions.HandleSplitStack),
		"MERGE_STACKS": handlers.WithPayload(actions.HandleMergeStacks),
		"SWAP_SLOTS":   handlers.WithPayload(actions.HandleSwapSlots),
		"EQUIP":        handlers.WithPayload(actions.HandleEquip),
		"UNEQUIP":      handlers.WithPayload(actions.HandleUnequip),

		"TRADE_REQUEST":         handlers.WithEmptyPayload(actions.HandleTradeRequest),
		"TRADE_ACCEPT_REQUEST":  handlers.WithEmptyPayload(actions.HandleTradeAcceptRequest),
		"TRADE_DECLINE_REQUEST": handlers.WithEmptyPayload(actions.HandleTradeDeclineRequest),
		"TRADE_OFFER_GOLD":      handlers.WithPayload(actions.HandleTradeOfferGold),
		"TRADE_OFFER_ITEM":      handlers.WithPayload(actions.HandleTradeOfferItem),
		"TRADE_CLEAR_SLOT":      handlers.WithPayload(actions.HandleTradeClearSlot),
		"TRADE_LOCK":            handlers.WithEmptyPayload(actions.HandleTradeLock),
		"TRADE_ACCEPT":          handlers.WithEmptyPayload(actions.HandleTradeAccept),
		"TRADE_CANCEL":          handlers.WithEmptyPayload(actions.HandleTradeCancel),

		"QUEST_START":    handlers.WithPayload(actions.HandleQuestStart),
		"QUEST_COMPLETE": handlers.WithPayload(actions.HandleQuestComplete),

		"NPC_BUY":         handlers.WithPayload(actions.HandleNpcBuy),
		"NPC_SELL":        handlers.WithPayload(actions.HandleNpcSell),
		"NPC_TELEPORT":    handlers.WithPayload(actions.HandleNpcTeleport),
		"LOOT":            handlers.WithPayload(actions.HandleLoot),
		"CRAFT":           handlers.WithPayload(actions.HandleCraft),
		"MALL_UNLOCK":     handlers.WithPayload(actions.HandleMallUnlock),
		"SPEND_ATTRIBUTE": handlers.WithPayload(actions.HandleSpendAttribute),

		"CHAT": handlers.WithPayload(actions.HandleChat),
	}
}

// ProcessCommand ставит команду вошедшего в мир игрока в очередь тика.
// Неблокирующе: при переполнении очереди команда теряется.
func (s *GameService) ProcessCommand(entityID string, cmd api.ClientCommand) {
	select {
	case s.CommandChan <- queuedCommand{EntityID: entityID, Action: cmd.Action, Payload: cmd.Payload}:
	default:
		logger.Log.WithFields(logrus.Fields{
			"entity_id": entityID,
			"action":    cmd.Action,
		}).Warn("Command queue full, dropping command")
	}
}

// --- ЛОББИ ---
// Все методы ниже зовутся из горутин соединений. Мира они не касаются:
// только хранилище и таблица сессий под мьютексом.

// Login проверяет аккаунт и выдает токен сессии.
func (s *GameService) Login(account, passwordHash string) (string, error) {
	ok, err := s.Store.ValidateAccount(account, passwordHash)
	if err != nil {
		return "", fmt.Errorf("validate account: %w", err)
	}
	if !ok {
		return "", errors.New("неверный пароль")
	}

	token := utils.GenerateToken()
	s.mu.Lock()
	s.sessions[token] = &session{Account: account}
	s.mu.Unlock()

	logger.Log.WithField("account", account).Info("Account logged in")
	return token, nil
}

func (s *GameService) sessionByToken(token string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, errors.New("сессия не найдена")
	}
	return sess, nil
}

// Characters возвращает персонажей аккаунта сессии.
func (s *GameService) Characters(token string) ([]api.CharacterInfo, error) {
	sess, err := s.sessionByToken(token)
	if err != nil {
		return nil, err
	}

	list, err := s.Store.ListCharacters(sess.Account)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}

	out := make([]api.CharacterInfo, 0, len(list))
	for _, c := range list {
		out = append(out, api.CharacterInfo{Name: c.Name, ClassName: c.ClassName, Level: c.Level})
	}
	return out, nil
}

// CreateCharacter заводит нового персонажа первого уровня.
func (s *GameService) CreateCharacter(token, name, class string) error {
	sess, err := s.sessionByToken(token)
	if err != nil {
		return err
	}

	if _, err := s.Store.LoadCharacter(name); err == nil {
		return errors.New("имя уже занято")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	// Свежий игрок строится обычным конструктором: производные статы и
	// стартовые ресурсы считает доменная модель, не хранилище.
	p := domain.NewPlayer(utils.GenerateID(), name, sess.Account, class, s.Clock, s.Catalog)
	p.Pos = ZoneSpawnPoint
	p.Anchor = ZoneSpawnPoint

	if err := s.Store.SaveCharacter(recordFromPlayer(p, s.Clock.Now())); err != nil {
		return fmt.Errorf("save new character: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"account":   sess.Account,
		"character": name,
		"class":     class,
	}).Info("Character created")
	return nil
}

// DeleteCharacter мягко удаляет персонажа аккаунта сессии.
func (s *GameService) DeleteCharacter(token, name string) error {
	sess, err := s.sessionByToken(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	_, isOnline := s.online[name]
	s.mu.Unlock()
	if isOnline {
		return errors.New("персонаж сейчас в игре")
	}

	return s.Store.SoftDeleteCharacter(sess.Account, name)
}

// EnterWorld загружает персонажа и отправляет его в мир. Возвращает ID
// сущности, на который подписывается соединение.
func (s *GameService) EnterWorld(token, name string) (string, error) {
	sess, err := s.sessionByToken(token)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if id, ok := s.online[name]; ok {
		// Переподключение: новая сессия забирает уже живую сущность,
		// Hub.Register закроет канал старой.
		sess.Character = name
		sess.EntityID = id
		s.owners[id] = token
		s.mu.Unlock()
		return id, nil
	}
	s.mu.Unlock()

	rec, err := s.Store.LoadCharacter(name)
	if err != nil {
		return "", fmt.Errorf("load character: %w", err)
	}
	if rec.Account != sess.Account {
		return "", errors.New("чужой персонаж")
	}

	p := s.playerFromRecord(rec)

	s.mu.Lock()
	sess.Character = name
	sess.EntityID = p.ID
	// Резервируем имя до обработки JoinChan, чтобы двойной вход не
	// породил двух сущностей.
	s.online[name] = p.ID
	s.owners[p.ID] = token
	s.mu.Unlock()

	s.JoinChan <- p
	return p.ID, nil
}

// Leave сообщает циклу, что соединение персонажа закрылось. Сущность
// покинет мир, только если токен все еще владеет ею.
func (s *GameService) Leave(token, entityID string) {
	select {
	case s.LeaveChan <- leaveRequest{Token: token, EntityID: entityID}:
	default:
		logger.Log.WithField("entity_id", entityID).Error("Leave queue full")
	}
}

// SaveRoster сохраняет всех игроков мира одной атомарной записью.
// Зовется из цикла и при остановке сервера.
func (s *GameService) saveRoster(now float64) {
	var recs []*storage.CharacterRecord
	for _, b := range s.World.All() {
		if p, ok := b.(*domain.Player); ok {
			recs = append(recs, recordFromPlayer(p, now))
		}
	}
	if len(recs) == 0 {
		return
	}

	if err := s.Store.SaveMany(recs); err != nil {
		logger.Log.WithError(err).Error("Roster save failed")
		return
	}
	logger.Log.WithField("count", len(recs)).Debug("Roster saved")
}
