package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/game"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
	"github.com/BanaanaaHammock/uMMORPG-2/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и GameService. Соединение проходит
// два этапа: лобби (логин, выбор персонажа) и игру (команды сущности).
type Client struct {
	Game *game.GameService
	Conn *websocket.Conn
	Send chan api.ServerResponse

	token    string
	entityID string
}

func NewClient(g *game.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: g,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
	}
}

// readPump ведет соединение через лобби и игровой цикл чтения команд.
func (c *Client) readPump() {
	var updates chan api.ServerResponse

	defer func() {
		if c.entityID != "" {
			c.Game.Hub.Unregister(c.entityID, updates)
			c.Game.Leave(c.token, c.entityID)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. ЛОББИ: логин и выбор персонажа.
	if !c.lobby() {
		return
	}

	// 2. ПОДПИСКА НА ОБНОВЛЕНИЯ МИРА
	updates = c.Game.Hub.Register(c.entityID)
	go func() {
		for msg := range updates {
			select {
			case c.Send <- msg:
			default:
				// Клиент не вычитывает. Снапшот следующего тика все равно
				// полный, потерянный не жалко.
			}
		}
		close(c.Send)
	}()

	// 3. ЦИКЛ ЧТЕНИЯ ИГРОВЫХ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Warn("Websocket read failed")
			}
			return
		}
		c.Game.ProcessCommand(c.entityID, cmd)
	}
}

// lobby обрабатывает команды до входа в мир. Возвращает true, когда
// персонаж выбран и entityID установлен.
func (c *Client) lobby() bool {
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			return false
		}

		switch cmd.Action {
		case api.ActionLogin:
			var p api.LoginPayload
			if !c.decode(cmd.Payload, &p) {
				continue
			}
			token, err := c.Game.Login(p.Account, p.PasswordHash)
			if err != nil {
				c.sendError("Вход не выполнен: " + err.Error())
				continue
			}
			c.token = token
			c.sendCharacterList()

		case api.ActionCharacterCreate:
			var p api.CharacterPayload
			if !c.decode(cmd.Payload, &p) {
				continue
			}
			if err := c.Game.CreateCharacter(c.token, p.Name, p.ClassName); err != nil {
				c.sendError("Персонаж не создан: " + err.Error())
				continue
			}
			c.sendCharacterList()

		case api.ActionCharacterDelete:
			var p api.CharacterPayload
			if !c.decode(cmd.Payload, &p) {
				continue
			}
			if err := c.Game.DeleteCharacter(c.token, p.Name); err != nil {
				c.sendError("Персонаж не удален: " + err.Error())
				continue
			}
			c.sendCharacterList()

		case api.ActionCharacterSelect:
			var p api.CharacterPayload
			if !c.decode(cmd.Payload, &p) {
				continue
			}
			id, err := c.Game.EnterWorld(c.token, p.Name)
			if err != nil {
				c.sendError("Вход в мир не выполнен: " + err.Error())
				continue
			}
			c.entityID = id
			logger.Log.WithFields(logrus.Fields{
				"entity_id": id,
				"character": p.Name,
			}).Info("Client entered world")
			return true

		default:
			c.sendError("Сначала войдите в аккаунт и выберите персонажа.")
		}
	}
}

func (c *Client) decode(raw json.RawMessage, p api.Validator) bool {
	if err := json.Unmarshal(raw, p); err != nil {
		c.sendError("Некорректная команда.")
		return false
	}
	if err := p.Validate(); err != nil {
		c.sendError("Некорректная команда: " + err.Error())
		return false
	}
	return true
}

func (c *Client) sendCharacterList() {
	chars, err := c.Game.Characters(c.token)
	if err != nil {
		c.sendError("Список персонажей недоступен: " + err.Error())
		return
	}
	c.push(api.ServerResponse{Type: api.ResponseCharacters, Characters: chars})
}

func (c *Client) sendError(msg string) {
	c.push(api.ServerResponse{Type: api.ResponseError, Error: msg})
}

func (c *Client) push(resp api.ServerResponse) {
	select {
	case c.Send <- resp:
	default:
		logger.Log.Warn("Client send buffer full, dropping response")
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
