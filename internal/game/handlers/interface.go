package handlers

import (
	"encoding/json"

	"github.com/BanaanaaHammock/uMMORPG-2/internal/domain"
)

// Context передает хендлеру состояние мира на текущий тик.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Tick  *domain.TickContext
	Actor *domain.Player // тот, от чьего имени пришла команда
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в рассылку напрямую, он возвращает данные; движок сам
// доставит Msg актеру информационным сообщением.
type Result struct {
	Msg     string // текст для игрока, "" = тихий успех
	MsgType string // INFO или ERROR
}

// HandlerFunc - это контракт для любой команды (NAVIGATE, USE_SKILL, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа.
func EmptyResult() Result {
	return Result{}
}

// Info - успешный ответ с сообщением игроку.
func Info(msg string) Result {
	return Result{Msg: msg, MsgType: "INFO"}
}

// Reject - отказ по игровым правилам. Это НЕ ошибка сервера: команда просто
// не прошла валидацию мира (чужой предмет, мертвая цель, нет золота).
func Reject(msg string) Result {
	return Result{Msg: msg, MsgType: "ERROR"}
}
