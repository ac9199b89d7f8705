package domain

// CommandEvent - событие, порожденное явной командой клиента. Команды
// складываются в МНОЖЕСТВО (не FIFO): дубликаты в пределах одного тика
// схлопываются. Множество вычитывается предикатами FSM ровно один раз за тик.
type CommandEvent uint8

const (
	CmdRespawn CommandEvent = iota
	CmdCancelAction
	CmdNavigateTo
	CmdTradeDone
	CmdTradeCancel
)

var commandEventToString = map[CommandEvent]string{
	CmdRespawn:      "RESPAWN",
	CmdCancelAction: "CANCEL_ACTION",
	CmdNavigateTo:   "NAVIGATE_TO",
	CmdTradeDone:    "TRADE_DONE",
	CmdTradeCancel:  "TRADE_CANCEL",
}

func (c CommandEvent) String() string {
	if val, ok := commandEventToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// CommandSet - набор командных событий текущего тика.
type CommandSet map[CommandEvent]bool

func NewCommandSet() CommandSet {
	return make(CommandSet)
}

// Raise взводит событие (идемпотентно в пределах тика).
func (s CommandSet) Raise(e CommandEvent) {
	s[e] = true
}

// Take потребляет событие: возвращает true не более одного раза за взвод.
func (s CommandSet) Take(e CommandEvent) bool {
	if s[e] {
		delete(s, e)
		return true
	}
	return false
}

// Clear сбрасывает всё невычитанное (конец тика).
func (s CommandSet) Clear() {
	for k := range s {
		delete(s, k)
	}
}
