package enums

import "strings"

// EntityState - состояние конечного автомата сущности.
// Менять состояние разрешено ТОЛЬКО через возврат из UpdateState.
type EntityState uint8

const (
	StateUnknown EntityState = iota
	StateIdle
	StateMoving
	StateCasting
	StateDead
	StateTrading // только для игроков
)

var stateToString = map[EntityState]string{
	StateIdle:    "IDLE",
	StateMoving:  "MOVING",
	StateCasting: "CASTING",
	StateDead:    "DEAD",
	StateTrading: "TRADING",
}

var stateStringToType = map[string]EntityState{
	"IDLE":    StateIdle,
	"MOVING":  StateMoving,
	"CASTING": StateCasting,
	"DEAD":    StateDead,
	"TRADING": StateTrading,
}

func (s EntityState) String() string {
	if val, ok := stateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseEntityState(s string) EntityState {
	upper := strings.ToUpper(s)
	if val, ok := stateStringToType[upper]; ok {
		return val
	}
	return StateUnknown
}
