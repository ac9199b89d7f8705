package enums

import "strings"

// EntityKind - тип сущности в мире.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindMonster
	EntityKindNpc
	EntityKindProjectile
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer:     "PLAYER",
	EntityKindMonster:    "MONSTER",
	EntityKindNpc:        "NPC",
	EntityKindProjectile: "PROJECTILE",
}

var entityKindStringToType = map[string]EntityKind{
	"PLAYER":     EntityKindPlayer,
	"MONSTER":    EntityKindMonster,
	"NPC":        EntityKindNpc,
	"PROJECTILE": EntityKindProjectile,
}

func (k EntityKind) String() string {
	if val, ok := entityKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToType[upper]; ok {
		return val
	}
	return EntityKindUnknown
}
