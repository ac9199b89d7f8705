package enums

// PopupKind - вид всплывающей цифры урона. Чисто презентационное событие.
type PopupKind uint8

const (
	PopupNormal PopupKind = iota
	PopupBlock
	PopupCrit
)

var popupKindToString = map[PopupKind]string{
	PopupNormal: "NORMAL",
	PopupBlock:  "BLOCK",
	PopupCrit:   "CRIT",
}

func (p PopupKind) String() string {
	if val, ok := popupKindToString[p]; ok {
		return val
	}
	return "NORMAL"
}
