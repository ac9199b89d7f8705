package enums

import "strings"

// ChatChannel - канал чата.
type ChatChannel uint8

const (
	ChatChannelUnknown ChatChannel = iota
	ChatChannelLocal
	ChatChannelWhisper
	ChatChannelGlobal
	ChatChannelInfo // служебные сообщения сервера
)

var chatChannelToString = map[ChatChannel]string{
	ChatChannelLocal:   "LOCAL",
	ChatChannelWhisper: "WHISPER",
	ChatChannelGlobal:  "GLOBAL",
	ChatChannelInfo:    "INFO",
}

var chatChannelStringToType = map[string]ChatChannel{
	"LOCAL":   ChatChannelLocal,
	"WHISPER": ChatChannelWhisper,
	"GLOBAL":  ChatChannelGlobal,
	"INFO":    ChatChannelInfo,
}

func (c ChatChannel) String() string {
	if val, ok := chatChannelToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseChatChannel(s string) ChatChannel {
	upper := strings.ToUpper(s)
	if val, ok := chatChannelStringToType[upper]; ok {
		return val
	}
	return ChatChannelUnknown
}
