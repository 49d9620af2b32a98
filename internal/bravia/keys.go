package bravia

import "sort"

// KeyCode is an opaque IRCC remote control code
type KeyCode string

// IRCC remote control codes
const (
	// Power
	KeyPower    KeyCode = "AAAAAQAAAAEAAAAVAw=="
	KeyPowerOn  KeyCode = "AAAAAQAAAAEAAAAuAw=="
	KeyPowerOff KeyCode = "AAAAAQAAAAEAAAAvAw=="

	// Volume
	KeyVolumeUp   KeyCode = "AAAAAQAAAAEAAAASAw=="
	KeyVolumeDown KeyCode = "AAAAAQAAAAEAAAATAw=="
	KeyMute       KeyCode = "AAAAAQAAAAEAAAAUAw=="

	// Channel
	KeyChannelUp   KeyCode = "AAAAAQAAAAEAAAAQAw=="
	KeyChannelDown KeyCode = "AAAAAQAAAAEAAAARAw=="

	// Navigation
	KeyUp      KeyCode = "AAAAAQAAAAEAAAB0Aw=="
	KeyDown    KeyCode = "AAAAAQAAAAEAAAB1Aw=="
	KeyLeft    KeyCode = "AAAAAQAAAAEAAAA0Aw=="
	KeyRight   KeyCode = "AAAAAQAAAAEAAAAzAw=="
	KeyConfirm KeyCode = "AAAAAQAAAAEAAABlAw=="

	// Menus
	KeyHome KeyCode = "AAAAAQAAAAEAAABgAw=="
	KeyMenu KeyCode = "AAAAAQAAAAEAAAAbAw=="
	KeyBack KeyCode = "AAAAAgAAAAEAAAAjAw=="

	// Inputs
	KeyInput KeyCode = "AAAAAQAAAAEAAAAlAw=="
	KeyHDMI1 KeyCode = "AAAAAgAAAAEAAABoAw=="
	KeyHDMI2 KeyCode = "AAAAAgAAAAEAAABpAw=="
	KeyHDMI3 KeyCode = "AAAAAgAAAAEAAABqAw=="
	KeyHDMI4 KeyCode = "AAAAAgAAAAEAAABrAw=="

	// Playback
	KeyPlay        KeyCode = "AAAAAgAAAAEAAAAaAw=="
	KeyPause       KeyCode = "AAAAAgAAAAEAAAAZAw=="
	KeyStop        KeyCode = "AAAAAgAAAAEAAAAYAw=="
	KeyRewind      KeyCode = "AAAAAgAAAAEAAAAbAw=="
	KeyFastForward KeyCode = "AAAAAgAAAAEAAAAcAw=="

	// Digits
	KeyNum0 KeyCode = "AAAAAQAAAAEAAAAJAw=="
	KeyNum1 KeyCode = "AAAAAQAAAAEAAAAAAw=="
	KeyNum2 KeyCode = "AAAAAQAAAAEAAAABAw=="
	KeyNum3 KeyCode = "AAAAAQAAAAEAAAACAw=="
	KeyNum4 KeyCode = "AAAAAQAAAAEAAAADAw=="
	KeyNum5 KeyCode = "AAAAAQAAAAEAAAAEAw=="
	KeyNum6 KeyCode = "AAAAAQAAAAEAAAAFAw=="
	KeyNum7 KeyCode = "AAAAAQAAAAEAAAAGAw=="
	KeyNum8 KeyCode = "AAAAAQAAAAEAAAAHAw=="
	KeyNum9 KeyCode = "AAAAAQAAAAEAAAAIAw=="
)

// keyNames maps CLI-facing key names to IRCC codes
var keyNames = map[string]KeyCode{
	"power":        KeyPower,
	"power-on":     KeyPowerOn,
	"power-off":    KeyPowerOff,
	"volume-up":    KeyVolumeUp,
	"volume-down":  KeyVolumeDown,
	"mute":         KeyMute,
	"channel-up":   KeyChannelUp,
	"channel-down": KeyChannelDown,
	"up":           KeyUp,
	"down":         KeyDown,
	"left":         KeyLeft,
	"right":        KeyRight,
	"confirm":      KeyConfirm,
	"home":         KeyHome,
	"menu":         KeyMenu,
	"back":         KeyBack,
	"input":        KeyInput,
	"hdmi1":        KeyHDMI1,
	"hdmi2":        KeyHDMI2,
	"hdmi3":        KeyHDMI3,
	"hdmi4":        KeyHDMI4,
	"play":         KeyPlay,
	"pause":        KeyPause,
	"stop":         KeyStop,
	"rewind":       KeyRewind,
	"fast-forward": KeyFastForward,
	"0":            KeyNum0,
	"1":            KeyNum1,
	"2":            KeyNum2,
	"3":            KeyNum3,
	"4":            KeyNum4,
	"5":            KeyNum5,
	"6":            KeyNum6,
	"7":            KeyNum7,
	"8":            KeyNum8,
	"9":            KeyNum9,
}

// KeyByName resolves a key name to its IRCC code, using the same
// normalization rules as operation lookup.
func KeyByName(name string) (KeyCode, bool) {
	code, ok := keyNames[normalizeName(name)]
	return code, ok
}

// KeyNames lists the valid key names in sorted order
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
