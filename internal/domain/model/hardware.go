// Пакет model содержит доменные модели каталога пресетов.
package model

import (
	"errors"
	"strings"
)

// ErrUnknownHardware возвращается, если строка не совпадает ни с одним типом оборудования.
var ErrUnknownHardware = errors.New("неизвестный тип оборудования")

// Hardware задаёт тип устройства, для которого предназначен пресет.
// Значения совпадают с PostgreSQL enum hardware_type.
type Hardware string

// Допустимые типы оборудования (закрытый набор).
const (
	HardwareMicrophone Hardware = "Microphone"
	HardwareKeyboard   Hardware = "Keyboard"
	HardwareHeadset    Hardware = "Headset"
	HardwareMouse      Hardware = "Mouse"
	HardwareMisc       Hardware = "Misc"
)

var hardwareKinds = []Hardware{
	HardwareMicrophone,
	HardwareKeyboard,
	HardwareHeadset,
	HardwareMouse,
	HardwareMisc,
}

// HardwareKinds возвращает все типы оборудования в порядке объявления enum.
func HardwareKinds() []Hardware {
	out := make([]Hardware, len(hardwareKinds))
	copy(out, hardwareKinds)
	return out
}

// ParseHardware разбирает тип оборудования без учёта регистра.
func ParseHardware(s string) (Hardware, error) {
	for _, h := range hardwareKinds {
		if strings.EqualFold(s, string(h)) {
			return h, nil
		}
	}
	return "", ErrUnknownHardware
}

// ParseHardwareFilter разбирает необязательный фильтр по оборудованию.
// Пустая строка означает отсутствие фильтра, а не попытку разбора.
func ParseHardwareFilter(s string) (*Hardware, error) {
	if s == "" {
		return nil, nil
	}
	h, err := ParseHardware(s)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Valid сообщает, входит ли значение в закрытый набор.
func (h Hardware) Valid() bool {
	switch h {
	case HardwareMicrophone, HardwareKeyboard, HardwareHeadset, HardwareMouse, HardwareMisc:
		return true
	}
	return false
}

func (h Hardware) String() string {
	return string(h)
}
