package engine

import (
	"encoding/json"
	"fmt"
)

// Keyboard — одноразовая VK-клавиатура меню. Формат соответствует полю
// keyboard метода messages.send: каждый вариант выбора занимает отдельный
// ряд из одной callback-кнопки, порядок рядов повторяет порядок вариантов.
type Keyboard struct {
	OneTime bool       `json:"one_time"`
	Buttons [][]Button `json:"buttons"`
}

// Button — одна кнопка клавиатуры.
type Button struct {
	Action ButtonAction `json:"action"`
}

// ButtonAction описывает действие кнопки; Label совпадает с текстом,
// которым клиент ответит при нажатии.
type ButtonAction struct {
	Type    string `json:"type"`
	Payload string `json:"payload"`
	Label   string `json:"label"`
}

// NewKeyboard собирает клавиатуру из вариантов меню с сохранением порядка.
func NewKeyboard(choices []Choice) Keyboard {
	rows := make([][]Button, 0, len(choices))
	for _, c := range choices {
		rows = append(rows, []Button{{
			Action: ButtonAction{Type: "callback", Payload: "{}", Label: c.Label},
		}})
	}
	return Keyboard{OneTime: true, Buttons: rows}
}

// JSON сериализует клавиатуру в строку для параметра keyboard.
func (k Keyboard) JSON() (string, error) {
	b, err := json.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("keyboard marshal: %w", err)
	}
	return string(b), nil
}
