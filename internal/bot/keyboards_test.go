package bot

import (
	"fmt"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestChunkButtons(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		expectedRows []int
	}{
		{name: "Um botão, uma linha", total: 1, expectedRows: []int{1}},
		{name: "Três botões cabem em uma linha", total: 3, expectedRows: []int{3}},
		{name: "Quatro botões quebram em duas linhas", total: 4, expectedRows: []int{3, 1}},
		{name: "Sete botões quebram em três linhas", total: 7, expectedRows: []int{3, 3, 1}},
		{name: "Doze meses quebram em quatro linhas", total: 12, expectedRows: []int{3, 3, 3, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buttons := make([]tgbotapi.InlineKeyboardButton, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("b%d", i),
					fmt.Sprintf("d%d", i),
				))
			}

			rows := chunkButtons(buttons, buttonsPerRow)

			assert.Len(t, rows, len(tt.expectedRows))
			for i, expectedLen := range tt.expectedRows {
				assert.Len(t, rows[i], expectedLen)
			}

			// A ordem de entrada é preservada através das linhas
			i := 0
			for _, row := range rows {
				for _, button := range row {
					assert.Equal(t, fmt.Sprintf("b%d", i), button.Text)
					i++
				}
			}
		})
	}
}

func TestYearKeyboard(t *testing.T) {
	keyboard := yearKeyboard([]int{2024, 2023})

	assert.Len(t, keyboard.InlineKeyboard, 1)
	assert.Len(t, keyboard.InlineKeyboard[0], 2)

	first := keyboard.InlineKeyboard[0][0]
	assert.Equal(t, "2024", first.Text)
	assert.Equal(t, "year_2024", *first.CallbackData)

	second := keyboard.InlineKeyboard[0][1]
	assert.Equal(t, "2023", second.Text)
	assert.Equal(t, "year_2023", *second.CallbackData)
}

func TestMonthKeyboard(t *testing.T) {
	march := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	january := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	keyboard := monthKeyboard([]time.Time{march, january})

	assert.Len(t, keyboard.InlineKeyboard, 1)

	row := keyboard.InlineKeyboard[0]
	assert.Equal(t, "Март", row[0].Text)
	assert.Equal(t, "month_3", *row[0].CallbackData)
	assert.Equal(t, "Январь", row[1].Text)
	assert.Equal(t, "month_1", *row[1].CallbackData)
}

func TestContactKeyboard(t *testing.T) {
	keyboard := contactKeyboard()

	assert.True(t, keyboard.OneTimeKeyboard)
	assert.True(t, keyboard.ResizeKeyboard)
	assert.Len(t, keyboard.Keyboard, 1)
	assert.Len(t, keyboard.Keyboard[0], 1)
	assert.Equal(t, btnShareContact, keyboard.Keyboard[0][0].Text)
	assert.True(t, keyboard.Keyboard[0][0].RequestContact)
}

func TestKPIMenuKeyboard(t *testing.T) {
	keyboard := kpiMenuKeyboard()

	assert.Len(t, keyboard.Keyboard, 2)
	assert.Equal(t, btnShowKPI, keyboard.Keyboard[0][0].Text)
	assert.Equal(t, btnRestart, keyboard.Keyboard[1][0].Text)
}
