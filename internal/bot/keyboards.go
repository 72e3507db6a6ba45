package bot

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vfg2006/kpi-bot/internal/usecases/reporting"
)

// Rótulos dos botões do teclado de resposta
const (
	btnShareContact = "📱 Отправить номер телефона"
	btnShowKPI      = "📊 Показать KPI"
	btnRestart      = "🔁 Перезапустить бота"
)

// Prefixos de payload dos botões inline. São as duas únicas formas de
// callback que o bot interpreta: year_<ano> e month_<1..12>.
const (
	callbackYear  = "year"
	callbackMonth = "month"
)

// buttonsPerRow é o limite de botões inline por linha dos menus
const buttonsPerRow = 3

// contactKeyboard pede o número de telefone via compartilhamento de
// contato do próprio Telegram
func contactKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(btnShareContact),
		),
	)
	keyboard.OneTimeKeyboard = true
	keyboard.InputFieldPlaceholder = "Нажмите кнопку ниже"

	return keyboard
}

// kpiMenuKeyboard é o teclado persistente mostrado após a identificação
func kpiMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnShowKPI),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnRestart),
		),
	)
}

// yearKeyboard monta o menu inline de anos na ordem recebida
func yearKeyboard(years []int) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(years))
	for _, year := range years {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			strconv.Itoa(year),
			fmt.Sprintf("%s_%d", callbackYear, year),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(chunkButtons(buttons, buttonsPerRow)...)
}

// monthKeyboard monta o menu inline de meses na ordem recebida, com os
// nomes fixos dos meses do calendário
func monthKeyboard(months []time.Time) tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(months))
	for _, month := range months {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			reporting.MonthName(month.Month()),
			fmt.Sprintf("%s_%d", callbackMonth, int(month.Month())),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(chunkButtons(buttons, buttonsPerRow)...)
}

// chunkButtons quebra a lista de botões em linhas de até size botões,
// preservando a ordem de entrada
func chunkButtons(buttons []tgbotapi.InlineKeyboardButton, size int) [][]tgbotapi.InlineKeyboardButton {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(buttons)+size-1)/size)

	for len(buttons) > 0 {
		if len(buttons) < size {
			size = len(buttons)
		}
		rows = append(rows, buttons[:size])
		buttons = buttons[size:]
	}

	return rows
}
