package bot

import (
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-bot/internal/session"
	"github.com/vfg2006/kpi-bot/internal/usecases/reporting"
	"github.com/vfg2006/kpi-bot/pkg/log"
)

// Mensagens fixas do bot
const (
	msgWelcome = "Привет! Пожалуйста, отправь свой номер телефона.\n" +
		"Нажмите кнопку ниже 👇"
	msgContactAccepted = "Спасибо! Теперь нажмите «Показать KPI»."
	msgPhoneFirst      = "Сначала отправьте номер телефона через /start."
	msgShareReminder   = "Пожалуйста, отправьте номер телефона через кнопку.\n" +
		"Нажмите /start, чтобы начать сначала."
	msgChooseYear     = "Выберите год:"
	msgChooseMonth    = "Выберите месяц:"
	msgNoYears        = "KPI не найдены для вашего номера."
	msgNoMonths       = "Нет данных за выбранный год."
	msgReportNotFound = "KPI не найдены для выбранного месяца."
	msgYearFirst      = "Сначала выберите год через «Показать KPI»."
	msgGenericFailure = "Произошла ошибка. Попробуйте ещё раз позже."
)

// route despacha o evento para o handler correspondente à sua forma:
// comando, contato, callback de botão inline ou texto livre
func (b *Bot) route(update tgbotapi.Update, userID int64) error {
	switch {
	case update.CallbackQuery != nil:
		return b.handleCallback(update.CallbackQuery, userID)
	case update.Message == nil:
		// Edições e demais eventos fora do fluxo da conversa
		return nil
	case update.Message.IsCommand():
		return b.handleCommand(update.Message, userID)
	case update.Message.Contact != nil:
		return b.handleContact(update.Message, userID)
	case update.Message.Text == btnShowKPI:
		return b.handleShowKPI(update.Message.Chat.ID, userID)
	case update.Message.Text == btnRestart:
		return b.handleRestart(update.Message.Chat.ID, userID)
	default:
		return b.handleText(update.Message.Chat.ID, userID)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message, userID int64) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(msg.Chat.ID)
	case "restart":
		return b.handleRestart(msg.Chat.ID, userID)
	default:
		return nil
	}
}

// handleStart pede o telefone com o teclado de compartilhamento de contato
func (b *Bot) handleStart(chatID int64) error {
	reply := tgbotapi.NewMessage(chatID, msgWelcome)
	reply.ReplyMarkup = contactKeyboard()

	_, err := b.sender.Send(reply)
	return errors.Wrap(err, "enviando boas-vindas")
}

// handleContact armazena o telefone na sessão, descartando o ano
// selecionado anteriormente. O `+` inicial é removido; nenhuma outra
// normalização é feita.
func (b *Bot) handleContact(msg *tgbotapi.Message, userID int64) error {
	phone := strings.TrimPrefix(msg.Contact.PhoneNumber, "+")

	b.sessions.Set(userID, session.Session{Phone: phone})

	log.L.WithField("user_id", userID).Info("Telefone recebido via contato")

	reply := tgbotapi.NewMessage(msg.Chat.ID, msgContactAccepted)
	reply.ReplyMarkup = kpiMenuKeyboard()

	_, err := b.sender.Send(reply)
	return errors.Wrap(err, "confirmando contato")
}

// handleShowKPI apresenta o menu de anos com dados para o telefone
func (b *Bot) handleShowKPI(chatID, userID int64) error {
	sess, ok := b.sessions.Get(userID)
	if !ok || !sess.HasPhone() {
		return b.sendText(chatID, msgPhoneFirst)
	}

	years, err := b.reporter.AvailableYears(sess.Phone)
	if err != nil {
		return err
	}

	if len(years) == 0 {
		return b.sendText(chatID, msgNoYears)
	}

	reply := tgbotapi.NewMessage(chatID, msgChooseYear)
	reply.ReplyMarkup = yearKeyboard(years)

	_, err = b.sender.Send(reply)
	return errors.Wrap(err, "enviando menu de anos")
}

// handleRestart limpa a sessão e volta ao início
func (b *Bot) handleRestart(chatID, userID int64) error {
	b.sessions.Clear(userID)
	return b.handleStart(chatID)
}

// handleText intercepta texto livre apenas enquanto o telefone não é
// conhecido; depois disso, texto sem handler não gera ação
func (b *Bot) handleText(chatID, userID int64) error {
	sess, ok := b.sessions.Get(userID)
	if ok && sess.HasPhone() {
		return nil
	}

	return b.sendText(chatID, msgShareReminder)
}

// handleCallback interpreta os payloads year_<ano> e month_<1..12>.
// Payload fora dessas formas é ignorado sem derrubar o handler.
func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery, userID int64) error {
	// Confirma o recebimento para o Telegram parar o spinner do botão
	if _, err := b.sender.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		log.L.WithError(err).Warn("Erro ao confirmar callback")
	}

	if cq.Message == nil {
		return nil
	}
	chatID := cq.Message.Chat.ID

	kind, rawValue, found := strings.Cut(cq.Data, "_")
	if !found {
		return nil
	}

	value, err := strconv.Atoi(rawValue)
	if err != nil {
		return nil
	}

	switch kind {
	case callbackYear:
		return b.handleYearSelected(chatID, userID, value)
	case callbackMonth:
		if value < 1 || value > 12 {
			return nil
		}
		return b.handleMonthSelected(chatID, userID, time.Month(value))
	default:
		return nil
	}
}

// handleYearSelected grava o ano na sessão e apresenta o menu de meses,
// do mais recente para o mais antigo
func (b *Bot) handleYearSelected(chatID, userID int64, year int) error {
	sess, ok := b.sessions.Get(userID)
	if !ok || !sess.HasPhone() {
		return b.sendText(chatID, msgPhoneFirst)
	}

	sess.SelectedYear = year
	b.sessions.Set(userID, sess)

	months, err := b.reporter.AvailableMonths(sess.Phone, year)
	if err != nil {
		return err
	}

	if len(months) == 0 {
		return b.sendText(chatID, msgNoMonths)
	}

	reply := tgbotapi.NewMessage(chatID, msgChooseMonth)
	reply.ReplyMarkup = monthKeyboard(months)

	_, err = b.sender.Send(reply)
	return errors.Wrap(err, "enviando menu de meses")
}

// handleMonthSelected busca e formata o relatório do primeiro dia do mês
// escolhido dentro do ano da sessão
func (b *Bot) handleMonthSelected(chatID, userID int64, month time.Month) error {
	sess, ok := b.sessions.Get(userID)
	if !ok || !sess.HasPhone() {
		return b.sendText(chatID, msgPhoneFirst)
	}

	// Botão de mês antigo pode sobreviver a um reinício da seleção
	if sess.SelectedYear == 0 {
		return b.sendText(chatID, msgYearFirst)
	}

	monthStart := time.Date(sess.SelectedYear, month, 1, 0, 0, 0, 0, time.UTC)

	report, err := b.reporter.MonthlyReport(sess.Phone, monthStart)
	if err != nil {
		return err
	}

	if report == nil {
		return b.sendText(chatID, msgReportNotFound)
	}

	return b.sendText(chatID, reporting.FormatReport(report))
}

func (b *Bot) sendText(chatID int64, text string) error {
	_, err := b.sender.Send(tgbotapi.NewMessage(chatID, text))
	return errors.Wrap(err, "enviando mensagem")
}
