package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-bot/internal/config"
	"github.com/vfg2006/kpi-bot/internal/session"
	"github.com/vfg2006/kpi-bot/internal/usecases/reporting"
	"github.com/vfg2006/kpi-bot/pkg/log"
)

// Sender cobre as chamadas de envio usadas pelos handlers. O
// *tgbotapi.BotAPI satisfaz a interface; os testes usam um stub.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot liga o transporte do Telegram à máquina de estados da conversa
type Bot struct {
	api      *tgbotapi.BotAPI
	sender   Sender
	reporter reporting.Reporter
	sessions *session.Store
	cfg      *config.Config
}

func New(
	cfg *config.Config,
	reporter reporting.Reporter,
	sessions *session.Store,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, errors.Wrap(err, "autenticando na API do Telegram")
	}
	api.Debug = cfg.Telegram.Debug

	log.L.WithField("username", api.Self.UserName).Info("Bot autenticado no Telegram")

	return &Bot{
		api:      api,
		sender:   api,
		reporter: reporter,
		sessions: sessions,
		cfg:      cfg,
	}, nil
}

// Run consome atualizações por long polling até o contexto ser
// cancelado. Cada atualização é tratada em sua própria goroutine; o
// lock por usuário do Store serializa eventos do mesmo usuário.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.cfg.Telegram.UpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(updateConfig)

	log.L.Info("Bot aguardando atualizações do Telegram")

	for {
		select {
		case <-ctx.Done():
			log.L.Info("Parando o recebimento de atualizações do Telegram")
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.dispatch(update)
		}
	}
}

// dispatch trata uma única atualização: identifica o usuário, serializa
// pelo lock da sessão e converte erro em resposta genérica, sem alterar
// a sessão para que o usuário possa repetir a ação
func (b *Bot) dispatch(update tgbotapi.Update) {
	user := update.SentFrom()
	if user == nil {
		return
	}

	ctx, _ := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx).WithField("user_id", user.ID)

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Pânico ao processar atualização do chat")
		}
	}()

	b.sessions.WithLock(user.ID, func() {
		if err := b.route(update, user.ID); err != nil {
			logger.WithError(err).Error("Erro ao processar atualização do chat")

			if chat := update.FromChat(); chat != nil {
				if sendErr := b.sendText(chat.ID, msgGenericFailure); sendErr != nil {
					logger.WithError(sendErr).Error("Erro ao enviar resposta de falha")
				}
			}
		}
	})
}
