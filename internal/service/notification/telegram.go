package notification

import (
	"context"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/farm-server/internal/config"
	"github.com/darkkaiser/farm-server/pkg/strutil"
	applog "github.com/darkkaiser/farm-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const (
	// messageMaxLength 텔레그램 메시지 최대 문자 수 (API 제한 4096자에서 여유분을 둡니다)
	messageMaxLength = 3900

	// truncatedSuffix 길이 제한으로 잘린 메시지 끝에 붙는 표시
	truncatedSuffix = "\n...(생략)"

	// telegramHTTPClientTimeout 텔레그램 API 호출 HTTP 타임아웃
	telegramHTTPClientTimeout = 30 * time.Second

	// telegramMaxAttempts 전송 실패 시 최대 시도 횟수
	telegramMaxAttempts = 3

	// telegramRetryDelay 재시도 전 대기 시간
	telegramRetryDelay = 1 * time.Second

	// 텔레그램 API 정책(채팅방당 초당 1회)을 지키기 위한 발송 속도 제한
	telegramRateLimit = 1
	telegramRateBurst = 5
)

// botClient 텔레그램 봇 API 중 알림 발송에 필요한 부분만 추상화한 인터페이스입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// newBotClient 실제 텔레그램 봇 API 클라이언트를 생성합니다. 생성 시 토큰 검증(getMe)을 위해 API를 호출합니다.
var newBotClient = func(token string, debug bool) (botClient, error) {
	botAPI, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{
		Timeout: telegramHTTPClientTimeout,
	})
	if err != nil {
		return nil, err
	}
	botAPI.Debug = debug

	return botAPI, nil
}

type telegramNotifier struct {
	chatID int64

	client botClient

	retryDelay time.Duration

	limiter *rate.Limiter
}

func newTelegramNotifier(cfg config.TelegramConfig, debug bool) (*telegramNotifier, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(cfg.BotToken),
		"chat_id":   cfg.ChatID,
	}).Debug("텔레그램 봇 클라이언트 초기화")

	client, err := newBotClient(cfg.BotToken, debug)
	if err != nil {
		return nil, NewErrNotifierInitFailed(err)
	}

	return newTelegramNotifierWithClient(client, cfg.ChatID), nil
}

func newTelegramNotifierWithClient(client botClient, chatID int64) *telegramNotifier {
	return &telegramNotifier{
		chatID:     chatID,
		client:     client,
		retryDelay: telegramRetryDelay,
		limiter:    rate.NewLimiter(rate.Limit(telegramRateLimit), telegramRateBurst),
	}
}

func (n *telegramNotifier) ID() string {
	return "telegram"
}

// Deliver 메시지를 전송합니다. 실패하면 retryDelay 간격으로 최대 telegramMaxAttempts회까지 시도합니다.
func (n *telegramNotifier) Deliver(ctx context.Context, m Message) error {
	msg := tgbotapi.NewMessage(n.chatID, truncate(m.String(), messageMaxLength))
	msg.DisableWebPagePreview = true

	var err error
	for attempt := 1; attempt <= telegramMaxAttempts; attempt++ {
		if err = n.limiter.Wait(ctx); err != nil {
			return err
		}

		if _, err = n.client.Send(msg); err == nil {
			return nil
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"chat_id": n.chatID,
			"attempt": attempt,
			"error":   err,
		}).Warn("텔레그램 메시지 전송 실패")

		if attempt == telegramMaxAttempts {
			break
		}

		select {
		case <-time.After(n.retryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}

// truncate 문자열을 최대 max 문자(rune)로 자릅니다.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	limit := max - utf8.RuneCountInString(truncatedSuffix)
	runes := []rune(s)

	return string(runes[:limit]) + truncatedSuffix
}
