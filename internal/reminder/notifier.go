package reminder

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"momentum-tab/internal/model"
	"momentum-tab/pkg/clock"
	pkgLog "momentum-tab/pkg/log"
	"momentum-tab/pkg/notes"
	"momentum-tab/pkg/response"
	"momentum-tab/pkg/telegram"
)

const (
	queueSize = 16
	dedupeTTL = 36 * time.Hour
)

// Sender delivers a chat message. *telegram.Bot implements it.
type Sender interface {
	Send(ctx context.Context, req telegram.SendMessageRequest) error
}

// Notifier pushes newly triggered tasks to a Telegram chat, at most once per
// task per day.
type Notifier struct {
	l      pkgLog.Logger
	sender Sender
	chatID int64
	clock  clock.Clock
	sent   *expirable.LRU[string, struct{}]
	queue  chan []model.Task
}

// New creates a Notifier sending to chatID. clk decides the calendar day used
// for deduplication; pass the scheduler's clock so both agree on "today".
// A nil clk uses the local wall clock.
func New(l pkgLog.Logger, sender Sender, chatID int64, clk clock.Clock) *Notifier {
	if clk == nil {
		clk = clock.Real()
	}
	return &Notifier{
		l:      l,
		sender: sender,
		chatID: chatID,
		clock:  clk,
		sent:   expirable.NewLRU[string, struct{}](1024, nil, dedupeTTL),
		queue:  make(chan []model.Task, queueSize),
	}
}

// Handle queues a triggered set without blocking; it is meant to be
// registered as a scheduler listener. Sets arriving while the queue is full
// are dropped.
func (n *Notifier) Handle(ctx context.Context, triggered []model.Task) {
	select {
	case n.queue <- triggered:
	default:
		n.l.Warnf(ctx, "reminder.Notifier.Handle: queue full, dropping %d task(s)", len(triggered))
	}
}

// Run delivers queued sets until ctx is done.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case triggered := <-n.queue:
			if err := n.Notify(ctx, triggered); err != nil {
				n.l.Errorf(ctx, "reminder.Notifier.Run: %v", err)
			}
		}
	}
}

// Notify sends one message per task not yet notified today. It stops at the
// first failed send; the failed task is retried on the next set.
func (n *Notifier) Notify(ctx context.Context, triggered []model.Task) error {
	day := n.clock.Now().Format(response.DateFormat)
	for _, t := range triggered {
		key := t.ID + "|" + day
		if n.sent.Contains(key) {
			continue
		}
		if err := n.sender.Send(ctx, buildMessage(n.chatID, t)); err != nil {
			return fmt.Errorf("send reminder for task %s: %w", t.ID, err)
		}
		n.sent.Add(key, struct{}{})
		n.l.Infof(ctx, "reminder.Notifier.Notify: sent reminder for task %s", t.ID)
	}
	return nil
}

func buildMessage(chatID int64, t model.Task) telegram.SendMessageRequest {
	a := notes.Parse(t.Notes)

	var sb strings.Builder
	sb.WriteString("⏰ ")
	sb.WriteString(t.Title)
	if a.Reminder != nil {
		sb.WriteString(" at ")
		sb.WriteString(a.Reminder.String())
	}

	var row []telegram.InlineKeyboardButton
	for _, link := range a.Links {
		switch link.Kind {
		case notes.KindVideo:
			row = append(row, telegram.InlineKeyboardButton{Text: "▶ Watch", URL: link.URL})
		case notes.KindExternal:
			row = append(row, telegram.InlineKeyboardButton{Text: linkLabel(link.URL), URL: link.URL})
		default:
			// Telegram only accepts http(s) and tg:// button URLs.
			sb.WriteString("\n")
			sb.WriteString(link.Scheme)
			sb.WriteString(": ")
			sb.WriteString(link.URL)
		}
	}

	req := telegram.SendMessageRequest{
		ChatID:                chatID,
		Text:                  sb.String(),
		DisableWebPagePreview: true,
	}
	if len(row) > 0 {
		req.ReplyMarkup = &telegram.InlineKeyboardMarkup{InlineKeyboard: [][]telegram.InlineKeyboardButton{row}}
	}
	return req
}

func linkLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "Open"
	}
	return strings.TrimPrefix(u.Host, "www.")
}
