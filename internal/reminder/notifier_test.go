package reminder

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"momentum-tab/internal/model"
	"momentum-tab/pkg/clock"
	"momentum-tab/pkg/log"
	"momentum-tab/pkg/telegram"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []telegram.SendMessageRequest
	fail bool
}

func (f *fakeSender) Send(ctx context.Context, req telegram.SendMessageRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("telegram down")
	}
	f.sent = append(f.sent, req)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestNotifier(sender Sender, fc *clock.Fake) *Notifier {
	return New(log.NewNop(), sender, 42, fc)
}

func TestNotify_OncePerTaskPerDay(t *testing.T) {
	fc := clock.NewFake(time.Date(2024, time.May, 10, 9, 55, 0, 0, time.UTC))
	sender := &fakeSender{}
	n := newTestNotifier(sender, fc)
	ctx := context.Background()

	a := model.Task{ID: "a", Title: "Standup", Notes: "[10:00]"}
	b := model.Task{ID: "b", Title: "Review", Notes: "[10:00]"}

	if err := n.Notify(ctx, []model.Task{a}); err != nil {
		t.Fatal(err)
	}
	if err := n.Notify(ctx, []model.Task{a, b}); err != nil {
		t.Fatal(err)
	}
	if got := sender.count(); got != 2 {
		t.Fatalf("sent %d messages, want 2", got)
	}

	fc.Advance(24 * time.Hour)
	if err := n.Notify(ctx, []model.Task{a}); err != nil {
		t.Fatal(err)
	}
	if got := sender.count(); got != 3 {
		t.Errorf("sent %d messages, want a resend on the next day", got)
	}
}

func TestNotify_FailureIsRetried(t *testing.T) {
	fc := clock.NewFake(time.Date(2024, time.May, 10, 9, 55, 0, 0, time.UTC))
	sender := &fakeSender{fail: true}
	n := newTestNotifier(sender, fc)
	ctx := context.Background()
	a := model.Task{ID: "a", Title: "Standup"}

	if err := n.Notify(ctx, []model.Task{a}); err == nil {
		t.Fatal("expected an error")
	}
	sender.fail = false
	if err := n.Notify(ctx, []model.Task{a}); err != nil {
		t.Fatal(err)
	}
	if got := sender.count(); got != 1 {
		t.Errorf("sent %d messages, want 1", got)
	}
}

func TestNotify_DayFollowsClockZone(t *testing.T) {
	// 23:30 UTC on the 10th is already the 11th in Seoul.
	seoul := time.FixedZone("KST", 9*3600)
	fc := clock.NewFake(time.Date(2024, time.May, 10, 23, 30, 0, 0, time.UTC).In(seoul))
	sender := &fakeSender{}
	n := newTestNotifier(sender, fc)
	ctx := context.Background()
	a := model.Task{ID: "a", Title: "Standup"}

	if err := n.Notify(ctx, []model.Task{a}); err != nil {
		t.Fatal(err)
	}
	if !n.sent.Contains("a|2024-05-11") {
		t.Errorf("dedupe key not recorded for the clock's own day; keys = %v", n.sent.Keys())
	}

	// Still the 11th in Seoul one hour later, although the 11th has only
	// just begun in UTC: no second message.
	fc.Advance(time.Hour)
	if err := n.Notify(ctx, []model.Task{a}); err != nil {
		t.Fatal(err)
	}
	if got := sender.count(); got != 1 {
		t.Errorf("sent %d messages, want 1", got)
	}
}

func TestBuildMessage(t *testing.T) {
	task := model.Task{
		ID:    "a",
		Title: "Focus",
		Notes: "[09:30] https://youtu.be/dQw4w9WgXcQ https://www.example.com/doc spotify://playlist/1",
	}

	req := buildMessage(42, task)
	if req.ChatID != 42 {
		t.Errorf("chat id = %d", req.ChatID)
	}
	if want := "⏰ Focus at 09:30\nspotify: spotify://playlist/1"; req.Text != want {
		t.Errorf("text = %q, want %q", req.Text, want)
	}
	if req.ReplyMarkup == nil || len(req.ReplyMarkup.InlineKeyboard[0]) != 2 {
		t.Fatalf("keyboard = %+v, want two url buttons", req.ReplyMarkup)
	}
	if got := req.ReplyMarkup.InlineKeyboard[0][1].Text; got != "example.com" {
		t.Errorf("external button label = %q", got)
	}

	plain := buildMessage(42, model.Task{ID: "b", Title: "Plain"})
	if plain.ReplyMarkup != nil || plain.Text != "⏰ Plain" {
		t.Errorf("plain message = %+v", plain)
	}
}

func TestHandleAndRun(t *testing.T) {
	fc := clock.NewFake(time.Date(2024, time.May, 10, 9, 55, 0, 0, time.UTC))
	sender := &fakeSender{}
	n := newTestNotifier(sender, fc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(done)
	}()

	n.Handle(ctx, []model.Task{{ID: "a", Title: "Standup"}})

	deadline := time.After(2 * time.Second)
	for sender.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("queued set was never delivered")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done
}
