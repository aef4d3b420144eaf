package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// recordingSender collects delivered messages, optionally failing each send.
type recordingSender struct {
	mu   sync.Mutex
	sent []ContactMessage
	err  error
}

func (s *recordingSender) Send(msg ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestRun_DeliversUntilClose(t *testing.T) {
	sender := &recordingSender{}
	ch := make(chan ContactMessage, 4)
	done := make(chan struct{})
	go func() {
		Run(context.Background(), ch, sender)
		close(done)
	}()

	ch <- ContactMessage{Name: "A", Body: "one"}
	ch <- ContactMessage{Name: "B", Body: "two"}
	close(ch)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after channel close")
	}
	if sender.count() != 2 {
		t.Errorf("delivered %d messages, want 2", sender.count())
	}
}

func TestRun_SendFailureDoesNotStopLoop(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	ch := make(chan ContactMessage, 4)
	done := make(chan struct{})
	go func() {
		Run(context.Background(), ch, sender)
		close(done)
	}()

	ch <- ContactMessage{Body: "one"}
	ch <- ContactMessage{Body: "two"}
	close(ch)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after channel close")
	}
	if sender.count() != 2 {
		t.Errorf("attempted %d sends, want 2 (failures must not break the loop)", sender.count())
	}
}

func TestRun_DrainsQueueOnCancel(t *testing.T) {
	sender := &recordingSender{}
	ch := make(chan ContactMessage, 4)
	ch <- ContactMessage{Body: "queued before cancel"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		Run(ctx, ch, sender)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if sender.count() != 1 {
		t.Errorf("delivered %d messages, want 1 (queued work drains on cancel)", sender.count())
	}
}

func TestMailer_Enabled(t *testing.T) {
	if NewMailer("", "587", "", "", nil).Enabled() {
		t.Error("unconfigured mailer reports enabled")
	}
	if !NewMailer("smtp.example.com", "587", "u", "p", []string{"me@example.com"}).Enabled() {
		t.Error("configured mailer reports disabled")
	}
}

func TestMailer_SendSkipsWhenUnconfigured(t *testing.T) {
	m := NewMailer("", "587", "", "", nil)
	if err := m.Send(ContactMessage{Name: "A", Body: "hi"}); err != nil {
		t.Errorf("unconfigured send should be a logged no-op, got %v", err)
	}
}
