package ui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carousel/internal/carousel"
)

// loopScheduler runs engine timers on the Bubble Tea event loop. The timer
// goroutine only posts a message; the callback itself runs inside Update.
type loopScheduler struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// timerFiredMsg carries a due timer back to the event loop.
type timerFiredMsg struct {
	timer *loopTimer
}

type loopTimer struct {
	t    *time.Timer
	f    func()
	done atomic.Bool // stopped or fired
}

func (t *loopTimer) Stop() bool {
	if t.done.Swap(true) {
		return false
	}
	t.t.Stop()
	return true
}

// fire runs the callback unless the timer was stopped after the message was
// posted.
func (t *loopTimer) fire() {
	if t.done.Swap(true) {
		return
	}
	t.f()
}

// SetSender wires the function used to post timer messages, normally
// (*tea.Program).Send.
func (s *loopScheduler) SetSender(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *loopScheduler) AfterFunc(d time.Duration, f func()) carousel.Timer {
	lt := &loopTimer{f: f}
	lt.t = time.AfterFunc(d, func() {
		s.mu.Lock()
		send := s.send
		s.mu.Unlock()
		if send != nil {
			send(timerFiredMsg{timer: lt})
		}
	})
	return lt
}
