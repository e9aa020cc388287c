package service

import (
	"sync"
	"time"

	"activity-board/internal/metrics"
	"activity-board/internal/model"
)

// DefaultBannerDelay — сколько сообщение остаётся на экране.
const DefaultBannerDelay = 5 * time.Second

// Banner — баннер с итогом операции. Держит один таймер скрытия:
// каждое новое сообщение останавливает предыдущий таймер и заводит свой.
type Banner struct {
	mu      sync.Mutex
	delay   time.Duration
	kind    model.BannerKind
	text    string
	shownAt time.Time
	timer   *time.Timer
	gen     uint64
	now     func() time.Time
}

// NewBanner создаёт скрытый баннер. delay <= 0 отключает автоскрытие.
func NewBanner(delay time.Duration) *Banner {
	return &Banner{
		delay: delay,
		kind:  model.BannerHidden,
		now:   time.Now,
	}
}

// Success показывает сообщение об успехе.
func (b *Banner) Success(text string) {
	b.show(model.BannerSuccess, text)
}

// Error показывает сообщение об ошибке.
func (b *Banner) Error(text string) {
	b.show(model.BannerError, text)
}

func (b *Banner) show(kind model.BannerKind, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()
	b.gen++
	b.kind = kind
	b.text = text
	b.shownAt = b.now()
	metrics.BannerMessages.WithLabelValues(string(kind)).Inc()

	if b.delay <= 0 {
		return
	}

	// Таймер, который уже сработал, но не успел взять мьютекс, не должен скрыть новое сообщение.
	gen := b.gen
	b.timer = time.AfterFunc(b.delay, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen == gen {
			b.kind = model.BannerHidden
			b.timer = nil
		}
	})
}

// Hide скрывает баннер и отменяет таймер.
func (b *Banner) Hide() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()
	b.gen++
	b.kind = model.BannerHidden
}

// Stop отменяет таймер, не меняя состояние. Вызывается при удалении сессии.
func (b *Banner) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

func (b *Banner) stopLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// Snapshot возвращает текущее состояние баннера с остатком времени показа.
func (b *Banner) Snapshot() model.Banner {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.kind == model.BannerHidden {
		return model.Banner{Kind: model.BannerHidden}
	}

	snap := model.Banner{Kind: b.kind, Text: b.text}
	if b.delay > 0 {
		if left := b.delay - b.now().Sub(b.shownAt); left > 0 {
			snap.Remaining = left
		}
	}
	return snap
}
