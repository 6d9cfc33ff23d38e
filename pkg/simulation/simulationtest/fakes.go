// Package simulationtest содержит детерминированные задержку и случайность для тестов.
package simulationtest

import (
	"sync"
	"time"
)

// Latency запоминает запрошенные задержки, не засыпая
type Latency struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (l *Latency) Wait(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.waits = append(l.waits, d)
}

// Waits возвращает запрошенные до сих пор задержки
func (l *Latency) Waits() []time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]time.Duration, len(l.waits))
	copy(out, l.waits)
	return out
}

// GatedLatency блокирует каждый Wait до вызова Release (один вызов на ожидающего)
type GatedLatency struct {
	gate chan struct{}
}

func NewGatedLatency() *GatedLatency {
	return &GatedLatency{gate: make(chan struct{})}
}

func (l *GatedLatency) Wait(time.Duration) {
	<-l.gate
}

// Release отпускает один ожидающий Wait
func (l *GatedLatency) Release() {
	l.gate <- struct{}{}
}

// Random по кругу воспроизводит заданную последовательность.
// Float64 и IntN берут значения из разных последовательностей.
type Random struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	fi, ii int
}

// NewRandom создаёт Random, который по порядку отдаёт floats из Float64
func NewRandom(floats ...float64) *Random {
	return &Random{floats: floats}
}

// WithInts задаёт последовательность для IntN (значение берётся по модулю n)
func (r *Random) WithInts(ints ...int) *Random {
	r.ints = ints
	return r
}

func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *Random) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ints) == 0 {
		v := r.ii % n
		r.ii++
		return v
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// Clock - провайдер фиксированного времени
type Clock struct {
	T time.Time
}

func (c Clock) Now() time.Time {
	return c.T
}
