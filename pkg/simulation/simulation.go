// Package simulation содержит источники задержки и случайности для mock API бронирования.
package simulation

import (
	"math/rand/v2"
	"time"
)

// Latency блокирует вызывающего на масштабированную задержку.
// Ожидание не прерывается: начатый вызов mock API всегда доходит до конца.
type Latency struct {
	scale float64
}

// NewLatency создаёт источник задержки. scale умножает каждую задержку:
// 1 сохраняет номинальные значения, 0 отключает их.
func NewLatency(scale float64) *Latency {
	if scale < 0 {
		scale = 0
	}
	return &Latency{scale: scale}
}

// Wait спит d, умноженное на scale
func (l *Latency) Wait(d time.Duration) {
	scaled := time.Duration(float64(d) * l.scale)
	if scaled <= 0 {
		return
	}
	time.Sleep(scaled)
}

// Random использует общий источник math/rand/v2, безопасный для конкурентного доступа
type Random struct{}

// NewRandom создаёт источник случайности
func NewRandom() *Random {
	return &Random{}
}

// Float64 возвращает равномерное значение в [0, 1)
func (Random) Float64() float64 {
	return rand.Float64()
}

// IntN возвращает равномерное значение в [0, n)
func (Random) IntN(n int) int {
	return rand.IntN(n)
}
