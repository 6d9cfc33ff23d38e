package bookingpage

import (
	"context"
	"sync"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/usecase/get_available_times"
)

// Ticket идентифицирует запрос доступности. Устаревший ticket не применяется.
type Ticket struct {
	generation uint64
	Date       string
}

// Controller посредник между асинхронными запросами доступности и формой.
// Гарантирует, что флаг загрузки сбрасывается после завершения запроса.
type Controller struct {
	engine AvailabilityEngine
	logger Logger

	mu         sync.Mutex
	state      State
	generation uint64
}

// NewController создает контроллер с пустым списком времени
func NewController(engine AvailabilityEngine, logger Logger) *Controller {
	return &Controller{
		engine: engine,
		logger: logger,
		state:  State{AvailableTimes: []domain.TimeSlot{}},
	}
}

// Dispatch применяет действие к состоянию
func (c *Controller) Dispatch(action Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Reduce(c.state, action)
}

// State возвращает копию текущего состояния
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	times := make([]domain.TimeSlot, len(c.state.AvailableTimes))
	copy(times, c.state.AvailableTimes)
	return State{AvailableTimes: times, IsLoading: c.state.IsLoading}
}

// Begin начинает запрос для даты: выдаёт новый ticket и включает загрузку.
// Все ранее выданные ticket становятся устаревшими.
func (c *Controller) Begin(date string) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = Reduce(c.state, SetLoading{Loading: true})
	return Ticket{generation: c.generation, Date: date}
}

// Fetch выполняет запрос доступности. Ошибка логируется и даёт пустой список.
// Состояние не меняется; результат применяется через Settle.
func (c *Controller) Fetch(ctx context.Context, ticket Ticket) []domain.TimeSlot {
	resp, err := c.engine.Execute(ctx, &get_available_times.Request{Date: ticket.Date})
	if err != nil {
		c.logger.Error("FindAvailableTimes: failed to fetch available times for date=%q: %v", ticket.Date, err)
		return []domain.TimeSlot{}
	}
	return resp.AvailableTimes
}

// Settle применяет результат, если ticket всё ещё актуален.
// Возвращает false для устаревшего ответа.
func (c *Controller) Settle(ticket Ticket, times []domain.TimeSlot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket.generation != c.generation {
		c.logger.Warn("FindAvailableTimes: discarding stale response for date=%q", ticket.Date)
		return false
	}
	c.state = Reduce(c.state, SetAvailableTimes{Times: times})
	return true
}

// Clear очищает список и делает устаревшими все незавершённые запросы
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = Reduce(c.state, ClearTimes{})
}

// FindAvailableTimes синхронно загружает доступное время для даты.
// Пустая дата очищает список.
func (c *Controller) FindAvailableTimes(ctx context.Context, date string) {
	if date == "" {
		c.Clear()
		return
	}

	ticket := c.Begin(date)
	c.Settle(ticket, c.Fetch(ctx, ticket))
}
