package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingpage"
	"github.com/m04kA/LittleLemon-Booking/internal/usecase/submit_booking"
)

// Session форма бронирования одного посетителя вместе с контроллером страницы.
// События одной сессии обрабатываются последовательно.
type Session struct {
	id        string
	machine   *bookingform.Machine
	page      *bookingpage.Controller
	submitter BookingSubmitter
	store     RecordStore
	logger    Logger

	mu       sync.Mutex
	idle     *sync.Cond
	state    bookingform.State
	pending  int
	lastSeen time.Time
}

func newSession(id string, deps *Deps, now time.Time) *Session {
	s := &Session{
		id:        id,
		machine:   deps.Machine,
		page:      bookingpage.NewController(deps.Engine, deps.Logger),
		submitter: deps.Submitter,
		store:     deps.Store,
		logger:    deps.Logger,
		state:     bookingform.NewState(),
		lastSeen:  now,
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string {
	return s.id
}

// View возвращает текущий снимок формы
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	page := s.page.State()
	return buildView(s.id, s.state, page.AvailableTimes, page.IsLoading, s.machine.MinDate())
}

// Dispatch применяет событие формы и выполняет его эффекты.
// Загрузка времени выполняется в фоне; отправка бронирования дожидается ответа.
func (s *Session) Dispatch(ctx context.Context, event bookingform.Event) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyLocked(ctx, event); err != nil {
		return View{}, err
	}
	return s.viewLocked(), nil
}

// WaitIdle блокируется, пока не завершатся все запущенные загрузки времени
func (s *Session) WaitIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.pending > 0 {
		s.idle.Wait()
	}
}

// Reset возвращает форму в начальное состояние
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = bookingform.NewState()
	s.page.Clear()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// applyLocked применяет событие и обрабатывает эффекты. Вызывается под s.mu.
func (s *Session) applyLocked(ctx context.Context, event bookingform.Event) error {
	next, effects, err := s.machine.Apply(s.state, event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	s.state = next

	for _, effect := range effects {
		switch e := effect.(type) {
		case bookingform.FetchAvailability:
			s.startFetchLocked(e.Date)

		case bookingform.ClearAvailability:
			s.page.Clear()

		case bookingform.SubmitBooking:
			followUp := s.submitLocked(ctx, e.Request)
			if err := s.applyLocked(ctx, followUp); err != nil {
				return err
			}

		case bookingform.PersistRecord:
			var followUp bookingform.Event = bookingform.RecordPersisted{Record: e.Record}
			if err := s.store.Store(ctx, s.id, e.Record); err != nil {
				s.logger.Error("Session %s: failed to persist booking %s: %v", s.id, e.Record.BookingID, err)
				followUp = bookingform.SubmitFailed{Message: SubmitErrorMessage}
			}
			if err := s.applyLocked(ctx, followUp); err != nil {
				return err
			}
		}
	}

	return nil
}

// startFetchLocked запускает загрузку времени в отдельной горутине.
// Ответ применяется, только если за это время не начался новый запрос.
func (s *Session) startFetchLocked(date string) {
	ticket := s.page.Begin(date)
	s.pending++

	go func() {
		// Запрос не отменяется вместе с HTTP-запросом, который его вызвал
		times := s.page.Fetch(context.Background(), ticket)

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.page.Settle(ticket, times) {
			next, _, err := s.machine.Apply(s.state, bookingform.TimesLoaded{Times: domain.SlotTimes(times)})
			if err != nil {
				s.logger.Error("Session %s: failed to apply loaded times: %v", s.id, err)
			} else {
				s.state = next
			}
		}

		s.pending--
		if s.pending == 0 {
			s.idle.Broadcast()
		}
	}()
}

// submitLocked вызывает сервис отправки без удержания блокировки.
// Форма в фазе отправки не принимает изменений, поэтому состояние не меняется.
func (s *Session) submitLocked(ctx context.Context, booking domain.BookingRequest) bookingform.Event {
	s.mu.Unlock()
	resp, err := s.submitter.Execute(ctx, &submit_booking.Request{
		Date:     booking.Date,
		Time:     booking.Time,
		Guests:   booking.Guests,
		Occasion: booking.Occasion,
	})
	s.mu.Lock()

	if err != nil {
		s.logger.Warn("Session %s: booking submission failed: %v", s.id, err)
		return bookingform.SubmitFailed{Message: SubmitErrorMessage}
	}

	return bookingform.SubmitSucceeded{Record: resp.ToDomain()}
}
