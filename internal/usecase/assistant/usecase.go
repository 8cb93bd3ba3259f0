package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/integrations/whatsapp"
	"github.com/m04kA/barbershop-booking/internal/schedule"
)

// UseCase ассистент по ключевым словам: часы работы, цены, свободные слоты на сегодня, советы по стилю
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         *domain.Catalog
	hours           domain.BusinessHours
	links           LinkBuilder
	ownerName       string
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog *domain.Catalog,
	hours domain.BusinessHours,
	links LinkBuilder,
	ownerName string,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		hours:           hours,
		links:           links,
		ownerName:       ownerName,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// Execute выбирает тему по первому совпавшему правилу и формирует ответ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Assistant: validation failed: %v", err)
		return nil, err
	}

	text := strings.ToLower(req.Message)
	now := uc.timeProvider.Now()

	resp := uc.reply(ctx, text, now)

	uc.metrics.IncAssistantReply(string(resp.Intent))
	uc.logger.Info("Assistant: intent=%s", resp.Intent)

	return resp, nil
}

func (uc *UseCase) reply(ctx context.Context, text string, now time.Time) *Response {
	if containsAny(text, keywordsOpeningStatus) {
		return &Response{Intent: IntentOpeningStatus, Text: uc.openingStatus(now)}
	}

	if containsAny(text, keywordsPrices) {
		return &Response{
			Intent: IntentPrices,
			Text:   fmt.Sprintf(msgPriceList, formatPriceList(uc.catalog.Services())),
		}
	}

	if containsAny(text, keywordsAvailability) {
		return &Response{Intent: IntentAvailability, Text: uc.availabilityToday(ctx, now)}
	}

	if strings.Contains(text, "redondo") {
		return &Response{Intent: IntentStyle, Text: msgStyleRound}
	}
	if strings.Contains(text, "quadrado") {
		return &Response{Intent: IntentStyle, Text: msgStyleSquare}
	}
	if containsAny(text, keywordsStyle) {
		return &Response{Intent: IntentStyle, Text: msgStyleSuggestion}
	}

	return &Response{
		Intent:      IntentHuman,
		Text:        fmt.Sprintf(msgTalkToBarberTmpl, uc.ownerName),
		WhatsAppURL: uc.links.ShopContact(whatsapp.DefaultContactText),
	}
}

func (uc *UseCase) openingStatus(now time.Time) string {
	window, open := uc.hours.OpeningWindowFor(now)
	if !open {
		return fmt.Sprintf(msgClosedDay, describeHours(uc.hours, false))
	}

	if now.Hour() >= window.StartHour && now.Hour() < window.EndHour {
		return fmt.Sprintf(msgOpenNow, window.EndHour)
	}

	return msgClosedNow
}

// availabilityToday считает свободные слоты на сегодня
// Для быстрой проверки все записи и кандидаты считаются по 30 минут
func (uc *UseCase) availabilityToday(ctx context.Context, now time.Time) string {
	window, open := uc.hours.OpeningWindowFor(now)
	if !open {
		return fmt.Sprintf(msgClosedToday, describeHours(uc.hours, true))
	}

	if now.Hour() >= window.EndHour {
		return msgAfterClosing
	}

	appointments, err := uc.appointmentRepo.GetByDateRange(ctx, domain.StartOfDay(now), domain.EndOfDay(now))
	if err != nil {
		uc.logger.Error("Assistant: failed to get appointments for today: %v", err)
		return msgLookupFailed
	}

	duration := domain.AssistantSlotDurationMinutes * time.Minute
	busy := schedule.BusyIntervals(appointments, schedule.FixedDuration(duration))
	slots := schedule.FilterSlots(schedule.GenerateSlots(uc.hours, now), duration, busy, now)

	if len(slots) == 0 {
		return msgFullyBooked
	}

	return fmt.Sprintf(msgSlotsAvailable, len(slots), slots[0].Format(domain.TimeFormat))
}
