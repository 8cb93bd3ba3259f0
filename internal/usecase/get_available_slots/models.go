package get_available_slots

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID string    // ID услуги из прайса
	Date      time.Time // Дата (время суток игнорируется)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date    time.Time             // Дата, на которую запрашивались слоты
	Service domain.Service        // Услуга, для которой считалась доступность
	Closed  bool                  // Барбершоп не работает в этот день
	Window  *domain.OpeningWindow // Рабочие часы дня, nil если закрыто
	Slots   []time.Time           // Доступные начала записи по возрастанию
}
