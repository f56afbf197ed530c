package get_day_slots

import (
	"time"

	"github.com/m04kA/WPS-DockService/internal/domain"
)

// Request модель запроса на расчёт доступности слотов дня
type Request struct {
	Date time.Time // дата без времени
}

// Response модель ответа с вердиктом по каждому часу каталога
type Response struct {
	Date  time.Time
	Slots []domain.ResolvedSlot // ровно по одному слоту на каждый бронируемый час, по возрастанию времени
}
