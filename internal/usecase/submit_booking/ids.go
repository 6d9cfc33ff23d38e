package submit_booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/LittleLemon-Booking/internal/domain"
)

// generateBookingID строит идентификатор вида BK<unix-миллисекунды>
func generateBookingID(now time.Time) string {
	return domain.BookingIDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

// generateConfirmationNumber строит номер подтверждения из 8 символов [0-9A-Z].
// Коллизии не исключаются.
func generateConfirmationNumber(random Random) string {
	alphabet := domain.ConfirmationAlphabet
	var b strings.Builder
	b.Grow(domain.ConfirmationNumberLength)
	for i := 0; i < domain.ConfirmationNumberLength; i++ {
		b.WriteByte(alphabet[random.IntN(len(alphabet))])
	}
	return b.String()
}
