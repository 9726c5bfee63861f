package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

func interval(start, end string) domain.TimeInterval {
	return domain.TimeInterval{
		Start: types.MustTimeString(start),
		End:   types.MustTimeString(end),
	}
}

func businessDay() domain.TimeInterval {
	return interval("08:00", "22:00")
}

func TestGenerateSlots(t *testing.T) {
	slots := generateSlots(businessDay(), 60)

	require.Len(t, slots, 14)
	assert.Equal(t, "08:00-09:00", slots[0].Interval().String())
	assert.Equal(t, "21:00-22:00", slots[13].Interval().String())

	// Слоты последовательны и не пересекаются
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].End.Equal(slots[i].Start))
	}
}

func TestGenerateSlots_TruncatedSlotDropped(t *testing.T) {
	// Последний неполный слот отбрасывается, а не укорачивается
	slots := generateSlots(interval("08:00", "21:30"), 60)

	require.Len(t, slots, 13)
	assert.Equal(t, "20:00-21:00", slots[12].Interval().String())
}

func TestGenerateSlots_EmptyBusinessHours(t *testing.T) {
	hours := domain.TimeInterval{
		Start: types.MustTimeString("10:00"),
		End:   types.MustTimeString("10:00"),
	}
	assert.Empty(t, generateSlots(hours, 60))
}

func TestComputeFreeSlots_NoBusyIntervals(t *testing.T) {
	free := computeFreeSlots(businessDay(), 60, nil)

	require.Len(t, free, 14)
	assert.Equal(t, "08:00-09:00", free[0].Interval().String())
	assert.Equal(t, "21:00-22:00", free[13].Interval().String())
}

func TestComputeFreeSlots_BusyIntervalRemovesSlots(t *testing.T) {
	busy := []domain.TimeInterval{interval("09:00", "11:00")}

	free := computeFreeSlots(businessDay(), 60, busy)

	// Заняты ровно слоты 09:00-10:00 и 10:00-11:00
	require.Len(t, free, 12)
	assert.Equal(t, "08:00-09:00", free[0].Interval().String())
	assert.Equal(t, "11:00-12:00", free[1].Interval().String())

	for _, slot := range free {
		assert.False(t, domain.HasConflict(slot.Interval(), busy))
	}
}

func TestComputeFreeSlots_UnalignedBusyInterval(t *testing.T) {
	// Бронирование не по сетке занимает оба слота, которые задевает
	busy := []domain.TimeInterval{interval("09:30", "10:30")}

	free := computeFreeSlots(businessDay(), 60, busy)

	require.Len(t, free, 12)
	assert.Equal(t, "08:00-09:00", free[0].Interval().String())
	assert.Equal(t, "11:00-12:00", free[1].Interval().String())
}

func TestComputeFreeSlots_Idempotent(t *testing.T) {
	busy := []domain.TimeInterval{
		interval("08:00", "09:00"),
		interval("12:30", "13:15"),
	}

	first := computeFreeSlots(businessDay(), 60, busy)
	second := computeFreeSlots(businessDay(), 60, busy)

	assert.Equal(t, first, second)
}

func TestIsAvailable(t *testing.T) {
	busy := []domain.TimeInterval{interval("09:00", "10:00")}

	// Произвольный интервал, не обязан совпадать с сеткой
	assert.True(t, isAvailable(interval("10:00", "11:30"), busy))
	assert.True(t, isAvailable(interval("08:15", "09:00"), busy))
	assert.False(t, isAvailable(interval("09:45", "10:15"), busy))
	assert.True(t, isAvailable(interval("09:00", "10:00"), nil))
}
