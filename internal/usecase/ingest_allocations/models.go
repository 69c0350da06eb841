package ingest_allocations

import "github.com/salasct/CT-RoomAllocationService/internal/domain"

// Record одна запись распределения дисциплины, как она пришла из выгрузки
type Record struct {
	Course        string
	Code          string
	Room          string
	Subject       string
	Class         string
	WeekdayTokens []string
	StartTime     string
	EndTime       string
	Professor     string
	Status        string
}

// Request пакет записей для загрузки в хранилища занятости
type Request struct {
	Records []Record
	Term    domain.TermWindow
}

// Summary итог массовой загрузки. Ни одна плохая запись не прерывает
// загрузку: счетчики показывают, что и почему было пропущено.
type Summary struct {
	Admitted int // записей загружено в хранилища
	Bookings int // броней создано (по одной на день недели записи)
	Meetings int // конкретных занятий в границах семестра

	SkippedStatus      int // статус не ALOCADA
	SkippedUnknownRoom int // аудитория не найдена в реестре
	SkippedInvalidTime int // время не распознано
	SkippedNoWeekdays  int // ни одного валидного дня недели
	SkippedConflict    int // пересечение с уже загруженной занятостью
	DroppedTokens      int // нераспознанных токенов дней недели
}
