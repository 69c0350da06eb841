package loader

// RoomRecord одна строка выгрузки аудиторий
type RoomRecord struct {
	Name     string
	Capacity int
}

// AllocationRecord одна строка выгрузки распределения дисциплин.
// Поля сырые: нормализация времени, дней недели и статуса выполняется
// на этапе загрузки в хранилища занятости.
type AllocationRecord struct {
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

// AllocationData результат чтения выгрузки: записи и сырые границы
// семестра из первой строки файла
type AllocationData struct {
	Records   []AllocationRecord
	TermFirst string
	TermLast  string
}
