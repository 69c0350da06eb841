package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
)

// Колонки выгрузок после нормализации заголовков
const (
	colRoomName  = "SALAS"
	colCapacity  = "CAPACIDADE"
	colCourse    = "CURSO"
	colCode      = "CODIGO"
	colRoom      = "SALA"
	colSubject   = "DISCIPLINA"
	colClass     = "TURMA"
	colDays      = "DIAS"
	colStart     = "HORARIO INICIO"
	colEnd       = "HORARIO FINAL"
	colProfessor = "PROFESSOR"
	colStatus    = "STATUS"
	colTermFirst = "DATA INICIO"
	colTermLast  = "DATA FINAL"
)

// Loader читает CSV-выгрузки исходных таблиц (аудитории и распределение
// дисциплин). Ошибки уровня записи не прерывают загрузку: запись
// пропускается с предупреждением, обработка продолжается.
type Loader struct {
	logger Logger
}

// New создает загрузчик
func New(logger Logger) *Loader {
	return &Loader{logger: logger}
}

// LoadRooms читает выгрузку аудиторий (колонки SALAS, CAPACIDADE)
func (l *Loader) LoadRooms(path string) ([]RoomRecord, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, header, colRoomName, colCapacity); err != nil {
		return nil, err
	}

	var records []RoomRecord
	for i, row := range rows {
		name := strings.TrimSpace(field(header, row, colRoomName))
		if name == "" {
			l.logger.Warn("loader: %s row %d: empty room name, skipping", path, i+2)
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(field(header, row, colCapacity)))
		if err != nil || capacity < 0 {
			l.logger.Warn("loader: %s row %d: invalid capacity %q for room %s, skipping",
				path, i+2, field(header, row, colCapacity), name)
			continue
		}
		records = append(records, RoomRecord{Name: name, Capacity: capacity})
	}

	l.logger.Info("loader: %d rooms read from %s", len(records), path)
	return records, nil
}

// LoadAllocations читает выгрузку распределения дисциплин. Границы
// семестра берутся из первой строки файла, как в исходных таблицах.
func (l *Loader) LoadAllocations(path string) (*AllocationData, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(path, header, colRoom, colDays, colStart, colEnd, colStatus); err != nil {
		return nil, err
	}

	data := &AllocationData{}
	for i, row := range rows {
		if i == 0 {
			data.TermFirst = strings.TrimSpace(field(header, row, colTermFirst))
			data.TermLast = strings.TrimSpace(field(header, row, colTermLast))
		}

		record := AllocationRecord{
			Course:        strings.TrimSpace(field(header, row, colCourse)),
			Code:          strings.TrimSpace(field(header, row, colCode)),
			Room:          strings.TrimSpace(field(header, row, colRoom)),
			Subject:       strings.TrimSpace(field(header, row, colSubject)),
			Class:         strings.TrimSpace(field(header, row, colClass)),
			WeekdayTokens: strings.Fields(field(header, row, colDays)),
			StartTime:     strings.TrimSpace(field(header, row, colStart)),
			EndTime:       strings.TrimSpace(field(header, row, colEnd)),
			Professor:     strings.TrimSpace(field(header, row, colProfessor)),
			Status:        strings.TrimSpace(field(header, row, colStatus)),
		}
		data.Records = append(data.Records, record)
	}

	l.logger.Info("loader: %d allocation records read from %s", len(data.Records), path)
	return data, nil
}

// TermWindow разбирает границы семестра из сырых значений "YYYY,MM,DD".
// При нечитаемых датах окно деградирует до одного дня на текущую дату:
// это документированная политика отката, а не сбой загрузки.
func (l *Loader) TermWindow(data *AllocationData, now time.Time) domain.TermWindow {
	first, err1 := parseTermDate(data.TermFirst)
	last, err2 := parseTermDate(data.TermLast)
	if err1 != nil || err2 != nil {
		l.logger.Warn("loader: malformed term window (%q, %q), falling back to single-day window at %s",
			data.TermFirst, data.TermLast, now.Format(domain.DateFormat))
		return domain.SingleDayWindow(now)
	}
	return domain.NewTermWindow(first, last)
}

// parseTermDate разбирает дату вида "2024,3,4" (год, месяц, день)
func parseTermDate(raw string) (time.Time, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("loader: term date %q: expected 3 comma-separated values", raw)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("loader: term date %q: %w", raw, err)
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > 31 {
		return time.Time{}, fmt.Errorf("loader: term date %q out of range", raw)
	}
	return time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC), nil
}

// readCSV читает файл и возвращает нормализованный заголовок и строки данных
func readCSV(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %s: empty file", ErrReadFile, path)
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[normalizeHeader(name)] = i
	}
	return header, rows[1:], nil
}

// normalizeHeader приводит имя колонки к виду исходных таблиц:
// верхний регистр, без акцентов и лишних пробелов
func normalizeHeader(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	upper = headerAccentReplacer.Replace(upper)
	return strings.Join(strings.Fields(upper), " ")
}

var headerAccentReplacer = strings.NewReplacer(
	"Á", "A", "À", "A", "Â", "A", "Ã", "A",
	"É", "E", "Ê", "E",
	"Í", "I",
	"Ó", "O", "Ô", "O", "Õ", "O",
	"Ú", "U",
	"Ç", "C",
)

// field возвращает значение колонки или пустую строку, если колонки
// нет или строка короче заголовка
func field(header map[string]int, row []string, col string) string {
	idx, ok := header[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// requireColumns проверяет наличие обязательных колонок
func requireColumns(path string, header map[string]int, cols ...string) error {
	for _, col := range cols {
		if _, ok := header[col]; !ok {
			return fmt.Errorf("%w: %s: %q", ErrMissingColumn, path, col)
		}
	}
	return nil
}
