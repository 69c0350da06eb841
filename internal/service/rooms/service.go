package rooms

import (
	"fmt"
	"sort"
	"sync"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/occupancy"
	"github.com/salasct/CT-RoomAllocationService/internal/service/rooms/models"
)

// Service реестр аудиторий: единственный владелец объектов Room и их
// хранилищ занятости. Вся мутация занятости идет через Insert хранилища,
// прямого доступа к спискам интервалов у остальных слоев нет.
type Service struct {
	mu     sync.RWMutex
	rooms  map[string]*entry
	logger Logger
}

type entry struct {
	room  domain.Room
	store *occupancy.Store
}

// NewService создает пустой реестр аудиторий
func NewService(logger Logger) *Service {
	return &Service{
		rooms:  make(map[string]*entry),
		logger: logger,
	}
}

// Register добавляет аудиторию в реестр и создает для нее хранилище занятости.
// Вместимость после регистрации неизменна.
func (s *Service) Register(room domain.Room) error {
	if room.Name == "" || room.Capacity < 0 {
		return fmt.Errorf("%w: name=%q capacity=%d", ErrInvalidRoom, room.Name, room.Capacity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[room.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRoom, room.Name)
	}
	s.rooms[room.Name] = &entry{
		room:  room,
		store: occupancy.NewStore(room.Name),
	}
	return nil
}

// Get возвращает аудиторию и ее хранилище занятости
func (s *Service) Get(name string) (domain.Room, *occupancy.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.rooms[name]
	if !ok {
		return domain.Room{}, nil, fmt.Errorf("%w: %q", ErrRoomNotFound, name)
	}
	return e.room, e.store, nil
}

// List возвращает все аудитории, отсортированные по имени
func (s *Service) List() []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Room, 0, len(s.rooms))
	for _, e := range s.rooms {
		out = append(out, e.room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Occupancy возвращает занятые интервалы аудитории по дням недели
// в порядке дней; дни без броней опускаются
func (s *Service) Occupancy(name string) ([]models.DayOccupancy, error) {
	_, store, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	var out []models.DayOccupancy
	for _, day := range domain.Weekdays {
		bookings := store.Query(day)
		if len(bookings) == 0 {
			continue
		}
		out = append(out, models.DayOccupancy{Day: day, Bookings: bookings})
	}
	return out, nil
}

// TotalBookings возвращает суммарное число броней по всем аудиториям
func (s *Service) TotalBookings() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, e := range s.rooms {
		total += e.store.Len()
	}
	return total
}
