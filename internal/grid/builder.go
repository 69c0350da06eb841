package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/salasct/CT-RoomAllocationService/internal/domain"
	"github.com/salasct/CT-RoomAllocationService/internal/occupancy"
	"github.com/salasct/CT-RoomAllocationService/pkg/types"
)

// ErrInvalidRange is returned when the day range or slot size of a
// builder is not usable.
var ErrInvalidRange = errors.New("grid: invalid day range or slot size")

// Cell is one grid position. After the merge pass the top cell of a run
// of equal labels carries the run length in Span; the cells it absorbed
// are marked Covered.
type Cell struct {
	Label   string
	Span    int
	Covered bool
}

// Grid is a room's weekly occupancy snapshot: rows are time slots in day
// order, columns are the six weekdays in their fixed order.
type Grid struct {
	Room  string
	Days  []domain.Weekday
	Slots []domain.Interval
	Cells [][]Cell // Cells[row][col]
}

// Logger is the warning sink for data-integrity findings during a build.
type Logger interface {
	Warn(format string, v ...interface{})
}

// Builder materializes occupancy stores into fixed-resolution grids.
type Builder struct {
	dayStart    types.TimeOfDay
	dayEnd      types.TimeOfDay
	slotMinutes int
	logger      Logger
}

// NewBuilder validates the grid parameters and returns a builder.
func NewBuilder(dayStart, dayEnd types.TimeOfDay, slotMinutes int, logger Logger) (*Builder, error) {
	if !dayStart.Valid() || !dayEnd.Valid() || !dayStart.Before(dayEnd) || slotMinutes <= 0 {
		return nil, fmt.Errorf("%w: %s-%s step %d", ErrInvalidRange, dayStart, dayEnd, slotMinutes)
	}
	return &Builder{
		dayStart:    dayStart,
		dayEnd:      dayEnd,
		slotMinutes: slotMinutes,
		logger:      logger,
	}, nil
}

// Build renders a snapshot of the store into a merged weekly grid.
// A booking need not align to slot boundaries: every slot whose
// [start, end) range it touches is fully marked with its label.
func (b *Builder) Build(store *occupancy.Store) Grid {
	slots := b.slots()
	cells := make([][]Cell, len(slots))
	for row := range cells {
		cells[row] = make([]Cell, len(domain.Weekdays))
	}

	for col, day := range domain.Weekdays {
		for _, booking := range bySeq(store.Query(day)) {
			for _, row := range b.slotRange(booking.Interval, len(slots)) {
				cell := &cells[row][col]
				if cell.Label != "" && cell.Label != booking.Label {
					// Two bookings claiming one slot cannot happen while the
					// no-overlap invariant holds. Keep the later-inserted
					// label and surface the finding instead of failing.
					b.logger.Warn("grid: room %s %s slot %s claimed by %q and %q, keeping %q",
						store.Room(), day, slots[row], cell.Label, booking.Label, booking.Label)
				}
				cell.Label = booking.Label
			}
		}
	}

	return Merge(Grid{Room: store.Room(), Days: domain.Weekdays, Slots: slots, Cells: cells})
}

// slots builds the row intervals from dayStart to dayEnd.
func (b *Builder) slots() []domain.Interval {
	var out []domain.Interval
	for start := b.dayStart; start.Before(b.dayEnd); {
		end := start + types.TimeOfDay(b.slotMinutes)
		if b.dayEnd.Before(end) {
			end = b.dayEnd
		}
		out = append(out, domain.Interval{Start: start, End: end})
		start = end
	}
	return out
}

// slotRange returns the row indexes whose slots intersect the interval.
func (b *Builder) slotRange(iv domain.Interval, rows int) []int {
	first := (iv.Start.Minutes() - b.dayStart.Minutes()) / b.slotMinutes
	if first < 0 {
		first = 0
	}
	// Ceil: a partially covered slot is still occupied.
	last := (iv.End.Minutes() - b.dayStart.Minutes() + b.slotMinutes - 1) / b.slotMinutes
	if last > rows {
		last = rows
	}

	var out []int
	for row := first; row < last; row++ {
		out = append(out, row)
	}
	return out
}

// bySeq orders bookings by insertion sequence so a later insert wins a
// contested slot.
func bySeq(bookings []domain.Booking) []domain.Booking {
	out := make([]domain.Booking, len(bookings))
	copy(out, bookings)
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Merge collapses maximal vertical runs of identical non-empty labels in
// each column into one region: the top cell carries the run length, the
// rest are marked Covered. The pass only compacts the rendering; the
// label matrix is untouched, so merging an already-merged grid returns
// the same grid.
func Merge(g Grid) Grid {
	merged := Grid{
		Room:  g.Room,
		Days:  g.Days,
		Slots: g.Slots,
		Cells: make([][]Cell, len(g.Cells)),
	}
	for row := range g.Cells {
		merged.Cells[row] = make([]Cell, len(g.Cells[row]))
		copy(merged.Cells[row], g.Cells[row])
	}

	for col := range g.Days {
		for row := 0; row < len(merged.Cells); {
			label := merged.Cells[row][col].Label
			if label == "" {
				merged.Cells[row][col] = Cell{Span: 1}
				row++
				continue
			}

			run := 1
			for row+run < len(merged.Cells) && merged.Cells[row+run][col].Label == label {
				run++
			}
			merged.Cells[row][col] = Cell{Label: label, Span: run}
			for i := 1; i < run; i++ {
				merged.Cells[row+i][col] = Cell{Label: label, Covered: true}
			}
			row += run
		}
	}
	return merged
}
