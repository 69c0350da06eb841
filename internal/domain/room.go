package domain

// Room is a bookable physical space. Capacity is fixed at load time;
// occupancy lives in the room's occupancy store.
type Room struct {
	Name     string
	Capacity int
}
