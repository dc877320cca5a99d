package availability

import "haulify/models"

// SlotWindow is a fixed clock interval, in minutes from midnight, with an
// exclusive end.
type SlotWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// slotWindows maps each bookable slot to its fixed clock interval. The
// mapping is configuration, not derived: morning 8:00–12:00, afternoon
// 12:00–17:00, evening 17:00–21:00.
var slotWindows = map[models.SlotID]SlotWindow{
	models.SlotMorning:   {Start: 8 * 60, End: 12 * 60},
	models.SlotAfternoon: {Start: 12 * 60, End: 17 * 60},
	models.SlotEvening:   {Start: 17 * 60, End: 21 * 60},
}

// Window resolves a slot identifier to its clock interval.
func Window(slot models.SlotID) (SlotWindow, bool) {
	w, ok := slotWindows[slot]
	return w, ok
}

// Slots returns the slot identifiers in clock order.
func Slots() []models.SlotID {
	return []models.SlotID{models.SlotMorning, models.SlotAfternoon, models.SlotEvening}
}
