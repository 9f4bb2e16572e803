package booking

// ===============================
// Daily Slots
// ===============================

// DefaultSlots is the fixed daily booking grid, in chronological order.
var DefaultSlots = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

// IsSlot reports whether t is one of the fixed daily slots.
func IsSlot(t string) bool {
	for _, s := range DefaultSlots {
		if s == t {
			return true
		}
	}
	return false
}

// AvailableSlots filters the fixed grid against the times already taken,
// preserving chronological order. Only approved bookings count as taken;
// the caller is responsible for querying them that way.
func AvailableSlots(taken []string) []string {
	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}

	out := make([]string, 0, len(DefaultSlots))
	for _, s := range DefaultSlots {
		if _, ok := takenSet[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
