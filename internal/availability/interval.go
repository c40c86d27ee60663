package availability

// Time interval helpers over minutes-since-midnight. All intervals are
// half-open [start, start+duration): an appointment ending exactly when
// another starts does not overlap it, so back-to-back bookings are allowed.

// Overlaps reports whether [startA, startA+durationA) and
// [startB, startB+durationB) intersect.
func Overlaps(startA, durationA, startB, durationB int) bool {
	return startA < startB+durationB && startB < startA+durationA
}

// IsWithin reports whether [start, start+duration) fits entirely inside the
// window [windowStart, windowEnd].
func IsWithin(start, duration, windowStart, windowEnd int) bool {
	return start >= windowStart && start+duration <= windowEnd
}
