package series

import "math/rand"

// jitterThreshold: daily averages at or below this stay flat, so tiny months
// don't oscillate between 0 and their whole total.
const jitterThreshold = 5

// Distribute expands a known monthly total into per-day values whose sum is
// exactly the total.
//
// Behavior:
//   - Base value is floor(total/days).
//   - When the base exceeds jitterThreshold, each day gets +/-20% jitter,
//     floor-clamped at 0; otherwise the base is used as-is.
//   - The residual (total minus the generated sum) is then pushed back one
//     unit at a time in round-robin order: incrementing days while the
//     residual is positive, decrementing only positive days while negative.
//
// The round-robin correction makes the exact-sum contract hold regardless
// of what the jitter produced.
//
// Edge cases:
//   - days <= 0 returns an empty slice.
//   - total <= 0 returns an all-zero slice of the requested length.
func Distribute(total, days int) []int {
	if days <= 0 {
		return []int{}
	}
	out := make([]int, days)
	if total <= 0 {
		return out
	}

	base := total / days
	sum := 0
	for i := range out {
		v := base
		if base > jitterThreshold {
			jitter := base / 5 // 20% of the base
			v = base - jitter + rand.Intn(2*jitter+1)
			if v < 0 {
				v = 0
			}
		}
		out[i] = v
		sum += v
	}

	diff := total - sum
	for i := 0; diff != 0; i = (i + 1) % days {
		switch {
		case diff > 0:
			out[i]++
			diff--
		case out[i] > 0:
			out[i]--
			diff++
		}
	}
	return out
}
