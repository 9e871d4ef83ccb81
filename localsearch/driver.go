// Package localsearch - the outer improvement driver.
//
// Each operator exposes a perform-all routine that loops its one-step
// routine to exhaustion. Optimize composes the three in a fixed order —
// 2-opt, relocate, or-opt — and repeats the round while any of them gained.
//
// Termination: every applied move strictly decreases the total tour cost,
// a nonnegative integer, so the driver reaches a fixed point in finitely
// many steps. At the fixed point the tour is a local minimum under the
// union of the three neighborhoods.
package localsearch

// performAll loops step until it returns 0 and reports the cumulative gain
// and the number of applied moves.
func performAll(step func() int64) (int64, int) {
	var (
		total int64
		steps int
		gain  int64
	)
	for {
		gain = step()
		if gain == 0 {
			break
		}
		total += gain
		steps++
	}

	return total, steps
}

// Optimize runs full operator rounds to a fixed point and reports what
// happened. Re-running Optimize on its own output performs one all-zero
// round and leaves the tour untouched.
func (s *Search) Optimize() Summary {
	var sum Summary

	var (
		twoOptGain   int64
		relocateGain int64
		orOptGain    int64
		steps        int
	)
	for {
		sum.Rounds++

		// All possible 2-opt moves.
		twoOptGain, steps = performAll(s.TwoOptStep)
		sum.TwoOptGain += twoOptGain
		sum.TwoOptSteps += steps

		// All relocate moves.
		relocateGain, steps = performAll(s.RelocateStep)
		sum.RelocateGain += relocateGain
		sum.RelocateSteps += steps

		// All or-opt moves.
		orOptGain, steps = performAll(s.OrOptStep)
		sum.OrOptGain += orOptGain
		sum.OrOptSteps += steps

		if twoOptGain == 0 && relocateGain == 0 && orOptGain == 0 {
			break
		}
	}

	return sum
}
