// Package localsearch - exported views of private state for white-box
// partition tests. Compiled only with the test binary.
package localsearch

// RankLimits returns the equal-length partition table (relocate/or-opt).
func (s *Search) RankLimits() []int { return s.rankLimits }

// TwoOptLimits returns the lookup-balanced partition table (2-opt).
func (s *Search) TwoOptLimits() []int { return s.twoOptLimits }

// EqualRankLimitsForTest exposes the equal-length splitter.
func EqualRankLimitsForTest(n, t int) []int { return equalRankLimits(n, t) }

// TwoOptRankLimitsForTest exposes the lookup-balanced splitter.
func TwoOptRankLimitsForTest(n, t int) []int { return twoOptRankLimits(n, t) }
