package scoring

import "testing"

var testThresholds = Thresholds{
	Outstanding:     300,
	Strong:          230,
	Meeting:         170,
	Partial:         140,
	Underperforming: 120,
}

func TestClassifyScore(t *testing.T) {
	cases := []struct {
		score float64
		band  string
	}{
		{350, BandOutstanding},
		{300, BandOutstanding},
		{230, BandStrong},
		{170, BandMeeting},
		{150, BandPartial},
		{140, BandPartial},
		{100, BandUnderperforming},
		{0, BandUnderperforming},
	}
	for _, tc := range cases {
		if band := ClassifyScore(tc.score, testThresholds); band != tc.band {
			t.Fatalf("score %v: expected %q, got %q", tc.score, tc.band, band)
		}
	}
}

func TestClassifyScoreBoundary(t *testing.T) {
	if band := ClassifyScore(float64(testThresholds.Meeting), testThresholds); band != BandMeeting {
		t.Fatalf("expected exact threshold to reach the higher band, got %q", band)
	}
	if band := ClassifyScore(float64(testThresholds.Meeting-1), testThresholds); band != BandPartial {
		t.Fatalf("expected one below threshold to fall to partial, got %q", band)
	}
}

func TestClassifyScoreMonotonic(t *testing.T) {
	rank := map[string]int{
		BandUnderperforming: 0,
		BandPartial:         1,
		BandMeeting:         2,
		BandStrong:          3,
		BandOutstanding:     4,
	}
	previous := -1
	for score := 0; score <= 400; score += 5 {
		current := rank[ClassifyScore(float64(score), testThresholds)]
		if current < previous {
			t.Fatalf("band rank decreased at score %d", score)
		}
		previous = current
	}
}
