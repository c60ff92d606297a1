package advisor

import "testing"

func stressLog(level *int) DailyLog {
	return DailyLog{StressLevel: level}
}

func TestClassifyStress_High(t *testing.T) {
	logs := []DailyLog{stressLog(ip(9)), stressLog(ip(7)), stressLog(ip(8))}
	if got := ClassifyStress(logs); got != StressHigh {
		t.Errorf("expected high, got %s", got)
	}
}

func TestClassifyStress_HighAtBoundary(t *testing.T) {
	logs := []DailyLog{stressLog(ip(7)), stressLog(ip(7)), stressLog(ip(7))}
	if got := ClassifyStress(logs); got != StressHigh {
		t.Errorf("expected high at avg 7, got %s", got)
	}
}

func TestClassifyStress_Moderate(t *testing.T) {
	logs := []DailyLog{stressLog(ip(5)), stressLog(ip(4)), stressLog(ip(6))}
	if got := ClassifyStress(logs); got != StressModerate {
		t.Errorf("expected moderate, got %s", got)
	}
}

func TestClassifyStress_Low(t *testing.T) {
	logs := []DailyLog{stressLog(ip(2)), stressLog(ip(3)), stressLog(ip(2))}
	if got := ClassifyStress(logs); got != StressLow {
		t.Errorf("expected low, got %s", got)
	}
}

func TestClassifyStress_NoReportsDefaultsModerate(t *testing.T) {
	logs := []DailyLog{stressLog(nil), stressLog(nil)}
	if got := ClassifyStress(logs); got != StressModerate {
		t.Errorf("expected moderate default, got %s", got)
	}
}

func TestClassifyStress_SkipsUnreportedDays(t *testing.T) {
	// Three most recent *reported* values are 2, 2, 3 even though older
	// high-stress days exist further back.
	logs := []DailyLog{
		stressLog(nil), stressLog(ip(2)), stressLog(nil),
		stressLog(ip(2)), stressLog(ip(3)), stressLog(ip(10)),
	}
	if got := ClassifyStress(logs); got != StressLow {
		t.Errorf("expected low from the 3 most recent reports, got %s", got)
	}
}
