package anim

import "testing"

func TestStateForMoodTable(t *testing.T) {
	tests := []struct {
		mood string
		want State
	}{
		{"tail_wag", TailWag},
		{"head_tilt", HeadTilt},
		{"yawn", Idle},
		{"zoomies", Walking},
	}
	for _, tt := range tests {
		if got := StateForMood(tt.mood); got != tt.want {
			t.Errorf("StateForMood(%q) = %v, want %v", tt.mood, got, tt.want)
		}
	}
}

func TestStateForMoodUnknownDefaultsToIdle(t *testing.T) {
	unknown := []string{"", "bark", "TAIL_WAG", "tail wag", "sleep", "zoomies ", "💤"}
	for _, mood := range unknown {
		if got := StateForMood(mood); got != Idle {
			t.Errorf("StateForMood(%q) = %v, want Idle", mood, got)
		}
	}
}

func TestStateNames(t *testing.T) {
	want := map[string]bool{
		"idle": false, "walking": false, "sitting": false,
		"tailWag": false, "headTilt": false,
	}
	for _, s := range States() {
		name := s.String()
		if name == "" || name == "unknown" {
			t.Errorf("state %d has invalid name %q", int(s), name)
		}
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("state set is missing %q", name)
		}
	}
}

func TestExpressionNamesAndParse(t *testing.T) {
	for _, e := range Expressions() {
		name := e.String()
		if name == "" || name == "unknown" {
			t.Errorf("expression %d has invalid name %q", int(e), name)
		}
		got, err := ParseExpression(name)
		if err != nil {
			t.Fatalf("ParseExpression(%q): %v", name, err)
		}
		if got != e {
			t.Errorf("ParseExpression(%q) = %v, want %v", name, got, e)
		}
	}
	if _, err := ParseExpression("grumpy"); err == nil {
		t.Error("ParseExpression(grumpy): expected error")
	}
}
