package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
	}{
		{"UINormal should be 0", UINormal, 0},
		{"UIHovered should be 1", UIHovered, 1},
		{"UIClicked should be 2", UIClicked, 2},
		{"UIDisabled should be 3", UIDisabled, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
		})
	}
}

func TestScreenPositionComponent_Resolved(t *testing.T) {
	tests := []struct {
		name         string
		pos          ScreenPositionComponent
		wantX, wantY float64
	}{
		{name: "无偏移", pos: ScreenPositionComponent{X: 100, Y: 200}, wantX: 100, wantY: 200},
		{name: "正偏移", pos: ScreenPositionComponent{X: 100, Y: 200, OffsetX: 30, OffsetY: 5}, wantX: 130, wantY: 205},
		{name: "负偏移", pos: ScreenPositionComponent{X: 100, Y: 200, OffsetX: -600, OffsetY: -250}, wantX: -500, wantY: -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.pos.Resolved()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Resolved() = (%v, %v), 期望 (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestVisibilityComponent_Visible(t *testing.T) {
	tests := []struct {
		alpha float64
		want  bool
	}{
		{0, false},
		{0.001, true},
		{1, true},
	}
	for _, tt := range tests {
		v := VisibilityComponent{Alpha: tt.alpha}
		if got := v.Visible(); got != tt.want {
			t.Errorf("Alpha=%v Visible() = %v, 期望 %v", tt.alpha, got, tt.want)
		}
	}
}
