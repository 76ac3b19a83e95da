package input

import "testing"

func TestKeys_Interface(t *testing.T) {
	tests := []struct {
		name string
		keys Keys
		want [5]bool
	}{
		{"none", Keys{}, [5]bool{}},
		{"left", Keys{Left: true}, [5]bool{true, false, false, false, false}},
		{"right_and_fire", Keys{Right: true, Fire: true}, [5]bool{false, true, false, false, true}},
		{"up_down", Keys{Up: true, Down: true}, [5]bool{false, false, true, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ui Interface = tt.keys
			got := [5]bool{ui.IsLeft(), ui.IsRight(), ui.IsUp(), ui.IsDown(), ui.IsFire()}
			if got != tt.want {
				t.Errorf("controls = %v, want %v", got, tt.want)
			}
			if tt.keys.Any() != (tt.keys != Keys{}) {
				t.Errorf("Any() = %v for %+v", tt.keys.Any(), tt.keys)
			}
		})
	}
}

func TestKeys_Merge(t *testing.T) {
	got := Keys{Left: true}.Merge(Keys{Fire: true})
	if got != (Keys{Left: true, Fire: true}) {
		t.Errorf("Merge() = %+v, want left and fire", got)
	}
	if None.IsFire() {
		t.Error("None.IsFire() = true")
	}
}
