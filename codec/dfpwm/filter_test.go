package dfpwm

import "testing"

func TestFilterStepRounding(t *testing.T) {
	f := filter{charge: 0, strength: 512, lastTarget: TargetHigh}

	prior, next := f.step(TargetHigh)
	if prior != 0 {
		t.Fatalf("prior = %d, want 0", prior)
	}

	// 512*127/1024 = 63.5, rounded up by the half-unit bias.
	if next != 64 || f.charge != 64 {
		t.Fatalf("next = %d, charge = %d, want 64", next, f.charge)
	}

	if f.strength != 513 {
		t.Fatalf("strength = %d, want 513", f.strength)
	}
}

func TestFilterStepDegenerateNudge(t *testing.T) {
	tests := []struct {
		name   string
		charge int
		target int
		want   int
	}{
		{name: "up", charge: 10, target: TargetHigh, want: 11},
		{name: "down", charge: 10, target: TargetLow, want: 9},
		{name: "at high", charge: TargetHigh, target: TargetHigh, want: TargetHigh},
		{name: "at low", charge: TargetLow, target: TargetLow, want: TargetLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filter{charge: tt.charge, strength: 0, lastTarget: int8(tt.target)}
			_, next := f.step(tt.target)

			if next != tt.want {
				t.Fatalf("next = %d, want %d", next, tt.want)
			}
		})
	}
}

func TestFilterStrengthAdaptation(t *testing.T) {
	f := filter{strength: 100, lastTarget: TargetLow}

	f.step(TargetLow)
	if f.strength != 101 {
		t.Fatalf("same target: strength = %d, want 101", f.strength)
	}

	f.step(TargetHigh)
	if f.strength != 100 {
		t.Fatalf("flipped target: strength = %d, want 100", f.strength)
	}

	f = filter{strength: StrengthSaturation, lastTarget: TargetHigh}
	f.step(TargetHigh)
	if f.strength != StrengthSaturation {
		t.Fatalf("saturated: strength = %d, want %d", f.strength, StrengthSaturation)
	}
}

func TestFilterStrengthFloor(t *testing.T) {
	f := filter{strength: 0, lastTarget: TargetLow}

	for i := range 4096 {
		target := TargetHigh
		if i%2 == 1 {
			target = TargetLow
		}

		f.step(target)
		f.lastTarget = int8(target)

		if f.strength < StrengthFloor {
			t.Fatalf("step %d: strength %d below floor %d", i, f.strength, StrengthFloor)
		}
	}

	if f.strength != StrengthFloor {
		t.Fatalf("alternating targets: strength = %d, want %d", f.strength, StrengthFloor)
	}
}

func TestFilterDoesNotTouchLastTarget(t *testing.T) {
	f := filter{lastTarget: TargetLow}
	f.step(TargetHigh)

	if f.lastTarget != TargetLow {
		t.Fatalf("lastTarget = %d, want %d", f.lastTarget, TargetLow)
	}
}
