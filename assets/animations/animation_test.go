package animations

import "testing"

func TestAnimationAdvancesEverySpeedTicks(t *testing.T) {
	a := NewAnimation(4, 9)
	a.Play()

	for i := 0; i < 8; i++ {
		a.Update()
	}
	if a.Frame() != 0 {
		t.Fatalf("frame after 8 ticks = %d, want 0", a.Frame())
	}
	a.Update()
	if a.Frame() != 1 {
		t.Fatalf("frame after 9 ticks = %d, want 1", a.Frame())
	}
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(4, 1)
	a.Play()

	seen := []int{}
	for i := 0; i < 5; i++ {
		a.Update()
		seen = append(seen, a.Frame())
	}
	want := []int{1, 2, 3, 0, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, want %v", seen, want)
		}
	}
	if !a.Looped {
		t.Error("Looped should be set after wrapping")
	}
}

func TestAnimationStopFreezesFrame(t *testing.T) {
	a := NewAnimation(4, 1)
	a.Play()
	a.Update()
	a.Update()
	a.Stop()

	frame := a.Frame()
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != frame {
		t.Errorf("stopped animation moved from %d to %d", frame, a.Frame())
	}

	a.Play()
	if a.Frame() != 0 {
		t.Errorf("Play should restart at frame 0, got %d", a.Frame())
	}
}
