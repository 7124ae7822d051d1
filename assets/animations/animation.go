package animations

// Animation steps through a fixed number of frames, advancing one frame every
// SpeedInTps ticks and wrapping back to the first frame.
type Animation struct {
	Count        int     // number of frames in the loop
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool
	Playing      bool
}

func (a *Animation) Update() {
	if !a.Playing || a.Count == 0 {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter <= 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame++
		if a.frame >= a.Count {
			a.Looped = true
			a.frame = 0
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Play starts the loop from its first frame.
func (a *Animation) Play() {
	a.Restart()
	a.Playing = true
}

// Stop freezes the animation on its current frame.
func (a *Animation) Stop() {
	a.Playing = false
}

func (a *Animation) Restart() {
	a.frame = 0
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(count int, speed float32) *Animation {
	return &Animation{
		Count:        count,
		SpeedInTps:   speed,
		frameCounter: speed,
	}
}
