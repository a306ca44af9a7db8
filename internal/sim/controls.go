package sim

// Controls are the driver inputs. Accelerate is negative for forward
// drive; Steer is positive to the left.
type Controls struct {
	Accelerate float32 // -1, 0 or 1
	Steer      float32 // -1, 0 or 1
	Handbrake  bool
}

// SetControls stores the inputs and applies them to the active car. They
// carry over to any car selected later.
func (s *Session) SetControls(c Controls) {
	s.controls = c
	s.applyControls()
}

// Controls returns the current inputs.
func (s *Session) Controls() Controls {
	return s.controls
}

func (s *Session) applyControls() {
	if s.vehicle == nil {
		return
	}
	h := s.vehicle.handle
	h.SetAccelerate(s.controls.Accelerate)
	h.SetSteer(s.controls.Steer)
	if s.controls.Handbrake {
		h.SetHandbrake(1)
	} else {
		h.SetHandbrake(0)
	}
}
