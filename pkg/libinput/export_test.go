/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package libinput

// HoldNext takes the lock that serializes Next and returns its release.
func (s *EventStream) HoldNext() (release func()) {
	s.mu.Lock()
	return s.mu.Unlock
}
