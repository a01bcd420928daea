package manager

import (
	"time"
)

// SessionStats summarises a play session. Nothing is persisted.
type SessionStats struct {
	StartTime  time.Time     `json:"startTime"`
	Duration   time.Duration `json:"duration"`
	Ticks      int           `json:"ticks"`
	Resets     int           `json:"resets"`
	FoodEaten  int           `json:"foodEaten"`
	BestLength int           `json:"bestLength"`
}

// StateManager tracks session counters for logging and metrics.
type StateManager struct {
	startTime  time.Time
	ticks      int
	resets     int
	foodEaten  int
	bestLength int
	now        func() time.Time
}

func NewStateManager() *StateManager {
	sm := &StateManager{
		now:        time.Now,
		bestLength: 1,
	}
	sm.startTime = sm.now()
	return sm
}

func (sm *StateManager) RecordTick() {
	sm.ticks++
}

func (sm *StateManager) RecordReset() {
	sm.resets++
}

// RecordFood counts a meal and updates the high-water length.
func (sm *StateManager) RecordFood(length int) {
	sm.foodEaten++
	if length > sm.bestLength {
		sm.bestLength = length
	}
}

func (sm *StateManager) BestLength() int {
	return sm.bestLength
}

func (sm *StateManager) Stats() SessionStats {
	return SessionStats{
		StartTime:  sm.startTime,
		Duration:   sm.now().Sub(sm.startTime),
		Ticks:      sm.ticks,
		Resets:     sm.resets,
		FoodEaten:  sm.foodEaten,
		BestLength: sm.bestLength,
	}
}
