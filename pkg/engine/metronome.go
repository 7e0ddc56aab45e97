package engine

import "time"

// Metronome converts elapsed app time into a whole number of fixed
// simulation ticks. Frames render as fast as they like; the metronome
// decides how many ticks have fallen due since the last call, so the
// simulation advances at the same rate regardless of frame rate.
type Metronome struct {
	lastTick   time.Duration
	tickPeriod time.Duration
	totalTicks int64
}

// NewMetronome creates a metronome with the given tick period, starting
// from app time appNow.
func NewMetronome(appNow, tickPeriod time.Duration) *Metronome {
	return &Metronome{lastTick: appNow, tickPeriod: tickPeriod}
}

// DoTicks returns how many ticks elapsed between the last call and app
// time appNow, advancing the metronome's position by that many periods.
func (m *Metronome) DoTicks(appNow time.Duration) int64 {
	var ticks int64
	for m.lastTick+m.tickPeriod < appNow {
		m.lastTick += m.tickPeriod
		ticks++
	}
	m.totalTicks += ticks
	return ticks
}

// TickPeriod returns the fixed period between ticks.
func (m *Metronome) TickPeriod() time.Duration {
	return m.tickPeriod
}

// TickPeriodSeconds returns the tick period in seconds, the dt handed
// to the simulation on every tick.
func (m *Metronome) TickPeriodSeconds() float64 {
	return m.tickPeriod.Seconds()
}

// TotalTicks returns the number of ticks generated so far.
func (m *Metronome) TotalTicks() int64 {
	return m.totalTicks
}
