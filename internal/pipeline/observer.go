package pipeline

import (
	"time"
)

// Stage identifies one step of a run.
type Stage string

const (
	StageMasterData    Stage = "master data"
	StageTimeDimension Stage = "time dimension"
	StageCalendar      Stage = "calendar"
	StageDisruptions   Stage = "supply disruptions"
	StageFactors       Stage = "external factors"
	StagePromotions    Stage = "promotions"
	StageDemand        Stage = "demand forecast"
	StageLanes         Stage = "transport lanes"
	StageInventory     Stage = "inventory"
	StageProduction    Stage = "production plan"
	StageKPI           Stage = "kpi dashboard"
)

// Stages lists every stage in run order.
var Stages = []Stage{
	StageMasterData,
	StageTimeDimension,
	StageCalendar,
	StageDisruptions,
	StageFactors,
	StagePromotions,
	StageDemand,
	StageLanes,
	StageInventory,
	StageProduction,
	StageKPI,
}

// Status is the state of a stage reported in an Event.
type Status int

const (
	StatusPending Status = iota
	StatusStarted
	StatusFinished
	StatusFailed
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusStarted:
		return "running"
	case StatusFinished:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Event reports a stage transition.
type Event struct {
	Stage   Stage
	Status  Status
	Rows    int
	Elapsed time.Duration
	Err     error
}

// Observer receives stage events. OnEvent is called synchronously from the
// generating goroutine.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}
