package term

import (
	"context"

	"gridsnake/game/types"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Input collects termbox events on a background goroutine. The game loop
// drains them without blocking.
type Input struct {
	events chan termbox.Event
}

// NewInput starts the event collector. It runs until the process exits.
func NewInput() *Input {
	in := &Input{events: make(chan termbox.Event, 32)}
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(in.events)
	return in
}

func (in *Input) Poll() []types.Event {
	var events []types.Event
	for {
		select {
		case e := <-in.events:
			if ev := keyEvent(e); ev != types.EventNone {
				events = append(events, ev)
			}
		default:
			return events
		}
	}
}

func keyEvent(e termbox.Event) types.Event {
	switch e.Type {
	case termbox.EventError:
		log.WithError(e.Err).Warn("terminal input failed")
		return types.EventQuit
	case termbox.EventKey:
	default:
		return types.EventNone
	}

	switch e.Key {
	case termbox.KeyArrowUp:
		return types.EventUp
	case termbox.KeyArrowDown:
		return types.EventDown
	case termbox.KeyArrowLeft:
		return types.EventLeft
	case termbox.KeyArrowRight:
		return types.EventRight
	case termbox.KeyEsc:
		return types.EventEscape
	case termbox.KeyCtrlC:
		return types.EventQuit
	}

	switch e.Ch {
	case 'w', 'W':
		return types.EventUp
	case 's', 'S':
		return types.EventDown
	case 'a', 'A':
		return types.EventLeft
	case 'd', 'D':
		return types.EventRight
	case 'q', 'Q':
		return types.EventQuit
	}
	return types.EventNone
}

// Clock throttles the loop with a token bucket holding a single token.
type Clock struct {
	limiter *rate.Limiter
}

func (c *Clock) Tick(ctx context.Context, perSecond int) error {
	limit := rate.Limit(perSecond)
	if c.limiter == nil {
		c.limiter = rate.NewLimiter(limit, 1)
	} else if c.limiter.Limit() != limit {
		c.limiter.SetLimit(limit)
	}
	return errors.Wrap(c.limiter.Wait(ctx), "tick")
}
