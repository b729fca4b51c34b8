package clock

import (
	"sync"
	"time"

	"github.com/they4kman/gosweep9/game"
)

// Clock delivers ticks on a fixed cadence between Start and Stop. Every Start
// begins a fresh cadence; once Stop returns no further tick is delivered.
type Clock struct {
	interval time.Duration
	ticks    chan time.Time

	lock sync.Mutex
	done chan struct{}
	wg   sync.WaitGroup
}

func New(interval time.Duration) *Clock {
	return &Clock{
		interval: interval,
		ticks:    make(chan time.Time),
	}
}

// Ticks is shared across restarts; it is never closed
func (clock *Clock) Ticks() <-chan time.Time {
	return clock.ticks
}

func (clock *Clock) Running() bool {
	clock.lock.Lock()
	defer clock.lock.Unlock()
	return clock.done != nil
}

func (clock *Clock) Start() {
	clock.lock.Lock()
	defer clock.lock.Unlock()

	if clock.done != nil {
		return
	}

	done := make(chan struct{})
	clock.done = done

	clock.wg.Add(1)
	go clock.run(done)
}

func (clock *Clock) run(done <-chan struct{}) {
	defer clock.wg.Done()

	ticker := time.NewTicker(clock.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case t := <-ticker.C:
			select {
			case clock.ticks <- t:
			case <-done:
				return
			}
		}
	}
}

func (clock *Clock) Stop() {
	clock.lock.Lock()
	done := clock.done
	clock.done = nil
	clock.lock.Unlock()

	if done == nil {
		return
	}
	close(done)
	clock.wg.Wait()
}

// Sync runs the clock exactly while status is Playing
func (clock *Clock) Sync(status game.Status) {
	if status == game.Playing {
		clock.Start()
	} else {
		clock.Stop()
	}
}
