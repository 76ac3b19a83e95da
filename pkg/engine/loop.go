package engine

import (
	"context"
	"errors"
	"time"
)

// ErrStop ends Run cleanly when returned from a tick.
var ErrStop = errors.New("stop requested")

// Run calls tick frameRate times per second until ctx is done or tick
// returns an error. ErrStop and cancellation both return nil.
func Run(ctx context.Context, frameRate int, tick func() error) error {
	if frameRate <= 0 {
		frameRate = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := tick(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
	}
}
