// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy bounds how often a failed batch write is attempted.
type RetryPolicy struct {
	// MaxAttempts counts the first attempt; it must be positive.
	MaxAttempts int

	// BaseDelay is the wait after the first failure. It doubles after each
	// further failure.
	BaseDelay time.Duration
}

// Delay returns the wait after the given number of failed attempts.
func (p RetryPolicy) Delay(failures int) time.Duration {
	if failures < 1 {
		return 0
	}
	return p.BaseDelay << (failures - 1)
}

// Do calls write until it succeeds, MaxAttempts is reached or ctx ends.
// When every attempt fails the last error is returned, wrapped with the
// attempt count.
func (p RetryPolicy) Do(ctx context.Context, logger *slog.Logger, write func() error) error {
	if p.MaxAttempts <= 0 {
		return ErrInvalidMaxAttempts
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := write()
		if err == nil {
			if attempt > 1 {
				logger.Debug("batch written after retry", "attempt", attempt)
			}
			return nil
		}
		if attempt == p.MaxAttempts {
			return fmt.Errorf("gave up after %d attempts: %w", attempt, err)
		}

		delay := p.Delay(attempt)
		logger.Debug("batch write failed, retrying", "attempt", attempt, "delay", delay, "err", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
