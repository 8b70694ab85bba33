package ingester

import "time"

const (
	defaultPollInterval     = 5 * time.Second
	defaultRetryInterval    = 5 * time.Second
	defaultBootstrapWorkers = 20
	defaultBootstrapBatch   = 2000
	defaultCatchUpLimit     = 5000
)

// FollowerConfig tunes the header follower.
type FollowerConfig struct {
	// PollInterval is the wait between syncs when no block signal arrives.
	PollInterval time.Duration
	// RetryInterval is the back-off after a failed sync.
	RetryInterval time.Duration
	// BootstrapWorkers bounds parallel header fetches by height.
	BootstrapWorkers int
	// BootstrapBatch is the number of heights fetched per bulk round.
	BootstrapBatch uint64
	// CatchUpLimit bounds how many headers are walked back from the node's best
	// block. Falling further behind switches to fetching by height.
	CatchUpLimit uint64
}

func DefaultFollowerConfig() FollowerConfig {
	return FollowerConfig{
		PollInterval:     defaultPollInterval,
		RetryInterval:    defaultRetryInterval,
		BootstrapWorkers: defaultBootstrapWorkers,
		BootstrapBatch:   defaultBootstrapBatch,
		CatchUpLimit:     defaultCatchUpLimit,
	}
}

func (c FollowerConfig) withDefaults() FollowerConfig {
	def := DefaultFollowerConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = def.RetryInterval
	}
	if c.BootstrapWorkers <= 0 {
		c.BootstrapWorkers = def.BootstrapWorkers
	}
	if c.BootstrapBatch == 0 {
		c.BootstrapBatch = def.BootstrapBatch
	}
	if c.CatchUpLimit == 0 {
		c.CatchUpLimit = def.CatchUpLimit
	}
	return c
}
