package builderpool

import (
	"runtime"
)

const (
	// DefaultInitialCapacity is the capacity of newly allocated buffers when
	// Options.HasInitialCapacity is false.
	DefaultInitialCapacity = 100

	// DefaultMaxCapacity is the largest capacity a pooled buffer may have
	// when Options.HasMaxCapacity is false.
	DefaultMaxCapacity = 8 * 1024

	// SlotsPerProcessor is multiplied by runtime.GOMAXPROCS(0) to obtain the
	// slot count when Options.HasSlotCount is false.
	SlotsPerProcessor = 5
)

// Options holds options for initializing an instance of Pool.
//
// Each numeric field is only consulted when its Has* flag is set; otherwise
// the default is used.  A field set to 0 with its flag set is rejected by New.
type Options struct {
	InitialCapacity    uint
	MaxCapacity        uint
	SlotCount          uint
	HasInitialCapacity bool
	HasMaxCapacity     bool
	HasSlotCount       bool

	// Scrub zeroes the full backing storage of every buffer accepted by
	// Return, not just its length.
	Scrub bool
}

// DefaultSlotCount returns the slot count used when Options.HasSlotCount is
// false.
func DefaultSlotCount() uint {
	return uint(runtime.GOMAXPROCS(0)) * SlotsPerProcessor
}

// resolve fills in defaults for every unset field and validates the result.
func (o Options) resolve() (Options, error) {
	if !o.HasInitialCapacity {
		o.InitialCapacity = DefaultInitialCapacity
		o.HasInitialCapacity = true
	}
	if !o.HasMaxCapacity {
		o.MaxCapacity = DefaultMaxCapacity
		o.HasMaxCapacity = true
	}
	if !o.HasSlotCount {
		o.SlotCount = DefaultSlotCount()
		o.HasSlotCount = true
	}

	if o.InitialCapacity == 0 {
		return o, ConfigError{Param: ParamInitialCapacity, Value: o.InitialCapacity, Err: ErrNonPositive}
	}
	if o.MaxCapacity == 0 {
		return o, ConfigError{Param: ParamMaxCapacity, Value: o.MaxCapacity, Err: ErrNonPositive}
	}
	if o.SlotCount == 0 {
		return o, ConfigError{Param: ParamSlotCount, Value: o.SlotCount, Err: ErrNonPositive}
	}
	if o.InitialCapacity > o.MaxCapacity {
		return o, ConfigError{
			Param: ParamInitialCapacity,
			Value: o.InitialCapacity,
			Bound: o.MaxCapacity,
			Err:   ErrExceedsMax,
		}
	}
	return o, nil
}
