package builderpool

import (
	"fmt"

	"github.com/chronos-tachyon/enumhelper"
)

// Error is the type for the error constants returned by this package.
type Error byte

const (
	// ErrNonPositive is returned when a configured size is zero.
	ErrNonPositive Error = iota

	// ErrExceedsMax is returned when InitialCapacity is larger than
	// MaxCapacity.
	ErrExceedsMax
)

var errorData = [...]enumhelper.EnumData{
	{GoName: "ErrNonPositive"},
	{GoName: "ErrExceedsMax"},
}

var errorText = [...]string{
	"must be a positive value",
	"must be less than or equal to the maximum capacity",
}

// GoString returns the name of the Go constant.
func (err Error) GoString() string {
	return enumhelper.DereferenceEnumData("Error", errorData[:], uint(err)).GoName
}

// Error returns the error message for this error.
func (err Error) Error() string {
	return errorText[err]
}

var _ fmt.GoStringer = Error(0)
var _ error = Error(0)

// Param identifies one of the numeric fields of Options.
type Param byte

const (
	// ParamInitialCapacity identifies Options.InitialCapacity.
	ParamInitialCapacity Param = iota

	// ParamMaxCapacity identifies Options.MaxCapacity.
	ParamMaxCapacity

	// ParamSlotCount identifies Options.SlotCount.
	ParamSlotCount
)

var paramData = [...]enumhelper.EnumData{
	{GoName: "ParamInitialCapacity"},
	{GoName: "ParamMaxCapacity"},
	{GoName: "ParamSlotCount"},
}

var paramText = [...]string{
	"InitialCapacity",
	"MaxCapacity",
	"SlotCount",
}

// GoString returns the name of the Go constant.
func (param Param) GoString() string {
	return enumhelper.DereferenceEnumData("Param", paramData[:], uint(param)).GoName
}

// String returns the name of the Options field.
func (param Param) String() string {
	return paramText[param]
}

var _ fmt.GoStringer = Param(0)
var _ fmt.Stringer = Param(0)

// ConfigError is returned by New when the given Options cannot be used to
// build a Pool.  It unwraps to one of the Error constants.
type ConfigError struct {
	Param Param
	Value uint
	Bound uint
	Err   Error
}

// Error returns the error message for this error.
func (err ConfigError) Error() string {
	if err.Err == ErrExceedsMax {
		return fmt.Sprintf("%s %d %s - %d", err.Param, err.Value, err.Err.Error(), err.Bound)
	}
	return fmt.Sprintf("%s %d %s", err.Param, err.Value, err.Err.Error())
}

// Unwrap returns the Error constant describing the kind of failure.
func (err ConfigError) Unwrap() error {
	return err.Err
}

var _ error = ConfigError{}
