package monitor

// MonitorError is a monitor configuration or input error
type MonitorError string

func (e MonitorError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     MonitorError = "config cannot be nil"
	ErrNilClock      MonitorError = "clock cannot be nil"
	ErrNilEvictor    MonitorError = "evictor cannot be nil"
	ErrNilSubscriber MonitorError = "subscriber cannot be nil"
	ErrNilInput      MonitorError = "input cannot be nil"
	ErrMissingRoom   MonitorError = "room id is required"
	ErrMissingPlayer MonitorError = "player id is required"
)
