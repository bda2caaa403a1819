package ledger

// Record is a decoded typed response. The concrete type always matches the
// command variant that produced it.
type Record interface {
	record()
}

func (*DeviceInfo) record() {}
func (*AppInfo) record()    {}
func (*Version) record()    {}
