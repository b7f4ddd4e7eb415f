package realtime

import "time"

func (n *Notifier) SetClock(now func() time.Time) {
	n.now = now
}
