package utils

// HoldLatch глушит клавишу, которая уже была зажата при входе в состояние,
// пока её не отпустят.
type HoldLatch struct {
	armed bool
}

// Arm запоминает, зажата ли клавиша в момент входа
func (l *HoldLatch) Arm(held bool) {
	l.armed = held
}

// Pass сообщает, считать ли удержание клавиши в этом кадре
func (l *HoldLatch) Pass(held bool) bool {
	if !held {
		l.armed = false
		return false
	}
	return !l.armed
}
