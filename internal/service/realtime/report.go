package realtime

import "github.com/google/uuid"

// Outcome - результат одной публикации.
type Outcome struct {
	Channel string
	Err     error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Report собирает результаты всех публикаций одного события.
// Notifier только логирует отчет, наружу ошибки брокера не выходят.
type Report struct {
	Event     EventType
	MissionID uuid.UUID
	Outcomes  []Outcome
}

func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}
