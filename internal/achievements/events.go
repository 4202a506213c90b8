package achievements

import "github.com/suzi-bot/suzi/internal/store"

// Event names fed into the tracker by the command handlers.
const (
	EventRoll     = "roll"
	EventQuestion = "pergunta"
	EventGame     = "jogo"
	EventRegister = "register"
	EventHelp     = "ajuda"
	EventProfile  = "perfil"
	EventAbout    = "sobre"
	EventLevel    = "nivel"
)

// Event is the payload a command handler fires into the tracker. DayKey,
// Hour and DoubleCrit are normalized fields: the tracker fills them in
// before any rule sees the event, unless the caller already supplied them.
type Event struct {
	Name  string
	Sides int
	Rolls []int
	Self  bool

	DayKey     string
	Hour       int
	hourSet    bool
	DoubleCrit bool
}

// WithHour pins the normalized hour field, mainly for tests.
func (e Event) WithHour(hour int) Event {
	e.Hour = hour
	e.hourSet = true
	return e
}

// State is the post-increment snapshot a rule predicate evaluates against.
type State struct {
	Counters store.UserCounters
	Meta     store.AchievementMeta
}

// applyCounter increments the counter mapped from the event name. Unmapped
// events increment nothing.
func applyCounter(counters *store.UserCounters, ev Event) {
	switch ev.Name {
	case EventRoll:
		counters.Rolls++
	case EventQuestion:
		counters.Questions++
	case EventGame:
		counters.Games++
	case EventRegister:
		counters.RegisterCount++
	case EventHelp:
		counters.HelpCount++
	case EventProfile:
		counters.ProfileCount++
	case EventAbout:
		counters.AboutCount++
	case EventLevel:
		if ev.Self {
			counters.SelfLevelEdits++
		}
	}
}

// naturalCount returns how many results in a d20 batch hit the given face.
func naturalCount(ev Event, face int) int {
	if ev.Name != EventRoll || ev.Sides != 20 {
		return 0
	}
	n := 0
	for _, r := range ev.Rolls {
		if r == face {
			n++
		}
	}
	return n
}
