package achievements

// Rarity is a cosmetic tier used only for display grouping.
type Rarity string

const (
	RarityComum Rarity = "comum"
	RarityRara  Rarity = "rara"
	RarityEpica Rarity = "epica"
)

// Definition is one static achievement rule. Condition is a pure predicate
// over the normalized event and the post-increment state snapshot; it runs
// only while the achievement is still locked.
type Definition struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Rarity      Rarity
	Condition   func(ev Event, st State) bool
}

// definitions is the fixed rule table, evaluated in order. The table is
// built once at init and never mutated.
var definitions = []Definition{
	{
		ID:          "primeiro-dado",
		Name:        "Primeiro Dado",
		Description: "Rolou dados pela primeira vez",
		Emoji:       "🎲",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Rolls >= 1
		},
	},
	{
		ID:          "decimo-dado",
		Name:        "Viciado nos Dados",
		Description: "Rolou dados 10 vezes",
		Emoji:       "🎯",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Rolls >= 10
		},
	},
	{
		ID:          "centenario",
		Name:        "Centenário",
		Description: "Rolou dados 100 vezes",
		Emoji:       "💯",
		Rarity:      RarityRara,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Rolls >= 100
		},
	},
	{
		ID:          "mao-de-ferro",
		Name:        "Mão de Ferro",
		Description: "Rolou dados 1000 vezes",
		Emoji:       "🦾",
		Rarity:      RarityEpica,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Rolls >= 1000
		},
	},
	{
		ID:          "sorte-grande",
		Name:        "Sorte Grande",
		Description: "Tirou um 20 natural no d20",
		Emoji:       "🍀",
		Rarity:      RarityRara,
		Condition: func(ev Event, st State) bool {
			return naturalCount(ev, 20) >= 1
		},
	},
	{
		ID:          "quase",
		Name:        "Quase...",
		Description: "Tirou um 1 natural no d20",
		Emoji:       "💀",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return naturalCount(ev, 1) >= 1
		},
	},
	{
		ID:          "coruja",
		Name:        "Coruja",
		Description: "Rolou dados de madrugada",
		Emoji:       "🦉",
		Rarity:      RarityRara,
		Condition: func(ev Event, st State) bool {
			return ev.Name == EventRoll && ev.Hour >= 0 && ev.Hour < 5
		},
	},
	{
		ID:          "curioso",
		Name:        "Curioso",
		Description: "Fez 10 perguntas para a Suzi",
		Emoji:       "❓",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Questions >= 10
		},
	},
	{
		ID:          "sabio",
		Name:        "Sábio",
		Description: "Fez 50 perguntas para a Suzi",
		Emoji:       "🧙",
		Rarity:      RarityRara,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Questions >= 50
		},
	},
	{
		ID:          "oraculo",
		Name:        "Oráculo",
		Description: "Fez 200 perguntas para a Suzi",
		Emoji:       "🔮",
		Rarity:      RarityEpica,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Questions >= 200
		},
	},
	{
		ID:          "jogador",
		Name:        "Jogador",
		Description: "Consultou 5 jogos",
		Emoji:       "🕹️",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Games >= 5
		},
	},
	{
		ID:          "veterano",
		Name:        "Veterano",
		Description: "Consultou 25 jogos",
		Emoji:       "🏆",
		Rarity:      RarityRara,
		Condition: func(ev Event, st State) bool {
			return st.Counters.Games >= 25
		},
	},
	{
		ID:          "recruta",
		Name:        "Recruta",
		Description: "Registrou-se pela primeira vez",
		Emoji:       "📋",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.RegisterCount >= 1
		},
	},
	{
		ID:          "estudioso",
		Name:        "Estudioso",
		Description: "Pediu ajuda 5 vezes",
		Emoji:       "📖",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.HelpCount >= 5
		},
	},
	{
		ID:          "vaidoso",
		Name:        "Vaidoso",
		Description: "Olhou o próprio perfil 10 vezes",
		Emoji:       "🪞",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.ProfileCount >= 10
		},
	},
	{
		ID:          "fiel",
		Name:        "Fiel",
		Description: "Visitou o perfil em 7 dias diferentes",
		Emoji:       "📅",
		Rarity:      RarityRara,
		Condition: func(ev Event, st State) bool {
			return len(st.Meta.ProfileDays) >= 7
		},
	},
	{
		ID:          "historiador",
		Name:        "Historiador",
		Description: "Leu o /sobre 3 vezes",
		Emoji:       "📜",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.AboutCount >= 3
		},
	},
	{
		ID:          "estiloso",
		Name:        "Estiloso",
		Description: "Personalizou o próprio cartão de nível",
		Emoji:       "🎨",
		Rarity:      RarityComum,
		Condition: func(ev Event, st State) bool {
			return st.Counters.SelfLevelEdits >= 1
		},
	},
}

// Definitions returns the rule table in evaluation order.
func Definitions() []Definition {
	return definitions
}

// Lookup returns the definition for an id, if it exists.
func Lookup(id string) (Definition, bool) {
	for _, d := range definitions {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
