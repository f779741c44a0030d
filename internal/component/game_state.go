package component

// Phase - фаза партии
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

// Terminal - партия закончилась и ждёт рестарта.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}
