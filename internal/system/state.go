package system

import (
	"go-nova-defense/internal/component"
	"go-nova-defense/internal/config"
	"go-nova-defense/internal/entity"
	"go-nova-defense/internal/event"
)

// Cleanup убирает уничтоженные ракеты, взорвавшиеся перехватчики и догоревшие взрывы.
func Cleanup(prev entity.World) entity.World {
	w := prev.Clone()

	rockets := w.Rockets[:0]
	for _, r := range w.Rockets {
		if !r.Destroyed {
			rockets = append(rockets, r)
		}
	}
	w.Rockets = rockets

	missiles := w.Missiles[:0]
	for _, m := range w.Missiles {
		if !m.Exploded {
			missiles = append(missiles, m)
		}
	}
	w.Missiles = missiles

	explosions := w.Explosions[:0]
	for _, e := range w.Explosions {
		if !e.Finished {
			explosions = append(explosions, e)
		}
	}
	w.Explosions = explosions
	return w
}

// EvaluateOutcome переводит PLAYING в WON или LOST. Победа проверяется первой,
// потеря городов партию не заканчивает.
func EvaluateOutcome(prev entity.World) (entity.World, []event.Event) {
	if prev.Phase != component.PhasePlaying {
		return prev, nil
	}
	w := prev
	switch {
	case w.Score >= config.WinScore:
		w.Phase = component.PhaseWon
		return w, []event.Event{{Type: event.GameWon, Data: event.ScoreData{Score: w.Score}}}
	case w.AllBatteriesDestroyed():
		w.Phase = component.PhaseLost
		return w, []event.Event{{Type: event.GameLost, Data: event.ScoreData{Score: w.Score}}}
	}
	return w, nil
}
