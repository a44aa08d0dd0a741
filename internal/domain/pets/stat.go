package pets

// Stat es un valor acotado a [0,100] con aritmética saturante.
// Nunca se observa fuera de rango; los deltas negativos no existen
// (increase/decrease reciben montos ya validados como no-negativos).
type Stat int

const (
	StatMin = 0
	StatMax = 100

	// DefaultStat es el valor inicial de hunger y happiness al adoptar.
	DefaultStat Stat = 50
)

// Increase devuelve min(100, s+amt).
func (s Stat) Increase(amt int) Stat {
	v := int(s) + amt
	if v > StatMax {
		return StatMax
	}
	return Stat(v)
}

// Decrease devuelve max(0, s-amt).
func (s Stat) Decrease(amt int) Stat {
	v := int(s) - amt
	if v < StatMin {
		return StatMin
	}
	return Stat(v)
}
