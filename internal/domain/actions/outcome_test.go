package actions

import (
	"testing"

	"poke-pets/internal/domain/catalog"
)

func fixedDie(rolls ...int) *Die {
	i := 0
	return &Die{roll: func(n int) int {
		v := rolls[i%len(rolls)]
		i++
		return v
	}}
}

func TestDie_RollBounds(t *testing.T) {
	if got := fixedDie(0).Roll(10); got != 1 {
		t.Fatalf("Roll(10) with raw 0 = %d, want 1", got)
	}
	if got := fixedDie(9).Roll(10); got != 10 {
		t.Fatalf("Roll(10) with raw 9 = %d, want 10", got)
	}
	// max <= 1 degenera a 1 sin tocar el roll.
	if got := fixedDie(99).Roll(1); got != 1 {
		t.Fatalf("Roll(1) = %d, want 1", got)
	}
	if got := fixedDie(99).Roll(0); got != 1 {
		t.Fatalf("Roll(0) = %d, want 1", got)
	}
}

func TestDie_AttemptForage(t *testing.T) {
	// d100 en [1,9] => fracaso.
	if r := fixedDie(8).AttemptForage(); r.Found {
		t.Fatalf("raw 8 (=> 9) should miss, got %+v", r)
	}
	// d100 == 10 ya es éxito: el umbral es estrictamente menor.
	if r := fixedDie(9, 4).AttemptForage(); !r.Found || r.BerryID != 5 {
		t.Fatalf("raw 9 (=> 10) should hit berry 5, got %+v", r)
	}
	// El d10 mapea directo a ids 1..10.
	if r := fixedDie(50, 9).AttemptForage(); !r.Found || r.BerryID != 10 {
		t.Fatalf("raw 9 on d10 should map to berry 10, got %+v", r)
	}
}

func TestClassifyBerry(t *testing.T) {
	tp := catalog.TypeProfile{Name: "grass", FavoriteBerryID: 8, LeastFavoriteBerryID: 9}

	cases := []struct {
		berryID int
		want    BerryMatch
	}{
		{8, MatchFavorite},
		{9, MatchLeastFavorite},
		{1, MatchNeutral},
		{10, MatchNeutral},
	}
	for _, tc := range cases {
		if got := ClassifyBerry(tp, tc.berryID); got != tc.want {
			t.Fatalf("ClassifyBerry(grass, %d) = %s, want %s", tc.berryID, got, tc.want)
		}
	}
}
