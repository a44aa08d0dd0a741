package actions

import (
	"context"
	"fmt"

	"poke-pets/internal/domain/catalog"
	"poke-pets/internal/domain/inventory"
	"poke-pets/internal/domain/pets"
)

// Montos de mutación de stats por acción. Valores del juego original.
const (
	snackHungerGain    = 10
	snackHappinessLoss = 5

	favoriteHungerGain    = 50
	favoriteHappinessGain = 50
	leastFavHappinessLoss = 20
	neutralHungerGain     = 15

	playHappinessGain  = 10
	playHungerLoss     = 10
	playHungerMin      = 30 // hunger <= 30 => demasiado hambrienta para jugar
	forageHungerMin    = 10 // hunger <= 10 => demasiado cansada para forrajear
	forageTiredPenalty = 5
	forageFoundGain    = 50
	forageMissLoss     = 10
	forageHungerCost   = 30
)

// Service orquesta las acciones de juego: valida ownership, consulta el
// outcome engine y muta los stats de la mascota.
type Service struct {
	pets      *pets.Service
	inventory *inventory.Service
	catalog   *catalog.Service
	die       *Die

	// pickPhrase elige un índice de playPhrases. Inyectable en tests.
	pickPhrase func(n int) int
}

func NewService(petsSvc *pets.Service, invSvc *inventory.Service, catalogSvc *catalog.Service) *Service {
	die := NewDie()
	return &Service{
		pets:       petsSvc,
		inventory:  invSvc,
		catalog:    catalogSvc,
		die:        die,
		pickPhrase: func(n int) int { return die.Roll(n) - 1 },
	}
}

// FeedSnack: la manzana genérica. Llena un poco, aburre un poco.
func (s *Service) FeedSnack(ctx context.Context, petID, actorUserID string) (FeedResult, error) {
	p, err := s.pets.GetOwned(ctx, petID, actorUserID)
	if err != nil {
		return FeedResult{}, err
	}

	if p.Hunger == pets.StatMax {
		return FeedResult{
			Outcome: FeedNotHungry,
			Pet:     p,
			Message: fmt.Sprintf("%s isn't hungry right now!", p.Nickname),
		}, nil
	}

	p.Hunger = p.Hunger.Increase(snackHungerGain)
	p.Happiness = p.Happiness.Decrease(snackHappinessLoss)

	p, err = s.pets.ApplyStats(ctx, p)
	if err != nil {
		return FeedResult{}, err
	}

	return FeedResult{
		Outcome: FeedSnackEaten,
		Pet:     p,
		Message: fmt.Sprintf("%s crunches on the apple!", p.Nickname),
	}, nil
}

// FeedBerry alimenta con un item del inventario del actor. El efecto depende
// de la clasificación favorite/least-favorite/neutral del tipo de la especie.
func (s *Service) FeedBerry(ctx context.Context, petID, itemID, actorUserID string) (FeedResult, error) {
	p, err := s.pets.GetOwned(ctx, petID, actorUserID)
	if err != nil {
		return FeedResult{}, err
	}

	item, err := s.inventory.GetOwned(ctx, itemID, actorUserID)
	if err != nil {
		return FeedResult{}, err
	}

	berry, err := s.catalog.GetBerry(ctx, item.BerryID)
	if err != nil {
		return FeedResult{}, err
	}

	sp, err := s.catalog.GetSpecies(ctx, p.SpeciesID)
	if err != nil {
		return FeedResult{}, err
	}
	tp, err := s.catalog.GetTypeProfile(ctx, sp.Type)
	if err != nil {
		return FeedResult{}, err
	}

	// Sin hambre: no se muta nada y el item queda en el inventario.
	if p.Hunger == pets.StatMax {
		return FeedResult{
			Outcome: FeedNotHungry,
			Pet:     p,
			Message: fmt.Sprintf("%s isn't hungry!", p.Nickname),
		}, nil
	}

	switch ClassifyBerry(tp, berry.ID) {
	case MatchFavorite:
		p.Hunger = p.Hunger.Increase(favoriteHungerGain)
		p.Happiness = p.Happiness.Increase(favoriteHappinessGain)
		if p, err = s.pets.ApplyStats(ctx, p); err != nil {
			return FeedResult{}, err
		}
		if err := s.pets.AddTasted(ctx, p.ID, berry.ID); err != nil {
			return FeedResult{}, err
		}
		if err := s.inventory.Consume(ctx, item.ID); err != nil {
			return FeedResult{}, err
		}
		return FeedResult{
			Outcome: FeedFavorite,
			Pet:     p,
			Message: fmt.Sprintf("%s gobbles up the berry! Delicious!", p.Nickname),
		}, nil

	case MatchLeastFavorite:
		p.Happiness = p.Happiness.Decrease(leastFavHappinessLoss)
		if p, err = s.pets.ApplyStats(ctx, p); err != nil {
			return FeedResult{}, err
		}
		if err := s.pets.AddTasted(ctx, p.ID, berry.ID); err != nil {
			return FeedResult{}, err
		}
		// El item NO se consume en esta rama. Asimetría heredada del juego
		// original, mantenida a propósito: escupir la berry te la devuelve.
		return FeedResult{
			Outcome: FeedLeastFavorite,
			Pet:     p,
			Message: fmt.Sprintf("%s spits out the berry! Yuck!", p.Nickname),
		}, nil

	default:
		p.Hunger = p.Hunger.Increase(neutralHungerGain)
		if p, err = s.pets.ApplyStats(ctx, p); err != nil {
			return FeedResult{}, err
		}
		// Neutral no toca el berrydex (solo favorite/least-favorite registran).
		if err := s.inventory.Consume(ctx, item.ID); err != nil {
			return FeedResult{}, err
		}
		return FeedResult{
			Outcome: FeedNeutral,
			Pet:     p,
			Message: fmt.Sprintf("%s eats the berry. Yum!", p.Nickname),
		}, nil
	}
}

// Play: sube happiness, baja hunger. Con mucha hambre no juega.
func (s *Service) Play(ctx context.Context, petID, actorUserID string) (PlayResult, error) {
	p, err := s.pets.GetOwned(ctx, petID, actorUserID)
	if err != nil {
		return PlayResult{}, err
	}

	alreadyHappy := p.Happiness == pets.StatMax

	if p.Hunger <= playHungerMin {
		return PlayResult{
			Outcome:      PlayTooHungry,
			Pet:          p,
			AlreadyHappy: alreadyHappy,
			Message:      fmt.Sprintf("%s is too hungry to play!", p.Nickname),
		}, nil
	}

	p.Happiness = p.Happiness.Increase(playHappinessGain)
	p.Hunger = p.Hunger.Decrease(playHungerLoss)

	p, err = s.pets.ApplyStats(ctx, p)
	if err != nil {
		return PlayResult{}, err
	}

	phrase := playPhrases[s.pickPhrase(len(playPhrases))]
	return PlayResult{
		Outcome:      PlayPlayed,
		Pet:          p,
		AlreadyHappy: alreadyHappy,
		Message:      p.Nickname + phrase,
	}, nil
}

// Forage manda a la mascota a buscar berries para el inventario del dueño.
func (s *Service) Forage(ctx context.Context, petID, actorUserID string) (ForageResult, error) {
	p, err := s.pets.GetOwned(ctx, petID, actorUserID)
	if err != nil {
		return ForageResult{}, err
	}

	// Muy cansada: penaliza happiness y ni siquiera se tira el dado.
	if p.Hunger <= forageHungerMin {
		p.Happiness = p.Happiness.Decrease(forageTiredPenalty)
		if p, err = s.pets.ApplyStats(ctx, p); err != nil {
			return ForageResult{}, err
		}
		return ForageResult{
			Outcome: ForageTooTired,
			Pet:     p,
			Message: fmt.Sprintf("%s is too tired to go foraging!", p.Nickname),
		}, nil
	}

	roll := s.die.AttemptForage()

	result := ForageResult{Pet: p}
	if roll.Found {
		berry, err := s.catalog.GetBerry(ctx, roll.BerryID)
		if err != nil {
			// El d10 asume ids 1..10 sembrados; un miss acá es catálogo roto.
			return ForageResult{}, err
		}
		item, err := s.inventory.Add(ctx, p.OwnerUserID, berry.ID)
		if err != nil {
			return ForageResult{}, err
		}

		p.Happiness = p.Happiness.Increase(forageFoundGain)
		if p, err = s.pets.ApplyStats(ctx, p); err != nil {
			return ForageResult{}, err
		}

		result.Outcome = ForageFound
		result.Berry = &berry
		result.Item = &item
		result.Message = fmt.Sprintf("%s found a %s berry!", p.Nickname, berry.Name)
	} else {
		p.Happiness = p.Happiness.Decrease(forageMissLoss)
		if p, err = s.pets.ApplyStats(ctx, p); err != nil {
			return ForageResult{}, err
		}

		result.Outcome = ForageNothing
		result.Message = fmt.Sprintf("%s didn't find anything!", p.Nickname)
	}

	// El costo de hunger aplica siempre que se haya forrajeado (haya o no hallazgo).
	p.Hunger = p.Hunger.Decrease(forageHungerCost)
	if p, err = s.pets.ApplyStats(ctx, p); err != nil {
		return ForageResult{}, err
	}

	result.Pet = p
	return result, nil
}
