// Package pokeapi implementa speciesdata.Source contra la PokeAPI pública.
// Se usa una sola vez: el import de especies cuando el catálogo está vacío.
package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"poke-pets/internal/platform/httpclient"
	"poke-pets/internal/ports/speciesdata"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

var ErrIncompleteData = errors.New("pokeapi: incomplete species data")

type Client struct {
	http *httpclient.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// Shape mínimo de la respuesta /pokemon/{id}. El resto se ignora.
type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		Other struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

func (c *Client) Fetch(ctx context.Context, id int) (speciesdata.SpeciesData, error) {
	if id <= 0 {
		return speciesdata.SpeciesData{}, fmt.Errorf("pokeapi: invalid id %d", id)
	}

	var resp pokemonResponse
	if err := c.http.DoJSON(ctx, "GET", fmt.Sprintf("/pokemon/%d", id), nil, nil, &resp); err != nil {
		return speciesdata.SpeciesData{}, err
	}

	if resp.Name == "" || len(resp.Types) == 0 {
		return speciesdata.SpeciesData{}, ErrIncompleteData
	}

	return speciesdata.SpeciesData{
		ID:        resp.ID,
		Name:      resp.Name,
		SpriteURL: resp.Sprites.Other.OfficialArtwork.FrontDefault,
		// El primer type es el primario; las preferencias de berries se
		// resuelven contra ese nombre.
		PrimaryType: resp.Types[0].Type.Name,
	}, nil
}
