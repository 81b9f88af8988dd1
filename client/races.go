package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Race is a race entry as the backend returns it.
type Race struct {
	ID          string `json:"_id,omitempty"`
	Race        string `json:"race"`
	Date        string `json:"date"`
	Year        int    `json:"year"`
	CountryCode string `json:"country_code"`
	Class       string `json:"class"`
	IsStageRace bool   `json:"is_stage_race"`
}

// Validate applies the create/edit rules before a race is sent.
func (r *Race) Validate() error {
	var problems []string
	if strings.TrimSpace(r.Race) == "" {
		problems = append(problems, "race name is required")
	}
	if r.Date == "" {
		problems = append(problems, "date is required")
	}
	maxYear := time.Now().Year() + 10
	if r.Year < 1800 || r.Year > maxYear {
		problems = append(problems, fmt.Sprintf("year must be between 1800 and %d", maxYear))
	}
	if r.CountryCode == "" {
		problems = append(problems, "country is required")
	}
	if r.Class == "" {
		problems = append(problems, "classification is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid race: %s", strings.Join(problems, "; "))
	}
	return nil
}

// RaceService covers the /races endpoints.
type RaceService struct {
	client *Client
}

// List returns one page of races plus the backend's total count.
func (s *RaceService) List(ctx context.Context, opts ListOptions) ([]Race, int, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/races", nil, opts.query())
	if err != nil {
		return nil, 0, err
	}
	var envelope struct {
		Data       []Race `json:"data"`
		TotalRaces int    `json:"totalRaces"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, 0, &Error{Message: msgSomethingWentWrong}
	}
	return envelope.Data, envelope.TotalRaces, nil
}

func (s *RaceService) Get(ctx context.Context, id string) (*Race, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/races/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data Race `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return &envelope.Data, nil
}

func (s *RaceService) Create(ctx context.Context, race *Race) error {
	if err := race.Validate(); err != nil {
		return err
	}
	_, err := s.client.Request(ctx, http.MethodPost, "/races", race, nil)
	return err
}

func (s *RaceService) Update(ctx context.Context, id string, race *Race) error {
	if err := race.Validate(); err != nil {
		return err
	}
	_, err := s.client.Request(ctx, http.MethodPut, "/races/"+id, race, nil)
	return err
}

func (s *RaceService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Request(ctx, http.MethodDelete, "/races/"+id, nil, nil)
	return err
}

// Stages lists the stages attached to a stage race.
func (s *RaceService) Stages(ctx context.Context, raceID string) ([]Stage, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/stages/race/"+raceID, nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []Stage `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return envelope.Data, nil
}
