package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// TeamRider is a rider entry inside a team roster.
type TeamRider struct {
	RiderID      string `json:"rider_id"`
	RiderName    string `json:"riderName"`
	RiderCountry string `json:"riderCountry,omitempty"`
}

// Team is a team as the backend returns it.
type Team struct {
	ID       string      `json:"_id,omitempty"`
	TeamName string      `json:"teamName"`
	Flag     string      `json:"flag,omitempty"`
	Year     int         `json:"year"`
	Riders   []TeamRider `json:"riders"`
}

// Validate applies the create/edit rules; a team needs a name and at least
// one rider.
func (t *Team) Validate() error {
	var problems []string
	if strings.TrimSpace(t.TeamName) == "" {
		problems = append(problems, "team name is required")
	}
	if len(t.Riders) == 0 {
		problems = append(problems, "at least one rider is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid team: %s", strings.Join(problems, "; "))
	}
	return nil
}

// TeamService covers the /teams endpoints.
type TeamService struct {
	client *Client
}

type teamListEnvelope struct {
	Data      []Team `json:"data"`
	TotalTeam int    `json:"totalteam"`
}

// List returns one page of teams plus the backend's total count.
func (s *TeamService) List(ctx context.Context, opts ListOptions) ([]Team, int, error) {
	return s.list(ctx, "/teams", opts)
}

// ListByYear filters teams by season.
func (s *TeamService) ListByYear(ctx context.Context, year int, opts ListOptions) ([]Team, int, error) {
	return s.list(ctx, "/teams/year/"+strconv.Itoa(year), opts)
}

// ListByCountry filters teams by country code.
func (s *TeamService) ListByCountry(ctx context.Context, countryCode string, opts ListOptions) ([]Team, int, error) {
	return s.list(ctx, "/teams/flag/"+countryCode, opts)
}

func (s *TeamService) list(ctx context.Context, path string, opts ListOptions) ([]Team, int, error) {
	data, err := s.client.Request(ctx, http.MethodGet, path, nil, opts.query())
	if err != nil {
		return nil, 0, err
	}
	var envelope teamListEnvelope
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, 0, &Error{Message: msgSomethingWentWrong}
	}
	return envelope.Data, envelope.TotalTeam, nil
}

func (s *TeamService) Get(ctx context.Context, id string) (*Team, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/teams/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data Team `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return &envelope.Data, nil
}

func (s *TeamService) Create(ctx context.Context, team *Team) error {
	if err := team.Validate(); err != nil {
		return err
	}
	_, err := s.client.Request(ctx, http.MethodPost, "/teams", team, nil)
	return err
}

func (s *TeamService) Update(ctx context.Context, id string, team *Team) error {
	if err := team.Validate(); err != nil {
		return err
	}
	_, err := s.client.Request(ctx, http.MethodPut, "/teams/"+id, team, nil)
	return err
}

func (s *TeamService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Request(ctx, http.MethodDelete, "/teams/"+id, nil, nil)
	return err
}

// AddRider attaches one rider to the team roster.
func (s *TeamService) AddRider(ctx context.Context, teamID string, rider TeamRider) error {
	if rider.RiderID == "" {
		return fmt.Errorf("invalid rider: rider id is required")
	}
	_, err := s.client.Request(ctx, http.MethodPost, "/teams/"+teamID+"/riders", rider, nil)
	return err
}

// RemoveRider detaches one rider from the team roster.
func (s *TeamService) RemoveRider(ctx context.Context, teamID, riderID string) error {
	_, err := s.client.Request(ctx, http.MethodDelete, "/teams/"+teamID+"/"+riderID, nil, nil)
	return err
}
