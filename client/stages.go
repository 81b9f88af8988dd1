package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Stage is a race stage as the backend returns it.
type Stage struct {
	ID          string `json:"_id,omitempty"`
	RaceID      string `json:"race_id"`
	RaceName    string `json:"race_name,omitempty"`
	StageNumber string `json:"stage_number"`
	StageID     string `json:"stage_id"`
	Title       string `json:"title"`
	SubTitle    string `json:"sub_title,omitempty"`
	Distance    string `json:"distance"`
}

// Validate applies the create/edit rules before a stage is sent.
func (s *Stage) Validate() error {
	var problems []string
	if s.RaceID == "" {
		problems = append(problems, "race is required")
	}
	if s.StageNumber == "" {
		problems = append(problems, "stage number is required")
	}
	if s.StageID == "" {
		problems = append(problems, "stage id is required")
	}
	if strings.TrimSpace(s.Title) == "" {
		problems = append(problems, "title is required")
	}
	if s.Distance == "" {
		problems = append(problems, "distance is required")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid stage: %s", strings.Join(problems, "; "))
	}
	return nil
}

// StageService covers the /stages endpoints.
type StageService struct {
	client *Client
}

// List returns one page of stages plus the backend's total count.
func (s *StageService) List(ctx context.Context, opts ListOptions) ([]Stage, int, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/stages", nil, opts.query())
	if err != nil {
		return nil, 0, err
	}
	var envelope struct {
		Data        []Stage `json:"data"`
		TotalStages int     `json:"totalstages"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, 0, &Error{Message: msgSomethingWentWrong}
	}
	return envelope.Data, envelope.TotalStages, nil
}

func (s *StageService) Get(ctx context.Context, id string) (*Stage, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/stages/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data Stage `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return &envelope.Data, nil
}

func (s *StageService) Create(ctx context.Context, stage *Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	_, err := s.client.Request(ctx, http.MethodPost, "/stages", stage, nil)
	return err
}

func (s *StageService) Update(ctx context.Context, id string, stage *Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	_, err := s.client.Request(ctx, http.MethodPut, "/stages/"+id, stage, nil)
	return err
}

func (s *StageService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Request(ctx, http.MethodDelete, "/stages/"+id, nil, nil)
	return err
}
