package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/velostats/raceadmin/auth"
)

// AdminService covers the /admin endpoint family: session, profile,
// dashboard statistics and the data-maintenance workflows.
type AdminService struct {
	client *Client
}

// DashboardStats are the platform-wide counters shown on the landing screen.
// Field names follow the backend's spelling.
type DashboardStats struct {
	TotalRaces  int `json:"totalrace"`
	TotalRiders int `json:"totalrider"`
	TotalTeams  int `json:"totalteam"`
	TotalStages int `json:"totalstages"`
}

// MonthlyStats map month names to counts for each entity.
type MonthlyStats struct {
	RacesByMonth  map[string]int `json:"monthlyRaceByMonth"`
	RidersByMonth map[string]int `json:"monthlyriderByMonth"`
	TeamsByMonth  map[string]int `json:"monthlyTeamByMonth"`
}

// Login authenticates against the backend and stores the returned credential
// in the token store. Bad credentials surface as *Error carrying the backend
// message or the friendly fallback.
func (s *AdminService) Login(ctx context.Context, email, password string) (*auth.AdminInfo, error) {
	payload := map[string]string{"email": email, "password": password}
	data, err := s.client.Request(ctx, http.MethodPost, "/admin/login", payload, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data struct {
			Token string          `json:"token"`
			Admin *auth.AdminInfo `json:"adminInfo"`
		} `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil || envelope.Data.Token == "" {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	if err = s.client.store.Write(envelope.Data.Token, envelope.Data.Admin); err != nil {
		return nil, &Error{Message: err.Error()}
	}
	return envelope.Data.Admin, nil
}

// Logout drops the stored credential. Expiry is server-driven; there is no
// remote revocation call.
func (s *AdminService) Logout() error {
	return s.client.store.Clear()
}

// EditProfile updates the admin display profile and re-stores it alongside
// the current token.
func (s *AdminService) EditProfile(ctx context.Context, name, email string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return fmt.Errorf("invalid profile: name and email are required")
	}
	payload := map[string]string{"name": name, "email": email}
	if _, err := s.client.Request(ctx, http.MethodPost, "/admin/editprofile", payload, nil); err != nil {
		return err
	}
	if cred := s.client.store.Read(); cred.Token != "" {
		return s.client.store.Write(cred.Token, &auth.AdminInfo{Name: name, Email: email})
	}
	return nil
}

// Dashboard returns the platform-wide counters.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/admin/dashboard", nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data DashboardStats `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return &envelope.Data, nil
}

// MonthlyRaces returns per-month entity counts for the current year.
func (s *AdminService) MonthlyRaces(ctx context.Context) (*MonthlyStats, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/admin/monthsrace", nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data MonthlyStats `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return &envelope.Data, nil
}

// RecentRiders returns the most recently added riders.
func (s *AdminService) RecentRiders(ctx context.Context) ([]Rider, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/admin/recentrider", nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data []Rider `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return envelope.Data, nil
}

// UpcomingRaces returns one page of upcoming races plus the total count.
func (s *AdminService) UpcomingRaces(ctx context.Context, opts ListOptions) ([]Race, int, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/admin/getUpcomingRaces", nil, opts.query())
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

// SetFeaturedRace marks one upcoming race as featured.
func (s *AdminService) SetFeaturedRace(ctx context.Context, raceID string) error {
	if raceID == "" {
		return fmt.Errorf("race id is required")
	}
	_, err := s.client.Request(ctx, http.MethodPost, "/admin/setFeaturedRace", map[string]string{"race_id": raceID}, nil)
	return err
}

// MergeRaces folds every result of the old race into the new one. Endpoint
// and field spellings are the backend's.
func (s *AdminService) MergeRaces(ctx context.Context, oldName, newName string) error {
	if oldName == "" || newName == "" {
		return fmt.Errorf("both race names are required")
	}
	payload := map[string]string{"oldRaceName": oldName, "newRaceName": newName}
	_, err := s.client.Request(ctx, http.MethodPost, "/admin/MeargRaceOldRaceWithNewRace", payload, nil)
	return err
}

// MergeTeams folds every rider and result of the old team into the new one.
func (s *AdminService) MergeTeams(ctx context.Context, oldName, newName string) error {
	if oldName == "" || newName == "" {
		return fmt.Errorf("both team names are required")
	}
	payload := map[string]string{"oldTeamName": oldName, "newTeamName": newName}
	_, err := s.client.Request(ctx, http.MethodPost, "/admin/MeargTeamNamewithOldTeam", payload, nil)
	return err
}

// ScrapeRaceData asks the backend to import race data for a year range.
func (s *AdminService) ScrapeRaceData(ctx context.Context, fromYear, toYear int) error {
	if fromYear == 0 || toYear == 0 {
		return fmt.Errorf("both years are required")
	}
	if fromYear > toYear {
		return fmt.Errorf("from year cannot be greater than to year")
	}
	payload := map[string]int{"fromYear": fromYear, "toYear": toYear}
	_, err := s.client.Request(ctx, http.MethodPost, "/admin/scrapRaceData", payload, nil)
	return err
}
