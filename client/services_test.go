package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velostats/raceadmin/client"
)

func TestRaceService_ListQueryAndEnvelope(t *testing.T) {
	var gotQuery map[string][]string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/races", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[{"_id":"1","race":"Giro d'Italia","year":2026,"country_code":"it"}],"totalRaces":312}`))
	}))

	races, total, err := c.Races.List(context.Background(), client.ListOptions{Page: 3, Limit: 25, Search: "giro"})
	require.NoError(t, err)
	require.Len(t, races, 1)
	assert.Equal(t, "Giro d'Italia", races[0].Race)
	assert.Equal(t, 312, total)
	assert.Equal(t, []string{"3"}, gotQuery["page"])
	assert.Equal(t, []string{"25"}, gotQuery["limit"])
	assert.Equal(t, []string{"giro"}, gotQuery["search"])
}

func TestListOptions_DefaultsAndSearchOmitted(t *testing.T) {
	var gotQuery map[string][]string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[],"totalResults":0}`))
	}))

	_, _, err := c.Riders.List(context.Background(), client.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"10"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "search")
}

func TestRiderService_TotalResultsEnvelope(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"_id":"r1","name":"Tadej","nationality":"si"}],"totalResults":4087}`))
	}))

	riders, total, err := c.Riders.List(context.Background(), client.ListOptions{})
	require.NoError(t, err)
	require.Len(t, riders, 1)
	assert.Equal(t, 4087, total)
}

func TestTeamService_EnvelopeAndFilters(t *testing.T) {
	var paths []string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"data":[{"_id":"t1","teamName":"UAE","year":2026,"flag":"ae"}],"totalteam":18}`))
	}))

	ctx := context.Background()
	_, total, err := c.Teams.List(ctx, client.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 18, total)

	_, _, err = c.Teams.ListByYear(ctx, 2025, client.ListOptions{})
	require.NoError(t, err)
	_, _, err = c.Teams.ListByCountry(ctx, "it", client.ListOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"/teams", "/teams/year/2025", "/teams/flag/it"}, paths)
}

func TestStageService_TotalStagesEnvelope(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"_id":"s1","race_id":"1","stage_number":"4","title":"Alpe d'Huez"}],"totalstages":21}`))
	}))

	stages, total, err := c.Stages.List(context.Background(), client.ListOptions{})
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Equal(t, "Alpe d'Huez", stages[0].Title)
	assert.Equal(t, 21, total)
}

func TestAdminService_MergePayloads(t *testing.T) {
	var bodies = map[string]map[string]string{}
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &payload))
		bodies[r.URL.Path] = payload
		w.Write([]byte(`{"data":{}}`))
	}))

	ctx := context.Background()
	require.NoError(t, c.Admin.MergeRaces(ctx, "Giro 2024", "Giro d'Italia 2024"))
	require.NoError(t, c.Admin.MergeTeams(ctx, "UAE Emirates", "UAE Team Emirates"))

	assert.Equal(t, map[string]string{
		"oldRaceName": "Giro 2024",
		"newRaceName": "Giro d'Italia 2024",
	}, bodies["/admin/MeargRaceOldRaceWithNewRace"])
	assert.Equal(t, map[string]string{
		"oldTeamName": "UAE Emirates",
		"newTeamName": "UAE Team Emirates",
	}, bodies["/admin/MeargTeamNamewithOldTeam"])
}

func TestAdminService_MergeRequiresBothNames(t *testing.T) {
	c := newClient(t, http.NewServeMux())
	require.Error(t, c.Admin.MergeRaces(context.Background(), "", "new"))
	require.Error(t, c.Admin.MergeTeams(context.Background(), "old", ""))
}

func TestAdminService_ScrapeValidatesYearRange(t *testing.T) {
	c := newClient(t, http.NewServeMux())
	require.Error(t, c.Admin.ScrapeRaceData(context.Background(), 0, 2024))
	require.Error(t, c.Admin.ScrapeRaceData(context.Background(), 2025, 2024))
}

func TestAdminService_Dashboard(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/dashboard", r.URL.Path)
		w.Write([]byte(`{"data":{"totalrace":312,"totalrider":4087,"totalteam":18,"totalstages":21}}`))
	}))

	stats, err := c.Admin.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 312, stats.TotalRaces)
	assert.Equal(t, 4087, stats.TotalRiders)
	assert.Equal(t, 18, stats.TotalTeams)
	assert.Equal(t, 21, stats.TotalStages)
}

func TestRiderService_UploadImageIsMultipart(t *testing.T) {
	var contentType string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "photo.jpg", header.Filename)
		w.Write([]byte(`{"data":{}}`))
	}))

	err := c.Riders.UploadImage(context.Background(), "r1", "photo.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(contentType, "multipart/form-data; boundary="))
	assert.NotContains(t, contentType, "application/json")
}

func TestValidation(t *testing.T) {
	t.Run("race", func(t *testing.T) {
		err := (&client.Race{Year: 1200}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "race name is required")
		assert.Contains(t, err.Error(), "year must be between")
	})

	t.Run("rider image required on create", func(t *testing.T) {
		c := newClient(t, http.NewServeMux())
		rider := &client.Rider{
			Name: "T", Nationality: "si", BirthPlace: "Komenda",
			DateOfBirth: "1998-09-21", Height: 176, Weight: 66,
		}
		err := c.Riders.Create(context.Background(), rider)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "image is required")
	})

	t.Run("team needs riders", func(t *testing.T) {
		err := (&client.Team{TeamName: "UAE"}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one rider")
	})

	t.Run("stage", func(t *testing.T) {
		err := (&client.Stage{Title: "Queen stage"}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "race is required")
		assert.Contains(t, err.Error(), "stage number is required")
	})
}
