package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Rider is a rider profile as the backend returns it.
type Rider struct {
	ID             string  `json:"_id,omitempty"`
	Name           string  `json:"name"`
	NormalizedName string  `json:"normalized_name,omitempty"`
	Nationality    string  `json:"nationality"`
	BirthPlace     string  `json:"birth_place"`
	DateOfBirth    string  `json:"date_of_birth"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ImageURL       string  `json:"image_url,omitempty"`
}

// Validate applies the create/edit rules. The image is checked separately in
// Create since an edit may keep the existing one.
func (r *Rider) Validate() error {
	var problems []string
	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(r.Nationality) == "" {
		problems = append(problems, "nationality is required")
	}
	if strings.TrimSpace(r.BirthPlace) == "" {
		problems = append(problems, "birth place is required")
	}
	if r.DateOfBirth == "" {
		problems = append(problems, "date of birth is required")
	}
	if r.Height <= 0 {
		problems = append(problems, "height must be a positive number")
	}
	if r.Weight <= 0 {
		problems = append(problems, "weight must be a positive number")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid rider: %s", strings.Join(problems, "; "))
	}
	return nil
}

// RiderService covers the /riders endpoints. Note some rider calls answer
// 401 without implying session expiry; the transport leaves those alone.
type RiderService struct {
	client *Client
}

// List returns one page of riders plus the backend's total count.
func (s *RiderService) List(ctx context.Context, opts ListOptions) ([]Rider, int, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/riders", nil, opts.query())
	if err != nil {
		return nil, 0, err
	}
	var envelope struct {
		Data         []Rider `json:"data"`
		TotalResults int     `json:"totalResults"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, 0, &Error{Message: msgSomethingWentWrong}
	}
	return envelope.Data, envelope.TotalResults, nil
}

func (s *RiderService) Get(ctx context.Context, id string) (*Rider, error) {
	data, err := s.client.Request(ctx, http.MethodGet, "/riders/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Data Rider `json:"data"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, &Error{Message: msgSomethingWentWrong}
	}
	return &envelope.Data, nil
}

func (s *RiderService) Create(ctx context.Context, rider *Rider) error {
	if err := rider.Validate(); err != nil {
		return err
	}
	if rider.ImageURL == "" {
		return fmt.Errorf("invalid rider: image is required")
	}
	_, err := s.client.Request(ctx, http.MethodPost, "/riders", rider, nil)
	return err
}

func (s *RiderService) Update(ctx context.Context, id string, rider *Rider) error {
	if err := rider.Validate(); err != nil {
		return err
	}
	_, err := s.client.Request(ctx, http.MethodPut, "/riders/"+id, rider, nil)
	return err
}

func (s *RiderService) Delete(ctx context.Context, id string) error {
	_, err := s.client.Request(ctx, http.MethodDelete, "/riders/"+id, nil, nil)
	return err
}

// UploadImage replaces a rider's photo. The payload is multipart form data
// so the boundary content type reaches the backend intact.
func (s *RiderService) UploadImage(ctx context.Context, id, filename string, content []byte) error {
	payload := NewMultipart().File("image", filename, content)
	_, err := s.client.Request(ctx, http.MethodPost, "/riders/"+id+"/image", payload, nil)
	return err
}
