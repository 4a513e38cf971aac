package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// el input type="time" manda 24h; la agenda inicial viene en 12h.
var acceptedTimeLayouts = []string{"15:04", TimeLayout, "3:04PM"}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Title string
	Date  string
	Time  string
}

// Create valida título, fecha y hora y guarda la hora en formato 12h.
func (s *Service) Create(ctx context.Context, in CreateInput) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return Task{}, err
	}
	clock, err := parseTime(in.Time)
	if err != nil {
		return Task{}, err
	}

	t := Task{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      date,
		Time:      clock,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.repo.List(ctx)
}

// Remove es idempotente.
func (s *Service) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return s.repo.Delete(ctx, id)
}

func parseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return d.Format(DateLayout), nil
}

func parseTime(raw string) (string, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("%w: time must be HH:MM or H:MM AM/PM", ErrInvalidInput)
}
