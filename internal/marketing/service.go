package marketing

import (
	"errors"
	"time"
)

var (
	ErrInvalidType    = errors.New("type must be telegram, email or sms")
	ErrMissingContent = errors.New("content is required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(f Filters) ([]Message, error) {
	return s.repo.List(f)
}

func (s *Service) Create(m Message) (Message, error) {
	if !ValidType(m.Type) {
		return Message{}, ErrInvalidType
	}
	if m.Content == "" {
		return Message{}, ErrMissingContent
	}
	return s.repo.Create(m)
}

func (s *Service) Schedule(id string, at time.Time) (Message, error) {
	return s.repo.Schedule(id, at)
}

func (s *Service) MarkSent(id string) (Message, error) {
	return s.repo.MarkSent(id)
}
