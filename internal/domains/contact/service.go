package contact

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (string, error)
	MarkRead(ctx context.Context, id string) error
	List(ctx context.Context) ([]Message, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.repo.Add(ctx, &Message{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    StatusUnread,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, StatusRead)
}

func (s *service) List(ctx context.Context) ([]Message, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
