package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// NoticeService implements notice publishing.
type NoticeService struct {
	repo     ports.NoticeRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewNoticeService(repo ports.NoticeRepository, accounts ports.AccountRepository, log zerolog.Logger) *NoticeService {
	return &NoticeService{repo: repo, accounts: accounts, log: log}
}

func (s *NoticeService) Publish(ctx context.Context, input ports.NoticeInput) (*domain.Notice, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Body) == "" {
		return nil, domain.ErrValidation
	}
	if _, err := s.accounts.FindByID(ctx, input.PublishedBy); err != nil {
		return nil, err
	}

	n := &domain.Notice{
		Title:       strings.TrimSpace(input.Title),
		Body:        input.Body,
		PublishedBy: input.PublishedBy,
		PublishedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, n)
}

func (s *NoticeService) Get(ctx context.Context, id int64) (*domain.Notice, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NoticeService) List(ctx context.Context) ([]domain.Notice, error) {
	return s.repo.List(ctx)
}

func (s *NoticeService) Update(ctx context.Context, id int64, input ports.NoticeInput) (*domain.Notice, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		n.Title = title
	}
	if input.Body != "" {
		n.Body = input.Body
	}

	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
