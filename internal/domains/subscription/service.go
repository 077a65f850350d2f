package subscription

import (
	"context"
	"time"

	"github.com/xuri/excelize/v2"
)

type Service interface {
	CreateFull(ctx context.Context, req CreateRequest) (string, error)
	CreateNewsletter(ctx context.Context, req NewsletterRequest) (string, error)
	List(ctx context.Context) ([]Subscription, error)
	Count(ctx context.Context) (int, error)
	ExportToExcel(ctx context.Context) (*excelize.File, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateFull(ctx context.Context, req CreateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.repo.Add(ctx, &Subscription{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		StreetAddress:  req.StreetAddress,
		StreetAddress2: req.StreetAddress2,
		City:           req.City,
		State:          req.State,
		Telephone:      req.Telephone,
		Email:          req.Email,
		Type:           TypeFull,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *service) CreateNewsletter(ctx context.Context, req NewsletterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.repo.Add(ctx, &Subscription{
		Email:     req.Email,
		Type:      TypeNewsletter,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *service) List(ctx context.Context) ([]Subscription, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *service) ExportToExcel(ctx context.Context) (*excelize.File, error) {
	subs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildSubscribersExcelFile(subs)
}

func buildSubscribersExcelFile(subs []Subscription) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Subscribers"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID",
		"Type",
		"First Name",
		"Last Name",
		"Email",
		"Street Address",
		"Street Address 2",
		"City",
		"State",
		"Telephone",
		"Created At",
	}

	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "K1", headerStyle)
	}

	for i, sub := range subs {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), sub.ID)
		f.SetCellValue(sheetName, cell(2), sub.Type)
		f.SetCellValue(sheetName, cell(3), sub.FirstName)
		f.SetCellValue(sheetName, cell(4), sub.LastName)
		f.SetCellValue(sheetName, cell(5), sub.Email)
		f.SetCellValue(sheetName, cell(6), sub.StreetAddress)
		f.SetCellValue(sheetName, cell(7), sub.StreetAddress2)
		f.SetCellValue(sheetName, cell(8), sub.City)
		f.SetCellValue(sheetName, cell(9), sub.State)
		f.SetCellValue(sheetName, cell(10), sub.Telephone)
		f.SetCellValue(sheetName, cell(11), sub.CreatedAt)
	}

	return f, nil
}
