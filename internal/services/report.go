package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"climate-repair-system/internal/authz"
	"climate-repair-system/internal/repositories"
)

type ReportServiceInterface interface {
	ExportRequests(ctx context.Context, actor authz.Actor) (filename string, content *bytes.Buffer, err error)
}

type ReportService struct {
	requestRepo repositories.RequestRepositoryInterface
	userRepo    repositories.UserRepositoryInterface
	logger      *zap.Logger
}

func NewReportService(
	requestRepo repositories.RequestRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

var reportHeaders = []string{
	"№ заявки", "Дата начала", "Тип оборудования", "Модель",
	"Описание проблемы", "Статус", "Дата завершения",
	"Комплектующие", "Специалист", "Клиент",
}

// ExportRequests выгружает реестр заявок в xlsx. Доступно только
// менеджеру, выгрузка всегда полная.
func (s *ReportService) ExportRequests(ctx context.Context, actor authz.Actor) (string, *bytes.Buffer, error) {
	if err := authz.Decide(actor, authz.ReportsExport, nil); err != nil {
		return "", nil, err
	}

	requests, err := s.requestRepo.List(ctx, authz.ScopeFilter{})
	if err != nil {
		return "", nil, err
	}

	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return "", nil, err
	}
	fioByID := make(map[int]string, len(users))
	for _, u := range users {
		fioByID[u.ID] = u.Fio
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Заявки"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", nil, fmt.Errorf("создание листа отчета: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return "", nil, fmt.Errorf("запись заголовка отчета: %w", err)
		}
	}

	for i, req := range requests {
		row := i + 2

		master := ""
		if req.MasterID != nil {
			master = fioByID[*req.MasterID]
			if master == "" {
				master = strconv.Itoa(*req.MasterID)
			}
		}

		completion := ""
		if req.CompletionDate != nil {
			completion = req.CompletionDate.Format("2006-01-02")
		}

		parts := ""
		if req.RepairParts != nil {
			parts = *req.RepairParts
		}

		values := []interface{}{
			req.ID,
			req.StartDate.Format("2006-01-02"),
			req.EquipmentType,
			req.EquipmentModel,
			req.ProblemDescription,
			req.Status,
			completion,
			parts,
			master,
			fioByID[req.ClientID],
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", nil, fmt.Errorf("запись строки отчета: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("сборка xlsx: %w", err)
	}

	filename := fmt.Sprintf("requests_%s.xlsx", uuid.New().String())
	s.logger.Info("Сформирован отчет по заявкам",
		zap.String("filename", filename),
		zap.Int("rows", len(requests)))

	return filename, buf, nil
}
