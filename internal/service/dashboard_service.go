package service

import (
	"fmt"
	"time"

	"creatorpay-be-svc/internal/models"
	"creatorpay-be-svc/internal/models/response"
	"creatorpay-be-svc/internal/repository"
	"creatorpay-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DashboardService defines the interface for payment reporting operations.
// Every total here is a sum of frozen paid facts; the live recalculation
// never contributes to a rollup.
type DashboardService interface {
	GetCreatorTotals(creatorID uuid.UUID) (*response.CreatorTotals, error)
	GetCompanyTotals(companyID uuid.UUID) (*response.CompanyTotals, error)
	ExportPaymentsToExcel(companyID uuid.UUID) ([]byte, string, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	creatorRepo     repository.CreatorRepository
	videoRepo       repository.VideoRepository
	tierPaymentRepo repository.TierPaymentRepository
	dashboardRepo   repository.DashboardRepository
	logger          *logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(
	creatorRepo repository.CreatorRepository,
	videoRepo repository.VideoRepository,
	tierPaymentRepo repository.TierPaymentRepository,
	dashboardRepo repository.DashboardRepository,
	logger *logger.Logger,
) DashboardService {
	return &dashboardService{
		creatorRepo:     creatorRepo,
		videoRepo:       videoRepo,
		tierPaymentRepo: tierPaymentRepo,
		dashboardRepo:   dashboardRepo,
		logger:          logger,
	}
}

// GetCreatorTotals rolls up the frozen paid amounts across a creator's videos
func (s *dashboardService) GetCreatorTotals(creatorID uuid.UUID) (*response.CreatorTotals, error) {
	creator, err := s.creatorRepo.GetCreatorByID(creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	return s.creatorTotals(creator)
}

// GetCompanyTotals rolls up the frozen paid amounts across every creator in a
// company
func (s *dashboardService) GetCompanyTotals(companyID uuid.UUID) (*response.CompanyTotals, error) {
	creators, err := s.creatorRepo.ListCreatorsByCompany(companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list creators: %w", err)
	}

	totals := &response.CompanyTotals{
		CompanyID:        companyID,
		CreatorCount:     len(creators),
		BaseCPMPaidTotal: decimal.Zero,
		TierPaidTotal:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		Creators:         make([]response.CreatorTotals, 0, len(creators)),
	}

	for _, creator := range creators {
		creatorTotals, err := s.creatorTotals(creator)
		if err != nil {
			return nil, err
		}

		totals.VideoCount += creatorTotals.VideoCount
		totals.BaseCPMPaidTotal = totals.BaseCPMPaidTotal.Add(creatorTotals.BaseCPMPaidTotal)
		totals.TierPaidTotal = totals.TierPaidTotal.Add(creatorTotals.TierPaidTotal)
		totals.TotalPaid = totals.TotalPaid.Add(creatorTotals.TotalPaid)
		totals.Creators = append(totals.Creators, *creatorTotals)
	}

	return totals, nil
}

// creatorTotals sums frozen paid facts over one creator's videos
func (s *dashboardService) creatorTotals(creator *models.Creator) (*response.CreatorTotals, error) {
	videos, err := s.videoRepo.ListVideosByCreator(creator.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	totals := &response.CreatorTotals{
		CreatorID:        creator.ID,
		CreatorName:      creator.Name,
		VideoCount:       len(videos),
		BaseCPMPaidTotal: decimal.Zero,
		TierPaidTotal:    decimal.Zero,
	}

	for _, video := range videos {
		if video.BaseCPMPaid {
			if video.BasePaymentAmount == nil || video.CPMPaymentAmount == nil {
				return nil, fmt.Errorf("%w: video %s is marked paid without frozen amounts", ErrInconsistentPayment, video.ID)
			}
			totals.BaseCPMPaidTotal = totals.BaseCPMPaidTotal.Add(*video.BasePaymentAmount).Add(*video.CPMPaymentAmount)
		}

		tierRows, err := s.tierPaymentRepo.ListTierPaymentsByVideo(video.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tier payments: %w", err)
		}

		for _, row := range tierRows {
			if !row.Paid {
				continue
			}
			if row.PaymentAmount == nil {
				return nil, fmt.Errorf("%w: tier payment %s is marked paid without a frozen amount", ErrInconsistentPayment, row.ID)
			}
			totals.TierPaidTotal = totals.TierPaidTotal.Add(*row.PaymentAmount)
		}
	}

	totals.TotalPaid = totals.BaseCPMPaidTotal.Add(totals.TierPaidTotal)

	return totals, nil
}

// ExportPaymentsToExcel exports a company's per-video payment rows to an
// Excel file
func (s *dashboardService) ExportPaymentsToExcel(companyID uuid.UUID) ([]byte, string, error) {
	exportRows, err := s.dashboardRepo.GetPaymentExportRows(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get payment export rows: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	sheetName := "Payments"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetActiveSheet(index)

	headers := []string{"No", "Creator", "Video", "Platform", "Status", "Views", "Base+CPM Paid", "Paid At", "Base Payment", "CPM Payment", "Tier Bonuses", "Total Paid"}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "L1", headerStyle)
	}

	for i, exportRow := range exportRows {
		row := i + 2

		paidAt := ""
		if exportRow.BaseCPMPaidAt != nil {
			paidAt = exportRow.BaseCPMPaidAt.Format("2006-01-02 15:04")
		}

		basePayment := ""
		if exportRow.BasePayment != nil {
			basePayment = exportRow.BasePayment.StringFixed(2)
		}
		cpmPayment := ""
		if exportRow.CPMPayment != nil {
			cpmPayment = exportRow.CPMPayment.StringFixed(2)
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), exportRow.CreatorName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), exportRow.VideoTitle)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), exportRow.Platform)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), exportRow.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), exportRow.Views)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), exportRow.BaseCPMPaid)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), paidAt)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), basePayment)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), cpmPayment)
		f.SetCellValue(sheetName, fmt.Sprintf("K%d", row), exportRow.TierPaidTotal.StringFixed(2))
		f.SetCellValue(sheetName, fmt.Sprintf("L%d", row), exportRow.TotalPaid.StringFixed(2))
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 15)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("payments_export_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}
