package service

import (
	"errors"
	"fmt"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ReportService aggregates attempt outcomes and file acknowledgements for
// dashboards and XLSX exports. Read-only over the attempt ledger.
type ReportService interface {
	InductionReport(companyID uint) (*dto.CompanyReportDTO, error)
	TrainingReport(classID uint) (*dto.ClassReportDTO, error)
	DocumentationReport(fileID uint) (*dto.FileReportDTO, error)
	ClassReportXLSX(classID uint) ([]byte, error)
}

type reportService struct {
	companyRepo    repository.CompanyRepository
	periodRepo     repository.PeriodRepository
	classRepo      repository.ClassRepository
	enrollmentRepo repository.EnrollmentRepository
	attemptRepo    repository.ExamAttemptRepository
	fileRepo       repository.ClassFileRepository
	deliveryRepo   repository.FileDeliveryRepository
}

func NewReportService(
	companyRepo repository.CompanyRepository,
	periodRepo repository.PeriodRepository,
	classRepo repository.ClassRepository,
	enrollmentRepo repository.EnrollmentRepository,
	attemptRepo repository.ExamAttemptRepository,
	fileRepo repository.ClassFileRepository,
	deliveryRepo repository.FileDeliveryRepository,
) ReportService {
	return &reportService{
		companyRepo:    companyRepo,
		periodRepo:     periodRepo,
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
		attemptRepo:    attemptRepo,
		fileRepo:       fileRepo,
		deliveryRepo:   deliveryRepo,
	}
}

func (s *reportService) InductionReport(companyID uint) (*dto.CompanyReportDTO, error) {
	company, err := s.companyRepo.FindByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company %d: %w", companyID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading company %d: %w", companyID, err)
	}

	periods, err := s.periodRepo.FindByCompanyID(companyID)
	if err != nil {
		return nil, fmt.Errorf("loading periods of company %d: %w", companyID, err)
	}

	report := dto.CompanyReportDTO{CompanyID: company.ID, CompanyName: company.Name}
	for _, period := range periods {
		classes, err := s.classRepo.FindByPeriodIDAndType(period.ID, model.ClassTypeInduction)
		if err != nil {
			return nil, fmt.Errorf("loading induction classes of period %d: %w", period.ID, err)
		}
		for _, class := range classes {
			classReport, err := s.TrainingReport(class.ID)
			if err != nil {
				return nil, err
			}
			report.Classes = append(report.Classes, *classReport)
		}
	}
	return &report, nil
}

// TrainingReport builds the per-class outcome summary: one row per enrolled
// worker with the latest attempt's result.
func (s *reportService) TrainingReport(classID uint) (*dto.ClassReportDTO, error) {
	class, err := s.classRepo.FindByID(classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class %d: %w", classID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading class %d: %w", classID, err)
	}

	enrollments, err := s.enrollmentRepo.FindByClassID(classID)
	if err != nil {
		return nil, fmt.Errorf("loading enrollments of class %d: %w", classID, err)
	}

	report := dto.ClassReportDTO{
		ClassID:    class.ID,
		ClassTitle: class.Title,
		ClassType:  class.Type,
		Enrolled:   len(enrollments),
	}

	for _, enrollment := range enrollments {
		row := dto.WorkerExamRow{
			WorkerID: enrollment.WorkerID,
			FullName: enrollment.Worker.FullName(),
			DNI:      enrollment.Worker.DNI,
			Area:     enrollment.Worker.Area,
			Position: enrollment.Worker.Position,
			Outcome:  model.OutcomePending.String(),
		}

		count, err := s.attemptRepo.CountByEnrollment(enrollment.ID)
		if err != nil {
			return nil, fmt.Errorf("counting attempts of enrollment %d: %w", enrollment.ID, err)
		}
		row.AttemptsUsed = count

		latest, err := s.attemptRepo.FindLatestByEnrollment(enrollment.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("loading latest attempt of enrollment %d: %w", enrollment.ID, err)
		}
		if latest != nil {
			score := latest.Score
			row.Outcome = latest.Outcome.String()
			row.Score = &score
			row.CertificateURL = latest.CertificateURL
		}

		switch row.Outcome {
		case model.OutcomeApproved.String():
			report.Approved++
		case model.OutcomeRejected.String():
			report.Rejected++
		default:
			report.Pending++
		}
		report.Workers = append(report.Workers, row)
	}

	return &report, nil
}

func (s *reportService) DocumentationReport(fileID uint) (*dto.FileReportDTO, error) {
	file, err := s.fileRepo.FindByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class file %d: %w", fileID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading class file %d: %w", fileID, err)
	}

	deliveries, err := s.deliveryRepo.FindByFileID(fileID)
	if err != nil {
		return nil, fmt.Errorf("loading deliveries of file %d: %w", fileID, err)
	}

	report := dto.FileReportDTO{ClassFileID: file.ID, Title: file.Title}
	for _, delivery := range deliveries {
		row := dto.FileDeliveryRow{
			WorkerID:   delivery.WorkerID,
			FullName:   delivery.Worker.FullName(),
			DNI:        delivery.Worker.DNI,
			Downloaded: delivery.Downloaded,
			Accepted:   delivery.Accepted,
		}
		if delivery.Downloaded {
			report.Delivered++
		}
		if delivery.Accepted {
			report.Accepted++
		}
		report.Rows = append(report.Rows, row)
	}
	return &report, nil
}

// ClassReportXLSX renders the training report as a downloadable worksheet.
func (s *reportService) ClassReportXLSX(classID uint) ([]byte, error) {
	report, err := s.TrainingReport(classID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Worker", "DNI", "Area", "Position", "Attempts", "Outcome", "Score", "Certificate"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range report.Workers {
		values := []interface{}{row.FullName, row.DNI, row.Area, row.Position, row.AttemptsUsed, row.Outcome, nil, nil}
		if row.Score != nil {
			values[6] = *row.Score
		}
		if row.CertificateURL != nil {
			values[7] = *row.CertificateURL
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing report workbook for class %d: %w", classID, err)
	}
	log.Info().Uint("classID", classID).Int("rows", len(report.Workers)).Msg("Class report exported")
	return buf.Bytes(), nil
}
