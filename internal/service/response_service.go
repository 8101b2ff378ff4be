package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/formsmith/formsmith/internal/dto"
	"github.com/formsmith/formsmith/internal/model"
	"github.com/formsmith/formsmith/internal/repository"
	"github.com/formsmith/formsmith/pkg/fault"
)

const recentResponsesLimit = 5

// ResponseService records submissions, lists them per form and globally,
// computes the dashboard aggregates and renders CSV exports.
type ResponseService interface {
	SubmitResponse(formID string, req dto.ResponseSubmitDTO) (*dto.ResponseDTO, error)
	ListResponsesForForm(formID string) ([]dto.ResponseDTO, error)
	ListAllResponses() ([]dto.ResponseWithFormDTO, error)
	DashboardStats() (*dto.DashboardStatsDTO, error)
	// ExportResponsesAsCSV renders all responses of a form as CSV and
	// returns a download filename derived from the form title.
	ExportResponsesAsCSV(formID string) (filename string, data []byte, err error)
}

type responseService struct {
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
}

func NewResponseService(formRepo repository.FormRepository, responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{formRepo: formRepo, responseRepo: responseRepo}
}

func (s *responseService) SubmitResponse(formID string, req dto.ResponseSubmitDTO) (*dto.ResponseDTO, error) {
	if req.Answers == nil {
		return nil, fault.NewValidationError("answers object is required", nil)
	}

	// Existence check before insert; a form deleted in between is caught by
	// the foreign key constraint instead.
	if _, err := s.formRepo.FindByID(formID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFoundError("form not found", err)
		}
		log.Error().Err(err).Str("formID", formID).Msg("SubmitResponse: failed to check form existence")
		return nil, fault.NewInternalError("failed to submit response", err)
	}

	encoded, err := encodeAnswers(req.Answers)
	if err != nil {
		log.Error().Err(err).Str("formID", formID).Msg("SubmitResponse: failed to encode answers")
		return nil, fault.NewInternalError("failed to encode answers", err)
	}

	response := model.Response{
		ID:             uuid.Must(uuid.NewV7()).String(),
		FormID:         formID,
		Answers:        encoded,
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
	}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Str("formID", formID).Msg("SubmitResponse: failed to persist response")
		return nil, fault.NewInternalError("failed to submit response", err)
	}

	log.Info().Str("responseID", response.ID).Str("formID", formID).Msg("Response submitted")
	return s.toResponseDTO(&response)
}

func (s *responseService) ListResponsesForForm(formID string) ([]dto.ResponseDTO, error) {
	responses, err := s.responseRepo.FindByFormID(formID)
	if err != nil {
		log.Error().Err(err).Str("formID", formID).Msg("ListResponsesForForm: failed to fetch responses")
		return nil, fault.NewInternalError("failed to fetch responses", err)
	}

	dtos := make([]dto.ResponseDTO, 0, len(responses))
	for i := range responses {
		responseDTO, err := s.toResponseDTO(&responses[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *responseDTO)
	}
	return dtos, nil
}

func (s *responseService) ListAllResponses() ([]dto.ResponseWithFormDTO, error) {
	rows, err := s.responseRepo.FindAllWithFormTitle()
	if err != nil {
		log.Error().Err(err).Msg("ListAllResponses: failed to fetch responses")
		return nil, fault.NewInternalError("failed to fetch responses", err)
	}
	return s.toResponseWithFormDTOs(rows)
}

func (s *responseService) DashboardStats() (*dto.DashboardStatsDTO, error) {
	totalForms, err := s.formRepo.Count()
	if err != nil {
		log.Error().Err(err).Msg("DashboardStats: failed to count forms")
		return nil, fault.NewInternalError("failed to compute dashboard stats", err)
	}
	totalResponses, err := s.responseRepo.Count()
	if err != nil {
		log.Error().Err(err).Msg("DashboardStats: failed to count responses")
		return nil, fault.NewInternalError("failed to compute dashboard stats", err)
	}

	avg := "0"
	if totalForms > 0 {
		avg = fmt.Sprintf("%.1f", float64(totalResponses)/float64(totalForms))
	}

	recent, err := s.responseRepo.FindRecentWithFormTitle(recentResponsesLimit)
	if err != nil {
		log.Error().Err(err).Msg("DashboardStats: failed to fetch recent responses")
		return nil, fault.NewInternalError("failed to compute dashboard stats", err)
	}
	recentDTOs, err := s.toResponseWithFormDTOs(recent)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsDTO{
		TotalForms:          totalForms,
		TotalResponses:      totalResponses,
		AvgResponsesPerForm: avg,
		RecentResponses:     recentDTOs,
	}, nil
}

func (s *responseService) ExportResponsesAsCSV(formID string) (string, []byte, error) {
	form, err := s.formRepo.FindByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fault.NewNotFoundError("form not found", err)
		}
		log.Error().Err(err).Str("formID", formID).Msg("ExportResponsesAsCSV: failed to fetch form")
		return "", nil, fault.NewInternalError("failed to export responses", err)
	}

	fields, err := decodeFields(form.Fields)
	if err != nil {
		log.Error().Err(err).Str("formID", formID).Msg("ExportResponsesAsCSV: stored form fields are not valid JSON")
		return "", nil, fault.NewInternalError("failed to decode stored form fields", err)
	}

	responses, err := s.responseRepo.FindByFormID(formID)
	if err != nil {
		log.Error().Err(err).Str("formID", formID).Msg("ExportResponsesAsCSV: failed to fetch responses")
		return "", nil, fault.NewInternalError("failed to export responses", err)
	}

	rows := make([]exportRow, 0, len(responses))
	for i := range responses {
		answers, err := decodeAnswers(responses[i].Answers)
		if err != nil {
			log.Error().Err(err).Str("responseID", responses[i].ID).Msg("ExportResponsesAsCSV: stored answers are not valid JSON")
			return "", nil, fault.NewInternalError("failed to decode stored answers", err)
		}
		rows = append(rows, exportRow{response: &responses[i], answers: answers})
	}

	data := renderCSV(fields, rows)
	return exportFilename(form.Title), data, nil
}

func (s *responseService) toResponseDTO(response *model.Response) (*dto.ResponseDTO, error) {
	answers, err := decodeAnswers(response.Answers)
	if err != nil {
		log.Error().Err(err).Str("responseID", response.ID).Msg("Stored answers are not valid JSON")
		return nil, fault.NewInternalError("failed to decode stored answers", err)
	}
	return &dto.ResponseDTO{
		ID:             response.ID,
		FormID:         response.FormID,
		Answers:        answers,
		SubmitterName:  response.SubmitterName,
		SubmitterEmail: response.SubmitterEmail,
		SubmittedAt:    response.SubmittedAt,
	}, nil
}

func (s *responseService) toResponseWithFormDTOs(rows []model.ResponseWithFormTitle) ([]dto.ResponseWithFormDTO, error) {
	dtos := make([]dto.ResponseWithFormDTO, 0, len(rows))
	for i := range rows {
		responseDTO, err := s.toResponseDTO(&rows[i].Response)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto.ResponseWithFormDTO{
			ResponseDTO: *responseDTO,
			FormTitle:   rows[i].FormTitle,
		})
	}
	return dtos, nil
}
