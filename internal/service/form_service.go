package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/formsmith/formsmith/internal/dto"
	"github.com/formsmith/formsmith/internal/model"
	"github.com/formsmith/formsmith/internal/repository"
	"github.com/formsmith/formsmith/pkg/fault"
)

// FormService owns the canonical form shape, including the JSON
// (de)serialization of the ordered field list at the store boundary.
type FormService interface {
	ListForms() ([]dto.FormResponseDTO, error)
	GetForm(id string) (*dto.FormResponseDTO, error)
	CreateForm(req dto.FormUpsertDTO) (*dto.FormResponseDTO, error)
	UpdateForm(id string, req dto.FormUpsertDTO) (*dto.FormResponseDTO, error)
	DeleteForm(id string) error
}

type formService struct {
	formRepo repository.FormRepository
}

func NewFormService(formRepo repository.FormRepository) FormService {
	return &formService{formRepo: formRepo}
}

func (s *formService) ListForms() ([]dto.FormResponseDTO, error) {
	forms, err := s.formRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListForms: failed to fetch forms")
		return nil, fault.NewInternalError("failed to fetch forms", err)
	}

	dtos := make([]dto.FormResponseDTO, 0, len(forms))
	for i := range forms {
		formDTO, err := s.toFormDTO(&forms[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *formDTO)
	}
	return dtos, nil
}

func (s *formService) GetForm(id string) (*dto.FormResponseDTO, error) {
	form, err := s.formRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFoundError("form not found", err)
		}
		log.Error().Err(err).Str("formID", id).Msg("GetForm: failed to fetch form")
		return nil, fault.NewInternalError("failed to fetch form", err)
	}
	return s.toFormDTO(form)
}

func (s *formService) CreateForm(req dto.FormUpsertDTO) (*dto.FormResponseDTO, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	encoded, err := encodeFields(*req.Fields)
	if err != nil {
		log.Error().Err(err).Msg("CreateForm: failed to encode fields")
		return nil, fault.NewInternalError("failed to encode form fields", err)
	}

	form := model.Form{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Title:       req.Title,
		Description: req.Description,
		Fields:      encoded,
	}
	if err := s.formRepo.Create(&form); err != nil {
		log.Error().Err(err).Msg("CreateForm: failed to persist form")
		return nil, fault.NewInternalError("failed to create form", err)
	}

	log.Info().Str("formID", form.ID).Str("title", form.Title).Msg("Form created")
	return s.toFormDTO(&form)
}

func (s *formService) UpdateForm(id string, req dto.FormUpsertDTO) (*dto.FormResponseDTO, error) {
	if err := validateUpsert(req); err != nil {
		return nil, err
	}

	encoded, err := encodeFields(*req.Fields)
	if err != nil {
		log.Error().Err(err).Str("formID", id).Msg("UpdateForm: failed to encode fields")
		return nil, fault.NewInternalError("failed to encode form fields", err)
	}

	affected, err := s.formRepo.Update(id, req.Title, req.Description, encoded)
	if err != nil {
		log.Error().Err(err).Str("formID", id).Msg("UpdateForm: failed to persist form")
		return nil, fault.NewInternalError("failed to update form", err)
	}
	if affected == 0 {
		return nil, fault.NewNotFoundError("form not found", nil)
	}

	log.Info().Str("formID", id).Msg("Form updated")
	return s.GetForm(id)
}

func (s *formService) DeleteForm(id string) error {
	affected, err := s.formRepo.Delete(id)
	if err != nil {
		log.Error().Err(err).Str("formID", id).Msg("DeleteForm: failed to delete form")
		return fault.NewInternalError("failed to delete form", err)
	}
	if affected == 0 {
		return fault.NewNotFoundError("form not found", nil)
	}

	log.Info().Str("formID", id).Msg("Form deleted with its responses")
	return nil
}

// validateUpsert enforces the service-level rules: a title must be present
// and fields must arrive as a list. An empty list is allowed here; the
// builder UI is the one insisting on at least one field.
func validateUpsert(req dto.FormUpsertDTO) error {
	if req.Title == "" {
		return fault.NewValidationError("title is required", nil)
	}
	if req.Fields == nil {
		return fault.NewValidationError("fields must be a list", nil)
	}
	return nil
}

func (s *formService) toFormDTO(form *model.Form) (*dto.FormResponseDTO, error) {
	fields, err := decodeFields(form.Fields)
	if err != nil {
		log.Error().Err(err).Str("formID", form.ID).Msg("Stored form fields are not valid JSON")
		return nil, fault.NewInternalError("failed to decode stored form fields", err)
	}
	return &dto.FormResponseDTO{
		ID:          form.ID,
		Title:       form.Title,
		Description: form.Description,
		Fields:      fields,
		CreatedAt:   form.CreatedAt,
	}, nil
}
