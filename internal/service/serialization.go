package service

import (
	"encoding/json"

	"github.com/jinzhu/copier"

	"github.com/formsmith/formsmith/internal/dto"
	"github.com/formsmith/formsmith/internal/model"
)

// Fields and answers live in single text columns. These helpers are the only
// place raw column text is produced or consumed; everything above them works
// with structured values.

func encodeFields(fieldDTOs []dto.FieldDTO) (string, error) {
	fields := make([]model.Field, 0, len(fieldDTOs))
	if err := copier.Copy(&fields, &fieldDTOs); err != nil {
		return "", err
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeFields(raw string) ([]dto.FieldDTO, error) {
	var fields []model.Field
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, err
	}
	fieldDTOs := make([]dto.FieldDTO, 0, len(fields))
	if err := copier.Copy(&fieldDTOs, &fields); err != nil {
		return nil, err
	}
	return fieldDTOs, nil
}

func encodeAnswers(answers map[string]model.AnswerValue) (string, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeAnswers(raw string) (map[string]model.AnswerValue, error) {
	var answers map[string]model.AnswerValue
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
