package api

import (
	"github.com/pm-platform/registry/patients"
)

type LoginRequestDto struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponseDto struct {
	Token string `json:"token"`
}

type PatientRequestDto struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	DateOfBirth    string `json:"dateOfBirth"`
	RegisteredDate string `json:"registeredDate"`
}

type PatientResponseDto struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
}

func NewPatient(dto PatientRequestDto) patients.Patient {
	return patients.Patient{
		Name:           dto.Name,
		Email:          dto.Email,
		Address:        dto.Address,
		DateOfBirth:    dto.DateOfBirth,
		RegisteredDate: dto.RegisteredDate,
	}
}

func NewPatientDto(patient *patients.Patient) PatientResponseDto {
	return PatientResponseDto{
		Id:          patient.Id,
		Name:        patient.Name,
		Email:       patient.Email,
		Address:     patient.Address,
		DateOfBirth: patient.DateOfBirth,
	}
}

func NewPatientsDto(list []*patients.Patient) []PatientResponseDto {
	dtos := make([]PatientResponseDto, 0, len(list))
	for _, patient := range list {
		dtos = append(dtos, NewPatientDto(patient))
	}
	return dtos
}
