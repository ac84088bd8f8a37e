package service

import (
	"context"
	"errors"

	"wasabi/internal/apierror"
	"wasabi/internal/dto"
	"wasabi/internal/repository"

	"gorm.io/gorm"
)

type DepartamentoService interface {
	ObtenerPorID(ctx context.Context, id int64) (*dto.DepartamentoResponse, error)
}

type departamentoService struct {
	repo repository.DepartamentoRepository
}

func NewDepartamentoService(repo repository.DepartamentoRepository) DepartamentoService {
	return &departamentoService{repo: repo}
}

func (s *departamentoService) ObtenerPorID(ctx context.Context, id int64) (*dto.DepartamentoResponse, error) {
	if err := validarDepartamento(id); err != nil {
		return nil, err
	}
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("departamento %d no encontrado", id)
		}
		return nil, apierror.Persistencia("obtener departamento", err)
	}
	return &dto.DepartamentoResponse{ID: d.ID, Nombre: d.Nombre}, nil
}
