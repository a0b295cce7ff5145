package icp

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/icp/icpclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_icp.go -package=mocks

// ICPIntegrator lê e grava os critérios de ICP no backend externo
type ICPIntegrator interface {
	// FetchCriteria devolve nil quando o backend não indica sucesso ou não tem critérios
	FetchCriteria(ctx context.Context, token string) (*domain.RemoteICPCriteria, error)
	// PushCriteria converte para o vocabulário do backend e grava
	PushCriteria(ctx context.Context, token string, criteria domain.ICPCriteria) (*SaveResult, error)
}

// SaveResult é a resposta do backend ao salvar
type SaveResult struct {
	Success bool
	Message string
}

type ICPService struct {
	Client icpclient.Client
}

func New(client icpclient.Client) ICPIntegrator {
	return &ICPService{
		Client: client,
	}
}

func (s *ICPService) FetchCriteria(ctx context.Context, token string) (*domain.RemoteICPCriteria, error) {
	resp, err := s.Client.GetStatus(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar status de ICP")
	}

	if !resp.IsSuccess() || resp.ICPCriteria == nil {
		logrus.WithFields(logrus.Fields{
			"success":      resp.IsSuccess(),
			"has_criteria": resp.ICPCriteria != nil,
		}).Debug("ICPService: backend sem critérios de ICP")
		return nil, nil
	}

	return resp.ICPCriteria, nil
}

func (s *ICPService) PushCriteria(ctx context.Context, token string, criteria domain.ICPCriteria) (*SaveResult, error) {
	payload := criteria.ToPayload()

	logrus.WithFields(logrus.Fields{
		"enabled":        payload.Enabled,
		"employee_sizes": payload.EmployeeSizes,
		"founded_years":  payload.FoundedYears,
	}).Debug("ICPService: enviando critérios de ICP")

	resp, err := s.Client.UpdateCriteria(ctx, token, payload)
	if err != nil {
		// Status de erro com motivo do servidor vira falha de negócio, não de rede
		var apiErr *icpclient.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return &SaveResult{Success: false, Message: apiErr.Message}, nil
		}
		return nil, errors.Wrap(err, "erro ao salvar critérios de ICP")
	}

	return &SaveResult{
		Success: resp.Success,
		Message: resp.Message,
	}, nil
}
