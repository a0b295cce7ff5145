package enriching

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/mail"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const defaultMaxUploadMB = 10

type EnrichmentService interface {
	Fields() []domain.EnrichmentField
	MaxUploadBytes() int64
	Submit(ctx context.Context, req domain.EnrichmentRequest) (*domain.EnrichmentReceipt, error)
}

type Service struct {
	maxUploadBytes int64
	generateID     func() (string, error)
	now            func() time.Time
}

func NewService(cfg *config.Config) *Service {
	maxMB := cfg.Enrichment.MaxUploadMB
	if maxMB <= 0 {
		maxMB = defaultMaxUploadMB
	}

	return &Service{
		maxUploadBytes: maxMB << 20,
		generateID:     utils.GenerateID,
		now:            time.Now,
	}
}

func (s *Service) Fields() []domain.EnrichmentField {
	return domain.EnrichmentFields
}

func (s *Service) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

// Submit valida o pedido e simula o envio para o enriquecimento.
// Nada é persistido nem enviado para fora.
func (s *Service) Submit(ctx context.Context, req domain.EnrichmentRequest) (*domain.EnrichmentReceipt, error) {
	form := FormFromRequest(req)
	if missing := form.Missing(); len(missing) > 0 {
		return nil, NewEnrichmentError(ErrMissingInput, apiErrors.ErrMissingRequiredData, missing)
	}

	email, err := mail.ParseAddress(strings.TrimSpace(req.Email))
	if err != nil {
		return nil, NewEnrichmentError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, req.Email)
	}

	fields, err := normalizeFields(req.Fields)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(filepath.Ext(req.FileName), ".csv") {
		return nil, NewEnrichmentError(ErrNotCSV, apiErrors.ErrInvalidFormat, req.FileName)
	}

	size := req.FileSize
	if size == 0 {
		size = int64(len(req.Content))
	}
	if size > s.maxUploadBytes {
		return nil, NewEnrichmentError(ErrFileTooLarge, apiErrors.ErrPayloadTooLarge, s.maxUploadBytes)
	}

	rows, err := countRows(req.Content)
	if err != nil {
		return nil, err
	}

	jobID, err := s.generateID()
	if err != nil {
		return nil, NewEnrichmentError(ErrGenerateJobID, apiErrors.ErrInternalServer, nil)
	}

	receipt := &domain.EnrichmentReceipt{
		JobID:       jobID,
		FileName:    filepath.Base(req.FileName),
		Rows:        rows,
		Fields:      fields,
		Email:       email.Address,
		Status:      domain.EnrichmentStatusQueued,
		SubmittedAt: s.now(),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"job_id":    receipt.JobID,
		"file_name": receipt.FileName,
		"rows":      receipt.Rows,
		"fields":    receipt.Fields,
	}).Info("Enriquecimento enfileirado")

	return receipt, nil
}

// normalizeFields remove duplicados e rejeita campos fora da lista
func normalizeFields(ids []string) ([]string, error) {
	known := make(map[string]struct{}, len(domain.EnrichmentFields))
	for _, field := range domain.EnrichmentFields {
		known[field.ID] = struct{}{}
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := known[id]; !ok {
			return nil, NewEnrichmentError(ErrUnknownField, apiErrors.ErrInvalidRequest, id)
		}
		if !domain.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out, nil
}

// countRows conta as linhas de dados, sem o cabeçalho
func countRows(content []byte) (int, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records := 0
	for {
		_, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, NewEnrichmentError(ErrMalformedFile, apiErrors.ErrInvalidFormat, err.Error())
		}
		records++
	}

	if records == 0 {
		return 0, NewEnrichmentError(ErrEmptyFile, apiErrors.ErrInvalidFormat, nil)
	}

	return records - 1, nil
}
