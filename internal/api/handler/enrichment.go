package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// folga para os outros campos do multipart além do arquivo
const multipartOverhead = 1 << 20

func ListEnrichmentFields(service enriching.EnrichmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"fields":           service.Fields(),
			"max_upload_bytes": service.MaxUploadBytes(),
		})
	}
}

// SubmitEnrichment recebe multipart com file, fields e email
func SubmitEnrichment(service enriching.EnrichmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes()+multipartOverhead)
		if err := r.ParseMultipartForm(service.MaxUploadBytes()); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Arquivo maior que o permitido", service.MaxUploadBytes())
				return
			}
			logger.WithError(err).Warn("Formulário de enriquecimento inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		req := domain.EnrichmentRequest{
			Fields: parseFields(r.MultipartForm.Value["fields"]),
			Email:  r.FormValue("email"),
		}

		file, header, err := r.FormFile("file")
		switch {
		case err == nil:
			defer file.Close()

			content, err := io.ReadAll(file)
			if err != nil {
				logger.WithError(err).Error("Erro ao ler arquivo enviado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler arquivo", nil)
				return
			}

			req.FileName = header.Filename
			req.FileSize = header.Size
			req.Content = content
		case errors.Is(err, http.ErrMissingFile):
			// O serviço reporta o arquivo como entrada faltante
		default:
			logger.WithError(err).Warn("Arquivo de enriquecimento inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo inválido", nil)
			return
		}

		receipt, err := service.Submit(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusAccepted, receipt)
	}
}

// parseFields aceita o campo repetido ou uma lista separada por vírgula
func parseFields(values []string) []string {
	fields := make([]string, 0, len(values))
	for _, value := range values {
		for _, field := range strings.Split(value, ",") {
			if field = strings.TrimSpace(field); field != "" {
				fields = append(fields, field)
			}
		}
	}
	return fields
}
