package icpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	statusPath   = "/icp/status"
	criteriaPath = "/icp/criteria"
)

// Client fala com o backend que persiste os critérios de ICP.
// Um token vazio envia a requisição sem o cabeçalho Authorization.
type Client interface {
	GetStatus(ctx context.Context, token string) (*StatusResponse, error)
	UpdateCriteria(ctx context.Context, token string, payload domain.ICPCriteriaPayload) (*UpdateResponse, error)
}

type StatusResponse struct {
	Success     *bool                     `json:"success,omitempty"`
	Message     string                    `json:"message,omitempty"`
	ICPCriteria *domain.RemoteICPCriteria `json:"icp_criteria,omitempty"`
}

// IsSuccess considera sucesso quando o campo não veio
func (r *StatusResponse) IsSuccess() bool {
	return r.Success == nil || *r.Success
}

type UpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// APIError é devolvido quando o backend responde com status fora de 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend de ICP respondeu %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend de ICP respondeu %d", e.StatusCode)
}

type ICPClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.ICPBackend.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ICPClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(cfg.ICPBackend.URL, "/"),
	}
}

func (c *ICPClient) GetStatus(ctx context.Context, token string) (*StatusResponse, error) {
	var response StatusResponse
	if err := c.do(ctx, http.MethodGet, statusPath, token, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *ICPClient) UpdateCriteria(ctx context.Context, token string, payload domain.ICPCriteriaPayload) (*UpdateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar critérios de ICP")
	}

	var response UpdateResponse
	if err := c.do(ctx, http.MethodPut, criteriaPath, token, body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *ICPClient) do(ctx context.Context, method, path, token string, body []byte, dest any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(raw),
		}
	}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}

// extractMessage tenta ler {"message": "..."} ou {"detail": "..."} do corpo de erro
func extractMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Detail
}
