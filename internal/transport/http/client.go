package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eterno_memorial/internal/config"
	"eterno_memorial/internal/domain/models"
	"eterno_memorial/internal/lib/logger/sl"
	"eterno_memorial/internal/metrics"
	"eterno_memorial/internal/repository"
	"eterno_memorial/internal/storage"
	"eterno_memorial/internal/storage/session"
	"eterno_memorial/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

const (
	cacheKeyList = "memoriais:list"
	cacheKeySlug = "memoriais:slug:"
)

// Client implements repository.MemorialRepository over the backend's HTTP
// contract. The bearer token is read from the injected session store on
// every authenticated call; memorial reads go through a short-lived cache
// that every mutating call flushes. Comment reads are never cached so a
// fresh submit is always visible.
type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	baseURL    string
	userAgent  string
	session    session.Store
	validate   *validator.Validate
	cache      *cache.Cache
}

var _ repository.MemorialRepository = (*Client)(nil)

func NewClient(log *slog.Logger, apiCfg config.APIConfig, cacheCfg config.CacheConfig, sess session.Store) *Client {
	return &Client{
		log: log,
		httpClient: &http.Client{
			Timeout: apiCfg.Timeout,
		},
		baseURL:   apiCfg.BaseURL,
		userAgent: apiCfg.UserAgent,
		session:   sess,
		validate:  validator.New(),
		cache:     cache.New(cacheCfg.TTL, cacheCfg.CleanupInterval),
	}
}

func (c *Client) Login(ctx context.Context, email, senha string) (models.LoginResult, error) {
	const op = "transport.http.Login"

	var resp dto.LoginResponse
	req := dto.LoginRequest{Email: email, Senha: senha}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp, false, op); err != nil {
		return models.LoginResult{}, err
	}

	return resp.ToDomain(), nil
}

func (c *Client) ListMemorials(ctx context.Context) ([]models.Memorial, error) {
	const op = "transport.http.ListMemorials"

	if cached, ok := c.cache.Get(cacheKeyList); ok {
		return cached.([]models.Memorial), nil
	}

	var resp []dto.MemorialResponse
	if err := c.doJSON(ctx, http.MethodGet, "/memoriais", nil, &resp, false, op); err != nil {
		return nil, err
	}

	memorials := make([]models.Memorial, 0, len(resp))
	for _, m := range resp {
		memorials = append(memorials, m.ToDomain())
	}

	c.cache.SetDefault(cacheKeyList, memorials)
	return memorials, nil
}

func (c *Client) GetMemorialBySlug(ctx context.Context, slug string) (models.Memorial, error) {
	const op = "transport.http.GetMemorialBySlug"

	if cached, ok := c.cache.Get(cacheKeySlug + slug); ok {
		return cached.(models.Memorial), nil
	}

	var resp dto.MemorialResponse
	path := "/memoriais/" + url.PathEscape(slug)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, false, op); err != nil {
		return models.Memorial{}, err
	}

	memorial := resp.ToDomain()
	c.cache.SetDefault(cacheKeySlug+slug, memorial)
	return memorial, nil
}

func (c *Client) CreateMemorial(ctx context.Context, input repository.MemorialInput) (models.Memorial, error) {
	const op = "transport.http.CreateMemorial"

	var resp dto.MemorialResponse
	if err := c.doJSON(ctx, http.MethodPost, "/memoriais", payloadFromInput(input), &resp, true, op); err != nil {
		return models.Memorial{}, err
	}

	c.cache.Flush()
	return resp.ToDomain(), nil
}

func (c *Client) UpdateMemorial(ctx context.Context, slug string, input repository.MemorialInput) (models.Memorial, error) {
	const op = "transport.http.UpdateMemorial"

	var resp dto.MemorialResponse
	path := "/memoriais/" + url.PathEscape(slug)
	if err := c.doJSON(ctx, http.MethodPut, path, payloadFromInput(input), &resp, true, op); err != nil {
		return models.Memorial{}, err
	}

	c.cache.Flush()
	return resp.ToDomain(), nil
}

func (c *Client) DeleteMemorial(ctx context.Context, slug string) error {
	const op = "transport.http.DeleteMemorial"

	var resp dto.DeleteResponse
	path := "/memoriais/" + url.PathEscape(slug)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &resp, true, op); err != nil {
		return err
	}

	c.cache.Flush()
	return nil
}

func (c *Client) ListComments(ctx context.Context, slug string, pagina, porPagina int) (models.ComentariosPage, error) {
	const op = "transport.http.ListComments"

	var resp dto.ComentariosResponse
	path := fmt.Sprintf("/memoriais/%s/comentarios?pagina=%d&porPagina=%d",
		url.PathEscape(slug), pagina, porPagina)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, false, op); err != nil {
		return models.ComentariosPage{}, err
	}

	return resp.ToDomain(), nil
}

func (c *Client) CreateComment(ctx context.Context, slug, nome, texto string) (models.Comentario, error) {
	const op = "transport.http.CreateComment"

	var resp dto.ComentarioResponse
	req := dto.ComentarioCreateRequest{Nome: nome, Texto: texto}
	path := "/memoriais/" + url.PathEscape(slug) + "/comentarios"
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp, false, op); err != nil {
		return models.Comentario{}, err
	}

	return resp.ToDomain(), nil
}

// doJSON issues one backend call: marshal, send, classify the status, decode
// and shape-check the response. Every failure comes back as a
// *models.RequestError so callers never see raw transport errors.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, auth bool, op string) error {
	log := c.log.With(
		slog.String("op", op),
		slog.String("method", method),
		slog.String("path", path),
	)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &models.RequestError{Message: "falha ao montar requisição", Err: err}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &models.RequestError{Message: "requisição inválida", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	if auth {
		token, err := c.session.Token(ctx)
		if err != nil {
			if errors.Is(err, storage.ErrNoToken) {
				return models.NewRequestError(http.StatusUnauthorized, "")
			}
			log.Error("failed to read session token", sl.Err(err))
			return &models.RequestError{Message: "falha ao ler sessão", Err: err}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues(method, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(method, op, "transport_error").Inc()
		log.Error("request failed", sl.Err(err))
		return &models.RequestError{Message: "falha de rede", Err: err}
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(method, op, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.RequestError{StatusCode: resp.StatusCode, Message: "falha ao ler resposta", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.classifyError(log, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		log.Error("failed to decode response", sl.Err(err))
		return &models.RequestError{StatusCode: resp.StatusCode, Message: "resposta inválida do servidor", Err: err}
	}

	if err := c.validateShape(out); err != nil {
		log.Error("response failed shape validation", sl.Err(err))
		return &models.RequestError{StatusCode: resp.StatusCode, Message: "resposta inválida do servidor", Err: err}
	}

	return nil
}

// classifyError prefers the backend's structured {"error": ...} body and
// falls back to a message synthesized from the HTTP status.
func (c *Client) classifyError(log *slog.Logger, statusCode int, body []byte) error {
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		log.Warn("backend rejected request",
			slog.Int("status", statusCode),
			slog.String("message", errResp.Error),
		)
		return models.NewRequestError(statusCode, errResp.Error)
	}

	log.Warn("backend rejected request", slog.Int("status", statusCode))
	return models.NewRequestError(statusCode, "")
}

func (c *Client) validateShape(out any) error {
	switch v := out.(type) {
	case *dto.LoginResponse:
		return c.validate.Struct(v)
	case *dto.MemorialResponse:
		return c.validate.Struct(v)
	case *dto.ComentarioResponse:
		return c.validate.Struct(v)
	case *dto.ComentariosResponse:
		return c.validate.Struct(v)
	case *[]dto.MemorialResponse:
		for i := range *v {
			if err := c.validate.Struct((*v)[i]); err != nil {
				return err
			}
		}
		return nil
	case *dto.DeleteResponse:
		return nil
	}
	return nil
}

func payloadFromInput(input repository.MemorialInput) dto.MemorialPayload {
	payload := dto.MemorialPayload{
		Nome:           input.Nome,
		Biografia:      input.Biografia,
		Slug:           input.Slug,
		FotoMainURL:    input.FotoMainURL,
		CorPrincipal:   input.CorPrincipal,
		GaleriaFotos:   input.GaleriaFotos,
		GaleriaVideos:  input.GaleriaVideos,
		DataNascimento: input.DataNascimento,
		DataMorte:      input.DataMorte,
		CausaMorte:     input.CausaMorte,
	}
	if payload.GaleriaFotos == nil {
		payload.GaleriaFotos = []string{}
	}
	if payload.GaleriaVideos == nil {
		payload.GaleriaVideos = []string{}
	}
	return payload
}
