package suite

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"eterno_memorial/internal/domain/models"
	"eterno_memorial/internal/transport/http/dto"
)

// Backend is an in-memory stand-in for the real API, faithful to its
// routes and response shapes. State is guarded so parallel suites can
// share one instance-per-test without races.
type Backend struct {
	Email string
	Senha string
	Token string

	mu        sync.Mutex
	memorials map[string]dto.MemorialResponse
	comments  map[string][]dto.ComentarioResponse
}

func NewBackend() *Backend {
	return &Backend{
		Email:     "operador@eterno.com",
		Senha:     "senha-forte",
		Token:     uuid.NewString(),
		memorials: make(map[string]dto.MemorialResponse),
		comments:  make(map[string][]dto.ComentarioResponse),
	}
}

// Handler builds the echo router with the API surface the client speaks.
func (b *Backend) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true

	e.POST("/auth/login", b.login)
	e.GET("/memoriais", b.list)
	e.POST("/memoriais", b.create, b.authorized)
	e.GET("/memoriais/:slug", b.get)
	e.PUT("/memoriais/:slug", b.update, b.authorized)
	e.DELETE("/memoriais/:slug", b.delete, b.authorized)
	e.GET("/memoriais/:slug/comentarios", b.listComments)
	e.POST("/memoriais/:slug/comentarios", b.createComment)

	return e
}

func (b *Backend) authorized(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "Bearer "+b.Token {
			return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "não autenticado"})
		}
		return next(c)
	}
}

func (b *Backend) login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "corpo inválido"})
	}

	if req.Email != b.Email || req.Senha != b.Senha {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "credenciais inválidas"})
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   b.Token,
		User:    dto.UserResponse{Email: b.Email, Name: "Operador"},
	})
}

func (b *Backend) list(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]dto.MemorialResponse, 0, len(b.memorials))
	for _, m := range b.memorials {
		out = append(out, m)
	}
	return c.JSON(http.StatusOK, out)
}

func (b *Backend) get(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok := b.memorials[c.Param("slug")]
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "memorial não encontrado"})
	}
	return c.JSON(http.StatusOK, m)
}

func (b *Backend) create(c echo.Context) error {
	var payload dto.MemorialPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "corpo inválido"})
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.memorials[payload.Slug]; exists {
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "slug já em uso"})
	}

	m := fromPayload(payload)
	m.ID = uuid.NewString()
	b.memorials[m.Slug] = m

	return c.JSON(http.StatusCreated, m)
}

func (b *Backend) update(c echo.Context) error {
	var payload dto.MemorialPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "corpo inválido"})
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	slug := c.Param("slug")
	current, ok := b.memorials[slug]
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "memorial não encontrado"})
	}

	m := fromPayload(payload)
	m.ID = current.ID
	m.Slug = slug
	b.memorials[slug] = m

	return c.JSON(http.StatusOK, m)
}

func (b *Backend) delete(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	slug := c.Param("slug")
	if _, ok := b.memorials[slug]; !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "memorial não encontrado"})
	}

	delete(b.memorials, slug)
	delete(b.comments, slug)

	return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
}

func (b *Backend) listComments(c echo.Context) error {
	pagina, err := strconv.Atoi(c.QueryParam("pagina"))
	if err != nil || pagina < 1 {
		pagina = 1
	}
	porPagina, err := strconv.Atoi(c.QueryParam("porPagina"))
	if err != nil || porPagina < 1 {
		porPagina = 5
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	slug := c.Param("slug")
	if _, ok := b.memorials[slug]; !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "memorial não encontrado"})
	}

	all := b.comments[slug]
	total := len(all)

	start := (pagina - 1) * porPagina
	if start > total {
		start = total
	}
	end := start + porPagina
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, dto.ComentariosResponse{
		Comentarios:  append([]dto.ComentarioResponse{}, all[start:end]...),
		Total:        total,
		Pagina:       pagina,
		PorPagina:    porPagina,
		TotalPaginas: models.TotalPages(total, porPagina),
	})
}

func (b *Backend) createComment(c echo.Context) error {
	var req dto.ComentarioCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "corpo inválido"})
	}
	if req.Texto == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "texto é obrigatório"})
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	slug := c.Param("slug")
	if _, ok := b.memorials[slug]; !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "memorial não encontrado"})
	}

	comment := dto.ComentarioResponse{
		ID:       fmt.Sprintf("c-%d", len(b.comments[slug])+1),
		Nome:     req.Nome,
		Texto:    req.Texto,
		CriadoEm: time.Now().UTC(),
	}
	// newest first, like the site renders them
	b.comments[slug] = append([]dto.ComentarioResponse{comment}, b.comments[slug]...)

	return c.JSON(http.StatusCreated, comment)
}

func fromPayload(p dto.MemorialPayload) dto.MemorialResponse {
	m := dto.MemorialResponse{
		Nome:           p.Nome,
		Biografia:      p.Biografia,
		Slug:           p.Slug,
		FotoMainURL:    p.FotoMainURL,
		CorPrincipal:   p.CorPrincipal,
		GaleriaFotos:   p.GaleriaFotos,
		GaleriaVideos:  p.GaleriaVideos,
		DataNascimento: p.DataNascimento,
		DataMorte:      p.DataMorte,
		CausaMorte:     p.CausaMorte,
	}
	if m.GaleriaFotos == nil {
		m.GaleriaFotos = []string{}
	}
	if m.GaleriaVideos == nil {
		m.GaleriaVideos = []string{}
	}
	return m
}
