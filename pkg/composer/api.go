package composer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/NethermindEth/lovenotes/pkg/composer/phrasebook"
)

const shutdownTimeout = 10 * time.Second

type TemplateRequest struct {
	ContentType string `json:"content_type" form:"content_type"`
	Adjective   string `json:"adjective" form:"adjective"`
	Noun        string `json:"noun" form:"noun"`
	Verb        string `json:"verb" form:"verb"`
}

type ModelRequest struct {
	Prompt    string `json:"prompt" form:"prompt"`
	MaxLength int    `json:"max_length" form:"max_length" binding:"omitempty,min=30,max=100"`
}

type WordBanksResponse struct {
	ContentTypes []phrasebook.ContentType `json:"content_types"`
	Banks        map[string][]string      `json:"banks"`
}

type PinResponse struct {
	Cid string `json:"cid"`
}

func (c *Composer) generateRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default(), metricsMiddleware())
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, pageTemplateName, c.pageData())
	})

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	api.GET("/wordbanks", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, c.wordBanks())
	})

	api.POST("/template", func(ctx *gin.Context) {
		var req TemplateRequest
		if err := ctx.ShouldBind(&req); err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}

		contentType, err := phrasebook.ParseContentType(req.ContentType)
		if err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}

		message := c.GenerateTemplate(ctx.Request.Context(), contentType, phrasebook.Overrides{
			Adjective: req.Adjective,
			Noun:      req.Noun,
			Verb:      req.Verb,
		})

		ctx.JSON(http.StatusOK, message)
	})

	api.POST("/model", func(ctx *gin.Context) {
		var req ModelRequest
		if err := ctx.ShouldBind(&req); err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}

		message, err := c.GenerateModel(ctx.Request.Context(), req.Prompt, req.MaxLength)
		if err != nil {
			ctx.String(errorStatus(err), err.Error())
			return
		}

		ctx.JSON(http.StatusOK, message)
	})

	api.GET("/messages/:id", func(ctx *gin.Context) {
		message, err := c.Message(ctx.Param("id"))
		if err != nil {
			ctx.String(errorStatus(err), err.Error())
			return
		}

		ctx.JSON(http.StatusOK, message)
	})

	api.POST("/messages/:id/pin", func(ctx *gin.Context) {
		cid, err := c.PinMessage(ctx.Request.Context(), ctx.Param("id"))
		if err != nil {
			ctx.String(errorStatus(err), err.Error())
			return
		}

		ctx.JSON(http.StatusOK, PinResponse{Cid: cid})
	})

	return router
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPinningDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (c *Composer) wordBanks() WordBanksResponse {
	banks := make(map[string][]string)
	for _, bank := range c.phrasebook.Banks() {
		banks[string(bank.Category())] = bank.Words()
	}

	return WordBanksResponse{
		ContentTypes: c.phrasebook.ContentTypes(),
		Banks:        banks,
	}
}

func (c *Composer) GetRouter() *gin.Engine {
	return c.apiRouter
}

// StartServer serves the router on the configured address until ctx is done.
// With no address configured it only waits for ctx.
func (c *Composer) StartServer(ctx context.Context) error {
	if c.listenAddr == "" {
		slog.Info("listen address is empty, skipping server")
		<-ctx.Done()
		return ctx.Err()
	}

	slog.Info("starting server", "address", c.listenAddr)

	server := &http.Server{
		Addr:    c.listenAddr,
		Handler: c.apiRouter,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return ctx.Err()
	})

	return g.Wait()
}
