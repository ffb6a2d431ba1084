// Package server exposes tokenization and keyword extraction over HTTP.
package server

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/oarkflow/rake/nlp/config"
	"github.com/oarkflow/rake/nlp/document"
	"github.com/oarkflow/rake/nlp/keyword"
	"github.com/oarkflow/rake/nlp/pipeline"
)

type textRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

type tokenView struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	Tag     string `json:"tag,omitempty"`
	Label   string `json:"label,omitempty"`
	IsStop  bool   `json:"is_stop"`
	IsSpace bool   `json:"is_space"`
	IsPunct bool   `json:"is_punct"`
	LikeNum bool   `json:"like_num"`
}

type handler struct {
	extractor *keyword.Rake
	analyzer  keyword.Analyzer
	metrics   *metrics
	logger    *zap.Logger
}

// New builds the HTTP app. The analyzer serves /tokenize; the extractor
// serves /keywords with its own analyzer.
func New(cfg config.Server, extractor *keyword.Rake, analyzer keyword.Analyzer, logger *zap.Logger) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{extractor: extractor, analyzer: analyzer, metrics: newMetrics(), logger: logger}

	app := fiber.New(fiber.Config{
		AppName:               "rake",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          h.handleError,
	})
	app.Use(requestid.New())
	app.Use(h.observe)
	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{})))
	app.Post("/tokenize", h.tokenize)
	app.Post("/keywords", h.keywords)
	return app
}

// Run builds the extractor from cfg and serves until ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	extractor, err := keyword.FromConfig(cfg.Extractor, logger)
	if err != nil {
		return err
	}
	analyzer, err := pipeline.Load(cfg.Extractor.Pipeline)
	if err != nil {
		return err
	}
	app := New(cfg.Server, extractor, analyzer, logger)

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr), zap.String("pipeline", cfg.Extractor.Pipeline))
		errc <- app.Listen(cfg.Server.Addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}

func (h *handler) tokenize(c *fiber.Ctx) error {
	req, err := parseRequest(c)
	if err != nil {
		return err
	}
	doc, err := h.analyzer.Parse(req.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"tokens": tokenViews(doc)})
}

func (h *handler) keywords(c *fiber.Ctx) error {
	req, err := parseRequest(c)
	if err != nil {
		return err
	}
	if req.Limit < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "limit must not be negative")
	}
	ranked, err := h.extractor.Apply(req.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	h.metrics.phrases.Observe(float64(len(ranked)))
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}
	return c.JSON(fiber.Map{"keywords": ranked})
}

func parseRequest(c *fiber.Ctx) (textRequest, error) {
	var req textRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(fiber.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return req, nil
}

func tokenViews(doc *document.Document) []tokenView {
	out := make([]tokenView, 0, doc.Len())
	if doc == nil {
		return out
	}

	for _, t := range doc.Tokens {
		out = append(out, tokenView{
			Text:    t.Text,
			Lemma:   t.Lemma,
			Tag:     t.Tag,
			Label:   t.Label,
			IsStop:  t.IsStop,
			IsSpace: t.IsSpace,
			IsPunct: t.IsPunct,
			LikeNum: t.LikeNum,
		})
	}
	return out
}

func (h *handler) observe(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	if err != nil {
		if herr := c.App().ErrorHandler(c, err); herr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}
	status := c.Response().StatusCode()
	route := c.Route().Path
	elapsed := time.Since(start)

	h.metrics.requests.WithLabelValues(route, c.Method(), strconv.Itoa(status)).Inc()
	h.metrics.latency.WithLabelValues(route).Observe(elapsed.Seconds())
	h.logger.Info("HTTP Request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
		zap.String("requestID", c.GetRespHeader(fiber.HeaderXRequestID)),
	)
	return nil
}

func (h *handler) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
	}
	if code >= fiber.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
