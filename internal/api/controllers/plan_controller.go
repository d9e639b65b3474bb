package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MOTAHAR124/AI-Trip-Planner/internal/models/request_models"
	"github.com/MOTAHAR124/AI-Trip-Planner/internal/services"
	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/generator"
	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/middleware"
)

type PlanController struct {
	planService services.PlanServiceInterface
	logger      *zap.Logger
}

func NewPlanController(planService services.PlanServiceInterface, logger *zap.Logger) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      logger,
	}
}

// CreatePlanHandler handles POST /api/plan. It relays the generator's output
// as a chunked text/plain body, flushing each fragment as it arrives. The
// response status is decided by the first event: a fragment starts a 200
// stream, an error before any fragment becomes a plain-text failure.
func (p *PlanController) CreatePlanHandler(c *gin.Context) {
	var req request_models.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request format")
		return
	}

	fullName := c.GetString(middleware.ContextFullNameKey)
	if fullName == "" {
		fullName = services.DefaultFullName
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		p.logger.Error("Response writer does not support flushing")
		c.String(http.StatusInternalServerError, "Streaming not supported")
		return
	}

	ctx := c.Request.Context()
	chunks, errs := p.planService.StreamPlan(ctx, req, fullName)

	started := false
	for chunks != nil || errs != nil {
		select {
		case chunk, open := <-chunks:
			if !open {
				chunks = nil
				continue
			}
			if !started {
				writeStreamHeaders(c)
				started = true
			}
			if _, err := io.WriteString(c.Writer, chunk); err != nil {
				p.logger.Warn("Client write failed, stopping relay", zap.Error(err))
				return
			}
			flusher.Flush()

		case err, open := <-errs:
			if !open {
				errs = nil
				continue
			}
			p.failStream(c, err, started)
			return

		case <-ctx.Done():
			p.logger.Info("Client disconnected during plan stream")
			return
		}
	}

	if !started {
		// Generator finished without producing anything; still a clean stream.
		writeStreamHeaders(c)
	}
}

func writeStreamHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-store")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
}

// failStream reports a generator failure. Before the first byte it is a plain
// 500; once plain-text streaming has begun the only honest signal left is an
// aborted body, so the connection is dropped without a terminal chunk.
func (p *PlanController) failStream(c *gin.Context, err error, started bool) {
	var cfgErr *generator.ConfigError
	if errors.As(err, &cfgErr) {
		p.logger.Error("Plan generator misconfigured", zap.Error(err))
		c.String(http.StatusInternalServerError, "Server misconfiguration: "+cfgErr.Error())
		return
	}

	if !started {
		p.logger.Error("Plan generation failed", zap.Error(err))
		msg := err.Error()
		if msg == "" {
			msg = "Failed to generate plan"
		}
		c.String(http.StatusInternalServerError, msg)
		return
	}

	p.logger.Error("Plan generation failed mid-stream", zap.Error(err))
	p.abortConnection(c)
}

// abortConnection drops the underlying connection so the client sees a
// truncated body instead of a clean end of stream. Writers that cannot be
// hijacked (test recorders) just stop the handler chain.
func (p *PlanController) abortConnection(c *gin.Context) {
	defer func() {
		if recover() != nil {
			c.Abort()
		}
	}()

	if hj, ok := c.Writer.(http.Hijacker); ok {
		if conn, _, err := hj.Hijack(); err == nil {
			conn.Close()
			return
		}
	}
	c.Abort()
}
