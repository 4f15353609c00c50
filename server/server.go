package server

import (
	"bytes"
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/pkg/errors"

	"github.com/Mystique1337/bible-explainer/output"
	"github.com/Mystique1337/bible-explainer/pipeline"
)

type Dependencies struct {
	Orchestrator *pipeline.Orchestrator
	// AccessLog enables fiber's request logger.
	AccessLog bool
}

type explainRequest struct {
	Reference string `json:"reference" form:"reference"`
	APIKey    string `json:"api_key" form:"api_key"`
	Model     string `json:"model" form:"model"`
}

func (r explainRequest) toPipeline() pipeline.Request {
	return pipeline.Request{Reference: r.Reference, APIKey: r.APIKey, Model: r.Model}
}

// New builds the fiber app serving the UI, the JSON API and the progress
// websocket.
func New(d Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "bible-explainer",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	if d.AccessLog {
		app.Use(logger.New())
	}

	orch := d.Orchestrator

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return render(c, newPageData(orch.Provider()))
	})

	// form submission, renders the result page
	app.Post("/explain", func(c *fiber.Ctx) error {
		req := explainRequest{
			Reference: c.FormValue("reference"),
			APIKey:    c.FormValue("api_key"),
			Model:     c.FormValue("model"),
		}
		res := orch.Run(c.UserContext(), req.toPipeline())

		data := newPageData(orch.Provider())
		data.Model = req.Model
		data.setResult(res)
		return render(c, data)
	})

	app.Get("/api/backend", func(c *fiber.Ctx) error {
		p := orch.Provider()
		models := p.Models()
		if models == nil {
			models = []string{}
		}
		return c.JSON(fiber.Map{
			"backend":          p.Name(),
			"needs_credential": p.NeedsCredential(),
			"models":           models,
		})
	})

	app.Post("/api/explain", func(c *fiber.Ctx) error {
		var req explainRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		res := orch.Run(c.UserContext(), req.toPipeline())
		return c.Status(statusFor(res)).JSON(output.NewPayload(res))
	})

	// Middleware to require WebSocket upgrade on /ws
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/explain", websocket.New(func(ws *websocket.Conn) {
		defer ws.Close()

		out := output.NewProgressOutput(ws)

		var req explainRequest
		if err := ws.ReadJSON(&req); err != nil {
			log.Printf("❌ ws/explain read error: %v", err)
			bad := pipeline.Result{
				Stage: pipeline.StageAwaitingInput,
				Kind:  pipeline.KindMissingInput,
				Err:   errors.Wrap(err, "read request"),
			}
			if err := out.SendResult(bad); err != nil {
				log.Printf("❌ ws/explain result write error: %v", err)
			}
			return
		}
		res := orch.RunWithProgress(context.Background(), req.toPipeline(), out.SendStage)
		if err := out.SendResult(res); err != nil {
			log.Printf("❌ ws/explain result write error: %v", err)
		}
	}))

	return app
}

func render(c *fiber.Ctx, data pageData) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func statusFor(res pipeline.Result) int {
	switch res.Kind {
	case pipeline.KindNone:
		return fiber.StatusOK
	case pipeline.KindMissingInput:
		return fiber.StatusBadRequest
	case pipeline.KindVerseNotFound:
		return fiber.StatusNotFound
	case pipeline.KindVerseFetchTransport, pipeline.KindExplanationUpstream:
		return fiber.StatusBadGateway
	case pipeline.KindExplanationUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
