// Package server exposes the analyzers over HTTP for hosts that prefer an
// API to the CLI. Every handler is a thin wrapper around the same pure
// analyze/validate/render calls; the server holds no state between
// requests.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/vk/txtopo/internal/model"
	"github.com/vk/txtopo/internal/render"
	"github.com/vk/txtopo/internal/topology"
)

// New builds the fiber application with all visualization routes mounted.
func New() *fiber.App {
	app := fiber.New()

	app.Get("/health", func(c fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Post("/saga/visualize", visualizeSaga)
	app.Post("/saga/validate", validateSaga)
	app.Post("/saga/summary", sagaSummary)

	app.Post("/tcc/visualize", visualizeTcc)
	app.Post("/tcc/validate", validateTcc)
	app.Post("/tcc/summary", tccSummary)

	return app
}

func queryFormat(c fiber.Ctx) (render.Format, error) {
	return render.ParseFormat(c.Query("format", string(render.FormatASCII)))
}

func visualizeSaga(c fiber.Ctx) error {
	var decl model.Saga
	if err := c.Bind().JSON(&decl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	format, err := queryFormat(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := topology.VisualizeSaga(&decl, format)
	var notSaga *topology.NotASagaError
	if errors.As(err, &notSaga) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendString(out)
}

func validateSaga(c fiber.Ctx) error {
	var decl model.Saga
	if err := c.Bind().JSON(&decl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	topo, err := topology.AnalyzeSaga(&decl)
	var notSaga *topology.NotASagaError
	if errors.As(err, &notSaga) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"saga":   topo.SagaName,
		"issues": topology.Messages(topology.ValidateSaga(topo)),
	})
}

func sagaSummary(c fiber.Ctx) error {
	var decl model.Saga
	if err := c.Bind().JSON(&decl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	topo, err := topology.AnalyzeSaga(&decl)
	var notSaga *topology.NotASagaError
	if errors.As(err, &notSaga) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendString(topology.SagaExecutionSummary(topo))
}

func visualizeTcc(c fiber.Ctx) error {
	var decl model.Tcc
	if err := c.Bind().JSON(&decl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	format, err := queryFormat(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	out, err := topology.VisualizeTcc(&decl, format)
	var notTcc *topology.NotATccError
	if errors.As(err, &notTcc) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendString(out)
}

func validateTcc(c fiber.Ctx) error {
	var decl model.Tcc
	if err := c.Bind().JSON(&decl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	topo, err := topology.AnalyzeTcc(&decl)
	var notTcc *topology.NotATccError
	if errors.As(err, &notTcc) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"tcc":    topo.TccName,
		"issues": topology.Messages(topology.ValidateTcc(topo)),
	})
}

func tccSummary(c fiber.Ctx) error {
	var decl model.Tcc
	if err := c.Bind().JSON(&decl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	topo, err := topology.AnalyzeTcc(&decl)
	var notTcc *topology.NotATccError
	if errors.As(err, &notTcc) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendString(topology.TccExecutionSummary(topo))
}
