package helper

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelope do contrato: sucesso sempre {"message": ...}, erro sempre
// {"error": ...}. Listagens são array puro e não passam por aqui.

func JSONMessage(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

func JSONError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// JSONErrorf formata mensagens que carregam o id consultado, ex.:
// "A turma com ID 999 não existe."
func JSONErrorf(c *fiber.Ctx, code int, format string, args ...interface{}) error {
	return JSONError(c, code, fmt.Sprintf(format, args...))
}

// ValidationError cobre payload ilegível e campos obrigatórios ausentes.
// A mensagem é a mesma do sistema original.
func ValidationError(c *fiber.Ctx, err error) error {
	if ve, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
		return JSONErrorf(c, fiber.StatusBadRequest, "Dados inválidos ou faltando: %v.", fields)
	}
	return JSONError(c, fiber.StatusBadRequest, "Dados inválidos ou faltando.")
}

// UpstreamFailure mapeia a falha da consulta de existência para 500,
// preservando o tipo da falha na mensagem (unreachable / error / bad
// response) para diagnóstico do operador.
func UpstreamFailure(c *fiber.Ctx, what string, err error) error {
	return JSONErrorf(c, fiber.StatusInternalServerError, "Falha ao consultar %s: %v", what, err)
}

// StoreFailure: falha genérica de persistência local.
func StoreFailure(c *fiber.Ctx, err error) error {
	return JSONErrorf(c, fiber.StatusInternalServerError, "Falha no banco de dados: %v", err)
}
