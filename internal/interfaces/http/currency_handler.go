package http

import (
	"github.com/gofiber/fiber/v2"

	appcurrency "github.com/jhoicas/invoice-studio/internal/application/currency"
	"github.com/jhoicas/invoice-studio/internal/application/dto"
	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
)

// CurrencyHandler expone el registro de monedas y la selección activa.
type CurrencyHandler struct {
	registry  *appcurrency.Registry
	selection *appcurrency.Selection
}

// NewCurrencyHandler construye el handler.
func NewCurrencyHandler(registry *appcurrency.Registry, selection *appcurrency.Selection) *CurrencyHandler {
	return &CurrencyHandler{registry: registry, selection: selection}
}

// Search godoc
// @Summary      Buscar monedas (agrupadas: comunes, personalizadas, otras)
// @Tags         currencies
// @Produce      json
// @Param        q  query  string  false  "Código, nombre o plural"
// @Success      200  {object}  dto.CurrencyGroupsResponse
// @Router       /api/currencies [get]
func (h *CurrencyHandler) Search(c *fiber.Ctx) error {
	g := h.registry.Search(c.Query("q"))
	return c.JSON(dto.CurrencyGroupsResponse{
		Common: dto.FromCurrencies(g.Common),
		Custom: dto.FromCurrencies(g.Custom),
		Others: dto.FromCurrencies(g.Others),
	})
}

// Get godoc
// @Summary      Resolver un código de moneda
// @Tags         currencies
// @Produce      json
// @Param        code  path  string  true  "Código ISO"
// @Success      200  {object}  dto.CurrencyResponse
// @Router       /api/currencies/{code} [get]
func (h *CurrencyHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.resolve(c.Params("code")))
}

// Create godoc
// @Summary      Registrar moneda personalizada
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCurrencyRequest  true  "Moneda"
// @Success      201   {object}  dto.CurrencyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/currencies [post]
func (h *CurrencyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCurrencyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	cur, err := h.registry.Add(c.UserContext(), in.Code, in.Symbol, in.SymbolNative, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCurrency(cur, false))
}

// Delete godoc
// @Summary      Eliminar moneda personalizada
// @Tags         currencies
// @Param        code  path  string  true  "Código"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/currencies/{code} [delete]
func (h *CurrencyHandler) Delete(c *fiber.Ctx) error {
	if err := h.registry.Remove(c.UserContext(), c.Params("code")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Selected godoc
// @Summary      Moneda activa del editor
// @Tags         currencies
// @Produce      json
// @Success      200  {object}  dto.SelectedCurrencyResponse
// @Router       /api/currencies/selected [get]
func (h *CurrencyHandler) Selected(c *fiber.Ctx) error {
	code := h.selection.Code()
	return c.JSON(dto.SelectedCurrencyResponse{Code: code, Currency: h.resolve(code)})
}

// Select godoc
// @Summary      Cambiar la moneda activa
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectCurrencyRequest  true  "Código"
// @Success      200   {object}  dto.SelectedCurrencyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/currencies/selected [put]
func (h *CurrencyHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectCurrencyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	h.selection.Set(in.Code)
	return h.Selected(c)
}

func (h *CurrencyHandler) resolve(code string) dto.CurrencyResponse {
	res := h.registry.Resolve(code)
	_, fallback := res.(domaincurrency.Fallback)
	return dto.FromCurrency(res.Currency(), fallback)
}
