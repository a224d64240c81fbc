package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/invoice-studio/models"
)

// ListCurrencies returns the fixed currency table the UI renders symbols
// from.
func ListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, models.Currencies)
}

// ListTaxPresets returns the tax rate presets offered by the UI.
func ListTaxPresets(c *gin.Context) {
	c.JSON(http.StatusOK, models.TaxPresets)
}
