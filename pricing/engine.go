package pricing

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config represents the pricing configuration structure
type Config struct {
	Currency         string `json:"currency"`
	DesignMRP        int64  `json:"designMrp"`        // fixed list price for studio designs
	ShippingFlat     int64  `json:"shippingFlat"`     // per-store shipping fee
	FreeShippingOver int64  `json:"freeShippingOver"` // subtotal above which shipping is free (0 = never)
}

// Engine handles price calculations based on JSON configuration
type Engine struct {
	config *Config
}

var engineInstance *Engine

// NewEngine creates a new pricing engine instance from a JSON config file
// and registers it as the process-wide engine.
func NewEngine(configPath string) (*Engine, error) {
	if engineInstance != nil {
		return engineInstance, nil
	}

	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}

	engineInstance = &Engine{config: &config}
	log.Printf("✓ Pricing engine loaded: currency=%s designMrp=%d shipping=%d",
		config.Currency, config.DesignMRP, config.ShippingFlat)
	return engineInstance, nil
}

// GetEngine returns the process-wide engine, or nil before NewEngine ran.
func GetEngine() *Engine {
	return engineInstance
}

func validateConfig(config *Config) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if config.DesignMRP <= 0 {
		return fmt.Errorf("designMrp must be greater than 0")
	}
	if config.ShippingFlat < 0 {
		return fmt.Errorf("shippingFlat cannot be negative")
	}
	return nil
}

// DesignMRP returns the fixed list price applied to studio designs.
func (e *Engine) DesignMRP() int64 {
	return e.config.DesignMRP
}

// ShippingFee returns the shipping fee for one store's order subtotal.
func (e *Engine) ShippingFee(subtotal int64) int64 {
	if e.config.FreeShippingOver > 0 && subtotal >= e.config.FreeShippingOver {
		return 0
	}
	return e.config.ShippingFlat
}

// OrderTotal returns the subtotal plus the applicable shipping fee.
func (e *Engine) OrderTotal(subtotal int64) int64 {
	return subtotal + e.ShippingFee(subtotal)
}
