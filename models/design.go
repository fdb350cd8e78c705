package models

// PlacementInput is one entry of the placements document a studio client
// sends with POST /api/store/design. Coordinates are percentages of the
// printable container; Asset is the index of the uploaded artwork file the
// placement refers to (0-based, in multipart order).
// Example: {"asset": 0, "side": "front", "x": 40, "y": 30, "scale": 1}
type PlacementInput struct {
	Asset int     `json:"asset"`
	Side  string  `json:"side"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// DesignResponse is the success response for POST /api/store/design
type DesignResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}
