package dto

// ClickEventRequest is a browser-originated analytics event.
type ClickEventRequest struct {
	Event     string         `json:"event" binding:"required"`
	ProductID string         `json:"productId"`
	Metadata  map[string]any `json:"metadata"`
}

// ClickEventResponse always reports success: analytics forwarding is
// best-effort and failures never surface to the browser.
type ClickEventResponse struct {
	Success bool `json:"success"`
}
