package http

import "fooddelivery/internal/core/domain/model/order"

// statusDisplayTexts maps canonical order statuses to the customer-facing
// wording shown in order lists and tracking timelines. The table lives here,
// outside the state machine, so copy changes never touch transition logic.
var statusDisplayTexts = map[string]string{
	order.Pending.String():        "Order placed, waiting for the restaurant",
	order.Confirmed.String():      "Restaurant confirmed your order",
	order.Preparing.String():      "Your food is being prepared",
	order.ReadyForPickup.String(): "Looking for a driver",
	order.PickedUp.String():       "Driver picked up your order",
	order.Delivering.String():     "Driver is on the way",
	order.Delivered.String():      "Delivered",
	order.Cancelled.String():      "Order cancelled",
}

// statusDisplayText returns the customer-facing text for a canonical status
// name, falling back to the name itself for unknown values.
func statusDisplayText(status string) string {
	if text, ok := statusDisplayTexts[status]; ok {
		return text
	}
	return status
}
