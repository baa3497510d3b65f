package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type updateDriverStatusRequest struct {
	Status    string   `json:"status"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type withdrawRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

type jobOfferResponse struct {
	OrderID                string  `json:"order_id"`
	OrderNumber            string  `json:"order_number"`
	RestaurantID           string  `json:"restaurant_id"`
	PickupDistanceKm       float64 `json:"pickup_distance_km"`
	TripDistanceKm         float64 `json:"trip_distance_km"`
	EstimatedEarningsCents int64   `json:"estimated_earnings_cents"`
	HighDemand             bool    `json:"high_demand"`
	AcceptTimeoutSeconds   int     `json:"accept_timeout_seconds"`
}

type walletResponse struct {
	BalanceCents        int64                   `json:"balance_cents"`
	EarnedTodayCents    int64                   `json:"earned_today_cents"`
	EarnedThisWeekCents int64                   `json:"earned_this_week_cents"`
	TotalDeliveries     int                     `json:"total_deliveries"`
	RecentEarnings      []walletEarningResponse `json:"recent_earnings"`
}

type walletEarningResponse struct {
	OrderID     *string `json:"order_id"`
	Type        string  `json:"type"`
	AmountCents int64   `json:"amount_cents"`
	Description string  `json:"description"`
	EarnedAt    string  `json:"earned_at"`
}

// GetPendingJobs handles GET /api/v1/jobs.
func (s *Server) GetPendingJobs(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPendingJobsQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	offers, err := s.getPendingJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]jobOfferResponse, 0, len(offers))
	for _, offer := range offers {
		response = append(response, jobOfferResponse{
			OrderID:                offer.OrderID.String(),
			OrderNumber:            offer.OrderNumber,
			RestaurantID:           offer.RestaurantID.String(),
			PickupDistanceKm:       offer.PickupDistanceKm,
			TripDistanceKm:         offer.TripDistanceKm,
			EstimatedEarningsCents: offer.EstimatedEarnings.Cents(),
			HighDemand:             offer.HighDemand,
			AcceptTimeoutSeconds:   offer.AcceptTimeoutSeconds,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptJob handles POST /api/v1/jobs/:orderID/accept.
func (s *Server) AcceptJob(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, actor kernel.Actor) error {
		command, err := commands.NewAcceptJobCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.acceptJobHandler.Handle(ctx.Request().Context(), command)
	})
}

// DeclineJob handles POST /api/v1/jobs/:orderID/decline.
func (s *Server) DeclineJob(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, actor kernel.Actor) error {
		command, err := commands.NewDeclineJobCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.declineJobHandler.Handle(ctx.Request().Context(), command)
	})
}

// StartDelivery handles POST /api/v1/deliveries/:orderID/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, actor kernel.Actor) error {
		command, err := commands.NewStartDeliveryCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.startDeliveryHandler.Handle(ctx.Request().Context(), command)
	})
}

// CompleteDelivery handles POST /api/v1/deliveries/:orderID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return s.transition(ctx, func(orderID kernel.UUID, actor kernel.Actor) error {
		command, err := commands.NewCompleteDeliveryCommand(orderID, actor)
		if err != nil {
			return err
		}
		return s.completeDeliveryHandler.Handle(ctx.Request().Context(), command)
	})
}

// UpdateDriverStatus handles PUT /api/v1/driver/status. Coordinates are
// optional; when omitted the stored location is kept.
func (s *Server) UpdateDriverStatus(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request updateDriverStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, ok := parseDriverStatus(request.Status)
	if !ok {
		return badRequest(ctx, "status must be online or offline")
	}

	var location *kernel.GeoPoint
	if request.Latitude != nil && request.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*request.Latitude, *request.Longitude)
		if pointErr != nil {
			return respondError(ctx, pointErr)
		}
		location = &point
	}

	command, err := commands.NewUpdateDriverStatusCommand(actor.ID(), status, location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateDriverStatusHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetWallet handles GET /api/v1/driver/wallet.
func (s *Server) GetWallet(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetWalletQuery(actor.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	wallet, err := s.getWalletHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	earnings := make([]walletEarningResponse, 0, len(wallet.RecentEarnings))
	for _, earning := range wallet.RecentEarnings {
		var orderID *string
		if earning.OrderID != nil {
			id := earning.OrderID.String()
			orderID = &id
		}
		earnings = append(earnings, walletEarningResponse{
			OrderID:     orderID,
			Type:        earning.Type,
			AmountCents: earning.Amount.Cents(),
			Description: earning.Description,
			EarnedAt:    earning.EarnedAt.Format(time.RFC3339),
		})
	}

	return ctx.JSON(http.StatusOK, walletResponse{
		BalanceCents:        wallet.Balance.Cents(),
		EarnedTodayCents:    wallet.EarnedToday.Cents(),
		EarnedThisWeekCents: wallet.EarnedThisWeek.Cents(),
		TotalDeliveries:     wallet.TotalDeliveries,
		RecentEarnings:      earnings,
	})
}

// Withdraw handles POST /api/v1/driver/wallet/withdraw.
func (s *Server) Withdraw(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request withdrawRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoney(request.AmountCents)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewWithdrawCommand(actor.ID(), amount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.withdrawHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
