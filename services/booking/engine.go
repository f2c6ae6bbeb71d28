package booking

import (
	"context"

	"turnero/models"
	"turnero/utils"

	"go.uber.org/zap"
)

// Process runs one inbound message through the engine: load session, try the
// deterministic table, fall back to the AI router on a miss, persist the
// session, return the reply. All failure paths end in a reply plus a
// consistent next-session state; none of them can double-book (that guarantee
// lives in the reservation store alone).
func (e *DefaultEngine) Process(ctx context.Context, tenant *models.Tenant, endUserAddress, text string) (*models.EngineReply, error) {
	logger := utils.GetLogger()

	sess, err := e.Sessions.Load(ctx, tenant.ID, endUserAddress)
	if err != nil {
		// A session-store outage restarts the conversation rather than
		// corrupting state.
		logger.Warn("session load failed, starting fresh",
			zap.String("tenant", tenant.ID), zap.Error(err))
		sess = models.NewSession(tenant.ID, endUserAddress)
	}

	input := normalize(text)
	sess.PushHistory("user", text)

	reply, event, handled := e.transition(ctx, tenant, sess, input)
	if !handled {
		reply, event = e.routeFallback(ctx, tenant, sess, text)
	}

	sess.PushHistory("assistant", reply)
	if err := e.Sessions.Save(ctx, sess); err != nil {
		logger.Warn("session save failed",
			zap.String("tenant", tenant.ID), zap.Error(err))
	}

	return &models.EngineReply{Reply: reply, State: sess.State, Event: event}, nil
}

// routeFallback hands the raw input to the AI router and resumes the
// deterministic flow from whatever intent comes back. The router only ever
// suggests transitions: a booking intent re-enters the same handlers (and
// therefore the same reservation guarantees) the numeric path uses. Any
// router failure resets to the menu instead of leaving the conversation
// stuck.
func (e *DefaultEngine) routeFallback(ctx context.Context, tenant *models.Tenant, sess *models.Session, text string) (string, *models.BookingConfirmedEvent) {
	aiCtx, cancel := context.WithTimeout(ctx, e.Config.AITimeout)
	defer cancel()

	res, err := e.AI.Route(aiCtx, models.RouteRequest{
		Text:       text,
		History:    sess.History,
		TenantName: tenant.Name,
		Services:   tenant.ActiveServices(),
	})
	if err != nil {
		utils.GetLogger().Warn("ai fallback failed, resetting to menu",
			zap.String("tenant", tenant.ID), zap.Error(err))
		sess.State = models.StateHome
		sess.ClearSelection()
		return menu(tenant.Name), nil
	}

	switch res.Intent {
	case models.IntentBooking:
		if res.Entities.ServiceName != "" {
			if svc, ok := findServiceByChoice(normalize(res.Entities.ServiceName), tenant.ActiveServices()); ok {
				return e.offerSlots(ctx, tenant, sess, svc), nil
			}
		}
		return e.startServiceChoice(tenant, sess), nil

	case models.IntentPrices:
		return pricesReply(tenant.ActiveServices()), nil

	case models.IntentCancellation:
		sess.State = models.StateCancelFlow
		return "🔁 *Cancel*\nSend me your ID or phone number.\n" + helpLine(), nil

	case models.IntentConfirmation:
		if sess.State == models.StateConfirm && sess.Selection.SlotID != "" {
			return e.commitBooking(ctx, tenant, sess)
		}
	}

	if res.Reply != "" {
		return res.Reply, nil
	}
	return menu(tenant.Name), nil
}
