package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"turnero/models"
	"turnero/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deterministic transition table. Every handler returns the reply text, an
// optional confirmed-booking event, and whether the input was consumed; an
// unconsumed input falls through to the AI router.

var resetTokens = map[string]struct{}{
	"": {}, "hi": {}, "hello": {}, "hola": {}, "buenas": {},
	"menu": {}, "menú": {}, "start": {}, "reset": {}, "9": {}, "0": {},
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func isReset(input string) bool {
	_, ok := resetTokens[input]
	return ok
}

func (e *DefaultEngine) transition(ctx context.Context, tenant *models.Tenant, sess *models.Session, input string) (string, *models.BookingConfirmedEvent, bool) {
	if isReset(input) {
		sess.State = models.StateHome
		sess.ClearSelection()
		return menu(tenant.Name), nil, true
	}

	switch sess.State {
	case models.StateHome:
		return e.handleHome(ctx, tenant, sess, input)
	case models.StateChooseService:
		return e.handleChooseService(ctx, tenant, sess, input)
	case models.StateChooseSlot:
		return e.handleChooseSlot(tenant, sess, input)
	case models.StateConfirm:
		return e.handleConfirm(ctx, tenant, sess, input)
	case models.StateCancelFlow:
		sess.State = models.StateHome
		reply := fmt.Sprintf("🔁 Cancellation request received for: %s\nOur team will contact you shortly.\n\n%s",
			utils.MaskSensitive(input), menu(tenant.Name))
		return reply, nil, true
	case models.StateMyAppointments:
		sess.State = models.StateHome
		reply := fmt.Sprintf("👤 Looking up appointments for: %s\nWe'll send you the details shortly.\n\n%s",
			utils.MaskSensitive(input), menu(tenant.Name))
		return reply, nil, true
	}

	// Unknown state in a stale session restarts the conversation.
	sess.State = models.StateHome
	sess.ClearSelection()
	return menu(tenant.Name), nil, true
}

func (e *DefaultEngine) handleHome(ctx context.Context, tenant *models.Tenant, sess *models.Session, input string) (string, *models.BookingConfirmedEvent, bool) {
	switch input {
	case "1", "book":
		return e.startServiceChoice(tenant, sess), nil, true
	case "2", "prices":
		return pricesReply(tenant.ActiveServices()), nil, true
	case "3", "cancel":
		sess.State = models.StateCancelFlow
		return fmt.Sprintf("🔁 *Cancel*\nSend me your ID or phone number.\n%s", helpLine()), nil, true
	case "4", "my appointments":
		sess.State = models.StateMyAppointments
		return fmt.Sprintf("👤 *My appointments*\nSend me your ID or phone number.\n%s", helpLine()), nil, true
	case "5", "human":
		return fmt.Sprintf("🧑‍💼 I'll hand you over to a human. Leave your question here.\n%s", helpLine()), nil, true
	}
	return "", nil, false
}

func (e *DefaultEngine) startServiceChoice(tenant *models.Tenant, sess *models.Session) string {
	services := tenant.ActiveServices()
	if len(services) == 0 {
		sess.State = models.StateHome
		return fmt.Sprintf("😔 We have no bookable services right now.\n\n%s", menu(tenant.Name))
	}
	sess.State = models.StateChooseService
	return chooseServiceReply(services)
}

func (e *DefaultEngine) handleChooseService(ctx context.Context, tenant *models.Tenant, sess *models.Session, input string) (string, *models.BookingConfirmedEvent, bool) {
	services := tenant.ActiveServices()
	svc, ok := findServiceByChoice(input, services)
	if !ok {
		return "", nil, false
	}
	return e.offerSlots(ctx, tenant, sess, svc), nil, true
}

// offerSlots computes the available catalog, pins the first K slots on the
// session and moves to CHOOSE_SLOT. Pinning is required so a later numeric
// reply maps back to the exact list the user saw.
func (e *DefaultEngine) offerSlots(ctx context.Context, tenant *models.Tenant, sess *models.Session, svc models.Service) string {
	free := e.availableSlots(ctx, tenant)
	if len(free) == 0 {
		sess.State = models.StateHome
		sess.ClearSelection()
		return noAvailabilityReply(tenant.Name)
	}
	if k := e.offerCount(tenant); len(free) > k {
		free = free[:k]
	}
	sess.Selection = models.Selection{ServiceID: svc.ID, OfferedSlots: free}
	sess.State = models.StateChooseSlot
	return offerSlotsReply(svc.Name, free)
}

func (e *DefaultEngine) handleChooseSlot(tenant *models.Tenant, sess *models.Session, input string) (string, *models.BookingConfirmedEvent, bool) {
	idx, err := strconv.Atoi(input)
	if err != nil {
		return "", nil, false
	}
	offered := sess.Selection.OfferedSlots
	if idx < 1 || idx > len(offered) {
		return fmt.Sprintf("Invalid time. Reply with 1-%d.\n%s", len(offered), helpLine()), nil, true
	}

	slot := offered[idx-1]
	sess.Selection.SlotID = slot.ID
	sess.State = models.StateConfirm

	serviceName := sess.Selection.ServiceID
	if svc, ok := tenant.ServiceByID(sess.Selection.ServiceID); ok {
		serviceName = svc.Name
	}
	return confirmReply(serviceName, slot.Label), nil, true
}

func (e *DefaultEngine) handleConfirm(ctx context.Context, tenant *models.Tenant, sess *models.Session, input string) (string, *models.BookingConfirmedEvent, bool) {
	switch input {
	case "1", "yes", "y", "si", "sí", "ok", "confirm":
		reply, event := e.commitBooking(ctx, tenant, sess)
		return reply, event, true
	case "2", "no", "n":
		sess.State = models.StateHome
		sess.ClearSelection()
		return fmt.Sprintf("Cancelled.\n\n%s", menu(tenant.Name)), nil, true
	}
	return "", nil, false
}

// commitBooking is the only path that touches the reservation store. A lost
// race (or an ambiguous store outcome) re-offers fresh slots instead of
// failing the conversation; it never assumes an errored reserve succeeded.
func (e *DefaultEngine) commitBooking(ctx context.Context, tenant *models.Tenant, sess *models.Session) (string, *models.BookingConfirmedEvent) {
	sel := sess.Selection
	if sel.ServiceID == "" || sel.SlotID == "" {
		sess.State = models.StateHome
		sess.ClearSelection()
		return menu(tenant.Name), nil
	}

	var slot models.Slot
	for _, s := range sel.OfferedSlots {
		if s.ID == sel.SlotID {
			slot = s
			break
		}
	}

	storeCtx, cancel := context.WithTimeout(ctx, e.Config.StoreTimeout)
	won, err := e.Reservations.TryReserve(storeCtx, tenant.ID, sel.SlotID)
	cancel()
	if err != nil {
		utils.GetLogger().Warn("reservation attempt failed, re-offering",
			zap.String("tenant", tenant.ID), zap.String("slot", sel.SlotID), zap.Error(err))
		won = false
	}

	if !won {
		return e.reofferAfterConflict(ctx, tenant, sess), nil
	}

	serviceName := sel.ServiceID
	if svc, ok := tenant.ServiceByID(sel.ServiceID); ok {
		serviceName = svc.Name
	}
	event := &models.BookingConfirmedEvent{
		ID:             uuid.New().String(),
		TenantID:       tenant.ID,
		ServiceID:      sel.ServiceID,
		SlotID:         sel.SlotID,
		StartAt:        slot.StartAt,
		EndUserAddress: sess.EndUserAddress,
		CreatedAt:      time.Now(),
	}
	if err := e.Events.Publish(ctx, *event); err != nil {
		// The reservation stands; the worker queue is recoverable.
		utils.GetLogger().Error("failed to publish booking event",
			zap.String("booking", event.ID), zap.Error(err))
	}

	sess.State = models.StateHome
	sess.ClearSelection()
	return confirmedReply(tenant.Name, serviceName, slot.Label), event
}

func (e *DefaultEngine) reofferAfterConflict(ctx context.Context, tenant *models.Tenant, sess *models.Session) string {
	free := e.availableSlots(ctx, tenant)
	if len(free) == 0 {
		sess.State = models.StateHome
		sess.ClearSelection()
		return noAvailabilityReply(tenant.Name)
	}
	if k := e.offerCount(tenant); len(free) > k {
		free = free[:k]
	}
	sess.Selection.SlotID = ""
	sess.Selection.OfferedSlots = free
	sess.State = models.StateChooseSlot
	return slotTakenReply(free)
}

// availableSlots regenerates the catalog and drops slots already reserved.
// A failed availability read keeps the slot in the list: offering a taken
// slot is safe because TryReserve is the authority.
func (e *DefaultEngine) availableSlots(ctx context.Context, tenant *models.Tenant) []models.Slot {
	all := GenerateSlots(e.Now(), e.horizonDays(tenant), e.hours(tenant))
	free := make([]models.Slot, 0, len(all))
	for _, slot := range all {
		available, err := e.Reservations.IsAvailable(ctx, tenant.ID, slot.ID)
		if err != nil || available {
			free = append(free, slot)
		}
	}
	return free
}

// findServiceByChoice resolves a 1-based index or a (partial) name match.
func findServiceByChoice(input string, services []models.Service) (models.Service, bool) {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(services) {
		return services[n-1], true
	}
	for _, s := range services {
		if input != "" && strings.Contains(strings.ToLower(s.Name), input) {
			return s, true
		}
	}
	return models.Service{}, false
}
