package booking

import (
	"fmt"
	"strings"

	"turnero/models"
)

// Reply rendering. Single locale; phrasing is a presentation concern, the
// transition shape is not.

func menu(tenantName string) string {
	return fmt.Sprintf(`👋 Hi! I'm the assistant of *%s*.

Reply with a number:
1) 📅 Book an appointment
2) 💰 Prices
3) 🔁 Cancel
4) 👤 My appointments
5) 🧑‍💼 Talk to a human
9) 📌 Menu`, tenantName)
}

func helpLine() string {
	return `Tip: "9" menu, "0" back.`
}

func renderServices(services []models.Service) string {
	lines := make([]string, 0, len(services))
	for i, s := range services {
		lines = append(lines, fmt.Sprintf("%d) %s ($%d)", i+1, s.Name, s.PriceMinorUnits/100))
	}
	return strings.Join(lines, "\n")
}

func renderSlots(slots []models.Slot) string {
	lines := make([]string, 0, len(slots))
	for i, s := range slots {
		lines = append(lines, fmt.Sprintf("%d) %s", i+1, s.Label))
	}
	return strings.Join(lines, "\n")
}

func chooseServiceReply(services []models.Service) string {
	return fmt.Sprintf("📅 *Book an appointment*\nWhich service are you looking for?\n%s\n\nReply with the number or the name.\n%s",
		renderServices(services), helpLine())
}

func pricesReply(services []models.Service) string {
	return fmt.Sprintf("💰 *Prices*\n%s\n\n%s", renderServices(services), helpLine())
}

func offerSlotsReply(serviceName string, slots []models.Slot) string {
	return fmt.Sprintf("✅ You picked *%s*.\n🗓 Suggested times:\n%s\n\nReply with 1-%d.\n%s",
		serviceName, renderSlots(slots), len(slots), helpLine())
}

func confirmReply(serviceName, slotLabel string) string {
	return fmt.Sprintf(`You are about to book:
- Service: *%s*
- Time: *%s*

Confirm:
1) ✅ Confirm
2) ❌ Cancel
%s`, serviceName, slotLabel, helpLine())
}

func confirmedReply(tenantName, serviceName, slotLabel string) string {
	return fmt.Sprintf("✅ *Appointment confirmed*\n- %s\n- %s\n\nWe'll send you a reminder before your visit.\n\n%s",
		serviceName, slotLabel, menu(tenantName))
}

func slotTakenReply(slots []models.Slot) string {
	return fmt.Sprintf("⚠️ Sorry, that time was just taken. Updated options:\n%s\n\nReply with 1-%d.\n%s",
		renderSlots(slots), len(slots), helpLine())
}

func noAvailabilityReply(tenantName string) string {
	return fmt.Sprintf("😔 No free times at the moment. Please try again later.\n\n%s", menu(tenantName))
}
