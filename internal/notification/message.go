package notification

import (
	"fmt"
	"strings"

	"cleanpro-api/internal/domain/booking"
	"cleanpro-api/internal/domain/catalog"
)

// Message templates mirror the ones the business sends by hand over WhatsApp,
// hence the pt-BR copy and the dd/mm/yyyy dates.

const dayDisplayLayout = "02/01/2006"

func RenderAdminNotice(b *booking.Booking, svc catalog.Service) string {
	var sb strings.Builder

	sb.WriteString("🧹 *NOVA SOLICITAÇÃO DE AGENDAMENTO*\n\n")
	fmt.Fprintf(&sb, "📅 *Data:* %s\n", b.Day().Time().Format(dayDisplayLayout))
	fmt.Fprintf(&sb, "🏠 *Serviço:* %s\n", svc.Title)
	fmt.Fprintf(&sb, "💰 *Valor:* %s\n", svc.PriceText)
	fmt.Fprintf(&sb, "⏰ *Duração:* %s\n\n", svc.DurationText)

	fmt.Fprintf(&sb, "👤 *Cliente:* %s\n", b.Client().Name())
	if b.Client().Email() != "" {
		fmt.Fprintf(&sb, "📧 *E-mail:* %s\n", b.Client().Email())
	}
	fmt.Fprintf(&sb, "📱 *Telefone:* %s\n", b.Client().Phone())
	fmt.Fprintf(&sb, "📍 *Endereço:* %s\n", b.Client().Address())

	if !b.Note().IsEmpty() {
		fmt.Fprintf(&sb, "\n📝 *Observações:* %s\n", b.Note())
	}

	fmt.Fprintf(&sb, "\n🔢 *ID da Solicitação:* #%s\n\n", b.ShortCode())
	sb.WriteString("⚠️ *IMPORTANTE:* Use o painel administrativo para confirmar ou recusar este agendamento.")

	return sb.String()
}

func RenderClientConfirmation(b *booking.Booking, svc catalog.Service) string {
	var sb strings.Builder

	sb.WriteString("✅ *AGENDAMENTO CONFIRMADO - CleanPro*\n\n")
	fmt.Fprintf(&sb, "Olá %s! Seu agendamento foi confirmado com sucesso.\n\n", b.Client().Name())

	fmt.Fprintf(&sb, "📅 *Data:* %s\n", b.Day().Time().Format(dayDisplayLayout))
	fmt.Fprintf(&sb, "🏠 *Serviço:* %s\n", b.ServiceName())
	fmt.Fprintf(&sb, "💰 *Valor:* %s\n", svc.PriceText)
	fmt.Fprintf(&sb, "⏰ *Duração estimada:* %s\n", svc.DurationText)
	fmt.Fprintf(&sb, "📱 *Telefone:* %s\n", b.Client().Phone())
	fmt.Fprintf(&sb, "📍 *Local:* %s\n", b.Client().Address())

	if !b.Note().IsEmpty() {
		fmt.Fprintf(&sb, "\n📝 *Observações:* %s\n", b.Note())
	}

	fmt.Fprintf(&sb, "\n🔢 *Número do agendamento:* #%s\n\n", b.ShortCode())
	sb.WriteString("📞 *Dúvidas?* Entre em contato conosco pelo WhatsApp.\n\n")
	sb.WriteString("Obrigado por escolher a CleanPro! 🧹✨")

	return sb.String()
}

func RenderClientCancellation(b *booking.Booking) string {
	var sb strings.Builder

	sb.WriteString("❌ *AGENDAMENTO CANCELADO - CleanPro*\n\n")
	fmt.Fprintf(&sb, "Olá %s,\n\n", b.Client().Name())
	sb.WriteString("Infelizmente precisamos cancelar seu agendamento:\n\n")

	fmt.Fprintf(&sb, "📅 *Data:* %s\n", b.Day().Time().Format(dayDisplayLayout))
	fmt.Fprintf(&sb, "🏠 *Serviço:* %s\n", b.ServiceName())
	fmt.Fprintf(&sb, "🔢 *Número:* #%s\n\n", b.ShortCode())

	sb.WriteString("Pedimos desculpas pelo inconveniente. Entre em contato conosco para reagendar ou esclarecer dúvidas.\n\n")
	sb.WriteString("📞 *WhatsApp:* Responda esta mensagem\n")
	sb.WriteString("💬 *Atendimento:* Segunda a sexta, 8h às 18h\n\n")
	sb.WriteString("Obrigado pela compreensão! 🙏")

	return sb.String()
}

// RenderClientReminder is the day-before nudge for confirmed bookings.
func RenderClientReminder(b *booking.Booking, svc catalog.Service) string {
	var sb strings.Builder

	sb.WriteString("🔔 *LEMBRETE DE AGENDAMENTO - CleanPro*\n\n")
	fmt.Fprintf(&sb, "Olá %s! Seu serviço está agendado para amanhã.\n\n", b.Client().Name())

	fmt.Fprintf(&sb, "📅 *Data:* %s\n", b.Day().Time().Format(dayDisplayLayout))
	fmt.Fprintf(&sb, "🏠 *Serviço:* %s\n", b.ServiceName())
	fmt.Fprintf(&sb, "⏰ *Duração estimada:* %s\n", svc.DurationText)
	fmt.Fprintf(&sb, "📍 *Local:* %s\n\n", b.Client().Address())

	fmt.Fprintf(&sb, "🔢 *Número do agendamento:* #%s\n\n", b.ShortCode())
	sb.WriteString("Até amanhã! 🧹✨")

	return sb.String()
}
