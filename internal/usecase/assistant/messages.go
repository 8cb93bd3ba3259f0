package assistant

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Greeting первое сообщение ассистента в чате
const Greeting = "Olá! Sou o Assistente Virtual. 🤖\nPosso te ajudar com preços, horários ou dicas de estilo. O que manda?"

const (
	msgOpenNow          = "Sim, estamos abertos! 🔥\nHoje vamos até às %d:00."
	msgClosedNow        = "Estamos fechados agora. 😴"
	msgClosedDay        = "Estamos fechados agora. \nAtendemos %s."
	msgPriceList        = "Aqui está nossa tabela atualizada: 💸\n\n%s"
	msgClosedToday      = "Hoje estamos fechados! 😴\nAtendemos %s. Que tal agendar para o fim de semana?"
	msgAfterClosing     = "Já encerramos por hoje! 🌙\nMas o agendamento para o próximo fim de semana está liberado."
	msgFullyBooked      = "Poxa, hoje estamos lotados! 🚫\nNão há mais horários vagos. Tente agendar para amanhã/fim de semana."
	msgSlotsAvailable   = "Sim! Temos %d horários vagos para hoje.\nO próximo é às **%s**. \nCorre pra agendar! 🏃‍♂️"
	msgLookupFailed     = "Não consegui verificar a agenda agora. Tente olhar diretamente no calendário. 🗓️"
	msgStyleRound       = "Para rostos **redondos**, laterais baixas e volume no topo ajudam a alongar."
	msgStyleSquare      = "Rosto **quadrado** combina com quase tudo! Buzz cut ou degradê ficam ótimos."
	msgStyleSuggestion  = "Posso sugerir algo baseado no seu rosto. Ele é mais Redondo, Quadrado ou Oval?"
	msgTalkToBarberTmpl = "Essa é bem específica! 🤔 \nMelhor falar diretamento com o %s no WhatsApp."
)

var (
	keywordsOpeningStatus = []string{"aberto", "funcionando", "horas", "fechado"}
	keywordsPrices        = []string{"preço", "valor", "quanto", "custa"}
	keywordsAvailability  = []string{"vaga", "horário", "hoje", "agora", "livre"}
	keywordsStyle         = []string{"sugestão", "corte"}
)

var weekdayNamesPT = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda",
	time.Tuesday:   "Terça",
	time.Wednesday: "Quarta",
	time.Thursday:  "Quinta",
	time.Friday:    "Sexta",
	time.Saturday:  "Sábado",
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// describeHours "Sábados (08h-18h) e Domingos (09h-16h)"; неделя начинается с понедельника
func describeHours(hours domain.BusinessHours, plural bool) string {
	days := hours.Weekdays()
	sort.Slice(days, func(i, j int) bool {
		return (days[i]+6)%7 < (days[j]+6)%7
	})

	parts := make([]string, 0, len(days))
	for _, day := range days {
		name := weekdayNamesPT[day]
		if plural {
			name += "s"
		}
		window := hours[day]
		parts = append(parts, fmt.Sprintf("%s (%02dh-%02dh)", name, window.StartHour, window.EndHour))
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " e " + parts[len(parts)-1]
	}
}

// formatPriceList "• Barba: **R$ 15,00**" по строке на услугу
func formatPriceList(services []domain.Service) string {
	lines := make([]string, 0, len(services))
	for _, s := range services {
		lines = append(lines, fmt.Sprintf("• %s: **%s**", s.Name, FormatBRL(s.Price)))
	}
	return strings.Join(lines, "\n")
}

// FormatBRL форматирует сумму в реалах: 1234.5 -> "R$ 1.234,50"
func FormatBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	fraction := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), fraction)
}
