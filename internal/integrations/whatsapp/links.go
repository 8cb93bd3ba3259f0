package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

const baseURL = "https://wa.me/"

// DefaultContactText текст, с которым клиент переходит из ассистента в чат с барбером
const DefaultContactText = "Olá, vim pelo site e tenho uma dúvida."

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Links строит deep link'и wa.me для барбершопа
type Links struct {
	shopPhone string
	ownerName string
}

// NewLinks создает построитель ссылок; телефон приводится к цифрам
func NewLinks(shopPhone, ownerName string) *Links {
	return &Links{
		shopPhone: domain.NormalizePhone(shopPhone),
		ownerName: ownerName,
	}
}

// BookingConfirmation ссылка на чат с барбером с готовым сообщением о записи
func (l *Links) BookingConfirmation(serviceName string, startsAt time.Time, customerName string) string {
	message := fmt.Sprintf("Olá %s, agendei um %s para %s às %s - Nome: %s",
		l.ownerName, serviceName, FormatDate(startsAt), startsAt.Format(domain.TimeFormat), customerName)
	return ContactURL(l.shopPhone, message)
}

// ShopContact ссылка на чат с барбером с произвольным текстом
func (l *Links) ShopContact(text string) string {
	return ContactURL(l.shopPhone, text)
}

// Customer ссылка на чат с клиентом (для админки)
func (l *Links) Customer(phone string) string {
	return ContactURL(phone, "")
}

// ContactURL строит ссылку wa.me/<digits>[?text=...]
// Пробелы кодируются как %20, как это делает encodeURIComponent
func ContactURL(phone, text string) string {
	link := baseURL + domain.NormalizePhone(phone)
	if text == "" {
		return link
	}
	return link + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// FormatDate форматирует дату как "24 de outubro"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s", t.Day(), monthsPT[t.Month()-1])
}
