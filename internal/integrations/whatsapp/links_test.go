package whatsapp

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks_BookingConfirmation(t *testing.T) {
	links := NewLinks("55 (87) 9984-6754", "Cassio")
	startsAt := time.Date(2026, 10, 24, 9, 30, 0, 0, time.UTC)

	link := links.BookingConfirmation("Barba", startsAt, "João")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/558799846754", parsed.Path)
	assert.Equal(t, "Olá Cassio, agendei um Barba para 24 de outubro às 09:30 - Nome: João", parsed.Query().Get("text"))
	assert.NotContains(t, link, "+")
}

func TestContactURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/5587999990000", ContactURL("+55 87 99999-0000", ""))
	assert.Equal(t, "https://wa.me/5587?text=a%20%2B%20b%20%26%20c", ContactURL("5587", "a + b & c"))
}

func TestLinks_ShopContactAndCustomer(t *testing.T) {
	links := NewLinks("558799846754", "Cassio")

	assert.Contains(t, links.ShopContact(DefaultContactText), "https://wa.me/558799846754?text=Ol%C3%A1%2C%20vim")
	assert.Equal(t, "https://wa.me/5511988887777", links.Customer("(11) 98888-7777"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05 de março", FormatDate(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 de dezembro", FormatDate(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}
