// Package quote formats quote-request submissions into the WhatsApp hand-off
// message and builds the deep link that opens the chat. The hand-off is
// fire-and-forget; no response is expected or handled.
package quote

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultNumber is the studio's WhatsApp number in international format.
const DefaultNumber = "94774890840"

// Request carries the fields collected by the quote form. All fields are
// optional; blanks render as "Not provided" (counts as "0") in the message.
type Request struct {
	BrideName          string `json:"brideName"`
	GroomName          string `json:"groomName"`
	WeddingDate        string `json:"weddingDate"`
	HomecomingDate     string `json:"homecomingDate"`
	FunctionLocation   string `json:"functionLocation"`
	AdditionalLocation string `json:"additionalLocation"`
	BrideContact       string `json:"brideContact"`
	GroomContact       string `json:"groomContact"`

	BridalSalonName      string `json:"bridalSalonName"`
	BridalSalonContact   string `json:"bridalSalonContact"`
	GroomDressingPerson  string `json:"groomDressingPerson"`
	GroomDressingContact string `json:"groomDressingContact"`

	BridesmaidCount string `json:"bridesmaidCount"`
	BestmanCount    string `json:"bestmanCount"`
	FlowerGirlCount string `json:"flowerGirlCount"`
	PageboyCount    string `json:"pageboyCount"`

	AdditionalDetails string `json:"additionalDetails"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Message renders the request as the formatted text blob sent to the studio.
func (r Request) Message() string {
	var b strings.Builder
	b.WriteString("🎊 WEDDING QUOTE REQUEST 🎊\n\n")

	b.WriteString("👰 BRIDE & GROOM DETAILS:\n")
	fmt.Fprintf(&b, "• Bride's Name: %s\n", orDefault(r.BrideName, "Not provided"))
	fmt.Fprintf(&b, "• Groom's Name: %s\n", orDefault(r.GroomName, "Not provided"))
	fmt.Fprintf(&b, "• Wedding Date: %s\n", orDefault(r.WeddingDate, "Not provided"))
	fmt.Fprintf(&b, "• Homecoming Date: %s\n", orDefault(r.HomecomingDate, "Not provided"))
	fmt.Fprintf(&b, "• Function Location: %s\n", orDefault(r.FunctionLocation, "Not provided"))
	fmt.Fprintf(&b, "• Additional Location: %s\n", orDefault(r.AdditionalLocation, "Not provided"))
	fmt.Fprintf(&b, "• Bride's Contact: %s\n", orDefault(r.BrideContact, "Not provided"))
	fmt.Fprintf(&b, "• Groom's Contact: %s\n\n", orDefault(r.GroomContact, "Not provided"))

	b.WriteString("💄 DRESSING DETAILS:\n")
	fmt.Fprintf(&b, "• Bridal Salon Name: %s\n", orDefault(r.BridalSalonName, "Not provided"))
	fmt.Fprintf(&b, "• Bridal Salon Contact: %s\n", orDefault(r.BridalSalonContact, "Not provided"))
	fmt.Fprintf(&b, "• Groom's Dressing Person: %s\n", orDefault(r.GroomDressingPerson, "Not provided"))
	fmt.Fprintf(&b, "• Groom's Dresser Contact: %s\n\n", orDefault(r.GroomDressingContact, "Not provided"))

	b.WriteString("🎭 BRIDAL GROUP:\n")
	fmt.Fprintf(&b, "• Bridesmaids: %s\n", orDefault(r.BridesmaidCount, "0"))
	fmt.Fprintf(&b, "• Best Men: %s\n", orDefault(r.BestmanCount, "0"))
	fmt.Fprintf(&b, "• Flower Girls: %s\n", orDefault(r.FlowerGirlCount, "0"))
	fmt.Fprintf(&b, "• Page Boys: %s\n\n", orDefault(r.PageboyCount, "0"))

	b.WriteString("📝 ADDITIONAL DETAILS:\n")
	b.WriteString(orDefault(r.AdditionalDetails, "No additional details provided"))
	b.WriteString("\n\n---\nSent via Modern Scene Wedding Photography Website")

	return b.String()
}

// WhatsAppLink builds the wa.me deep link that opens a chat with the given
// number pre-filled with the request message. An empty number falls back to
// DefaultNumber.
func (r Request) WhatsAppLink(number string) string {
	if number == "" {
		number = DefaultNumber
	}
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(r.Message())
}
