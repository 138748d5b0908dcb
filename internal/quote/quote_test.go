package quote

import (
	"net/url"
	"strings"
	"testing"
)

func TestMessage_FilledRequest(t *testing.T) {
	r := Request{
		BrideName:         "Amaya",
		GroomName:         "Kasun",
		WeddingDate:       "2026-12-12",
		FunctionLocation:  "Galle Face Hotel",
		BrideContact:      "0771234567",
		BridesmaidCount:   "4",
		AdditionalDetails: "Drone coverage if possible",
	}
	msg := r.Message()

	for _, want := range []string{
		"WEDDING QUOTE REQUEST",
		"• Bride's Name: Amaya\n",
		"• Groom's Name: Kasun\n",
		"• Wedding Date: 2026-12-12\n",
		"• Function Location: Galle Face Hotel\n",
		"• Bridesmaids: 4\n",
		"Drone coverage if possible",
		"Sent via Modern Scene Wedding Photography Website",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestMessage_Defaults(t *testing.T) {
	msg := Request{}.Message()

	for _, want := range []string{
		"• Bride's Name: Not provided\n",
		"• Groom's Contact: Not provided\n",
		"• Bridal Salon Name: Not provided\n",
		"• Bridesmaids: 0\n",
		"• Page Boys: 0\n",
		"No additional details provided",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("empty request message missing %q", want)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	r := Request{BrideName: "Amaya & Co"}

	link := r.WhatsAppLink("")
	if !strings.HasPrefix(link, "https://wa.me/"+DefaultNumber+"?text=") {
		t.Fatalf("link = %q; want default number prefix", link)
	}

	link = r.WhatsAppLink("94770000000")
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link not a valid url: %v", err)
	}
	if u.Host != "wa.me" || u.Path != "/94770000000" {
		t.Errorf("link target = %s%s; want wa.me/94770000000", u.Host, u.Path)
	}

	// The text parameter round-trips through query escaping.
	text := u.Query().Get("text")
	if !strings.Contains(text, "Amaya & Co") {
		t.Errorf("escaped message lost content: %q", text)
	}
}
