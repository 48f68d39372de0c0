package content

import (
	"strings"
	"testing"

	"eventhub-cli/account"
)

func TestAboutPage_UsesBrand(t *testing.T) {
	page := AboutPage("DanceFlow")
	if !strings.HasPrefix(page.Story[0], "DanceFlow начал") {
		t.Fatalf("expected story to start with the brand, got %q", page.Story[0])
	}
	if len(page.Team) != 4 || len(page.Partners) != 4 {
		t.Fatalf("expected 4 team members and 4 partners, got %d and %d", len(page.Team), len(page.Partners))
	}
}

func TestFAQs_ReturnsCopy(t *testing.T) {
	list := FAQs()
	if len(list) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(list))
	}
	list[0].Question = "changed"
	if FAQs()[0].Question == "changed" {
		t.Fatal("expected FAQs to return a copy")
	}
}

func TestChannels_SupportContacts(t *testing.T) {
	channels := Channels()
	if channels[0].Value != "+7 (999) 123-45-67" || channels[1].Value != "support@eventhub.ru" {
		t.Fatalf("unexpected channels: %+v", channels)
	}
}

func TestContactForm_Validate(t *testing.T) {
	errs := ContactForm{}.Validate()
	for _, field := range []string{FieldName, account.FieldEmail, FieldMessage} {
		if !errs.Has(field) {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}

	errs = ContactForm{Name: "Анна", Email: "anna@", Message: "Привет"}.Validate()
	if len(errs) != 1 || errs[account.FieldEmail] != "Некорректный email" {
		t.Fatalf("expected only an email format error, got %v", errs)
	}

	errs = ContactForm{Name: "Анна", Email: "anna@mail.ru", Message: "Привет"}.Validate()
	if len(errs) != 0 {
		t.Fatalf("expected valid form, got %v", errs)
	}
}
