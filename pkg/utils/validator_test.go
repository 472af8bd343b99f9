package utils

import "testing"

type registrationForm struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=100,person_name"`
	Email       string `json:"email" validate:"required,email,max=255,plain_email"`
	Phone       string `json:"phone" validate:"required,turkish_phone"`
	Institution string `json:"institution" validate:"required,min=2,max=200"`
	Position    string `json:"position" validate:"required,min=2,max=100"`
}

func validForm() registrationForm {
	return registrationForm{
		FullName:    "Gül Çelik Öztürk",
		Email:       "gul.celik@example.com",
		Phone:       "0555 123 45 67",
		Institution: "Şehir Hastanesi",
		Position:    "Uzman Doktor",
	}
}

func TestValidFormPasses(t *testing.T) {
	v := NewValidator()
	if err := v.Struct(validForm()); err != nil {
		t.Fatalf("geçerli form reddedildi: %v", err)
	}
}

func TestTurkishPhoneFormats(t *testing.T) {
	v := NewValidator()

	valid := []string{
		"0555 123 45 67",
		"+905551234567",
		"5551234567",
		"0555-123-45-67",
		"(0555) 123 45 67",
	}
	for _, phone := range valid {
		f := validForm()
		f.Phone = phone
		if err := v.Struct(f); err != nil {
			t.Fatalf("geçerli numara %q reddedildi: %v", phone, err)
		}
	}

	invalid := []string{
		"1234567890",  // 5 ile başlamıyor
		"555123456",   // eksik hane
		"05551234567x",
		"+90444123456",
		"",
	}
	for _, phone := range invalid {
		f := validForm()
		f.Phone = phone
		if err := v.Struct(f); err == nil {
			t.Fatalf("geçersiz numara %q kabul edildi", phone)
		}
	}
}

func TestPersonNameRejectsDigitsAndSymbols(t *testing.T) {
	v := NewValidator()
	for _, name := range []string{"Ali 3", "x@y", "Ad-Soyad", "  "} {
		f := validForm()
		f.FullName = name
		if err := v.Struct(f); err == nil {
			t.Fatalf("geçersiz ad %q kabul edildi", name)
		}
	}
}

func TestPlainEmailRejectsPlus(t *testing.T) {
	v := NewValidator()
	f := validForm()
	f.Email = "gul+test@example.com"
	if err := v.Struct(f); err == nil {
		t.Fatal("'+' içeren e-posta kabul edildi")
	}
}

func TestFieldErrorsCollectsAllViolations(t *testing.T) {
	v := NewValidator()
	f := registrationForm{
		FullName: "A1",
		Email:    "bozuk",
		Phone:    "123",
	}
	err := v.Struct(f)
	if err == nil {
		t.Fatal("hatalı form kabul edildi")
	}

	fields := v.FieldErrors(err)
	for _, key := range []string{"full_name", "email", "phone", "institution", "position"} {
		if _, ok := fields[key]; !ok {
			t.Fatalf("%q için hata mesajı yok: %v", key, fields)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"0555 123 45 67":      "05551234567",
		"(0555) 123-45-67":    "05551234567",
		" +90 555 123 45 67 ": "+905551234567",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}
