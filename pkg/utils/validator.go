package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Latin + Türkçe harfler ve boşluk
	personNameRe = regexp.MustCompile(`^[a-zA-ZçÇğĞıİöÖşŞüÜ\s]+$`)
	// Normalize edilmiş Türk GSM numarası: opsiyonel +90/0, sonra 5 ve 9 hane
	turkishPhoneRe = regexp.MustCompile(`^(\+90|0)?5[0-9]{9}$`)
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Hata anahtarları json alan adlarıyla dönsün
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom validations
	v.RegisterValidation("person_name", validatePersonName)
	v.RegisterValidation("turkish_phone", validateTurkishPhone)
	v.RegisterValidation("plain_email", validatePlainEmail)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors tüm alan ihlallerini alan→mesaj olarak toplar; kısa devre yok,
// çağıran bütün hataları tek seferde gösterebilir.
func (v *Validator) FieldErrors(err error) map[string]string {
	out := map[string]string{}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil {
			out["_"] = "Geçersiz istek"
		}
		return out
	}
	for _, e := range errs {
		out[e.Field()] = fieldMessage(e)
	}
	return out
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Bu alan zorunludur"
	case "min":
		return "Çok kısa (en az " + e.Param() + " karakter)"
	case "max":
		return "Çok uzun (en fazla " + e.Param() + " karakter)"
	case "email":
		return "Geçerli bir e-posta adresi giriniz"
	case "plain_email":
		return "E-posta adresi '+' karakteri içeremez"
	case "person_name":
		return "Ad Soyad yalnızca harf içerebilir"
	case "turkish_phone":
		return "Geçerli bir cep telefonu numarası giriniz (5XX XXX XX XX)"
	default:
		return "Geçersiz değer"
	}
}

func validatePersonName(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return s != "" && personNameRe.MatchString(s)
}

// Boşluk, tire ve parantezler atıldıktan sonra Türk GSM biçimi aranır.
func validateTurkishPhone(fl validator.FieldLevel) bool {
	return turkishPhoneRe.MatchString(NormalizePhone(fl.Field().String()))
}

func validatePlainEmail(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), "+")
}

// NormalizePhone görsel ayraçları temizler; doğrulama ve saklama bu form
// üzerinden yapılır.
func NormalizePhone(raw string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return r.Replace(strings.TrimSpace(raw))
}
