package service

import "errors"

// Servis katmanının sabit hataları. Handler'lar errors.Is ile eşleyip HTTP
// koduna çevirir; mesajlar son kullanıcıya gitmez.
var (
	ErrNotFound          = errors.New("kayıt bulunamadı")
	ErrDuplicateEmail    = errors.New("bu e-posta ile zaten kayıt var")
	ErrRateLimited       = errors.New("istek sınırı aşıldı")
	ErrInvalidCredential = errors.New("e-posta veya şifre hatalı")
	ErrInactiveAdmin     = errors.New("hesap devre dışı")

	ErrAlreadyCheckedIn  = errors.New("giriş zaten yapılmış")
	ErrNotCheckedIn      = errors.New("giriş yapılmadan çıkış olmaz")
	ErrAlreadyCheckedOut = errors.New("çıkış zaten yapılmış")
	ErrCrossEvent        = errors.New("kod bu etkinliğe ait değil")
	ErrInvalidated       = errors.New("kod iptal edilmiş")
)
