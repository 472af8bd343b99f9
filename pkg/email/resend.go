package email

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *log.Logger
}

func NewEmailService() *EmailService {
	// Log dosyası oluştur
	logFile, err := os.OpenFile("logs/email.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Printf("Error opening log file: %v", err)
		// Hata durumunda stdout'a log al
		return &EmailService{
			client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
			from:         os.Getenv("EMAIL_FROM_ADDRESS"),
			fromName:     os.Getenv("EMAIL_FROM_NAME"),
			templatesDir: "pkg/email/templates",
			logger:       log.New(os.Stdout, "EMAIL: ", log.LstdFlags),
		}
	}

	// Multi writer ile hem dosyaya hem stdout'a yaz
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	return &EmailService{
		client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:         os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName:     os.Getenv("EMAIL_FROM_NAME"),
		templatesDir: "pkg/email/templates",
		logger:       log.New(multiWriter, "EMAIL: ", log.LstdFlags),
	}
}

// InvitationData davetiye e-postası şablon alanları.
type InvitationData struct {
	FullName   string
	EventTitle string
	EventDate  string
	EventTime  string
	Location   string
	PosterURL  string
}

// SendInvitationEmail kişisel davetiyeyi gönderir; teslim kaydı için
// Resend mesaj kimliğini döner.
func (s *EmailService) SendInvitationEmail(to string, data InvitationData) (string, error) {
	s.logger.Printf("Sending invitation email to: %s (%s)", to, data.EventTitle)

	templateData := map[string]interface{}{
		"FullName":   data.FullName,
		"EventTitle": data.EventTitle,
		"EventDate":  data.EventDate,
		"EventTime":  data.EventTime,
		"Location":   data.Location,
		"PosterURL":  data.PosterURL,
		"Year":       time.Now().Year(),
	}

	html, err := s.parseTemplate("invitation.html", templateData)
	if err != nil {
		s.logger.Printf("Error parsing invitation template for %s: %v", to, err)
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: data.EventTitle + " - Davetiyeniz",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Printf("Failed to send invitation email to %s: %v", to, err)
		return "", err
	}

	s.logger.Printf("Successfully sent invitation email to %s (ID: %s)", to, resp.Id)
	return resp.Id, nil
}

// SendRegistrationConfirmation kayıt onayını gönderir.
func (s *EmailService) SendRegistrationConfirmation(to, fullName, eventTitle string) (string, error) {
	s.logger.Printf("Sending registration confirmation to: %s", to)

	templateData := map[string]interface{}{
		"FullName":   fullName,
		"EventTitle": eventTitle,
		"Email":      to,
		"Year":       time.Now().Year(),
	}

	html, err := s.parseTemplate("registration-confirmation.html", templateData)
	if err != nil {
		s.logger.Printf("Error parsing confirmation template for %s: %v", to, err)
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: eventTitle + " - Kaydınız Alındı",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Printf("Failed to send confirmation email to %s: %v", to, err)
		return "", err
	}

	s.logger.Printf("Successfully sent confirmation email to %s (ID: %s)", to, resp.Id)
	return resp.Id, nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		s.logger.Printf("Error parsing template %s: %v", templateName, err)
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		s.logger.Printf("Error executing template %s: %v", templateName, err)
		return "", err
	}

	return body.String(), nil
}
