package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"gestion-talento/internal/config"
)

type Service interface {
	SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

const welcomeBody = `
<h2>Bienvenido a Gestión de Talento, {{.Name}}</h2>
<p>Tu cuenta está lista. Desde tu perfil puedes revisar tu cargabilidad,
tus proyectos asignados y tus notificaciones.</p>
<p><a href="{{.Link}}">Ir a mi perfil</a></p>`

const resetBody = `
<h2>Hola {{.Name}}</h2>
<p>Recibimos una solicitud para restablecer tu contraseña. El enlace
expira en una hora.</p>
<p><a href="{{.Link}}">Restablecer contraseña</a></p>
<p>Si no fuiste tú, ignora este correo.</p>`

var (
	welcomeTmpl = template.Must(template.New("welcome").Parse(welcomeBody))
	resetTmpl   = template.Must(template.New("reset").Parse(resetBody))
)

func (s *service) send(toEmail, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Gestión de Talento <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error {
	data := struct {
		Name string
		Link string
	}{
		Name: fullName,
		Link: fmt.Sprintf("https://%s/profile", s.cfg.Domain),
	}
	return s.send(toEmail, "Bienvenido a Gestión de Talento", welcomeTmpl, data)
}

func (s *service) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	data := struct {
		Name string
		Link string
	}{
		Name: fullName,
		Link: fmt.Sprintf("https://%s/reset-password?token=%s", s.cfg.Domain, resetToken),
	}
	return s.send(toEmail, "Restablecer contraseña", resetTmpl, data)
}
