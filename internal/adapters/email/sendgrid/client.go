// Package sendgrid despacha los correos de verificación vía la API v3 de
// SendGrid (POST /v3/mail/send con bearer token).
package sendgrid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lost-pet-alerts/internal/domain/verification"
	"lost-pet-alerts/internal/platform/httpclient"
	"lost-pet-alerts/internal/platform/logger"
)

const (
	DefaultAPIURL = "https://api.sendgrid.com/v3/mail/send"

	fromEmail = "huellitapp@outlook.com"
	fromName  = "HUELLITAPP"
	subject   = "Código de Verificación - HUELLITAPP"
)

// Mensajes localizados que la UI muestra tal cual al usuario final.
const (
	msgNotConfigured = "Configuración de email no disponible. Por favor contacta al soporte."
	msgConnection    = "Error de conexión. Verifica tu conexión a internet."
	msgUnknown       = "Error desconocido"
)

type Client struct {
	http   *httpclient.Client
	apiKey string
	log    *logger.Logger
}

func NewClient(apiURL, apiKey string, log *logger.Logger) (*Client, error) {
	if strings.TrimSpace(apiURL) == "" {
		apiURL = DefaultAPIURL
	}
	hc, err := httpclient.New(apiURL, 15*time.Second)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, apiKey: strings.TrimSpace(apiKey), log: log}, nil
}

type personalization struct {
	To      []recipient `json:"to"`
	Subject string      `json:"subject"`
}

type recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             recipient         `json:"from"`
	Content          []content         `json:"content"`
}

func (c *Client) SendCode(ctx context.Context, email, code string) error {
	if c.apiKey == "" {
		c.log.Error("sendgrid api key missing; cannot dispatch verification email")
		return &verification.DispatchError{Message: msgNotConfigured}
	}

	req := mailRequest{
		Personalizations: []personalization{{
			To:      []recipient{{Email: email}},
			Subject: subject,
		}},
		From:    recipient{Email: fromEmail, Name: fromName},
		Content: []content{{Type: "text/html", Value: htmlBody(code)}},
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	err := c.http.DoJSON(ctx, http.MethodPost, "", headers, req, nil)
	if err == nil {
		return nil
	}

	var se *httpclient.StatusError
	if errors.As(err, &se) {
		msg := providerMessage(se.Body)
		c.log.Warn("sendgrid rejected mail", "status", se.StatusCode, "err", msg)
		return &verification.DispatchError{StatusCode: se.StatusCode, Message: msg}
	}

	c.log.Warn("sendgrid request failed", "err", err.Error())
	return &verification.DispatchError{Message: msgConnection}
}

// providerMessage extrae el mensaje de error del cuerpo de respuesta de
// SendGrid: errors[].message unidos por ". ", luego message, luego fallback.
func providerMessage(body string) string {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		} `json:"errors"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		if s := strings.TrimSpace(body); s != "" {
			return s
		}
		return msgUnknown
	}

	if len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			switch {
			case e.Message != "":
				msgs = append(msgs, e.Message)
			case e.Field != "":
				msgs = append(msgs, e.Field)
			default:
				msgs = append(msgs, "Error")
			}
		}
		return strings.Join(msgs, ". ")
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return msgUnknown
}

func htmlBody(code string) string {
	var digits strings.Builder
	for _, d := range code {
		fmt.Fprintf(&digits, `<td style="padding:0 6px"><div style="width:70px;height:80px;line-height:80px;text-align:center;border:3px solid #FAA35F;border-radius:10px;font-size:36px;font-weight:700;color:#5A80B2">%c</div></td>`, d)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<body style="margin:0;padding:0;background-color:#f4f4f4;font-family:Arial,sans-serif">
  <table role="presentation" width="100%%" cellspacing="0" cellpadding="0"><tr><td align="center" style="padding:40px 20px">
    <table role="presentation" width="600" cellspacing="0" cellpadding="0" style="max-width:600px;background:#ffffff;border-radius:12px;overflow:hidden">
      <tr><td style="background:#FAA35F;padding:50px 40px;text-align:center">
        <h1 style="margin:0;font-size:38px;color:#ffffff;letter-spacing:3px">HUELLITAPP</h1>
        <p style="margin:8px 0 0 0;font-size:15px;color:rgba(255,255,255,0.95)">Encuentra a tu mascota perdida</p>
      </td></tr>
      <tr><td style="padding:50px 40px;text-align:center">
        <h2 style="margin:0 0 20px 0;font-size:28px;color:#5A80B2">Código de Verificación</h2>
        <p style="margin:0 0 40px 0;font-size:16px;color:#666666">Gracias por registrarte en HUELLITAPP. Para completar tu registro, ingresa el siguiente código de verificación en la aplicación:</p>
        <table role="presentation" cellspacing="0" cellpadding="0" align="center"><tr>%s</tr></table>
        <p style="margin:40px 0 0 0;font-size:14px;color:#555555"><strong>Este código expirará en 10 minutos.</strong><br>Si no solicitaste este código, puedes ignorar este correo de forma segura.</p>
      </td></tr>
      <tr><td style="background:#f8f9fa;padding:30px 40px;text-align:center">
        <p style="margin:0;font-size:12px;color:#999999">Este es un correo automático, por favor no respondas.<br>© %d HUELLITAPP. Todos los derechos reservados.</p>
      </td></tr>
    </table>
  </td></tr></table>
</body>
</html>`, digits.String(), time.Now().Year())
}
