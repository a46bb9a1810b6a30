package sendgrid

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lost-pet-alerts/internal/domain/verification"
)

func TestSendCode_PostsMailRequest(t *testing.T) {
	var gotAuth string
	var gotBody mailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "sg-test-key", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := c.SendCode(context.Background(), "ana@example.com", "3345"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotAuth != "Bearer sg-test-key" {
		t.Fatalf("authorization header: got %q", gotAuth)
	}
	if len(gotBody.Personalizations) != 1 ||
		len(gotBody.Personalizations[0].To) != 1 ||
		gotBody.Personalizations[0].To[0].Email != "ana@example.com" {
		t.Fatalf("recipient: %+v", gotBody.Personalizations)
	}
	if gotBody.Personalizations[0].Subject != "Código de Verificación - HUELLITAPP" {
		t.Fatalf("subject: %q", gotBody.Personalizations[0].Subject)
	}
	if gotBody.From.Email != "huellitapp@outlook.com" || gotBody.From.Name != "HUELLITAPP" {
		t.Fatalf("from: %+v", gotBody.From)
	}
	if len(gotBody.Content) != 1 || gotBody.Content[0].Type != "text/html" {
		t.Fatalf("content: %+v", gotBody.Content)
	}
	for _, d := range "3345" {
		if !strings.ContainsRune(gotBody.Content[0].Value, d) {
			t.Fatalf("html body missing code digit %c", d)
		}
	}
}

func TestSendCode_MissingKeyFailsWithoutRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the api key is missing")
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var de *verification.DispatchError
	if err := c.SendCode(context.Background(), "ana@example.com", "3345"); !errors.As(err, &de) {
		t.Fatalf("expected DispatchError, got %v", err)
	} else if de.Message != "Configuración de email no disponible. Por favor contacta al soporte." {
		t.Fatalf("message: %q", de.Message)
	}
}

func TestSendCode_ProviderErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"errors":[{"message":"The provided authorization grant is invalid"},{"message":"Check your API key"}]}`)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "bad-key", nil)

	var de *verification.DispatchError
	err := c.SendCode(context.Background(), "ana@example.com", "3345")
	if !errors.As(err, &de) {
		t.Fatalf("expected DispatchError, got %v", err)
	}
	if de.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: got %d", de.StatusCode)
	}
	if de.Message != "The provided authorization grant is invalid. Check your API key" {
		t.Fatalf("message: %q", de.Message)
	}
}

func TestProviderMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"errors array", `{"errors":[{"message":"Bad Request"}]}`, "Bad Request"},
		{"error sin mensaje, con field", `{"errors":[{"field":"from.email"}]}`, "from.email"},
		{"message plano", `{"message":"Payload too large"}`, "Payload too large"},
		{"json sin nada útil", `{}`, "Error desconocido"},
		{"texto crudo", `upstream timeout`, "upstream timeout"},
		{"cuerpo vacío", ``, "Error desconocido"},
	}

	for _, c := range cases {
		if got := providerMessage(c.body); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}
