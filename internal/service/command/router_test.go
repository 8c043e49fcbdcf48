package command

import (
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/geobot/internal/core"
	"github.com/sandevgo/geobot/internal/service/session"
)

func newTestRouter() (*Router, *session.Store) {
	store := session.NewStore(session.DefaultTTL, session.DefaultMaxMessages)
	return New(NewCommands(store, nil)), store
}

func TestRouterIgnoresPlainText(t *testing.T) {
	router, _ := newTestRouter()

	reply, handled := router.Execute(context.Background(), "chat-1", "Qual a capital do Brasil?")
	if handled {
		t.Errorf("plain text should not be handled as a command, got %q", reply)
	}
}

func TestRouterUnknownCommand(t *testing.T) {
	router, _ := newTestRouter()

	reply, handled := router.Execute(context.Background(), "chat-1", "/banana")
	if !handled {
		t.Fatal("slash input must always be handled")
	}
	if !strings.Contains(reply, "/banana") {
		t.Errorf("unknown-command reply should name the command, got %q", reply)
	}
}

func TestStartClearsSessionAndGreets(t *testing.T) {
	router, store := newTestRouter()
	ctx := context.Background()

	store.SetSubject("chat-1", "brasil")
	reply, handled := router.Execute(ctx, "chat-1", "/start")
	if !handled {
		t.Fatal("/start should be handled")
	}
	if !strings.Contains(reply, "memória de curto prazo") {
		t.Errorf("unexpected greeting: %q", reply)
	}
	if _, ok := store.GetSubject("chat-1"); ok {
		t.Error("/start should clear the remembered subject")
	}
}

func TestResetThenStatusReportsPlaceholders(t *testing.T) {
	router, store := newTestRouter()
	ctx := context.Background()

	store.SetSubject("chat-1", "portugal")
	store.RememberMessage("chat-1", core.RoleUser, "Qual o idioma de Portugal?")

	reply, _ := router.Execute(ctx, "chat-1", "/reset")
	if reply != "Contexto limpo! Podemos recomeçar." {
		t.Errorf("unexpected reset ack: %q", reply)
	}

	status, _ := router.Execute(ctx, "chat-1", "/status")
	want := "Assunto atual: (nenhum). Última pergunta: (nenhuma)."
	if status != want {
		t.Errorf("status = %q, want %q", status, want)
	}
}

func TestStatusReportsSubjectAndLastQuestion(t *testing.T) {
	router, store := newTestRouter()
	ctx := context.Background()

	store.SetSubject("chat-1", "brasil")
	store.RememberMessage("chat-1", core.RoleUser, "Qual é a capital do Brasil?")
	store.RememberMessage("chat-1", core.RoleAssistant, "A capital de Brasil é Brasília.")

	status, _ := router.Execute(ctx, "chat-1", "/status")
	want := "Assunto atual: brasil. Última pergunta: Qual é a capital do Brasil?."
	if status != want {
		t.Errorf("status = %q, want %q", status, want)
	}
}

func TestHelpListsAllCommands(t *testing.T) {
	router, _ := newTestRouter()

	reply, handled := router.Execute(context.Background(), "chat-1", "/help")
	if !handled {
		t.Fatal("/help should be handled")
	}
	for _, name := range []string{"/start", "/reset", "/status", "/help"} {
		if !strings.Contains(reply, name) {
			t.Errorf("help output missing %s: %q", name, reply)
		}
	}
	if strings.Contains(reply, "/log") {
		t.Errorf("/log should be absent without a transcript archive: %q", reply)
	}
}
