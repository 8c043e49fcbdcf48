package dialogue

import (
	"context"
	"fmt"

	"github.com/sandevgo/geobot/internal/core"
	"github.com/sandevgo/geobot/internal/service/extract"
	"github.com/sandevgo/geobot/internal/service/knowledge"
	"github.com/sandevgo/geobot/internal/service/session"
	"github.com/sandevgo/geobot/pkg/log"
)

const (
	replyAskSubject  = `Qual o país/estado/cidade? Diga, por exemplo: "... do Brasil".`
	replyGenericHelp = "Em que posso ajudar? Exemplos: capital do Brasil; moeda de Portugal."
	memoryPrefix     = "(Usando o contexto anterior) "
)

// Resolver turns one inbound user message into one reply, using the
// session store to carry the topic across elliptical follow-ups.
type Resolver struct {
	store      *session.Store
	kb         *knowledge.Base
	transcript core.TranscriptRepository
	locks      *keyedMutex
}

// NewResolver wires the resolver. transcript may be nil, in which case no
// archive is kept.
func NewResolver(store *session.Store, kb *knowledge.Base, transcript core.TranscriptRepository) *Resolver {
	return &Resolver{
		store:      store,
		kb:         kb,
		transcript: transcript,
		locks:      newKeyedMutex(),
	}
}

// Resolve runs the full pipeline for one message: extraction, memory
// inheritance, subject persistence, response selection. It always returns
// some reply; no-match conditions fall through to prompts, never errors.
func (r *Resolver) Resolve(ctx context.Context, conversationID, userText string) string {
	unlock := r.locks.Lock(conversationID)
	defer unlock()

	r.store.RememberMessage(conversationID, core.RoleUser, userText)
	r.archive(ctx, conversationID, core.RoleUser, userText)

	attr, hasAttr := extract.DetectAttribute(userText)

	var subj core.SubjectKey
	var hasSubj bool
	if phrase, ok := extract.SubjectPhrase(userText); ok {
		subj, hasSubj = r.kb.ResolveSubject(phrase)
	}

	// Inheritance: an elliptical follow-up borrows the remembered topic,
	// but only when the message carries an attribute keyword or looks
	// like a continuation.
	usedMemory := false
	if !hasSubj && (hasAttr || extract.IsFollowup(userText)) {
		if last, ok := r.store.GetSubject(conversationID); ok {
			subj = last
			hasSubj = true
			usedMemory = true
		}
	}

	if hasSubj {
		r.store.SetSubject(conversationID, subj)
	}

	reply := r.selectReply(conversationID, subj, hasSubj, attr, hasAttr)

	// The original computes the direct answer again for the memory
	// annotation; the render is pure, so both calls agree.
	if usedMemory && hasAttr && hasSubj {
		if extra, ok := r.kb.Render(subj, attr); ok {
			reply = memoryPrefix + extra
		}
	}

	log.FromCtx(ctx).Debug().
		Str("conversation", conversationID).
		Str("attribute", string(attr)).
		Str("subject", string(subj)).
		Bool("used_memory", usedMemory).
		Msg("resolved message")

	r.store.RememberMessage(conversationID, core.RoleAssistant, reply)
	r.archive(ctx, conversationID, core.RoleAssistant, reply)
	return reply
}

// selectReply implements the fixed response precedence.
func (r *Resolver) selectReply(conversationID string, subj core.SubjectKey, hasSubj bool, attr core.Attribute, hasAttr bool) string {
	switch {
	case hasSubj && hasAttr:
		if answer, ok := r.kb.Render(subj, attr); ok {
			return answer
		}
		// Attribute missing from the entry; should not happen with a
		// well-formed knowledge base.
		return r.subjectPrompt(subj)
	case hasSubj:
		return r.subjectPrompt(subj)
	case hasAttr:
		return replyAskSubject
	default:
		if last, ok := r.store.GetSubject(conversationID); ok {
			if entry, found := r.kb.Entry(last); found {
				return fmt.Sprintf("Antes falávamos de %s. Quer saber capital, moeda ou idioma? Você também pode usar 'E a moeda?'", entry.Name)
			}
		}
		return replyGenericHelp
	}
}

func (r *Resolver) subjectPrompt(subj core.SubjectKey) string {
	name := string(subj)
	if entry, ok := r.kb.Entry(subj); ok {
		name = entry.Name
	}
	return fmt.Sprintf(`Você está falando de %s. Posso responder sobre capital, moeda ou idioma. Por exemplo: "Qual a capital?" ou "E a moeda?"`, name)
}

func (r *Resolver) archive(ctx context.Context, conversationID, role, text string) {
	if r.transcript == nil {
		return
	}
	if err := r.transcript.Append(ctx, conversationID, role, text); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("conversation", conversationID).Msg("failed to archive message")
	}
}
