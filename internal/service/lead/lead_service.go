package lead

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gfssolutions/solar-api/internal/domain/dto"
	"github.com/gfssolutions/solar-api/internal/pkg/constants"
	"github.com/gfssolutions/solar-api/internal/pkg/logger"
	"github.com/gfssolutions/solar-api/internal/pkg/mailer"
	"github.com/gfssolutions/solar-api/internal/pkg/store"
)

const (
	operatorIntro   = "Nuova richiesta dal form GFS Solution"
	customerSubject = "Abbiamo ricevuto la tua richiesta"
	customerIntro   = "Grazie per aver richiesto il nostro parere. Di solito rispondiamo entro una o due ore, al massimo entro 24 ore. GFSsolutions.it"
)

type Options struct {
	NotifyTo string // operator recipient
	From     string // sender identity, wrapped as "GFS Solution <from>"
}

type Service struct {
	store  store.Store
	mailer mailer.Mailer
	opts   Options
}

func NewService(store store.Store, m mailer.Mailer, opts Options) *Service {
	return &Service{store: store, mailer: m, opts: opts}
}

// Submit runs the pipeline: capability check, persist, notify operator,
// acknowledge the customer. One attempt per step, no retries. Persistence
// happens before any email so an email outage never loses the lead; a
// failed email after a successful write is still reported as a failed
// request, and the stored record is kept.
func (s *Service) Submit(ctx context.Context, payload *dto.LeadPayload) error {
	if s.mailer == nil {
		return constants.ErrMailerNotConfigured
	}

	lead := payload.ToLead(uuid.NewString(), time.Now().UTC())
	if err := s.store.CreateLead(ctx, lead); err != nil {
		return constants.ErrLeadNotStored.WithCause(err)
	}

	from := fmt.Sprintf("GFS Solution <%s>", s.opts.From)
	lines := leadLines(payload)

	notify := &mailer.Message{
		From:    from,
		To:      []string{s.opts.NotifyTo},
		Subject: strings.TrimSpace(fmt.Sprintf("Nuova richiesta preventivo - %s %s", payload.Nome, payload.Cognome)),
		Text:    strings.Join(append([]string{operatorIntro, ""}, lines...), "\n"),
	}
	if hasEmail(payload) {
		notify.ReplyTo = payload.Email
	}
	if err := s.mailer.Send(ctx, notify); err != nil {
		logger.Warnf(ctx, "lead %s stored, operator notification failed: %s", lead.ID, err.Error())
		return constants.ErrNotificationFailed.WithCause(err)
	}

	if hasEmail(payload) {
		ack := &mailer.Message{
			From:    from,
			To:      []string{payload.Email},
			Subject: customerSubject,
			Text:    strings.Join(append([]string{customerIntro, "", "Dati inviati:"}, lines...), "\n"),
		}
		if err := s.mailer.Send(ctx, ack); err != nil {
			logger.Warnf(ctx, "lead %s stored, customer acknowledgment failed: %s", lead.ID, err.Error())
			return constants.ErrNotificationFailed.WithCause(err)
		}
	}

	return nil
}

func hasEmail(p *dto.LeadPayload) bool {
	return strings.TrimSpace(p.Email) != ""
}

// leadLines renders every submitted field, blanks as "-", in the order the
// operators are used to reading.
func leadLines(p *dto.LeadPayload) []string {
	return []string{
		formatLine("Nome", p.Nome),
		formatLine("Cognome", p.Cognome),
		formatLine("Tipologia impianto", p.Tipologia),
		formatLine("Potenza (kW)", p.KW),
		formatLine("Abitazione", p.Abitazione),
		formatLine("Consumi annui", p.Consumi),
		formatLine("Bolletta", p.Bolletta),
		formatLine("Email", p.Email),
		formatLine("Telefono", p.Telefono),
	}
}

func formatLine(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return fmt.Sprintf("%s: %s", label, value)
}
