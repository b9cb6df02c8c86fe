package bot

import (
	"context"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sspletnik/gossipbot/internal/session"
	"github.com/sspletnik/gossipbot/internal/stats"
	"github.com/sspletnik/gossipbot/internal/telegram"
)

// Find flow steps. The first two consume text; the last two are driven by
// inline-button callbacks only.
const (
	stepFindName = iota
	stepFindSurname
	stepFindCity
	stepFindAge
)

// Submit flow steps, one text input each.
const (
	stepSubmitName = iota
	stepSubmitSurname
	stepSubmitUsername
	stepSubmitAge
	stepSubmitCity
	stepSubmitText
)

func (e *Engine) findStep(ctx context.Context, sess *session.Session, from *telegram.User, text string) {
	switch sess.Step {
	case stepFindName:
		sess.Criteria.Name = strings.ToLower(text)
		e.send(ctx, sess.ChatID, textAskSurname, exitKeyboard())
		sess.Step = stepFindSurname

	case stepFindSurname:
		sess.Criteria.Surname = strings.ToLower(text)

		cities, err := e.rumors.ResolveCities(ctx, sess.Criteria)
		if err != nil {
			log.WithError(err).Error("resolve cities")
			return
		}
		if len(cities) == 0 {
			e.recordEvent(ctx, *from, stats.ActionFind)
			e.send(ctx, sess.ChatID, textNoRumors(sess.Criteria.Name, sess.Criteria.Surname), startKeyboard())
			sess.Reset()
			return
		}

		e.send(ctx, sess.ChatID, textChooseCity, cityKeyboard(cities))
		sess.Step = stepFindCity

	default:
		// Waiting on a city or age button; free text is ignored.
	}
}

func (e *Engine) submitStep(ctx context.Context, sess *session.Session, from *telegram.User, text string) {
	switch sess.Step {
	case stepSubmitName:
		sess.Draft.Name = strings.ToLower(text)
		e.send(ctx, sess.ChatID, textAskSurname, exitKeyboard())
		sess.Step = stepSubmitSurname

	case stepSubmitSurname:
		sess.Draft.Surname = strings.ToLower(text)
		e.send(ctx, sess.ChatID, textAskUsername, skipKeyboard())
		sess.Step = stepSubmitUsername

	case stepSubmitUsername:
		if text != cmdSkip {
			sess.Draft.SubjectUsername = text
		}
		e.send(ctx, sess.ChatID, textAskAge, exitKeyboard())
		sess.Step = stepSubmitAge

	case stepSubmitAge:
		age, err := strconv.Atoi(text)
		if err != nil || age <= 0 {
			// Re-prompt and stay: a non-numeric age would silently never
			// match anything downstream.
			e.send(ctx, sess.ChatID, textAskAgeAgain, exitKeyboard())
			return
		}
		sess.Draft.Age = age
		e.send(ctx, sess.ChatID, textAskCity, exitKeyboard())
		sess.Step = stepSubmitCity

	case stepSubmitCity:
		sess.Draft.City = strings.ToLower(text)
		e.send(ctx, sess.ChatID, textAskRumor, exitKeyboard())
		sess.Step = stepSubmitText

	case stepSubmitText:
		sess.Draft.Text = text
		e.finishSubmit(ctx, sess, from)
	}
}

func (e *Engine) finishSubmit(ctx context.Context, sess *session.Session, from *telegram.User) {
	draft := sess.Draft

	if err := e.rumors.Add(ctx, draft); err != nil {
		log.WithError(err).Error("persist rumor")
		e.send(ctx, sess.ChatID, textStartOver, startKeyboard())
		sess.Reset()
		return
	}

	if draft.SubjectUsername != "" && draft.SubjectUsername != cmdSkip {
		if _, err := e.notifier.NotifySubject(ctx, draft.SubjectUsername, textRumorHit); err != nil {
			// Best-effort by contract: the submission is already durable.
			log.WithError(err).Warn("notify subject")
		}
	}

	e.recordEvent(ctx, *from, stats.ActionSubmit)

	e.send(ctx, sess.ChatID, textRumorAdded(draft.Name, draft.Surname), startKeyboard())
	sess.Reset()
}
