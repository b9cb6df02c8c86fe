package bot

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sspletnik/gossipbot/internal/rumor"
	"github.com/sspletnik/gossipbot/internal/session"
	"github.com/sspletnik/gossipbot/internal/stats"
	"github.com/sspletnik/gossipbot/internal/telegram"
)

// Sender is the slice of the Telegram client the engine talks to.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string, markup any) (int64, error)
	EditMessageText(ctx context.Context, chatID, messageID int64, text string, markup *telegram.InlineKeyboardMarkup) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error
}

// Notifier enqueues a cross-user notification for a subject username.
type Notifier interface {
	NotifySubject(ctx context.Context, username, text string) (bool, error)
}

// Engine drives the find and submit wizards, the query funnel and the
// paginated result browser. One inbound update mutates one user's session
// exactly once, under that user's lock.
type Engine struct {
	sessions session.Store
	locks    *session.Locker
	rumors   *rumor.Service
	events   *stats.Repo
	notifier Notifier
	tg       Sender

	botName  string
	pageSize int
}

func NewEngine(
	sessions session.Store,
	rumors *rumor.Service,
	events *stats.Repo,
	notifier Notifier,
	tg Sender,
	botName string,
	pageSize int,
) *Engine {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Engine{
		sessions: sessions,
		locks:    session.NewLocker(),
		rumors:   rumors,
		events:   events,
		notifier: notifier,
		tg:       tg,
		botName:  botName,
		pageSize: pageSize,
	}
}

// HandleUpdate routes one inbound update. It never returns an error: the
// webhook must ack regardless of what happens here, so failures are logged
// and swallowed.
func (e *Engine) HandleUpdate(ctx context.Context, upd telegram.Update) {
	switch {
	case upd.Message != nil && upd.Message.From != nil:
		e.handleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		e.handleCallback(ctx, upd.CallbackQuery)
	}
}

func (e *Engine) handleMessage(ctx context.Context, msg *telegram.Message) {
	userID := msg.From.ID
	e.locks.Lock(userID)
	defer e.locks.Unlock(userID)

	sess := e.loadSession(ctx, userID)
	sess.ChatID = msg.Chat.ID

	text := strings.TrimSpace(msg.Text)
	switch text {
	case cmdStart:
		sess.Reset()
		e.send(ctx, sess.ChatID, textWelcome, welcomeKeyboard())
		e.saveSession(ctx, sess)
		return
	case cmdExit:
		// Exit works from every step, including idle, and never fails.
		sess.Reset()
		e.send(ctx, sess.ChatID, textStartOver, startKeyboard())
		e.saveSession(ctx, sess)
		return
	}

	switch sess.Flow {
	case session.FlowFind:
		e.findStep(ctx, sess, msg.From, text)
	case session.FlowSubmit:
		e.submitStep(ctx, sess, msg.From, text)
	default:
		// No active flow and no recognized command: deliberate no-op.
		return
	}

	e.saveSession(ctx, sess)
}

func (e *Engine) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	defer func() {
		if err := e.tg.AnswerCallbackQuery(ctx, cb.ID); err != nil {
			log.WithError(err).Debug("answer callback query")
		}
	}()

	cmd, ok := ParseCommand(cb.Data)
	if !ok {
		log.WithField("data", cb.Data).Debug("ignoring malformed callback payload")
		return
	}

	userID := cb.From.ID
	e.locks.Lock(userID)
	defer e.locks.Unlock(userID)

	sess := e.loadSession(ctx, userID)
	if cb.Message != nil {
		sess.ChatID = cb.Message.Chat.ID
	} else if sess.ChatID == 0 {
		// Private chats share the user's ID.
		sess.ChatID = userID
	}

	switch cmd.Kind {
	case CmdStartFind:
		sess.Start(session.FlowFind)
		e.send(ctx, sess.ChatID, textAskName, exitKeyboard())

	case CmdStartSubmit:
		sess.Start(session.FlowSubmit)
		e.send(ctx, sess.ChatID, textAskName, exitKeyboard())

	case CmdSelectCity:
		e.selectCity(ctx, sess, cb.From, cmd.Value)

	case CmdSelectAge:
		e.selectAge(ctx, sess, cb.From, cmd.Int())

	case CmdSelectPage:
		e.selectPage(ctx, sess, cmd.Int())
	}

	e.saveSession(ctx, sess)
}

func (e *Engine) selectCity(ctx context.Context, sess *session.Session, from telegram.User, city string) {
	if sess.Flow != session.FlowFind || sess.Step != stepFindCity {
		// Stale button from an abandoned flow.
		return
	}

	sess.Criteria.City = strings.ToLower(city)

	ages, err := e.rumors.ResolveAges(ctx, sess.Criteria)
	if err != nil {
		log.WithError(err).Error("resolve ages")
		return
	}
	if len(ages) == 0 {
		// The records moved under us between funnel steps. Same terminal
		// path as an empty city set.
		e.recordEvent(ctx, from, stats.ActionFind)
		e.send(ctx, sess.ChatID, textNoRumors(sess.Criteria.Name, sess.Criteria.Surname), startKeyboard())
		sess.Reset()
		return
	}

	e.send(ctx, sess.ChatID, textChooseAge, ageKeyboard(ages))
	sess.Step = stepFindAge
}

func (e *Engine) selectAge(ctx context.Context, sess *session.Session, from telegram.User, age int) {
	if sess.Flow != session.FlowFind || sess.Step != stepFindAge {
		return
	}

	sess.Criteria.Age = age

	texts, err := e.rumors.ResolveTexts(ctx, sess.Criteria)
	if err != nil {
		log.WithError(err).Error("resolve texts")
		return
	}

	e.recordEvent(ctx, from, stats.ActionFind)

	pages := paginate(texts, e.pageSize)
	var markup any
	if kb := pageKeyboard(len(pages), 0); kb != nil {
		markup = kb
	}
	msgID, err := e.tg.SendMessage(ctx, sess.ChatID, pages[0], markup)
	if err != nil {
		log.WithError(err).Warn("send result page")
		return
	}

	// Find flow is done; only the page state survives for navigation.
	sess.Flow = session.FlowNone
	sess.Step = 0
	sess.Criteria = rumor.Criteria{}
	sess.Pages = pages
	sess.PageIndex = 0
	sess.PageMessageID = msgID
}

func (e *Engine) selectPage(ctx context.Context, sess *session.Session, index int) {
	if len(sess.Pages) == 0 || sess.PageMessageID == 0 {
		return
	}
	// Buttons only ever point at valid neighbors, but a stale or forged
	// payload must not take the controller out of range.
	if index < 0 || index >= len(sess.Pages) || index == sess.PageIndex {
		return
	}

	err := e.tg.EditMessageText(ctx, sess.ChatID, sess.PageMessageID, sess.Pages[index], pageKeyboard(len(sess.Pages), index))
	if err != nil {
		log.WithError(err).Warn("edit result page")
		return
	}
	sess.PageIndex = index
}

func (e *Engine) recordEvent(ctx context.Context, from telegram.User, action stats.Action) {
	err := e.events.Create(ctx, &stats.Event{
		UserID:   from.ID,
		Username: from.Username,
		Action:   action,
		BotName:  e.botName,
	})
	if err != nil {
		log.WithError(err).Error("record event")
	}
}

// loadSession falls back to a fresh idle session when the store misbehaves:
// a corrupted conversation restarts rather than wedging the user.
func (e *Engine) loadSession(ctx context.Context, userID int64) *session.Session {
	sess, err := e.sessions.Get(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("load session")
		return &session.Session{UserID: userID}
	}
	return sess
}

func (e *Engine) saveSession(ctx context.Context, sess *session.Session) {
	if err := e.sessions.Put(ctx, sess); err != nil {
		log.WithError(err).Error("save session")
	}
}

func (e *Engine) send(ctx context.Context, chatID int64, text string, markup any) {
	if _, err := e.tg.SendMessage(ctx, chatID, text, markup); err != nil {
		log.WithError(err).Warn("send message")
	}
}
