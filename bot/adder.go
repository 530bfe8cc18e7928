package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"christoffel-menu/config"
	"christoffel-menu/models"
	"christoffel-menu/services"
)

// SuccessMessage is the acknowledgement shown after a dish is saved.
const SuccessMessage = "Dish added successfully!"

// sender is the part of *tgbotapi.BotAPI the adder bot talks to.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// chatScreen is the menu form of one chat plus the field it is waiting for.
type chatScreen struct {
	mu      sync.Mutex
	form    *services.MenuForm
	editing models.Field // "" when no field is awaiting text
}

// AdderBot serves the menu-entry form over Telegram. Every chat gets its own
// form that lives as long as the process.
type AdderBot struct {
	api     sender
	updates *tgbotapi.BotAPI
	cfg     config.ScreenConfig
	logger  *zap.Logger

	screens map[int64]*chatScreen
	stateMu sync.RWMutex
}

// NewAdderBot connects to Telegram with TOKEN.
func NewAdderBot(cfg *config.Config, logger *zap.Logger) (*AdderBot, error) {
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("TOKEN not set")
	}
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	b := newAdderBot(api, cfg.Screen, logger)
	b.updates = api
	return b, nil
}

func newAdderBot(api sender, cfg config.ScreenConfig, logger *zap.Logger) *AdderBot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdderBot{
		api:     api,
		cfg:     cfg,
		logger:  logger,
		screens: make(map[int64]*chatScreen),
	}
}

// Start long-polls Telegram until ctx is cancelled.
func (a *AdderBot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := a.updates.GetUpdatesChan(u)
	defer a.updates.StopReceivingUpdates()

	a.logger.Info("adder bot started", zap.String("bot", a.updates.Self.UserName))
	return a.Run(ctx, updates)
}

// Run handles updates one at a time until ctx is done or updates is closed.
func (a *AdderBot) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			a.handleUpdate(update)
		}
	}
}

func (a *AdderBot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		a.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.Chat == nil {
		return
	}
	msg := update.Message
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch text {
	case "/start":
		a.sendCard(chatID)
		return
	case "/cancel":
		a.cancelEdit(chatID)
		return
	case "/list":
		a.sendList(chatID)
		return
	}

	if a.handleFieldInput(chatID, msg.Text) {
		return
	}
	a.send(chatID, "Tap a field below to edit it, then SAVE.")
	a.sendCard(chatID)
}

// screen returns the chat's form, creating it on first use.
func (a *AdderBot) screen(chatID int64) *chatScreen {
	a.stateMu.RLock()
	s := a.screens[chatID]
	a.stateMu.RUnlock()
	if s != nil {
		return s
	}

	a.stateMu.Lock()
	defer a.stateMu.Unlock()
	if s = a.screens[chatID]; s == nil {
		s = &chatScreen{form: services.NewMenuForm()}
		a.screens[chatID] = s
	}
	return s
}

// Form returns the menu form of a chat.
func (a *AdderBot) Form(chatID int64) *services.MenuForm {
	return a.screen(chatID).form
}

// handleFieldInput stores text into the field the chat is editing.
func (a *AdderBot) handleFieldInput(chatID int64, text string) bool {
	s := a.screen(chatID)
	s.mu.Lock()
	field := s.editing
	if field == "" {
		s.mu.Unlock()
		return false
	}
	s.editing = ""
	err := s.form.Set(field, text)
	s.mu.Unlock()

	if err != nil {
		a.logger.Error("set field", zap.Int64("chat", chatID), zap.Error(err))
		return true
	}
	a.logger.Debug("field set", zap.Int64("chat", chatID), zap.String("field", string(field)))
	a.sendCard(chatID)
	return true
}

func (a *AdderBot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.Message.Chat == nil {
		a.answer(cq.ID, "")
		return
	}
	chatID := cq.Message.Chat.ID
	data := cq.Data

	switch {
	case strings.HasPrefix(data, cbEditPrefix):
		field := models.Field(strings.TrimPrefix(data, cbEditPrefix))
		prompt, ok := fieldPrompts[field]
		if !ok {
			a.answer(cq.ID, "")
			return
		}
		s := a.screen(chatID)
		s.mu.Lock()
		s.editing = field
		current := s.form.Value(field)
		s.mu.Unlock()
		a.answer(cq.ID, "")
		if current != "" {
			prompt += fmt.Sprintf("\n(current: %s)", current)
		}
		a.send(chatID, prompt+"\nCancel: /cancel")
	case data == cbCourses:
		a.answer(cq.ID, "")
		a.sendWithInline(chatID, "Choose a course:", courseKeyboard())
	case strings.HasPrefix(data, cbCoursePrefix):
		name, ok := parseCourseData(data)
		if !ok {
			a.answer(cq.ID, "")
			return
		}
		s := a.screen(chatID)
		s.mu.Lock()
		s.form.SetCourse(name)
		s.mu.Unlock()
		a.answer(cq.ID, "")
		a.sendCard(chatID)
	case data == cbSave:
		a.save(chatID, cq.ID)
	case data == cbList:
		a.answer(cq.ID, "")
		a.sendList(chatID)
	case data == cbBack:
		a.answer(cq.ID, "")
		a.sendCard(chatID)
	default:
		a.answer(cq.ID, "")
	}
}

// save submits the chat's draft. In inline mode a saved dish is acknowledged
// with an alert and a rejected one shows its errors on the card; in silent
// mode the card is simply redrawn.
func (a *AdderBot) save(chatID int64, callbackID string) {
	s := a.screen(chatID)
	s.mu.Lock()
	s.editing = ""
	entry, err := s.form.Submit()
	count := s.form.Count()
	s.mu.Unlock()

	if err != nil {
		a.logger.Debug("dish rejected", zap.Int64("chat", chatID), zap.Error(err))
		a.answer(callbackID, "")
		a.sendCard(chatID)
		return
	}

	a.logger.Info("dish added",
		zap.Int64("chat", chatID),
		zap.String("name", entry.Name),
		zap.String("course", entry.Course),
		zap.Float64("price", entry.Price),
		zap.Int("count", count))

	if a.cfg.Inline() {
		alert := tgbotapi.NewCallbackWithAlert(callbackID, "✅ "+SuccessMessage)
		if _, err := a.api.Request(alert); err != nil {
			a.logger.Warn("answer callback", zap.Error(err))
		}
	} else {
		a.answer(callbackID, "")
	}
	a.sendCard(chatID)
}

func (a *AdderBot) cancelEdit(chatID int64) {
	s := a.screen(chatID)
	s.mu.Lock()
	s.editing = ""
	s.mu.Unlock()
	a.send(chatID, "✅ Cancelled.")
	a.sendCard(chatID)
}

func (a *AdderBot) sendCard(chatID int64) {
	s := a.screen(chatID)
	s.mu.Lock()
	text := renderCard(s.form, a.cfg)
	s.mu.Unlock()
	a.sendWithInline(chatID, text, cardKeyboard())
}

func (a *AdderBot) sendList(chatID int64) {
	s := a.screen(chatID)
	s.mu.Lock()
	text := renderList(s.form, a.cfg)
	s.mu.Unlock()
	a.send(chatID, text)
}

func (a *AdderBot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := a.api.Send(msg); err != nil {
		a.logger.Warn("adder send error", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func (a *AdderBot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := a.api.Send(msg); err != nil {
		a.logger.Warn("adder send error", zap.Int64("chat", chatID), zap.Error(err))
	}
}

func (a *AdderBot) answer(callbackID, text string) {
	if _, err := a.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		a.logger.Warn("answer callback", zap.Error(err))
	}
}
