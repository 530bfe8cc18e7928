package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"christoffel-menu/config"
	"christoffel-menu/models"
	"christoffel-menu/services"
)

// Callback data understood by the adder bot.
const (
	cbEditPrefix   = "menu:edit:"
	cbCourses      = "menu:courses"
	cbCoursePrefix = "menu:course:"
	cbSave         = "menu:save"
	cbList         = "menu:list"
	cbBack         = "menu:back"
)

var fieldPrompts = map[models.Field]string{
	models.FieldName:        "Send the dish name:",
	models.FieldDescription: "Send the description:",
	models.FieldPrice:       "Send the price (e.g. 45 or 12.5):",
}

// renderList is the "Total" line followed by the accepted entries.
func renderList(form *services.MenuForm, cfg config.ScreenConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d\n\n📋 Menu\n", form.Count())
	entries := form.Entries()
	if len(entries) == 0 {
		b.WriteString("(no dishes yet)\n")
	}
	for _, e := range entries {
		b.WriteString("• " + e.Line(cfg.Currency) + "\n")
	}
	return b.String()
}

// renderCard is the whole screen: title, list, count and the draft with any
// inline errors.
func renderCard(form *services.MenuForm, cfg config.ScreenConfig) string {
	var b strings.Builder
	b.WriteString(cfg.Title + "\n")
	b.WriteString(renderList(form, cfg))
	b.WriteString("\n📝 Add Menu Item\n")

	for _, f := range models.Fields {
		v := form.Value(f)
		if f == models.FieldCourse && v == "" {
			v = models.CoursePlaceholder
		} else if strings.TrimSpace(v) == "" {
			v = "—"
		}
		fmt.Fprintf(&b, "%s: %s\n", f.Label(), v)
		if msg := form.Error(f); msg != "" && cfg.Inline() {
			b.WriteString("   ⚠️ " + msg + "\n")
		}
	}
	return b.String()
}

func cardKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Name", cbEditPrefix+string(models.FieldName)),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Description", cbEditPrefix+string(models.FieldDescription)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Price", cbEditPrefix+string(models.FieldPrice)),
			tgbotapi.NewInlineKeyboardButtonData("🍽 Course", cbCourses),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💾 SAVE", cbSave),
			tgbotapi.NewInlineKeyboardButtonData("📋 Menu", cbList),
		),
	)
}

// courseKeyboard offers the placeholder plus the 12 courses, two per row.
func courseKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(models.CoursePlaceholder, cbCoursePrefix+"0"),
		),
	}
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range models.Courses() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Name, cbCoursePrefix+strconv.Itoa(c.ID)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back", cbBack),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// parseCourseData maps "menu:course:<id>" to a course name; id 0 is the
// placeholder and yields "".
func parseCourseData(data string) (string, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(data, cbCoursePrefix))
	if err != nil {
		return "", false
	}
	if id == 0 {
		return "", true
	}
	c, ok := models.CourseByID(id)
	if !ok {
		return "", false
	}
	return c.Name, true
}
