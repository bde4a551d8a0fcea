package bot

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/muhammadheryan/course-platform/application/registration"
	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
)

// Fixed reply-menu labels. These double as reserved inputs that bypass the
// registration machine.
const (
	MenuCourses   = "📚 Kurslar"
	MenuBooks     = "📖 Kitoblar"
	MenuVideos    = "🎥 Video kurslar"
	MenuMyCourses = "🎓 Mening kurslarim"
	MenuMyQR      = "🆔 Mening QR kodim"
	MenuSettings  = "⚙️ Sozlamalar"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(MenuCourses),
			tgbotapi.NewKeyboardButton(MenuBooks),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(MenuVideos),
			tgbotapi.NewKeyboardButton(MenuMyCourses),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(MenuMyQR),
			tgbotapi.NewKeyboardButton(MenuSettings),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func contactKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact("📱 Raqamni yuborish"),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func experienceKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(registration.ChoiceCompletedBefore),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(registration.ChoiceNewStudent),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func coursesKeyboard(entries []model.CourseEntity) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entries)+1)
	for _, e := range entries {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(e.Title, fmt.Sprintf("course_%d", e.ID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Orqaga", "back_main"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func courseDetailKeyboard(courseID uint64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Sotib olish", fmt.Sprintf("buy_%d", courseID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Orqaga", "back_courses"),
		),
	)
}

// paymentTypesKeyboard lists one button per offered plan. A zero price hides
// the plan; the single plan is never offered for multi-lesson courses.
func paymentTypesKeyboard(course *model.CourseEntity) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 4)

	if course.PriceFull > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("To'liq kurs - %s so'm", formatPrice(course.PriceFull)),
				fmt.Sprintf("pay_full_%d", course.ID),
			),
		))
	}
	if course.PriceMonthly > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Oylik to'lov - %s so'm/oy", formatPrice(course.PriceMonthly)),
				fmt.Sprintf("pay_monthly_%d", course.ID),
			),
		))
	}
	if course.PriceSingle > 0 && course.Type != constant.CourseTypeCourse {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Bir martalik - %s so'm", formatPrice(course.PriceSingle)),
				fmt.Sprintf("pay_single_%d", course.ID),
			),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Orqaga", fmt.Sprintf("course_%d", course.ID)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmPaymentKeyboard(purchaseID uint64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ To'lovni tasdiqlash", fmt.Sprintf("confirm_%d", purchaseID)),
		),
	)
}

func settingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔔 Bildirishnomalar", "toggle_notifications"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Orqaga", "back_main"),
		),
	)
}

func myCoursesKeyboard(purchases []model.ActivePurchase) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(purchases)+1)
	for i := range purchases {
		p := &purchases[i]
		label := courseIcon(p.CourseType) + " " + p.CourseTitle
		if days := p.DaysLeft(time.Now()); days >= 0 {
			if days > 0 {
				label += fmt.Sprintf(" (%d kun qoldi)", days)
			} else {
				label += " (muddati tugagan)"
			}
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("mycourse_%d", p.CourseID)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("◀️ Orqaga", "back_main"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func lessonsKeyboard(courseID uint64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Kursni tugatdim", fmt.Sprintf("complete_%d", courseID)),
		),
	)
}
