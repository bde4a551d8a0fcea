package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
)

func courseIcon(kind constant.CourseType) string {
	switch kind {
	case constant.CourseTypeBook:
		return "📖"
	case constant.CourseTypeVideo:
		return "🎥"
	}
	return "📚"
}

// formatPrice renders an amount with space-grouped thousands, the way prices
// read in the chat (1 200 000 so'm).
func formatPrice(amount float64) string {
	s := strconv.FormatInt(int64(amount), 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func courseDetailsText(course *model.CourseEntity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n📝 %s\n\n", courseIcon(course.Type), course.Title, course.Description)
	if course.LessonsCount > 1 {
		fmt.Fprintf(&b, "🎓 Darslar soni: %d\n", course.LessonsCount)
	}
	fmt.Fprintf(&b, "⏱ Davomiyligi: %s\n\n💰 Narxlar:\n", course.Duration)
	if course.PriceFull > 0 {
		fmt.Fprintf(&b, "   • To'liq: %s so'm\n", formatPrice(course.PriceFull))
	}
	if course.PriceMonthly > 0 {
		fmt.Fprintf(&b, "   • Oylik: %s so'm\n", formatPrice(course.PriceMonthly))
	}
	if course.PriceSingle > 0 && course.Type != constant.CourseTypeCourse {
		fmt.Fprintf(&b, "   • Bir martalik: %s so'm\n", formatPrice(course.PriceSingle))
	}
	return b.String()
}

func paymentPlanText(plan constant.PaymentType) string {
	switch plan {
	case constant.PaymentTypeFull:
		return "To'liq to'lov"
	case constant.PaymentTypeMonthly:
		return "Oylik to'lov"
	case constant.PaymentTypeSingle:
		return "Bir martalik to'lov"
	}
	return string(plan)
}

func paymentInfoText(course *model.CourseEntity, purchase *model.PurchaseEntity, cardNumber, cardHolder string) string {
	return fmt.Sprintf(
		"💳 To'lov ma'lumotlari\n\n"+
			"📚 Kurs: %s\n"+
			"💵 Summa: %s so'm\n"+
			"📋 To'lov turi: %s\n\n"+
			"💳 Karta raqami:\n<code>%s</code>\n"+
			"👤 Karta egasi: %s\n\n"+
			"⚠️ To'lovni amalga oshirgandan so'ng, \"To'lovni tasdiqlash\" tugmasini bosing.\n"+
			"Admin tekshirgandan so'ng kursga kirish huquqi beriladi.",
		course.Title, formatPrice(purchase.Amount), paymentPlanText(purchase.PaymentType),
		cardNumber, cardHolder,
	)
}

func lessonsText(course *model.CourseEntity, lessons []model.LessonEntity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s <b>%s</b>\n\n📚 Darslar ro'yxati:\n\n", courseIcon(course.Type), course.Title)
	for i, lesson := range lessons {
		fmt.Fprintf(&b, "<b>%d-DARS:</b> ", i+1)
		if lesson.VideoURL != nil && *lesson.VideoURL != "" {
			fmt.Fprintf(&b, "<a href=\"%s\">%s</a>\n", *lesson.VideoURL, lesson.Title)
		} else {
			b.WriteString(lesson.Title + "\n")
		}
	}
	fmt.Fprintf(&b, "\n━━━━━━━━━━━━━━━━━━━━━━\n🎓 Jami darslar: %d\n⏱ Davomiyligi: %s", len(lessons), course.Duration)
	return b.String()
}

const (
	proofPromptText = "📸 To'lov chekini yuboring:\n\n" +
		"• Chek rasmi (screenshot)\n" +
		"• PDF fayl\n" +
		"• Yoki chek havolasi (URL)"

	proofRepromptText = "❌ Tushunarsiz format.\n\n" +
		"Iltimos, chek rasmini, faylini yoki havolasini yuboring:"

	genericErrorText = "Xatolik yuz berdi. Iltimos, keyinroq qayta urinib ko'ring."
)

func proofAcceptedText(purchaseID uint64) string {
	return fmt.Sprintf(
		"✅ To'lov haqida ma'lumot yuborildi!\n\n"+
			"Admin tekshirgandan so'ng sizga xabar beramiz.\n"+
			"Odatda bu 1-2 soat ichida amalga oshiriladi.\n\n"+
			"📝 Buyurtma raqami: #%d",
		purchaseID,
	)
}
