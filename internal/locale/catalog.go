package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// entry is one message key with its English and Persian text.
type entry struct {
	key     string
	english string
	persian string
}

// Message keys shared by the form, the gallery and the CLI.
var entries = []entry{
	{"app.title", "📝 Flashcard Form", "📝 فرم ثبت کارت اطلاعاتی"},
	{"app.subtitle", "A smarter notebook", "جایگزین هوشمند دفترچه یادداشت"},

	{"form.title", "🏷️ Title *", "🏷️ عنوان *"},
	{"form.title_placeholder", "Enter the card title", "عنوان کارت را وارد کنید"},
	{"form.description", "📄 Description *", "📄 توضیح *"},
	{"form.description_placeholder", "Enter the card description", "توضیحات کارت را وارد کنید"},
	{"form.type", "🎯 Card type *", "🎯 نوع کارت *"},
	{"form.priority", "⭐ Priority *", "⭐ اولویت *"},
	{"form.choose", "Choose", "انتخاب کنید"},
	{"form.tags", "🏷️ Tags (max %d)", "🏷️ تگ‌ها (حداکثر %d تگ)"},
	{"form.tag_placeholder", "Enter a new tag", "تگ جدید را وارد کنید"},
	{"form.tags_added", "%d/%d tags added", "%d/%d تگ اضافه شده"},
	{"form.tags_left", "%d tags remaining", "%d تگ باقی مانده"},
	{"form.incomplete", "Please fill in all required fields.", "لطفاً تمام فیلدهای اجباری را پر کنید."},
	{"form.submit", "💾 Save card", "💾 ثبت کارت اطلاعاتی"},
	{"form.submitting", "Saving...", "در حال ثبت..."},
	{"form.preview", "📋 Card preview:", "📋 پیش نمایش کارت:"},
	{"form.view_cards", "View cards (%d) 📚", "مشاهده کارت‌ها (%d) 📚"},

	{"gallery.title", "📚 Cards (%d)", "📚 کارت‌های اطلاعاتی (%d)"},
	{"gallery.back", "Back →", "بازگشت →"},
	{"gallery.empty", "📝 No cards yet", "📝 هیچ کارتی موجود نیست"},
	{"gallery.empty_hint", "Create your first card!", "اولین کارت خود را ایجاد کنید!"},
	{"gallery.delete_title", "Delete card %s", "حذف کارت %s"},
	{"gallery.confirm_delete", "Are you sure you want to delete this card?", "آیا مطمئن هستید که می‌خواهید این کارت را حذف کنید؟"},

	{"toast.created", "Card saved successfully!", "کارت با موفقیت ثبت شد!"},
	{"toast.deleted", "Card deleted", "کارت حذف شد"},
	{"toast.success", "Success", "موفق"},

	{"dialog.hint", "y: confirm | n: cancel", "y: تایید | n: انصراف"},

	{"quit.title", "Quit?", "خروج؟"},
	{"quit.message", "Unsaved cards and input will be lost.", "کارت‌ها و اطلاعات وارد شده از بین می‌روند."},

	{"type.education", "Education", "آموزش"},
	{"type.reminder", "Reminder", "یادآور"},
	{"type.exercise", "Exercise", "تمرین"},
	{"type.fun", "Fun", "فان"},

	{"priority.1", "Very low", "خیلی کم"},
	{"priority.2", "Low", "کم"},
	{"priority.3", "Medium", "متوسط"},
	{"priority.4", "Important", "مهم"},
	{"priority.5", "Urgent", "فوری"},

	{"hint.fields", "Fields", "فیلدها"},
	{"hint.cycle", "Cycle", "انتخاب"},
	{"hint.add_tag", "Add tag", "افزودن تگ"},
	{"hint.drop_tag", "Drop tag", "حذف تگ"},
	{"hint.save", "Save", "ثبت"},
	{"hint.cards", "Cards", "کارت‌ها"},
	{"hint.quit", "Quit", "خروج"},
	{"hint.scroll", "Scroll", "پیمایش"},
	{"hint.delete", "Delete", "حذف"},
	{"hint.back", "Back", "بازگشت"},
	{"hint.confirm", "Confirm", "تایید"},
	{"hint.cancel", "Cancel", "انصراف"},
	{"hint.wait", "Saving", "در حال ثبت"},
}

// messages is the catalog every Localizer prints from. Tags outside the
// catalog resolve to English.
var messages = newCatalog(entries)

func newCatalog(entries []entry) *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		if err := b.SetString(language.English, e.key, e.english); err != nil {
			panic(fmt.Sprintf("locale: register %q: %v", e.key, err))
		}
		if err := b.SetString(language.Persian, e.key, e.persian); err != nil {
			panic(fmt.Sprintf("locale: register %q: %v", e.key, err))
		}
	}
	return b
}
