package questionnaire

import "github.com/ARROM2405/hero-search-bot/internal/models"

// User-facing texts. The bot speaks Ukrainian; texts are embedded rather
// than abstracted behind an i18n layer.

const FirstInstructions = `
Привіт, я бот для передачі інформації по пошуку героя ЗСУ.
Я буду просити тебе по черзі відправляти мені дані.
В кінці буде можливість все перепровірити і, якщо необхідно,
відмінити прийняття надісланих даних і все відправити з самого початку.`

const inquiryStart = "Будь ласка введіть "

const (
	ValidationFailedText = "Дані в попередньому повідомленні мають неправельний формат. Спробуйте ще раз."
	InputExpiredText     = "Для вводу всіх даних у вас є 30 хв. Так як не всі дані були подані, ми їх видалили. Будь ласка почніть від початку."

	InputConfirmedText    = "Дякую, ваші дані збереджені і будуть передані <link to the admin>."
	InputNotConfirmedText = "Введені дані видалено. Я запрошу ввести ще раз усі дані як попередньо. "
	AllDataReceivedText   = "Від вас отримані всі дані. Якщо це не так, будьласка зверніться до <link_to_admin>"

	ContinueInputText = "Продовжуємо ввід даних."
	EditIgnoredText   = "Редаговані повідомлення не зберігаються. Бажаєте почати ввід даних з початку чи продовжити з поточного питання?"
)

// Button labels and the callback commands behind them.
const (
	ConfirmInstructionsButton = "Зрозуміло, починаємо"
	InputCorrectButton        = "Дані корректні."
	InputIncorrectButton      = "Дані не корректні. Маю відредагувати."
	RestartInputButton        = "Почати з початку"
	ContinueInputButton       = "Продовжити"
)

var prompts = map[models.QuestionKey]string{
	models.KeyCaseID:                   "номер справи в реєстрі.",
	models.KeyHeroLastName:             "прізвище героя.",
	models.KeyHeroFirstName:            "ім'я героя.",
	models.KeyHeroPatronymic:           "ім'я по батькові героя.",
	models.KeyHeroDateOfBirth:          "дату народження героя в форматі ДД/ММ/РРРР, наприклад: 28/08/1990.",
	models.KeyItemUsedForDNAExtraction: "предмет який використовували для отримання ДНК.",
	models.KeyRelativeLastName:         "прізвище родича.",
	models.KeyRelativeFirstName:        "ім'я родича.",
	models.KeyRelativePatronymic:       "ім'я по батькову родича.",
	models.KeyIsAddedToDNADB:           "чи доданий зразок ДНК до бази в форматі Так/Ні.",
	models.KeyComment:                  "комментар, якщо потрібно. Якщо немає потреби додаткових коментарів, введіть Ні.",
}

// Prompt returns the full inquiry text for a question key.
func Prompt(key models.QuestionKey) string {
	return inquiryStart + prompts[key]
}

// Labels used when rendering the confirmation summary.
var summaryLabels = map[models.QuestionKey]string{
	models.KeyCaseID:                   "Номер справи в реєстрі",
	models.KeyHeroLastName:             "Прізвище героя",
	models.KeyHeroFirstName:            "Ім'я героя",
	models.KeyHeroPatronymic:           "Ім'я по батькові героя",
	models.KeyHeroDateOfBirth:          "Дата народження героя",
	models.KeyItemUsedForDNAExtraction: "Предмет використания для отримання зразка ДНК",
	models.KeyRelativeLastName:         "Прізвище родича",
	models.KeyRelativeFirstName:        "Ім'я родича",
	models.KeyRelativePatronymic:       "Ім'я по батькові родича",
	models.KeyIsAddedToDNADB:           "Дані є в реєстрі ДНК",
	models.KeyComment:                  "Коментар",
}
