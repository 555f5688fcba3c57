package models

// QuestionKey identifies one field collected by the questionnaire.
type QuestionKey string

const (
	KeyCaseID                   QuestionKey = "case_id"
	KeyHeroLastName             QuestionKey = "hero_last_name"
	KeyHeroFirstName            QuestionKey = "hero_first_name"
	KeyHeroPatronymic           QuestionKey = "hero_patronymic"
	KeyHeroDateOfBirth          QuestionKey = "hero_date_of_birth"
	KeyItemUsedForDNAExtraction QuestionKey = "item_used_for_dna_extraction"
	KeyRelativeLastName         QuestionKey = "relative_last_name"
	KeyRelativeFirstName        QuestionKey = "relative_first_name"
	KeyRelativePatronymic       QuestionKey = "relative_patronymic"
	KeyIsAddedToDNADB           QuestionKey = "is_added_to_dna_db"
	KeyComment                  QuestionKey = "comment"
)

// QuestionOrder is the mandated order in which answers are collected.
// It must never be reordered; adding or removing keys is a data migration.
var QuestionOrder = []QuestionKey{
	KeyCaseID,
	KeyHeroLastName,
	KeyHeroFirstName,
	KeyHeroPatronymic,
	KeyHeroDateOfBirth,
	KeyItemUsedForDNAExtraction,
	KeyRelativeLastName,
	KeyRelativeFirstName,
	KeyRelativePatronymic,
	KeyIsAddedToDNADB,
	KeyComment,
}
